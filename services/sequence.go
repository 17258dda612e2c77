package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"gorm.io/gorm"
)

// Tiền tố mã cho từng loại chứng từ
const (
	BookingCodePrefix     = "DP"
	InvoiceCodePrefix     = "HD"
	RentalCodePrefix      = "PT"
	MaintenanceCodePrefix = "BT"
	CustomerCodePrefix    = "KH"
	StaffCodePrefix       = "NV"
)

// NextCode sinh mã tuần tự cho một loại chứng từ: đọc mã lớn nhất
// hiện có theo tiền tố rồi tăng phần số lên 1 (bắt đầu từ 1 nếu chưa có).
// Dùng chung cho booking, hóa đơn, phiếu thuê, phiếu bảo trì.
// Sắp theo độ dài trước rồi mới theo chuỗi: khi phần số vượt số chữ số
// đệm ("DP1000" sau "DP999"), so sánh chuỗi thuần sẽ chọn sai mã lớn nhất.
func NextCode(tx *gorm.DB, model interface{}, prefix string) (string, error) {
	var codes []string
	err := tx.Model(model).
		Where("code LIKE ?", prefix+"%").
		Order("length(code) DESC, code DESC").
		Limit(1).
		Pluck("code", &codes).Error
	if err != nil {
		return "", err
	}

	next := 1
	if len(codes) > 0 {
		suffix := strings.TrimPrefix(codes[0], prefix)
		if n, err := strconv.Atoi(suffix); err == nil {
			next = n + 1
		}
	}

	return fmt.Sprintf("%s%03d", prefix, next), nil
}

// RandomCustomerCode sinh mã khách hàng với hậu tố 4 số ngẫu nhiên,
// dùng cho luồng walk-in (khác chủ đích với mã tuần tự của luồng đăng ký)
func RandomCustomerCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%04d", CustomerCodePrefix, n.Int64()), nil
}
