package services

import (
	"math"
	"time"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/services/logger"

	"gorm.io/gorm"
)

// BookedNights tính số đêm theo ngày ĐÃ ĐẶT: ceil((end - start) / 1 ngày),
// tối thiểu 1 đêm. Tiền phòng luôn tính theo số đêm đã đặt,
// không theo ngày trả phòng thực tế.
func BookedNights(start, end time.Time) int {
	nights := int(math.Ceil(end.Sub(start).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

// ComputeTotal tính tổng phải trả:
// tiền phòng + dịch vụ + phụ thu + bồi thường - cọc đã đóng, không âm
func ComputeTotal(roomCharge, serviceCharge, surcharge, compensation, depositPaid float64) float64 {
	total := roomCharge + serviceCharge + surcharge + compensation - depositPaid
	if total < 0 {
		return 0
	}
	return total
}

// amountOrZero ép field tiền thiếu/không hợp lệ về 0
func amountOrZero(v *float64) float64 {
	if v == nil || math.IsNaN(*v) {
		return 0
	}
	return *v
}

type InvoiceService struct {
	db     *gorm.DB
	logger logger.Logger
}

type InvoiceServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewInvoiceService(opts InvoiceServiceOptions) *InvoiceService {
	return &InvoiceService{
		db:     opts.DB,
		logger: opts.Logger,
	}
}

// InvoiceItemInput là một dòng hóa đơn từ caller
type InvoiceItemInput struct {
	Label     string
	Quantity  int
	UnitPrice float64
}

// InvoiceInput là tham số tạo hóa đơn; field tiền nil coi như 0
type InvoiceInput struct {
	Code            string
	RentalReceiptID uint
	CashierID       uint
	CustomerID      uint
	PaymentMethodID uint
	RoomCharge      *float64
	ServiceCharge   *float64
	Surcharge       *float64
	Compensation    *float64
	DepositPaid     *float64
	Items           []InvoiceItemInput
}

// completedServiceTotal cộng thành tiền các dòng dịch vụ Completed của phiếu thuê
func (s *InvoiceService) completedServiceTotal(tx *gorm.DB, receiptID uint) (float64, []models.ServiceUsage, error) {
	var usages []models.ServiceUsage
	err := tx.Preload("Service").
		Where("rental_receipt_id = ? AND status = ?", receiptID, constants.ServiceUsageStatusCompleted).
		Find(&usages).Error
	if err != nil {
		return 0, nil, err
	}

	total := 0.0
	for _, u := range usages {
		total += u.Amount
	}
	return total, usages, nil
}

func (s *InvoiceService) loadSetting(tx *gorm.DB) (*models.Setting, error) {
	var setting models.Setting
	if err := tx.First(&setting).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return &models.Setting{}, nil
		}
		return nil, err
	}
	return &setting, nil
}

// CreateInvoice tạo hóa đơn từ phiếu thuê. Các field thiếu được tự điền
// từ phiếu thuê và booking; mọi vi phạm validation được gom lại báo một
// lần. Hóa đơn luôn ghi nhận đã thanh toán đủ khi tạo.
func (s *InvoiceService) CreateInvoice(input InvoiceInput, actingStaffID uint) (*models.Invoice, error) {
	var invoice models.Invoice

	err := s.db.Transaction(func(tx *gorm.DB) error {
		vErrs := &errors.ValidationErrors{}

		var receipt *models.RentalReceipt
		if input.RentalReceiptID != 0 {
			var r models.RentalReceipt
			if err := tx.Preload("Booking").First(&r, input.RentalReceiptID).Error; err != nil {
				if err != gorm.ErrRecordNotFound {
					return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc phiếu thuê", err)
				}
			} else {
				receipt = &r
			}
		}

		customerID := input.CustomerID
		depositPaid := amountOrZero(input.DepositPaid)
		roomCharge := amountOrZero(input.RoomCharge)
		serviceCharge := amountOrZero(input.ServiceCharge)
		surcharge := amountOrZero(input.Surcharge)
		compensation := amountOrZero(input.Compensation)

		if receipt != nil {
			// Tự điền từ phiếu thuê: khách, cọc, tiền phòng, dòng hóa đơn
			if customerID == 0 {
				customerID = receipt.Booking.CustomerID
			}
			if input.DepositPaid == nil {
				depositPaid = receipt.Booking.Deposit
			}
			if roomCharge <= 0 {
				setting, err := s.loadSetting(tx)
				if err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc cấu hình", err)
				}
				rate := receipt.AppliedPrice
				if rate <= 0 {
					rate = setting.BasePriceForCategory(receipt.Booking.Category)
				}
				nights := BookedNights(receipt.Booking.CheckInDate, receipt.Booking.CheckOutDate)
				roomCharge = float64(nights) * rate
			}
			if input.ServiceCharge == nil || serviceCharge == 0 {
				total, _, err := s.completedServiceTotal(tx, receipt.ID)
				if err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc dịch vụ đã dùng", err)
				}
				serviceCharge = total
			}
		}

		cashierID := input.CashierID
		if cashierID == 0 {
			cashierID = actingStaffID
		}

		// Gom tất cả vi phạm, không dừng ở lỗi đầu tiên
		if receipt == nil {
			vErrs.Add("Phiếu thuê không được để trống")
		}
		if customerID == 0 {
			vErrs.Add("Không xác định được khách hàng")
		} else {
			var count int64
			if err := tx.Model(&models.Customer{}).Where("id = ?", customerID).Count(&count).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc khách hàng", err)
			}
			if count == 0 {
				vErrs.Add("Không xác định được khách hàng")
			}
		}
		if cashierID == 0 {
			vErrs.Add("Không xác định được thu ngân")
		}
		if input.PaymentMethodID == 0 {
			vErrs.Add("Phương thức thanh toán không được để trống")
		}
		if vErrs.HasErrors() {
			return vErrs
		}

		code := input.Code
		if code == "" {
			var err error
			code, err = NextCode(tx, &models.Invoice{}, InvoiceCodePrefix)
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không sinh được mã hóa đơn", err)
			}
		}

		items := make([]models.InvoiceItem, 0, len(input.Items))
		for _, it := range input.Items {
			items = append(items, models.InvoiceItem{
				Label:     it.Label,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				Total:     float64(it.Quantity) * it.UnitPrice,
			})
		}
		if len(items) == 0 && roomCharge > 0 {
			items = append(items, models.InvoiceItem{
				Label:     "Tiền phòng",
				Quantity:  1,
				UnitPrice: roomCharge,
				Total:     roomCharge,
			})
		}

		invoice = models.Invoice{
			Code:               code,
			RentalReceiptID:    receipt.ID,
			CashierID:          cashierID,
			CustomerID:         customerID,
			IssuedAt:           time.Now(),
			RoomCharge:         roomCharge,
			ServiceCharge:      serviceCharge,
			Surcharge:          surcharge,
			CompensationCharge: compensation,
			DepositPaid:        depositPaid,
			Total:              ComputeTotal(roomCharge, serviceCharge, surcharge, compensation, depositPaid),
			PaymentMethodID:    input.PaymentMethodID,
			PaymentStatus:      constants.InvoiceStatusPaid,
			Items:              items,
		}

		if err := tx.Create(&invoice).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không tạo được hóa đơn", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("Đã tạo hóa đơn %s, tổng tiền %.0f", invoice.Code, invoice.Total)
	}
	return &invoice, nil
}

// CreateCheckoutInvoice là biến thể gọn dùng lúc trả phòng: tiền phòng do
// caller đưa vào, dịch vụ lấy từ các dòng Completed của phiếu thuê, mỗi
// dòng dịch vụ thành một dòng hóa đơn, thêm dòng tiền phòng lên đầu nếu
// tiền phòng dương.
func (s *InvoiceService) CreateCheckoutInvoice(input InvoiceInput) (*models.Invoice, error) {
	var invoice models.Invoice

	err := s.db.Transaction(func(tx *gorm.DB) error {
		vErrs := &errors.ValidationErrors{}
		if input.RentalReceiptID == 0 {
			vErrs.Add("Phiếu thuê không được để trống")
		}
		if input.CashierID == 0 {
			vErrs.Add("Không xác định được thu ngân")
		}
		if input.CustomerID == 0 {
			vErrs.Add("Không xác định được khách hàng")
		}
		if input.PaymentMethodID == 0 {
			vErrs.Add("Phương thức thanh toán không được để trống")
		}
		if vErrs.HasErrors() {
			return vErrs
		}

		serviceTotal, usages, err := s.completedServiceTotal(tx, input.RentalReceiptID)
		if err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc dịch vụ đã dùng", err)
		}

		roomCharge := amountOrZero(input.RoomCharge)
		surcharge := amountOrZero(input.Surcharge)
		compensation := amountOrZero(input.Compensation)
		depositPaid := amountOrZero(input.DepositPaid)

		items := make([]models.InvoiceItem, 0, len(usages)+1)
		if roomCharge > 0 {
			items = append(items, models.InvoiceItem{
				Label:     "Tiền phòng",
				Quantity:  1,
				UnitPrice: roomCharge,
				Total:     roomCharge,
			})
		}
		for _, u := range usages {
			items = append(items, models.InvoiceItem{
				Label:     u.Service.Name,
				Quantity:  u.Quantity,
				UnitPrice: u.Service.UnitPrice,
				Total:     u.Amount,
			})
		}

		code := input.Code
		if code == "" {
			code, err = NextCode(tx, &models.Invoice{}, InvoiceCodePrefix)
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không sinh được mã hóa đơn", err)
			}
		}

		invoice = models.Invoice{
			Code:               code,
			RentalReceiptID:    input.RentalReceiptID,
			CashierID:          input.CashierID,
			CustomerID:         input.CustomerID,
			IssuedAt:           time.Now(),
			RoomCharge:         roomCharge,
			ServiceCharge:      serviceTotal,
			Surcharge:          surcharge,
			CompensationCharge: compensation,
			DepositPaid:        depositPaid,
			Total:              ComputeTotal(roomCharge, serviceTotal, surcharge, compensation, depositPaid),
			PaymentMethodID:    input.PaymentMethodID,
			PaymentStatus:      constants.InvoiceStatusPaid,
			Items:              items,
		}

		if err := tx.Create(&invoice).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không tạo được hóa đơn", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &invoice, nil
}

// InvoicePreview là bản xem trước hóa đơn, không lưu
type InvoicePreview struct {
	RentalReceiptID uint                  `json:"rentalReceiptId"`
	RoomCharge      float64               `json:"roomCharge"`
	ServiceCharge   float64               `json:"serviceCharge"`
	DepositPaid     float64               `json:"depositPaid"`
	Total           float64               `json:"total"`
	Usages          []models.ServiceUsage `json:"usages"`
}

// PreviewInvoice tính thử hóa đơn từ phiếu thuê, không ghi gì cả
func (s *InvoiceService) PreviewInvoice(receiptID uint) (*InvoicePreview, error) {
	var receipt models.RentalReceipt
	if err := s.db.Preload("Booking").First(&receipt, receiptID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy phiếu thuê", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc phiếu thuê", err)
	}

	setting, err := s.loadSetting(s.db)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc cấu hình", err)
	}

	rate := receipt.AppliedPrice
	if rate <= 0 {
		rate = setting.BasePriceForCategory(receipt.Booking.Category)
	}
	roomCharge := float64(BookedNights(receipt.Booking.CheckInDate, receipt.Booking.CheckOutDate)) * rate

	serviceTotal, usages, err := s.completedServiceTotal(s.db, receipt.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc dịch vụ đã dùng", err)
	}

	return &InvoicePreview{
		RentalReceiptID: receipt.ID,
		RoomCharge:      roomCharge,
		ServiceCharge:   serviceTotal,
		DepositPaid:     receipt.Booking.Deposit,
		Total:           ComputeTotal(roomCharge, serviceTotal, 0, 0, receipt.Booking.Deposit),
		Usages:          usages,
	}, nil
}
