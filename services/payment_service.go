package services

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"os"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/services/logger"

	"gorm.io/gorm"
)

// PaymentService tạo phiên thanh toán cọc qua VietQR và xử lý webhook
// báo tiền về. Webhook xác thực bằng chữ ký HMAC-SHA256 trên payload thô.
type PaymentService struct {
	db       *gorm.DB
	logger   logger.Logger
	bookings *BookingService
}

type PaymentServiceOptions struct {
	DB       *gorm.DB
	Logger   logger.Logger
	Bookings *BookingService
}

func NewPaymentService(opts PaymentServiceOptions) *PaymentService {
	return &PaymentService{
		db:       opts.DB,
		logger:   opts.Logger,
		bookings: opts.Bookings,
	}
}

func newSessionRef() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// buildQrURL dựng link ảnh QR theo định dạng của img.vietqr.io
func buildQrURL(amount float64, ref string) string {
	bankID := os.Getenv("PAYMENT_BANK_ID")
	accountNo := os.Getenv("PAYMENT_ACCOUNT_NO")
	accountName := os.Getenv("PAYMENT_ACCOUNT_NAME")

	return fmt.Sprintf(
		"https://img.vietqr.io/image/%s-%s-compact2.png?amount=%.0f&addInfo=%s&accountName=%s",
		bankID, accountNo, amount, url.QueryEscape(ref), url.QueryEscape(accountName),
	)
}

// CreateDepositSession mở phiên thanh toán cọc cho booking.
// Booking phải tồn tại và còn ở trạng thái chờ cọc.
func (s *PaymentService) CreateDepositSession(bookingID uint, amount float64) (*models.PaymentSession, error) {
	if amount <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền cọc phải lớn hơn 0", nil)
	}

	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đơn đặt phòng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc đơn đặt phòng", err)
	}

	ref, err := newSessionRef()
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInternal, "Không tạo được mã phiên thanh toán", err)
	}

	session := models.PaymentSession{
		SessionRef: ref,
		BookingID:  booking.ID,
		Amount:     amount,
		QrURL:      buildQrURL(amount, ref),
		Status:     constants.PaymentSessionPending,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không tạo được phiên thanh toán", err)
	}

	if s.logger != nil {
		s.logger.Info("Mở phiên thanh toán %s cho booking %s, số tiền %.0f", ref, booking.Code, amount)
	}
	return &session, nil
}

// VerifySignature so chữ ký HMAC-SHA256 của webhook với secret cấu hình
func VerifySignature(payload []byte, signature string) bool {
	secret := os.Getenv("PAYMENT_WEBHOOK_SECRET")
	if secret == "" {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ConfirmSession chốt phiên thanh toán khi webhook báo tiền về:
// đánh dấu phiên đã thanh toán và chuyển booking sang Đã đặt cọc.
// Phiên đã chốt rồi thì bỏ qua, webhook gọi lại không gây hại.
func (s *PaymentService) ConfirmSession(sessionRef string, amount float64) (*models.PaymentSession, error) {
	var session models.PaymentSession
	if err := s.db.Where("session_ref = ?", sessionRef).First(&session).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy phiên thanh toán", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc phiên thanh toán", err)
	}

	if session.Status == constants.PaymentSessionCompleted {
		return &session, nil
	}
	if amount < session.Amount {
		if err := s.db.Model(&session).Update("status", constants.PaymentSessionFailed).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được phiên thanh toán", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Số tiền chuyển không đủ cọc", nil)
	}

	if err := s.db.Model(&session).Update("status", constants.PaymentSessionCompleted).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được phiên thanh toán", err)
	}

	if s.bookings != nil {
		if _, err := s.bookings.ConfirmDeposit(session.BookingID, amount); err != nil {
			// Phiên đã ghi nhận tiền, booking chuyển trạng thái sau cũng được
			if s.logger != nil {
				s.logger.Error("Không chuyển được booking %d sang đã cọc: %v", session.BookingID, err)
			}
		}
	}

	if s.logger != nil {
		s.logger.Info("Phiên thanh toán %s đã chốt, số tiền %.0f", sessionRef, amount)
	}
	return &session, nil
}
