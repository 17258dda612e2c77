package dto

// CreatePaymentSessionRequest mở phiên thanh toán cọc cho booking
type CreatePaymentSessionRequest struct {
	BookingID uint    `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
}

// PaymentWebhookPayload là payload cổng thanh toán gọi về,
// chữ ký nằm ở header X-Signature tính trên body thô
type PaymentWebhookPayload struct {
	SessionRef string  `json:"sessionRef" binding:"required"`
	Amount     float64 `json:"amount" binding:"required"`
	PaidAt     string  `json:"paidAt"`
}

type PaymentSessionResponse struct {
	ID         uint    `json:"id"`
	SessionRef string  `json:"sessionRef"`
	BookingID  uint    `json:"bookingId"`
	Amount     float64 `json:"amount"`
	QrURL      string  `json:"qrUrl"`
	Status     int     `json:"status"`
}
