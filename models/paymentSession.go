package models

import "time"

// PaymentSession là phiên thanh toán đặt cọc qua cổng thanh toán ngoài
type PaymentSession struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SessionRef string    `gorm:"unique;size:64" json:"sessionRef"`
	BookingID  uint      `gorm:"index" json:"bookingId"`
	Booking    Booking   `json:"-" gorm:"foreignKey:BookingID"`
	Amount     float64   `json:"amount"`
	QrURL      string    `json:"qrUrl"`
	Status     int       `gorm:"default:0" json:"status"` // 0: chờ, 1: đã thanh toán, 2: thất bại
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
