package models

import "time"

// HotelService là dịch vụ tính phí (giặt ủi, minibar, spa...)
type HotelService struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	UnitPrice   float64   `json:"unitPrice"`
	Unit        string    `json:"unit"`
	Status      int       `gorm:"default:1" json:"status"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// ServiceUsage là một lần dùng dịch vụ gắn với phiếu thuê.
// Chỉ các dòng Completed được tính tiền.
type ServiceUsage struct {
	ID              uint          `gorm:"primaryKey" json:"id"`
	RentalReceiptID uint          `gorm:"index" json:"rentalReceiptId"`
	RentalReceipt   RentalReceipt `json:"-" gorm:"foreignKey:RentalReceiptID"`
	ServiceID       uint          `json:"serviceId"`
	Service         HotelService  `json:"service" gorm:"foreignKey:ServiceID"`
	Quantity        int           `gorm:"default:1" json:"quantity"`
	Amount          float64       `json:"amount"` // thành tiền = đơn giá x số lượng, chốt lúc ghi nhận
	Status          int           `gorm:"default:0;index" json:"status"`
	CreatedAt       time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}
