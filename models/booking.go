package models

import "time"

// Booking là một lượt đặt phòng theo hạng phòng và khoảng ngày.
// Khoảng ở tính nửa hở [CheckInDate, CheckOutDate).
type Booking struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Code         string        `gorm:"unique;size:20" json:"code"` // mã DPnnn, sinh tuần tự
	CustomerID   uint          `gorm:"index" json:"customerId"`
	Customer     Customer      `json:"customer" gorm:"foreignKey:CustomerID"`
	Category     int           `gorm:"index" json:"category"`
	CheckInDate  time.Time     `gorm:"index" json:"checkInDate"`
	CheckOutDate time.Time     `gorm:"index" json:"checkOutDate"`
	GuestCount   int           `gorm:"default:1" json:"guestCount"`
	Deposit      float64       `gorm:"default:0" json:"deposit"`
	Status       int           `gorm:"default:0;index" json:"status"`
	Rooms        []BookingRoom `json:"rooms" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BookingRoom là một dòng gán phòng cụ thể cho booking,
// thuộc sở hữu của booking (xóa theo booking)
type BookingRoom struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BookingID uint      `gorm:"index" json:"bookingId"`
	RoomID    uint      `gorm:"index" json:"roomId"`
	Room      Room      `json:"room" gorm:"foreignKey:RoomID"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
