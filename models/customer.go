package models

import "time"

// Customer là hồ sơ khách hàng
type Customer struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Code           string    `gorm:"unique;size:20" json:"code"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `gorm:"type:varchar(11)" json:"phoneNumber"`
	IdentityNumber string    `gorm:"size:20;index" json:"identityNumber"` // số CCCD/hộ chiếu
	Address        string    `json:"address"`
	Gender         int       `json:"gender"`
	DateOfBirth    string    `gorm:"default:'01/01/2000'" json:"dateOfBirth"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Bookings       []Booking `json:"-" gorm:"foreignKey:CustomerID"`
}
