package models

import (
	"time"

	"github.com/lib/pq"
)

// User là tài khoản nhân viên / khách có tài khoản
type User struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	Code          string        `gorm:"unique;size:20" json:"code"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updatedAt"`
	Name          string        `gorm:"default:New User" json:"name"`
	Email         string        `gorm:"unique" json:"email"`
	Password      string        `json:"-"`
	IsVerified    bool          `gorm:"default:false" json:"isVerified"`
	OtpCode       string        `json:"-"`
	OtpCreatedAt  time.Time     `json:"-"`
	PhoneNumber   string        `gorm:"type:varchar(11)" json:"phoneNumber"`
	Role          int           `gorm:"default:0" json:"role"` // 0: khách, 1: super admin, 2: quản lý, 3: lễ tân/thu ngân
	Status        int           `gorm:"default:1" json:"status"`
	PositionID    *uint         `json:"positionId,omitempty"`
	Position      *Position     `json:"position,omitempty" gorm:"foreignKey:PositionID"`
	CustomerID    *uint         `json:"customerId,omitempty"`
	Customer      *Customer     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	RoomTypeIDs   pq.Int64Array `json:"roomTypeIds" gorm:"type:integer[]"` // các hạng phòng được phân công
	Notifications []Notification `json:"-" gorm:"foreignKey:UserID"`
}

// Position là chức vụ nhân viên (dữ liệu tham chiếu)
type Position struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"unique" json:"name"`
	BaseSalary float64   `json:"baseSalary"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
