package models

import "time"

// Maintenance là phiếu bảo trì phòng
type Maintenance struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Code        string     `gorm:"unique;size:20" json:"code"` // mã BTnnn
	RoomID      uint       `gorm:"index" json:"roomId"`
	Room        Room       `json:"room" gorm:"foreignKey:RoomID"`
	Description string     `gorm:"type:text" json:"description"`
	Status      int        `gorm:"default:0" json:"status"` // 0: đang bảo trì, 1: hoàn tất
	StaffID     *uint      `json:"staffId,omitempty"`
	Staff       *User      `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	DoneAt      *time.Time `json:"doneAt,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updatedAt"`
}
