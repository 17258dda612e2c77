package models

import (
	"encoding/json"
	"fmt"
	"time"

	"hotelhub/constants"
)

// RoomType là hạng phòng, quyết định giá cơ bản mỗi đêm
type RoomType struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `json:"name"`
	Category    int       `gorm:"index" json:"category"` // 0: Normal, 1: Standard, 2: Premium, 3: Luxury
	BasePrice   float64   `json:"basePrice"`
	NumBed      int       `json:"numBed"`
	MaxPeople   int       `json:"maxPeople"`
	Description string    `json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms       []Room    `json:"-" gorm:"foreignKey:RoomTypeID"`
}

// Room là phòng vật lý. Status chỉ được Booking Lifecycle Manager
// thay đổi theo chuyển trạng thái đặt phòng, không tự chuyển.
type Room struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Code        string          `gorm:"unique;size:20" json:"code"`
	RoomTypeID  uint            `gorm:"index" json:"roomTypeId"`
	RoomType    RoomType        `json:"roomType" gorm:"foreignKey:RoomTypeID"`
	Floor       int             `json:"floor"`
	Price       float64         `json:"price"`
	Status      int             `gorm:"default:0" json:"status"` // 0: trống, 1: đang ở, 2: bảo trì, 3: đã giữ
	Description string          `json:"description"`
	Avatar      string          `json:"avatar"`
	Img         json.RawMessage `json:"img" gorm:"type:json"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status < constants.RoomStatusAvailable || r.Status > constants.RoomStatusReserved {
		return fmt.Errorf("invalid status: %d, must be between 0 and 3", r.Status)
	}
	return nil
}
