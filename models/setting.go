package models

import "time"

// Setting là bản ghi cấu hình duy nhất của khách sạn,
// Invoice Engine chỉ đọc
type Setting struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	HotelName         string    `json:"hotelName"`
	NormalRoomPrice   float64   `json:"normalRoomPrice"`
	StandardRoomPrice float64   `json:"standardRoomPrice"`
	PremiumRoomPrice  float64   `json:"premiumRoomPrice"`
	LuxuryRoomPrice   float64   `json:"luxuryRoomPrice"`
	SurchargeRate     float64   `json:"surchargeRate"`
	CheckOutHour      int       `gorm:"default:12" json:"checkOutHour"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BasePriceForCategory trả về giá cơ bản mỗi đêm theo hạng phòng
func (s *Setting) BasePriceForCategory(category int) float64 {
	switch category {
	case 1:
		return s.StandardRoomPrice
	case 2:
		return s.PremiumRoomPrice
	case 3:
		return s.LuxuryRoomPrice
	default:
		return s.NormalRoomPrice
	}
}
