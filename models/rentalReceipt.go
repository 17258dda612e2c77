package models

import "time"

// RentalReceipt là phiếu thuê, tạo lúc nhận phòng và chốt lúc trả phòng.
// Về nghiệp vụ mỗi booking có một phiếu thuê (không ràng buộc unique).
type RentalReceipt struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Code           string    `gorm:"unique;size:20" json:"code"` // mã PTnnn
	BookingID      uint      `gorm:"index" json:"bookingId"`
	Booking        Booking   `json:"booking" gorm:"foreignKey:BookingID"`
	RoomID         uint      `gorm:"index" json:"roomId"`
	Room           Room      `json:"room" gorm:"foreignKey:RoomID"`
	ExpectedReturn time.Time `json:"expectedReturn"`
	GuestCount     int       `json:"guestCount"`
	AppliedPrice   float64   `json:"appliedPrice"` // giá áp dụng thực tế, có thể khác giá hạng phòng
	StaffID        uint      `json:"staffId"`      // nhân viên làm thủ tục nhận phòng
	Staff          User      `json:"staff" gorm:"foreignKey:StaffID"`
	Status         int       `gorm:"default:0" json:"status"` // 0: đang ở, 1: đã trả phòng
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
