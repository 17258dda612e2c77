package dto

// CheckInRequest là payload làm thủ tục nhận phòng:
// chuyển booking sang CheckedIn và mở phiếu thuê
type CheckInRequest struct {
	BookingID      uint    `json:"bookingId" binding:"required"`
	RoomID         uint    `json:"roomId"`
	GuestCount     int     `json:"guestCount"`
	AppliedPrice   float64 `json:"appliedPrice"`
	ExpectedReturn string  `json:"expectedReturn"`
}

// CheckOutRequest là payload trả phòng và xuất hóa đơn
type CheckOutRequest struct {
	RentalReceiptID uint     `json:"rentalReceiptId" binding:"required"`
	PaymentMethodID uint     `json:"paymentMethodId" binding:"required"`
	Surcharge       *float64 `json:"surcharge"`
	Compensation    *float64 `json:"compensation"`
}

type RentalReceiptResponse struct {
	ID             uint    `json:"id"`
	Code           string  `json:"code"`
	BookingID      uint    `json:"bookingId"`
	BookingCode    string  `json:"bookingCode"`
	RoomID         uint    `json:"roomId"`
	RoomCode       string  `json:"roomCode"`
	ExpectedReturn string  `json:"expectedReturn"`
	GuestCount     int     `json:"guestCount"`
	AppliedPrice   float64 `json:"appliedPrice"`
	StaffID        uint    `json:"staffId"`
	Status         int     `json:"status"`
	CreatedAt      string  `json:"createdAt"`
}
