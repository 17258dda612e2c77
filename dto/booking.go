package dto

// CreateBookingRequest là payload tạo đặt phòng.
// Ngày theo định dạng dd/mm/yyyy, roomId 0 để hệ thống tự tìm phòng.
type CreateBookingRequest struct {
	CustomerID   uint    `json:"customerId" binding:"required"`
	Category     *int    `json:"category" binding:"required"`
	CheckInDate  string  `json:"checkInDate" binding:"required"`
	CheckOutDate string  `json:"checkOutDate" binding:"required"`
	GuestCount   int     `json:"guestCount"`
	Deposit      float64 `json:"deposit"`
	RoomID       uint    `json:"roomId"`
}

// WalkInBookingRequest là payload đặt phòng cho khách vãng lai tại quầy
type WalkInBookingRequest struct {
	GuestName      string  `json:"guestName" binding:"required"`
	GuestEmail     string  `json:"guestEmail"`
	GuestPhone     string  `json:"guestPhone"`
	IdentityNumber string  `json:"identityNumber"`
	Category       *int    `json:"category" binding:"required"`
	CheckInDate    string  `json:"checkInDate" binding:"required"`
	CheckOutDate   string  `json:"checkOutDate" binding:"required"`
	GuestCount     int     `json:"guestCount"`
	Deposit        float64 `json:"deposit"`
}

// UpdateBookingRequest là payload cập nhật, field bỏ trống giữ nguyên
type UpdateBookingRequest struct {
	Category     *int     `json:"category"`
	CheckInDate  *string  `json:"checkInDate"`
	CheckOutDate *string  `json:"checkOutDate"`
	GuestCount   *int     `json:"guestCount"`
	Deposit      *float64 `json:"deposit"`
	Status       *int     `json:"status"`
	RoomID       *uint    `json:"roomId"`
}

type BookingRoomResponse struct {
	RoomID   uint   `json:"roomId"`
	RoomCode string `json:"roomCode"`
	Floor    int    `json:"floor"`
}

type BookingResponse struct {
	ID           uint                  `json:"id"`
	Code         string                `json:"code"`
	CustomerID   uint                  `json:"customerId"`
	CustomerName string                `json:"customerName"`
	Category     int                   `json:"category"`
	CategoryName string                `json:"categoryName"`
	CheckInDate  string                `json:"checkInDate"`
	CheckOutDate string                `json:"checkOutDate"`
	GuestCount   int                   `json:"guestCount"`
	Deposit      float64               `json:"deposit"`
	Status       int                   `json:"status"`
	Rooms        []BookingRoomResponse `json:"rooms"`
	CreatedAt    string                `json:"createdAt"`
}
