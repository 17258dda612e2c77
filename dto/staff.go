package dto

type CreateStaffRequest struct {
	Name        string  `json:"name" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Password    string  `json:"password" binding:"required"`
	PhoneNumber string  `json:"phoneNumber"`
	Role        int     `json:"role" binding:"required"`
	PositionID  *uint   `json:"positionId"`
	RoomTypeIDs []int64 `json:"roomTypeIds"`
}

type UpdateStaffRequest struct {
	Name        *string  `json:"name"`
	PhoneNumber *string  `json:"phoneNumber"`
	Role        *int     `json:"role"`
	Status      *int     `json:"status"`
	PositionID  *uint    `json:"positionId"`
	RoomTypeIDs *[]int64 `json:"roomTypeIds"`
}

type StaffResponse struct {
	ID          uint    `json:"id"`
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Role        int     `json:"role"`
	Status      int     `json:"status"`
	PositionID  *uint   `json:"positionId,omitempty"`
	Position    string  `json:"position,omitempty"`
	RoomTypeIDs []int64 `json:"roomTypeIds"`
	CreatedAt   string  `json:"createdAt"`
}
