package dto

// CreateMaintenanceRequest mở phiếu bảo trì và đưa phòng vào trạng thái bảo trì
type CreateMaintenanceRequest struct {
	RoomID      uint   `json:"roomId" binding:"required"`
	Description string `json:"description" binding:"required"`
	StaffID     *uint  `json:"staffId"`
}

type MaintenanceResponse struct {
	ID          uint   `json:"id"`
	Code        string `json:"code"`
	RoomID      uint   `json:"roomId"`
	RoomCode    string `json:"roomCode"`
	Description string `json:"description"`
	Status      int    `json:"status"`
	StaffID     *uint  `json:"staffId,omitempty"`
	DoneAt      string `json:"doneAt,omitempty"`
	CreatedAt   string `json:"createdAt"`
}
