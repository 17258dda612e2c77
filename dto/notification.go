package dto

type NotificationResponse struct {
	ID          uint   `json:"id"`
	Message     string `json:"message"`
	Description string `json:"description"`
	IsRead      bool   `json:"isRead"`
	CreatedAt   string `json:"createdAt"`
}
