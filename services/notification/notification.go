package notification

import (
	"encoding/json"
	"log"

	"hotelhub/models"

	"github.com/olahol/melody"
	"gorm.io/gorm"
)

// Service ghi nhận thông báo và phát qua websocket.
// Mọi thay đổi trạng thái booking/bảo trì đều đi qua đây,
// controller không gọi chéo nhau.
type Service struct {
	db     *gorm.DB
	melody *melody.Melody
}

func NewService(db *gorm.DB, m *melody.Melody) *Service {
	return &Service{
		db:     db,
		melody: m,
	}
}

type wsMessage struct {
	UserID      uint   `json:"userId"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

// Notify lưu thông báo cho user và broadcast qua websocket
func (s *Service) Notify(userID uint, message, description string) error {
	if userID == 0 {
		return nil
	}

	notif := models.Notification{
		UserID:      userID,
		Message:     message,
		Description: description,
	}
	if err := s.db.Create(&notif).Error; err != nil {
		return err
	}

	if s.melody != nil {
		payload, err := json.Marshal(wsMessage{
			UserID:      userID,
			Message:     message,
			Description: description,
		})
		if err == nil {
			if err := s.melody.Broadcast(payload); err != nil {
				log.Printf("Lỗi khi broadcast thông báo: %v", err)
			}
		}
	}

	return nil
}
