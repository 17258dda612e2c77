package controllers

import (
	"time"

	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) NotificationController {
	return NotificationController{DB: db}
}

// GetNotifications liệt kê thông báo của user đang đăng nhập
func (nc NotificationController) GetNotifications(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	page, limit := parsePagination(c)

	var notifs []models.Notification
	if err := nc.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&notifs).Error; err != nil {
		response.ServerError(c)
		return
	}

	pageItems, total := paginate(notifs, page, limit)
	result := make([]dto.NotificationResponse, 0, len(pageItems))
	for _, n := range pageItems {
		result = append(result, dto.NotificationResponse{
			ID:          n.ID,
			Message:     n.Message,
			Description: n.Description,
			IsRead:      n.IsRead,
			CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		})
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// MarkNotificationRead đánh dấu một thông báo đã đọc
func (nc NotificationController) MarkNotificationRead(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id, okID := parseUintParam(c, "id")
	if !okID {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	result := nc.DB.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, nil)
}

// MarkAllNotificationsRead đánh dấu tất cả thông báo của user đã đọc
func (nc NotificationController) MarkAllNotificationsRead(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	if err := nc.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = false", userID).
		Update("is_read", true).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, nil)
}
