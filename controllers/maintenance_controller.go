package controllers

import (
	"log"
	"time"

	"hotelhub/constants"
	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/services"
	"hotelhub/services/notification"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MaintenanceController struct {
	DB     *gorm.DB
	Notifs *notification.Service
}

func NewMaintenanceController(db *gorm.DB, notifs *notification.Service) MaintenanceController {
	return MaintenanceController{
		DB:     db,
		Notifs: notifs,
	}
}

func toMaintenanceResponse(m *models.Maintenance) dto.MaintenanceResponse {
	doneAt := ""
	if m.DoneAt != nil {
		doneAt = m.DoneAt.Format(time.RFC3339)
	}
	return dto.MaintenanceResponse{
		ID:          m.ID,
		Code:        m.Code,
		RoomID:      m.RoomID,
		RoomCode:    m.Room.Code,
		Description: m.Description,
		Status:      m.Status,
		StaffID:     m.StaffID,
		DoneAt:      doneAt,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

// GetMaintenances liệt kê phiếu bảo trì
func (mc MaintenanceController) GetMaintenances(c *gin.Context) {
	page, limit := parsePagination(c)

	var list []models.Maintenance
	if err := mc.DB.Preload("Room").Order("created_at DESC").Find(&list).Error; err != nil {
		response.ServerError(c)
		return
	}

	pageItems, total := paginate(list, page, limit)
	result := make([]dto.MaintenanceResponse, 0, len(pageItems))
	for i := range pageItems {
		result = append(result, toMaintenanceResponse(&pageItems[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// CreateMaintenance mở phiếu bảo trì và đưa phòng vào trạng thái bảo trì,
// phòng đang bảo trì bị loại khỏi mọi phép tìm phòng trống
func (mc MaintenanceController) CreateMaintenance(c *gin.Context) {
	var req dto.CreateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var room models.Room
	if err := mc.DB.First(&room, req.RoomID).Error; err != nil {
		response.BadRequest(c, "Phòng không tồn tại")
		return
	}
	if room.Status == constants.RoomStatusOccupied {
		response.Conflict(c, "Phòng đang có khách ở, không đưa vào bảo trì được")
		return
	}

	var maintenance models.Maintenance
	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		code, err := services.NextCode(tx, &models.Maintenance{}, services.MaintenanceCodePrefix)
		if err != nil {
			return err
		}
		maintenance = models.Maintenance{
			Code:        code,
			RoomID:      room.ID,
			Description: req.Description,
			Status:      constants.MaintenanceStatusOpen,
			StaffID:     req.StaffID,
		}
		if err := tx.Create(&maintenance).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", room.ID).
			Update("status", constants.RoomStatusMaintenance).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	if mc.Notifs != nil && req.StaffID != nil {
		if err := mc.Notifs.Notify(*req.StaffID, "Phiếu bảo trì mới",
			"Phòng "+room.Code+" cần bảo trì: "+req.Description); err != nil {
			log.Printf("Lỗi khi gửi thông báo bảo trì: %v", err)
		}
	}

	maintenance.Room = room
	response.Success(c, toMaintenanceResponse(&maintenance))
}

// CompleteMaintenance đóng phiếu bảo trì và trả phòng về trạng thái trống
func (mc MaintenanceController) CompleteMaintenance(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var maintenance models.Maintenance
	if err := mc.DB.Preload("Room").First(&maintenance, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	if maintenance.Status == constants.MaintenanceStatusDone {
		response.Success(c, toMaintenanceResponse(&maintenance))
		return
	}

	now := time.Now()
	err := mc.DB.Transaction(func(tx *gorm.DB) error {
		maintenance.Status = constants.MaintenanceStatusDone
		maintenance.DoneAt = &now
		if err := tx.Save(&maintenance).Error; err != nil {
			return err
		}
		return tx.Model(&models.Room{}).Where("id = ?", maintenance.RoomID).
			Update("status", constants.RoomStatusAvailable).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toMaintenanceResponse(&maintenance))
}
