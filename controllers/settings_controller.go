package controllers

import (
	"hotelhub/models"
	"hotelhub/response"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SettingsController struct {
	DB *gorm.DB
}

func NewSettingsController(db *gorm.DB) SettingsController {
	return SettingsController{DB: db}
}

// GetSettings trả về bản ghi cấu hình duy nhất, chưa có thì tạo mặc định
func (sc SettingsController) GetSettings(c *gin.Context) {
	var setting models.Setting
	if err := sc.DB.First(&setting).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			response.ServerError(c)
			return
		}
		if err := sc.DB.Create(&setting).Error; err != nil {
			response.ServerError(c)
			return
		}
	}
	response.Success(c, setting)
}

// UpdateSettings cập nhật cấu hình khách sạn
func (sc SettingsController) UpdateSettings(c *gin.Context) {
	var setting models.Setting
	if err := sc.DB.First(&setting).Error; err != nil && err != gorm.ErrRecordNotFound {
		response.ServerError(c)
		return
	}

	var input models.Setting
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	setting.HotelName = input.HotelName
	setting.NormalRoomPrice = input.NormalRoomPrice
	setting.StandardRoomPrice = input.StandardRoomPrice
	setting.PremiumRoomPrice = input.PremiumRoomPrice
	setting.LuxuryRoomPrice = input.LuxuryRoomPrice
	setting.SurchargeRate = input.SurchargeRate
	if input.CheckOutHour > 0 {
		setting.CheckOutHour = input.CheckOutHour
	}

	if err := sc.DB.Save(&setting).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, setting)
}
