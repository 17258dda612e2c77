package controllers

import (
	"time"

	"hotelhub/constants"
	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ServiceController struct {
	DB *gorm.DB
}

func NewServiceController(db *gorm.DB) ServiceController {
	return ServiceController{DB: db}
}

func toUsageResponse(u *models.ServiceUsage) dto.ServiceUsageResponse {
	return dto.ServiceUsageResponse{
		ID:              u.ID,
		RentalReceiptID: u.RentalReceiptID,
		ServiceID:       u.ServiceID,
		ServiceName:     u.Service.Name,
		Quantity:        u.Quantity,
		Amount:          u.Amount,
		Status:          u.Status,
		CreatedAt:       u.CreatedAt.Format(time.RFC3339),
	}
}

// GetServices liệt kê dịch vụ của khách sạn
func (sc ServiceController) GetServices(c *gin.Context) {
	var list []models.HotelService
	if err := sc.DB.Order("name").Find(&list).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, list)
}

// CreateService tạo dịch vụ mới
func (sc ServiceController) CreateService(c *gin.Context) {
	var req dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	service := models.HotelService{
		Name:        req.Name,
		UnitPrice:   req.UnitPrice,
		Unit:        req.Unit,
		Description: req.Description,
	}
	if err := validator.ValidateService(&service); err != nil {
		response.FromError(c, err)
		return
	}

	if err := sc.DB.Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, service)
}

// UpdateService cập nhật dịch vụ
func (sc ServiceController) UpdateService(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var service models.HotelService
	if err := sc.DB.First(&service, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.UnitPrice != nil {
		service.UnitPrice = *req.UnitPrice
	}
	if req.Unit != nil {
		service.Unit = *req.Unit
	}
	if req.Status != nil {
		service.Status = *req.Status
	}
	if req.Description != nil {
		service.Description = *req.Description
	}

	if err := validator.ValidateService(&service); err != nil {
		response.FromError(c, err)
		return
	}

	if err := sc.DB.Save(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, service)
}

// GetUsages liệt kê các lần dùng dịch vụ của một phiếu thuê
func (sc ServiceController) GetUsages(c *gin.Context) {
	receiptID, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID phiếu thuê không hợp lệ")
		return
	}

	var usages []models.ServiceUsage
	if err := sc.DB.Preload("Service").
		Where("rental_receipt_id = ?", receiptID).
		Order("created_at").Find(&usages).Error; err != nil {
		response.ServerError(c)
		return
	}

	result := make([]dto.ServiceUsageResponse, 0, len(usages))
	for i := range usages {
		result = append(result, toUsageResponse(&usages[i]))
	}
	response.Success(c, result)
}

// CreateUsage ghi nhận một lần dùng dịch vụ cho phiếu thuê,
// thành tiền chốt theo đơn giá tại thời điểm ghi nhận
func (sc ServiceController) CreateUsage(c *gin.Context) {
	var req dto.CreateServiceUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var receipt models.RentalReceipt
	if err := sc.DB.First(&receipt, req.RentalReceiptID).Error; err != nil {
		response.BadRequest(c, "Phiếu thuê không tồn tại")
		return
	}
	if receipt.Status == constants.RentalStatusCheckedOut {
		response.Conflict(c, "Phiếu thuê đã trả phòng, không thêm được dịch vụ")
		return
	}

	var service models.HotelService
	if err := sc.DB.First(&service, req.ServiceID).Error; err != nil {
		response.BadRequest(c, "Dịch vụ không tồn tại")
		return
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	usage := models.ServiceUsage{
		RentalReceiptID: req.RentalReceiptID,
		ServiceID:       req.ServiceID,
		Quantity:        quantity,
		Amount:          float64(quantity) * service.UnitPrice,
		Status:          constants.ServiceUsageStatusPending,
	}
	if err := sc.DB.Create(&usage).Error; err != nil {
		response.ServerError(c)
		return
	}

	usage.Service = service
	response.Success(c, toUsageResponse(&usage))
}

// UpdateUsageStatus chuyển trạng thái một lần dùng dịch vụ.
// Chỉ dòng Completed được tính vào hóa đơn.
func (sc ServiceController) UpdateUsageStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateServiceUsageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if *req.Status < constants.ServiceUsageStatusPending || *req.Status > constants.ServiceUsageStatusCancelled {
		response.BadRequest(c, "Trạng thái không hợp lệ")
		return
	}

	var usage models.ServiceUsage
	if err := sc.DB.Preload("Service").First(&usage, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	usage.Status = *req.Status
	if err := sc.DB.Save(&usage).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUsageResponse(&usage))
}
