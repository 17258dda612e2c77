package controllers

import (
	"time"

	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/services"
	"hotelhub/validator"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type StaffController struct {
	DB *gorm.DB
}

func NewStaffController(db *gorm.DB) StaffController {
	return StaffController{DB: db}
}

func toStaffResponse(u *models.User) dto.StaffResponse {
	position := ""
	if u.Position != nil {
		position = u.Position.Name
	}
	return dto.StaffResponse{
		ID:          u.ID,
		Code:        u.Code,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Status:      u.Status,
		PositionID:  u.PositionID,
		Position:    position,
		RoomTypeIDs: u.RoomTypeIDs,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}

// GetStaff liệt kê nhân viên (role khác 0)
func (sc StaffController) GetStaff(c *gin.Context) {
	page, limit := parsePagination(c)

	var staff []models.User
	if err := sc.DB.Preload("Position").
		Where("role <> 0").Order("code").Find(&staff).Error; err != nil {
		response.ServerError(c)
		return
	}

	pageItems, total := paginate(staff, page, limit)
	result := make([]dto.StaffResponse, 0, len(pageItems))
	for i := range pageItems {
		result = append(result, toStaffResponse(&pageItems[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// CreateStaff tạo tài khoản nhân viên với mã tuần tự
func (sc StaffController) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
		PositionID:  req.PositionID,
		RoomTypeIDs: pq.Int64Array(req.RoomTypeIDs),
		IsVerified:  true,
	}
	if err := validator.ValidateUser(&user); err != nil {
		response.FromError(c, err)
		return
	}

	hashed, err := services.HashPassword(req.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = hashed

	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		code, err := services.NextCode(tx, &models.User{}, services.StaffCodePrefix)
		if err != nil {
			return err
		}
		user.Code = code
		return tx.Create(&user).Error
	})
	if err != nil {
		response.Conflict(c, "Email đã được đăng ký")
		return
	}

	response.Success(c, toStaffResponse(&user))
}

// UpdateStaff cập nhật tài khoản nhân viên
func (sc StaffController) UpdateStaff(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var user models.User
	if err := sc.DB.Preload("Position").First(&user, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.PositionID != nil {
		user.PositionID = req.PositionID
	}
	if req.RoomTypeIDs != nil {
		user.RoomTypeIDs = pq.Int64Array(*req.RoomTypeIDs)
	}

	if user.Role < 0 || user.Role > 3 {
		response.BadRequest(c, "Role không hợp lệ")
		return
	}

	if err := sc.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toStaffResponse(&user))
}

// GetPositions liệt kê chức vụ
func (sc StaffController) GetPositions(c *gin.Context) {
	var positions []models.Position
	if err := sc.DB.Order("name").Find(&positions).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, positions)
}
