package controllers

import (
	"log"
	"strconv"
	"time"

	"hotelhub/config"
	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/services"
	"hotelhub/validator"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type RoomController struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Bookings *services.BookingService
}

func NewRoomController(db *gorm.DB, redisCli *redis.Client, bookings *services.BookingService) RoomController {
	return RoomController{
		DB:       db,
		Redis:    redisCli,
		Bookings: bookings,
	}
}

func toRoomResponse(r *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:           r.ID,
		Code:         r.Code,
		RoomTypeID:   r.RoomTypeID,
		RoomTypeName: r.RoomType.Name,
		Category:     r.RoomType.Category,
		Floor:        r.Floor,
		Price:        r.Price,
		Status:       r.Status,
		Description:  r.Description,
		Avatar:       r.Avatar,
		Img:          r.Img,
	}
}

func (rc RoomController) invalidateCache() {
	if rc.Redis == nil {
		return
	}
	if err := services.DeleteFromRedis(config.Ctx, rc.Redis, "rooms:all"); err != nil {
		log.Printf("Lỗi khi xóa cache phòng: %v", err)
	}
}

// GetRoomTypes liệt kê các hạng phòng
func (rc RoomController) GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := rc.DB.Order("category").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, roomTypes)
}

// CreateRoomType tạo hạng phòng mới
func (rc RoomController) CreateRoomType(c *gin.Context) {
	var req dto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	roomType := models.RoomType{
		Name:        req.Name,
		Category:    *req.Category,
		BasePrice:   req.BasePrice,
		NumBed:      req.NumBed,
		MaxPeople:   req.MaxPeople,
		Description: req.Description,
	}
	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.FromError(c, err)
		return
	}

	if err := rc.DB.Create(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	rc.invalidateCache()
	response.Success(c, roomType)
}

// UpdateRoomType cập nhật hạng phòng
func (rc RoomController) UpdateRoomType(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var roomType models.RoomType
	if err := rc.DB.First(&roomType, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Name != nil {
		roomType.Name = *req.Name
	}
	if req.Category != nil {
		roomType.Category = *req.Category
	}
	if req.BasePrice != nil {
		roomType.BasePrice = *req.BasePrice
	}
	if req.NumBed != nil {
		roomType.NumBed = *req.NumBed
	}
	if req.MaxPeople != nil {
		roomType.MaxPeople = *req.MaxPeople
	}
	if req.Description != nil {
		roomType.Description = *req.Description
	}

	if err := validator.ValidateRoomType(&roomType); err != nil {
		response.FromError(c, err)
		return
	}

	if err := rc.DB.Save(&roomType).Error; err != nil {
		response.ServerError(c)
		return
	}

	rc.invalidateCache()
	response.Success(c, roomType)
}

// GetRooms liệt kê phòng, lọc theo hạng / trạng thái / tầng
func (rc RoomController) GetRooms(c *gin.Context) {
	page, limit := parsePagination(c)
	categoryStr := c.Query("category")
	statusStr := c.Query("status")
	floorStr := c.Query("floor")

	cacheKey := "rooms:all"
	var allRooms []models.Room

	if rc.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, rc.Redis, cacheKey, &allRooms); err != nil {
			log.Printf("Lỗi khi đọc cache phòng: %v", err)
		}
	}

	if len(allRooms) == 0 {
		if err := rc.DB.Preload("RoomType").Order("code").Find(&allRooms).Error; err != nil {
			response.ServerError(c)
			return
		}
		if rc.Redis != nil {
			if err := services.SetToRedis(config.Ctx, rc.Redis, cacheKey, allRooms, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu cache phòng: %v", err)
			}
		}
	}

	filtered := make([]models.Room, 0, len(allRooms))
	for _, r := range allRooms {
		if categoryStr != "" {
			category, _ := strconv.Atoi(categoryStr)
			if r.RoomType.Category != category {
				continue
			}
		}
		if statusStr != "" {
			status, _ := strconv.Atoi(statusStr)
			if r.Status != status {
				continue
			}
		}
		if floorStr != "" {
			floor, _ := strconv.Atoi(floorStr)
			if r.Floor != floor {
				continue
			}
		}
		filtered = append(filtered, r)
	}

	pageItems, total := paginate(filtered, page, limit)
	result := make([]dto.RoomResponse, 0, len(pageItems))
	for i := range pageItems {
		result = append(result, toRoomResponse(&pageItems[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// GetRoomDetail trả về chi tiết một phòng
func (rc RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := rc.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toRoomResponse(&room))
}

// CheckAvailability trả về phòng trống đầu tiên của một hạng trong
// khoảng ngày, dùng chung resolver với luồng tạo booking
func (rc RoomController) CheckAvailability(c *gin.Context) {
	categoryStr := c.Query("category")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	category, err := strconv.Atoi(categoryStr)
	if err != nil {
		response.BadRequest(c, "category không hợp lệ")
		return
	}
	from, err := dto.ParseDate(fromStr)
	if err != nil {
		response.BadRequest(c, "from không hợp lệ, cần định dạng "+dto.DateLayout)
		return
	}
	to, err := dto.ParseDate(toStr)
	if err != nil {
		response.BadRequest(c, "to không hợp lệ, cần định dạng "+dto.DateLayout)
		return
	}
	if !from.Before(to) {
		response.BadRequest(c, "Khoảng ngày không hợp lệ")
		return
	}

	room, err := rc.Bookings.FindAvailableRoom(nil, category, from, to, 0)
	if err != nil {
		response.ServerError(c)
		return
	}
	if room == nil {
		response.Success(c, gin.H{"available": false})
		return
	}

	response.Success(c, gin.H{"available": true, "room": toRoomResponse(room)})
}

// CreateRoom tạo phòng mới
func (rc RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var roomType models.RoomType
	if err := rc.DB.First(&roomType, req.RoomTypeID).Error; err != nil {
		response.BadRequest(c, "Hạng phòng không tồn tại")
		return
	}

	price := req.Price
	if price == 0 {
		price = roomType.BasePrice
	}

	room := models.Room{
		Code:        req.Code,
		RoomTypeID:  req.RoomTypeID,
		Floor:       req.Floor,
		Price:       price,
		Description: req.Description,
	}
	if err := validator.ValidateRoom(&room); err != nil {
		response.FromError(c, err)
		return
	}

	if err := rc.DB.Create(&room).Error; err != nil {
		response.Conflict(c, "Mã phòng đã tồn tại")
		return
	}

	rc.invalidateCache()
	room.RoomType = roomType
	response.Success(c, toRoomResponse(&room))
}

// UpdateRoom cập nhật thông tin phòng
func (rc RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := rc.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Code != nil {
		room.Code = *req.Code
	}
	if req.RoomTypeID != nil {
		room.RoomTypeID = *req.RoomTypeID
	}
	if req.Floor != nil {
		room.Floor = *req.Floor
	}
	if req.Price != nil {
		room.Price = *req.Price
	}
	if req.Status != nil {
		room.Status = *req.Status
	}
	if req.Description != nil {
		room.Description = *req.Description
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.FromError(c, err)
		return
	}

	if err := rc.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	rc.invalidateCache()
	response.Success(c, toRoomResponse(&room))
}

// DeleteRoom xóa một phòng
func (rc RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	result := rc.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	rc.invalidateCache()
	response.Success(c, nil)
}
