package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"hotelhub/config"
	"hotelhub/constants"
	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type BookingController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Service *services.BookingService
}

func NewBookingController(db *gorm.DB, redisCli *redis.Client, service *services.BookingService) BookingController {
	return BookingController{
		DB:      db,
		Redis:   redisCli,
		Service: service,
	}
}

func toBookingResponse(b *models.Booking) dto.BookingResponse {
	rooms := make([]dto.BookingRoomResponse, 0, len(b.Rooms))
	for _, br := range b.Rooms {
		rooms = append(rooms, dto.BookingRoomResponse{
			RoomID:   br.RoomID,
			RoomCode: br.Room.Code,
			Floor:    br.Room.Floor,
		})
	}
	return dto.BookingResponse{
		ID:           b.ID,
		Code:         b.Code,
		CustomerID:   b.CustomerID,
		CustomerName: b.Customer.Name,
		Category:     b.Category,
		CategoryName: constants.CategoryName(b.Category),
		CheckInDate:  dto.FormatDate(b.CheckInDate),
		CheckOutDate: dto.FormatDate(b.CheckOutDate),
		GuestCount:   b.GuestCount,
		Deposit:      b.Deposit,
		Status:       b.Status,
		Rooms:        rooms,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}

func (bc BookingController) invalidateCache() {
	if bc.Redis == nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, bc.Redis, "bookings:*"); err != nil {
		log.Printf("Lỗi khi xóa cache đặt phòng: %v", err)
	}
}

// GetBookings liệt kê đặt phòng, lọc theo trạng thái / khách / khoảng ngày
func (bc BookingController) GetBookings(c *gin.Context) {
	page, limit := parsePagination(c)
	statusStr := c.Query("status")
	customerStr := c.Query("customerId")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	cacheKey := "bookings:all"
	var allBookings []models.Booking

	if bc.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, bc.Redis, cacheKey, &allBookings); err != nil {
			log.Printf("Lỗi khi đọc cache đặt phòng: %v", err)
		}
	}

	if len(allBookings) == 0 {
		if err := bc.DB.Preload("Customer").Preload("Rooms.Room").
			Order("created_at DESC").Find(&allBookings).Error; err != nil {
			response.ServerError(c)
			return
		}
		if bc.Redis != nil {
			if err := services.SetToRedis(config.Ctx, bc.Redis, cacheKey, allBookings, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu cache đặt phòng: %v", err)
			}
		}
	}

	filtered := make([]models.Booking, 0, len(allBookings))
	for _, b := range allBookings {
		if statusStr != "" {
			status, _ := strconv.Atoi(statusStr)
			if b.Status != status {
				continue
			}
		}
		if customerStr != "" {
			customerID, _ := strconv.Atoi(customerStr)
			if b.CustomerID != uint(customerID) {
				continue
			}
		}
		if fromStr != "" {
			from, err := dto.ParseDate(fromStr)
			if err == nil && b.CheckOutDate.Before(from) {
				continue
			}
		}
		if toStr != "" {
			to, err := dto.ParseDate(toStr)
			if err == nil && !b.CheckInDate.Before(to) {
				continue
			}
		}
		filtered = append(filtered, b)
	}

	pageItems, total := paginate(filtered, page, limit)
	result := make([]dto.BookingResponse, 0, len(pageItems))
	for i := range pageItems {
		result = append(result, toBookingResponse(&pageItems[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// GetMyBookings liệt kê đặt phòng của khách đang đăng nhập
func (bc BookingController) GetMyBookings(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := bc.DB.First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}
	if user.CustomerID == nil {
		response.Success(c, []dto.BookingResponse{})
		return
	}

	page, limit := parsePagination(c)
	var bookings []models.Booking
	if err := bc.DB.Preload("Customer").Preload("Rooms.Room").
		Where("customer_id = ?", *user.CustomerID).
		Order("created_at DESC").Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	pageItems, total := paginate(bookings, page, limit)
	result := make([]dto.BookingResponse, 0, len(pageItems))
	for i := range pageItems {
		result = append(result, toBookingResponse(&pageItems[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// GetBookingDetail trả về chi tiết một đặt phòng
func (bc BookingController) GetBookingDetail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var booking models.Booking
	if err := bc.DB.Preload("Customer").Preload("Rooms.Room").First(&booking, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toBookingResponse(&booking))
}

// CreateBooking tạo đặt phòng mới, hệ thống tự tìm phòng nếu không chỉ định
func (bc BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, err := dto.ParseDate(req.CheckInDate)
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("Ngày nhận phòng không hợp lệ, cần định dạng %s", dto.DateLayout))
		return
	}
	checkOut, err := dto.ParseDate(req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("Ngày trả phòng không hợp lệ, cần định dạng %s", dto.DateLayout))
		return
	}

	guestCount := req.GuestCount
	if guestCount == 0 {
		guestCount = 1
	}

	booking, err := bc.Service.CreateBooking(services.CreateBookingInput{
		CustomerID:   req.CustomerID,
		Category:     req.Category,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		GuestCount:   guestCount,
		Deposit:      req.Deposit,
		RoomID:       req.RoomID,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	bc.invalidateCache()

	// Gửi email xác nhận, lỗi gửi mail không chặn response
	if booking.Customer.Email != "" {
		estimate := booking.Deposit
		if len(booking.Rooms) > 0 {
			nights := services.BookedNights(booking.CheckInDate, booking.CheckOutDate)
			estimate = float64(nights) * booking.Rooms[0].Room.Price
		}
		go func(email, code string, total float64, in, out string) {
			if err := services.SendBookingEmail(email, code, total, in, out); err != nil {
				log.Printf("Lỗi khi gửi email xác nhận đặt phòng %s: %v", code, err)
			}
		}(booking.Customer.Email, booking.Code, estimate,
			dto.FormatDate(booking.CheckInDate), dto.FormatDate(booking.CheckOutDate))
	}

	response.Success(c, toBookingResponse(booking))
}

// CreateWalkIn tạo đặt phòng cho khách vãng lai tại quầy
func (bc BookingController) CreateWalkIn(c *gin.Context) {
	var req dto.WalkInBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	checkIn, err := dto.ParseDate(req.CheckInDate)
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("Ngày nhận phòng không hợp lệ, cần định dạng %s", dto.DateLayout))
		return
	}
	checkOut, err := dto.ParseDate(req.CheckOutDate)
	if err != nil {
		response.BadRequest(c, fmt.Sprintf("Ngày trả phòng không hợp lệ, cần định dạng %s", dto.DateLayout))
		return
	}

	guestCount := req.GuestCount
	if guestCount == 0 {
		guestCount = 1
	}

	booking, err := bc.Service.CreateWalkIn(services.WalkInInput{
		GuestName:      req.GuestName,
		GuestEmail:     req.GuestEmail,
		GuestPhone:     req.GuestPhone,
		IdentityNumber: req.IdentityNumber,
		Category:       req.Category,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		GuestCount:     guestCount,
		Deposit:        req.Deposit,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	bc.invalidateCache()
	response.Success(c, toBookingResponse(booking))
}

// UpdateBooking cập nhật đặt phòng, kể cả chuyển trạng thái
func (bc BookingController) UpdateBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	input := services.UpdateBookingInput{
		Category:   req.Category,
		GuestCount: req.GuestCount,
		Deposit:    req.Deposit,
		Status:     req.Status,
		RoomID:     req.RoomID,
	}
	if req.CheckInDate != nil {
		checkIn, err := dto.ParseDate(*req.CheckInDate)
		if err != nil {
			response.BadRequest(c, fmt.Sprintf("Ngày nhận phòng không hợp lệ, cần định dạng %s", dto.DateLayout))
			return
		}
		input.CheckInDate = &checkIn
	}
	if req.CheckOutDate != nil {
		checkOut, err := dto.ParseDate(*req.CheckOutDate)
		if err != nil {
			response.BadRequest(c, fmt.Sprintf("Ngày trả phòng không hợp lệ, cần định dạng %s", dto.DateLayout))
			return
		}
		input.CheckOutDate = &checkOut
	}

	booking, err := bc.Service.UpdateBooking(id, input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	bc.invalidateCache()
	response.Success(c, toBookingResponse(booking))
}

// CancelBooking hủy đặt phòng và trả phòng về trạng thái trống
func (bc BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	booking, err := bc.Service.CancelBooking(id)
	if err != nil {
		response.FromError(c, err)
		return
	}

	bc.invalidateCache()
	response.Success(c, gin.H{"code": booking.Code, "status": booking.Status})
}

// DeleteBooking xóa cứng một đặt phòng (chỉ quản trị)
func (bc BookingController) DeleteBooking(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	if err := bc.Service.DeleteBooking(id); err != nil {
		response.FromError(c, err)
		return
	}

	bc.invalidateCache()
	response.Success(c, nil)
}
