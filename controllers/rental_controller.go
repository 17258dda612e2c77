package controllers

import (
	"time"

	"hotelhub/constants"
	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RentalController struct {
	DB       *gorm.DB
	Bookings *services.BookingService
	Invoices *services.InvoiceService
}

func NewRentalController(db *gorm.DB, bookings *services.BookingService, invoices *services.InvoiceService) RentalController {
	return RentalController{
		DB:       db,
		Bookings: bookings,
		Invoices: invoices,
	}
}

func toRentalResponse(r *models.RentalReceipt) dto.RentalReceiptResponse {
	expected := ""
	if !r.ExpectedReturn.IsZero() {
		expected = dto.FormatDate(r.ExpectedReturn)
	}
	return dto.RentalReceiptResponse{
		ID:             r.ID,
		Code:           r.Code,
		BookingID:      r.BookingID,
		BookingCode:    r.Booking.Code,
		RoomID:         r.RoomID,
		RoomCode:       r.Room.Code,
		ExpectedReturn: expected,
		GuestCount:     r.GuestCount,
		AppliedPrice:   r.AppliedPrice,
		StaffID:        r.StaffID,
		Status:         r.Status,
		CreatedAt:      r.CreatedAt.Format(time.RFC3339),
	}
}

// GetRentals liệt kê phiếu thuê
func (rc RentalController) GetRentals(c *gin.Context) {
	page, limit := parsePagination(c)

	var receipts []models.RentalReceipt
	if err := rc.DB.Preload("Booking").Preload("Room").
		Order("created_at DESC").Find(&receipts).Error; err != nil {
		response.ServerError(c)
		return
	}

	pageItems, total := paginate(receipts, page, limit)
	result := make([]dto.RentalReceiptResponse, 0, len(pageItems))
	for i := range pageItems {
		result = append(result, toRentalResponse(&pageItems[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// GetRentalDetail trả về chi tiết một phiếu thuê
func (rc RentalController) GetRentalDetail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var receipt models.RentalReceipt
	if err := rc.DB.Preload("Booking").Preload("Room").Preload("Staff").
		First(&receipt, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toRentalResponse(&receipt))
}

// CheckIn làm thủ tục nhận phòng: chuyển booking sang CheckedIn
// (qua lifecycle, có kiểm tra trùng phòng) rồi mở phiếu thuê
func (rc RentalController) CheckIn(c *gin.Context) {
	staffID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	status := constants.BookingStatusCheckedIn
	input := services.UpdateBookingInput{Status: &status}
	if req.RoomID != 0 {
		input.RoomID = &req.RoomID
	}

	booking, err := rc.Bookings.UpdateBooking(req.BookingID, input)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if len(booking.Rooms) == 0 {
		response.ServerError(c)
		return
	}
	room := booking.Rooms[0].Room

	appliedPrice := req.AppliedPrice
	if appliedPrice <= 0 {
		appliedPrice = room.Price
	}

	guestCount := req.GuestCount
	if guestCount == 0 {
		guestCount = booking.GuestCount
	}

	expectedReturn := booking.CheckOutDate
	if req.ExpectedReturn != "" {
		if parsed, err := dto.ParseDate(req.ExpectedReturn); err == nil {
			expectedReturn = parsed
		}
	}

	var receipt models.RentalReceipt
	err = rc.DB.Transaction(func(tx *gorm.DB) error {
		code, err := services.NextCode(tx, &models.RentalReceipt{}, services.RentalCodePrefix)
		if err != nil {
			return err
		}
		receipt = models.RentalReceipt{
			Code:           code,
			BookingID:      booking.ID,
			RoomID:         room.ID,
			ExpectedReturn: expectedReturn,
			GuestCount:     guestCount,
			AppliedPrice:   appliedPrice,
			StaffID:        staffID,
			Status:         constants.RentalStatusCheckedIn,
		}
		return tx.Create(&receipt).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	receipt.Booking = *booking
	receipt.Room = room
	response.Success(c, toRentalResponse(&receipt))
}

// CheckOut trả phòng: chốt phiếu thuê, chuyển booking sang CheckedOut
// và xuất hóa đơn. Tiền phòng tính theo số đêm đã đặt, không theo
// ngày trả thực tế.
func (rc RentalController) CheckOut(c *gin.Context) {
	staffID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CheckOutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var receipt models.RentalReceipt
	if err := rc.DB.Preload("Booking").Preload("Room").First(&receipt, req.RentalReceiptID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if receipt.Status == constants.RentalStatusCheckedOut {
		response.Conflict(c, "Phiếu thuê đã được trả phòng")
		return
	}

	status := constants.BookingStatusCheckedOut
	if _, err := rc.Bookings.UpdateBooking(receipt.BookingID, services.UpdateBookingInput{Status: &status}); err != nil {
		response.FromError(c, err)
		return
	}

	if err := rc.DB.Model(&receipt).Update("status", constants.RentalStatusCheckedOut).Error; err != nil {
		response.ServerError(c)
		return
	}

	nights := services.BookedNights(receipt.Booking.CheckInDate, receipt.Booking.CheckOutDate)
	roomCharge := float64(nights) * receipt.AppliedPrice
	deposit := receipt.Booking.Deposit

	invoice, err := rc.Invoices.CreateCheckoutInvoice(services.InvoiceInput{
		RentalReceiptID: receipt.ID,
		CashierID:       staffID,
		CustomerID:      receipt.Booking.CustomerID,
		PaymentMethodID: req.PaymentMethodID,
		RoomCharge:      &roomCharge,
		Surcharge:       req.Surcharge,
		Compensation:    req.Compensation,
		DepositPaid:     &deposit,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toInvoiceResponse(invoice))
}
