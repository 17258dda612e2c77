package controllers

import (
	"encoding/json"
	"io"

	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PaymentController struct {
	DB      *gorm.DB
	Service *services.PaymentService
}

func NewPaymentController(db *gorm.DB, service *services.PaymentService) PaymentController {
	return PaymentController{
		DB:      db,
		Service: service,
	}
}

func toSessionResponse(s *models.PaymentSession) dto.PaymentSessionResponse {
	return dto.PaymentSessionResponse{
		ID:         s.ID,
		SessionRef: s.SessionRef,
		BookingID:  s.BookingID,
		Amount:     s.Amount,
		QrURL:      s.QrURL,
		Status:     s.Status,
	}
}

// CreatePaymentSession mở phiên thanh toán cọc và trả về link QR
func (pc PaymentController) CreatePaymentSession(c *gin.Context) {
	var req dto.CreatePaymentSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	session, err := pc.Service.CreateDepositSession(req.BookingID, req.Amount)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toSessionResponse(session))
}

// GetPaymentSession tra cứu trạng thái một phiên thanh toán
func (pc PaymentController) GetPaymentSession(c *gin.Context) {
	ref := c.Param("ref")
	if ref == "" {
		response.BadRequest(c, "Thiếu mã phiên")
		return
	}

	var session models.PaymentSession
	if err := pc.DB.Where("session_ref = ?", ref).First(&session).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toSessionResponse(&session))
}

// PaymentWebhook nhận callback từ cổng thanh toán. Chữ ký HMAC nằm ở
// header X-Signature, tính trên body thô. Gọi lại nhiều lần vô hại.
func (pc PaymentController) PaymentWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		response.BadRequest(c, "Không đọc được payload")
		return
	}

	signature := c.GetHeader("X-Signature")
	if !services.VerifySignature(body, signature) {
		response.Unauthorized(c)
		return
	}

	var payload dto.PaymentWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil || payload.SessionRef == "" {
		response.BadRequest(c, "Payload không hợp lệ")
		return
	}

	session, err := pc.Service.ConfirmSession(payload.SessionRef, payload.Amount)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, toSessionResponse(session))
}
