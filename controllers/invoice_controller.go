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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type InvoiceController struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Service *services.InvoiceService
}

func NewInvoiceController(db *gorm.DB, redisCli *redis.Client, service *services.InvoiceService) InvoiceController {
	return InvoiceController{
		DB:      db,
		Redis:   redisCli,
		Service: service,
	}
}

func toInvoiceResponse(inv *models.Invoice) dto.InvoiceResponse {
	items := make([]dto.InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, dto.InvoiceItemResponse{
			Label:     it.Label,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Total:     it.Total,
		})
	}
	return dto.InvoiceResponse{
		ID:                 inv.ID,
		Code:               inv.Code,
		RentalReceiptID:    inv.RentalReceiptID,
		CashierID:          inv.CashierID,
		CashierName:        inv.Cashier.Name,
		CustomerID:         inv.CustomerID,
		CustomerName:       inv.Customer.Name,
		IssuedAt:           inv.IssuedAt.Format(time.RFC3339),
		RoomCharge:         inv.RoomCharge,
		ServiceCharge:      inv.ServiceCharge,
		Surcharge:          inv.Surcharge,
		CompensationCharge: inv.CompensationCharge,
		DepositPaid:        inv.DepositPaid,
		Total:              inv.Total,
		PaymentMethodID:    inv.PaymentMethodID,
		PaymentStatus:      inv.PaymentStatus,
		Items:              items,
	}
}

func (ic InvoiceController) invalidateCache() {
	if ic.Redis == nil {
		return
	}
	if err := services.DeleteKeysByPattern(config.Ctx, ic.Redis, "invoices:*"); err != nil {
		log.Printf("Lỗi khi xóa cache hóa đơn: %v", err)
	}
}

// GetInvoices liệt kê hóa đơn, lọc theo khách hàng hoặc thu ngân
func (ic InvoiceController) GetInvoices(c *gin.Context) {
	page, limit := parsePagination(c)
	customerStr := c.Query("customerId")
	cashierStr := c.Query("cashierId")

	cacheKey := "invoices:all"
	var allInvoices []models.Invoice

	if ic.Redis != nil {
		if err := services.GetFromRedis(config.Ctx, ic.Redis, cacheKey, &allInvoices); err != nil {
			log.Printf("Lỗi khi đọc cache hóa đơn: %v", err)
		}
	}

	if len(allInvoices) == 0 {
		if err := ic.DB.Preload("Cashier").Preload("Customer").Preload("Items").
			Order("created_at DESC").Find(&allInvoices).Error; err != nil {
			response.ServerError(c)
			return
		}
		if ic.Redis != nil {
			if err := services.SetToRedis(config.Ctx, ic.Redis, cacheKey, allInvoices, 10*time.Minute); err != nil {
				log.Printf("Lỗi khi lưu cache hóa đơn: %v", err)
			}
		}
	}

	filtered := make([]models.Invoice, 0, len(allInvoices))
	for _, inv := range allInvoices {
		if customerStr != "" {
			customerID, _ := strconv.Atoi(customerStr)
			if inv.CustomerID != uint(customerID) {
				continue
			}
		}
		if cashierStr != "" {
			cashierID, _ := strconv.Atoi(cashierStr)
			if inv.CashierID != uint(cashierID) {
				continue
			}
		}
		filtered = append(filtered, inv)
	}

	pageItems, total := paginate(filtered, page, limit)
	result := make([]dto.InvoiceResponse, 0, len(pageItems))
	for i := range pageItems {
		result = append(result, toInvoiceResponse(&pageItems[i]))
	}

	response.SuccessWithPagination(c, result, page, limit, total)
}

// GetInvoiceDetail trả về chi tiết một hóa đơn
func (ic InvoiceController) GetInvoiceDetail(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var invoice models.Invoice
	if err := ic.DB.Preload("Cashier").Preload("Customer").Preload("Items").
		Preload("RentalReceipt").First(&invoice, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toInvoiceResponse(&invoice))
}

// CreateInvoice tạo hóa đơn từ phiếu thuê, field thiếu được tự điền
func (ic InvoiceController) CreateInvoice(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	items := make([]services.InvoiceItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		items = append(items, services.InvoiceItemInput{
			Label:     it.Label,
			Quantity:  qty,
			UnitPrice: it.UnitPrice,
		})
	}

	invoice, err := ic.Service.CreateInvoice(services.InvoiceInput{
		RentalReceiptID: req.RentalReceiptID,
		CashierID:       req.CashierID,
		CustomerID:      req.CustomerID,
		PaymentMethodID: req.PaymentMethodID,
		RoomCharge:      req.RoomCharge,
		ServiceCharge:   req.ServiceCharge,
		Surcharge:       req.Surcharge,
		Compensation:    req.Compensation,
		DepositPaid:     req.DepositPaid,
		Items:           items,
	}, userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ic.invalidateCache()
	response.Success(c, toInvoiceResponse(invoice))
}

// UpdateInvoice sửa thô hóa đơn (chỉ quản trị), không tính lại tổng tiền
func (ic InvoiceController) UpdateInvoice(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var invoice models.Invoice
	if err := ic.DB.First(&invoice, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	updates := map[string]interface{}{}
	if req.PaymentMethodID != nil {
		updates["payment_method_id"] = *req.PaymentMethodID
	}
	if req.PaymentStatus != nil {
		updates["payment_status"] = *req.PaymentStatus
	}
	if len(updates) == 0 {
		response.BadRequest(c, "Không có trường nào để cập nhật")
		return
	}

	if err := ic.DB.Model(&invoice).Updates(updates).Error; err != nil {
		response.ServerError(c)
		return
	}

	ic.invalidateCache()
	response.Success(c, toInvoiceResponse(&invoice))
}

// DeleteInvoice xóa cứng hóa đơn cùng các dòng của nó (chỉ quản trị)
func (ic InvoiceController) DeleteInvoice(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var invoice models.Invoice
	if err := ic.DB.First(&invoice, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	err := ic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", invoice.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&invoice).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	ic.invalidateCache()
	response.Success(c, nil)
}

// GetPaymentMethods liệt kê phương thức thanh toán
func (ic InvoiceController) GetPaymentMethods(c *gin.Context) {
	var methods []models.PaymentMethod
	if err := ic.DB.Order("id").Find(&methods).Error; err != nil {
		response.ServerError(c)
		return
	}
	response.Success(c, methods)
}

// CreatePaymentMethod thêm phương thức thanh toán mới
func (ic InvoiceController) CreatePaymentMethod(c *gin.Context) {
	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	method := models.PaymentMethod{Name: req.Name, Status: 1}
	if req.Status != nil {
		method.Status = *req.Status
	}
	if err := ic.DB.Create(&method).Error; err != nil {
		response.BadRequest(c, "Phương thức thanh toán đã tồn tại")
		return
	}

	response.Success(c, method)
}

// UpdatePaymentMethod đổi tên hoặc bật tắt phương thức thanh toán
func (ic InvoiceController) UpdatePaymentMethod(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var method models.PaymentMethod
	if err := ic.DB.First(&method, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	var req dto.CreatePaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	method.Name = req.Name
	if req.Status != nil {
		method.Status = *req.Status
	}
	if err := ic.DB.Save(&method).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, method)
}

// PreviewInvoice tính thử hóa đơn của một phiếu thuê, không lưu
func (ic InvoiceController) PreviewInvoice(c *gin.Context) {
	receiptStr := c.Query("rentalReceiptId")
	receiptID, err := strconv.ParseUint(receiptStr, 10, 32)
	if err != nil || receiptID == 0 {
		response.BadRequest(c, "rentalReceiptId không hợp lệ")
		return
	}

	preview, err := ic.Service.PreviewInvoice(uint(receiptID))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, preview)
}
