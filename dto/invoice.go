package dto

// InvoiceItemRequest là một dòng hóa đơn do caller đưa vào
type InvoiceItemRequest struct {
	Label     string  `json:"label" binding:"required"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
}

// CreateInvoiceRequest là payload tạo hóa đơn.
// Field tiền bỏ trống được tự điền từ phiếu thuê.
type CreateInvoiceRequest struct {
	RentalReceiptID uint                 `json:"rentalReceiptId"`
	CashierID       uint                 `json:"cashierId"`
	CustomerID      uint                 `json:"customerId"`
	PaymentMethodID uint                 `json:"paymentMethodId"`
	RoomCharge      *float64             `json:"roomCharge"`
	ServiceCharge   *float64             `json:"serviceCharge"`
	Surcharge       *float64             `json:"surcharge"`
	Compensation    *float64             `json:"compensation"`
	DepositPaid     *float64             `json:"depositPaid"`
	Items           []InvoiceItemRequest `json:"items"`
}

// CheckoutInvoiceRequest là payload tạo hóa đơn lúc trả phòng
type CheckoutInvoiceRequest struct {
	RentalReceiptID uint     `json:"rentalReceiptId" binding:"required"`
	CustomerID      uint     `json:"customerId" binding:"required"`
	PaymentMethodID uint     `json:"paymentMethodId" binding:"required"`
	RoomCharge      *float64 `json:"roomCharge"`
	Surcharge       *float64 `json:"surcharge"`
	Compensation    *float64 `json:"compensation"`
	DepositPaid     *float64 `json:"depositPaid"`
}

// UpdateInvoiceRequest là payload sửa thô hóa đơn (chỉ quản trị).
// Tổng tiền không được tính lại, sửa trường nào ghi đè trường đó.
type UpdateInvoiceRequest struct {
	PaymentMethodID *uint `json:"paymentMethodId"`
	PaymentStatus   *int  `json:"paymentStatus"`
}

// CreatePaymentMethodRequest là payload tạo phương thức thanh toán
type CreatePaymentMethodRequest struct {
	Name   string `json:"name" binding:"required"`
	Status *int   `json:"status"`
}

type InvoiceItemResponse struct {
	Label     string  `json:"label"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

type InvoiceResponse struct {
	ID                 uint                  `json:"id"`
	Code               string                `json:"code"`
	RentalReceiptID    uint                  `json:"rentalReceiptId"`
	CashierID          uint                  `json:"cashierId"`
	CashierName        string                `json:"cashierName"`
	CustomerID         uint                  `json:"customerId"`
	CustomerName       string                `json:"customerName"`
	IssuedAt           string                `json:"issuedAt"`
	RoomCharge         float64               `json:"roomCharge"`
	ServiceCharge      float64               `json:"serviceCharge"`
	Surcharge          float64               `json:"surcharge"`
	CompensationCharge float64               `json:"compensationCharge"`
	DepositPaid        float64               `json:"depositPaid"`
	Total              float64               `json:"total"`
	PaymentMethodID    uint                  `json:"paymentMethodId"`
	PaymentStatus      int                   `json:"paymentStatus"`
	Items              []InvoiceItemResponse `json:"items"`
}
