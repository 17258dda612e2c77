package dto

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	UnitPrice   float64 `json:"unitPrice" binding:"required"`
	Unit        string  `json:"unit"`
	Description string  `json:"description"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	UnitPrice   *float64 `json:"unitPrice"`
	Unit        *string  `json:"unit"`
	Status      *int     `json:"status"`
	Description *string  `json:"description"`
}

// CreateServiceUsageRequest ghi nhận một lần dùng dịch vụ cho phiếu thuê
type CreateServiceUsageRequest struct {
	RentalReceiptID uint `json:"rentalReceiptId" binding:"required"`
	ServiceID       uint `json:"serviceId" binding:"required"`
	Quantity        int  `json:"quantity"`
}

type UpdateServiceUsageRequest struct {
	Status *int `json:"status" binding:"required"`
}

type ServiceUsageResponse struct {
	ID              uint    `json:"id"`
	RentalReceiptID uint    `json:"rentalReceiptId"`
	ServiceID       uint    `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	Quantity        int     `json:"quantity"`
	Amount          float64 `json:"amount"`
	Status          int     `json:"status"`
	CreatedAt       string  `json:"createdAt"`
}
