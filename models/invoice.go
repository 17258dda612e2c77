package models

import "time"

// Invoice là hóa đơn thanh toán, bất biến sau khi tạo
// (tổng tiền không bao giờ tính lại khi đọc)
type Invoice struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	Code               string         `gorm:"unique;size:20" json:"code"` // mã HDnnn
	RentalReceiptID    uint           `gorm:"index" json:"rentalReceiptId"`
	RentalReceipt      RentalReceipt  `json:"rentalReceipt" gorm:"foreignKey:RentalReceiptID"`
	CashierID          uint           `json:"cashierId"`
	Cashier            User           `json:"cashier" gorm:"foreignKey:CashierID"`
	CustomerID         uint           `json:"customerId"`
	Customer           Customer       `json:"customer" gorm:"foreignKey:CustomerID"`
	IssuedAt           time.Time      `json:"issuedAt"`
	RoomCharge         float64        `json:"roomCharge"`
	ServiceCharge      float64        `json:"serviceCharge"`
	Surcharge          float64        `json:"surcharge"`
	CompensationCharge float64        `json:"compensationCharge"`
	DepositPaid        float64        `json:"depositPaid"`
	Total              float64        `json:"total"`
	PaymentMethodID    uint           `json:"paymentMethodId"`
	PaymentMethod      PaymentMethod  `json:"paymentMethod" gorm:"foreignKey:PaymentMethodID"`
	PaymentStatus      int            `gorm:"default:1" json:"paymentStatus"` // luôn Đã thanh toán khi tạo
	Items              []InvoiceItem  `json:"items" gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// InvoiceItem là một dòng trên hóa đơn
type InvoiceItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	InvoiceID uint    `gorm:"index" json:"invoiceId"`
	Label     string  `json:"label"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}

// PaymentMethod là phương thức thanh toán (dữ liệu tham chiếu)
type PaymentMethod struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"unique" json:"name"`
	Status    int       `gorm:"default:1" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
