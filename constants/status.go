package constants

// Trạng thái đặt phòng
const (
	BookingStatusPending       = 0
	BookingStatusDepositPaid   = 1
	BookingStatusCheckedIn     = 2
	BookingStatusCheckedOut    = 3
	BookingStatusCancelled     = 4
	BookingStatusNoShow        = 5
	BookingStatusDepositCancel = 6
)

// Trạng thái phòng
const (
	RoomStatusAvailable   = 0
	RoomStatusOccupied    = 1
	RoomStatusMaintenance = 2
	RoomStatusReserved    = 3
)

// Hạng phòng
const (
	RoomCategoryNormal   = 0
	RoomCategoryStandard = 1
	RoomCategoryPremium  = 2
	RoomCategoryLuxury   = 3
)

// Trạng thái phiếu thuê
const (
	RentalStatusCheckedIn  = 0
	RentalStatusCheckedOut = 1
)

// Trạng thái sử dụng dịch vụ
const (
	ServiceUsageStatusPending   = 0
	ServiceUsageStatusCompleted = 1
	ServiceUsageStatusCancelled = 2
)

// Trạng thái thanh toán hóa đơn
const (
	InvoiceStatusUnpaid = 0
	InvoiceStatusPaid   = 1
)

// Trạng thái phiếu bảo trì
const (
	MaintenanceStatusOpen = 0
	MaintenanceStatusDone = 1
)

// Trạng thái phiên thanh toán
const (
	PaymentSessionPending   = 0
	PaymentSessionCompleted = 1
	PaymentSessionFailed    = 2
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// CategoryName trả về tên hạng phòng theo mã
func CategoryName(category int) string {
	switch category {
	case RoomCategoryNormal:
		return "Normal"
	case RoomCategoryStandard:
		return "Standard"
	case RoomCategoryPremium:
		return "Premium"
	case RoomCategoryLuxury:
		return "Luxury"
	default:
		return "Unknown"
	}
}
