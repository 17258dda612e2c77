package services

import (
	"testing"
	"time"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBookedNights(t *testing.T) {
	// Ở 4 đêm
	assert.Equal(t, 4, BookedNights(date(2026, time.January, 1), date(2026, time.January, 5)))
	// Dưới một ngày vẫn tính 1 đêm
	assert.Equal(t, 1, BookedNights(date(2026, time.January, 1), date(2026, time.January, 1)))
	assert.Equal(t, 1, BookedNights(
		time.Date(2026, time.January, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 1, 20, 0, 0, 0, time.UTC)))
	// Lẻ giờ làm tròn lên
	assert.Equal(t, 2, BookedNights(
		time.Date(2026, time.January, 1, 14, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 3, 2, 0, 0, 0, time.UTC)))
}

func TestComputeTotal(t *testing.T) {
	assert.Equal(t, 1300.0, ComputeTotal(1000, 500, 0, 0, 200))
	assert.Equal(t, 900.0, ComputeTotal(1000, 100, 0, 0, 200))
	// Cọc lớn hơn tổng chi: không âm
	assert.Equal(t, 0.0, ComputeTotal(0, 0, 0, 0, 500))
	assert.Equal(t, 1650.0, ComputeTotal(1000, 500, 100, 250, 200))
}

// seedReceipt dựng booking + phiếu thuê cho các test hóa đơn
func seedReceipt(t *testing.T, db *gorm.DB, appliedPrice, deposit float64) (*models.Customer, *models.RentalReceipt) {
	t.Helper()

	customer := seedCustomer(t, db, "Khách Hóa Đơn")
	booking := models.Booking{
		Code:         "DP900",
		CustomerID:   customer.ID,
		Category:     constants.RoomCategoryNormal,
		CheckInDate:  date(2026, time.January, 1),
		CheckOutDate: date(2026, time.January, 3),
		GuestCount:   1,
		Deposit:      deposit,
		Status:       constants.BookingStatusCheckedIn,
	}
	require.NoError(t, db.Create(&booking).Error)

	receipt := models.RentalReceipt{
		Code:         "PT900",
		BookingID:    booking.ID,
		AppliedPrice: appliedPrice,
		GuestCount:   1,
		Status:       constants.RentalStatusCheckedIn,
	}
	require.NoError(t, db.Create(&receipt).Error)
	return &customer, &receipt
}

func TestCreateInvoiceAutoFillsFromReceipt(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db)
	customer, receipt := seedReceipt(t, db, 1000, 200)

	// Một dịch vụ Completed 500, một dịch vụ Pending không được tính
	laundry := models.HotelService{Name: "Giặt ủi", UnitPrice: 500}
	require.NoError(t, db.Create(&laundry).Error)
	require.NoError(t, db.Create(&models.ServiceUsage{
		RentalReceiptID: receipt.ID,
		ServiceID:       laundry.ID,
		Quantity:        1,
		Amount:          500,
		Status:          constants.ServiceUsageStatusCompleted,
	}).Error)
	require.NoError(t, db.Create(&models.ServiceUsage{
		RentalReceiptID: receipt.ID,
		ServiceID:       laundry.ID,
		Quantity:        2,
		Amount:          1000,
		Status:          constants.ServiceUsageStatusPending,
	}).Error)

	invoice, err := svc.CreateInvoice(InvoiceInput{
		RentalReceiptID: receipt.ID,
		PaymentMethodID: 1,
	}, 7)
	require.NoError(t, err)

	// 2 đêm x 1000 + 500 dịch vụ - 200 cọc
	assert.Equal(t, 2000.0, invoice.RoomCharge)
	assert.Equal(t, 500.0, invoice.ServiceCharge)
	assert.Equal(t, 200.0, invoice.DepositPaid)
	assert.Equal(t, 2300.0, invoice.Total)
	assert.Equal(t, customer.ID, invoice.CustomerID)
	assert.Equal(t, uint(7), invoice.CashierID)
	assert.Equal(t, constants.InvoiceStatusPaid, invoice.PaymentStatus)
	assert.Equal(t, "HD001", invoice.Code)

	// Không có dòng hóa đơn trong input: sinh dòng tiền phòng
	require.Len(t, invoice.Items, 1)
	assert.Equal(t, "Tiền phòng", invoice.Items[0].Label)
	assert.Equal(t, 2000.0, invoice.Items[0].Total)
}

func TestCreateInvoiceUsesSettingPriceWhenNoAppliedPrice(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db)
	_, receipt := seedReceipt(t, db, 0, 0)

	require.NoError(t, db.Create(&models.Setting{NormalRoomPrice: 800}).Error)

	invoice, err := svc.CreateInvoice(InvoiceInput{
		RentalReceiptID: receipt.ID,
		PaymentMethodID: 1,
	}, 7)
	require.NoError(t, err)

	// 2 đêm x giá cấu hình 800
	assert.Equal(t, 1600.0, invoice.RoomCharge)
	assert.Equal(t, 1600.0, invoice.Total)
}

func TestCreateInvoiceTotalFloorsAtZero(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db)
	_, receipt := seedReceipt(t, db, 1000, 5000)

	invoice, err := svc.CreateInvoice(InvoiceInput{
		RentalReceiptID: receipt.ID,
		PaymentMethodID: 1,
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, 2000.0, invoice.RoomCharge)
	assert.Equal(t, 5000.0, invoice.DepositPaid)
	assert.Equal(t, 0.0, invoice.Total)
}

func TestCreateInvoiceAggregatesValidationErrors(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db)

	// Thiếu phiếu thuê, khách hàng, thu ngân và phương thức thanh toán:
	// tất cả vi phạm báo cùng lúc, không dừng ở lỗi đầu
	_, err := svc.CreateInvoice(InvoiceInput{}, 0)
	require.Error(t, err)

	vErrs := errors.GetValidationErrors(err)
	require.NotNil(t, vErrs)
	assert.Len(t, vErrs.Messages, 4)
	assert.Contains(t, vErrs.Messages, "Phiếu thuê không được để trống")
	assert.Contains(t, vErrs.Messages, "Không xác định được khách hàng")
	assert.Contains(t, vErrs.Messages, "Không xác định được thu ngân")
	assert.Contains(t, vErrs.Messages, "Phương thức thanh toán không được để trống")
}

func TestCreateInvoiceCashierFallsBackToActingStaff(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db)
	_, receipt := seedReceipt(t, db, 1000, 0)

	invoice, err := svc.CreateInvoice(InvoiceInput{
		RentalReceiptID: receipt.ID,
		PaymentMethodID: 1,
	}, 42)
	require.NoError(t, err)
	assert.Equal(t, uint(42), invoice.CashierID)
}

func TestCreateCheckoutInvoiceItemizesServices(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db)
	customer, receipt := seedReceipt(t, db, 1000, 200)

	minibar := models.HotelService{Name: "Minibar", UnitPrice: 50}
	require.NoError(t, db.Create(&minibar).Error)
	require.NoError(t, db.Create(&models.ServiceUsage{
		RentalReceiptID: receipt.ID,
		ServiceID:       minibar.ID,
		Quantity:        2,
		Amount:          100,
		Status:          constants.ServiceUsageStatusCompleted,
	}).Error)

	invoice, err := svc.CreateCheckoutInvoice(InvoiceInput{
		RentalReceiptID: receipt.ID,
		CashierID:       7,
		CustomerID:      customer.ID,
		PaymentMethodID: 1,
		RoomCharge:      floatPtr(1000),
		DepositPaid:     floatPtr(200),
	})
	require.NoError(t, err)

	// 1000 phòng + 100 dịch vụ - 200 cọc
	assert.Equal(t, 900.0, invoice.Total)

	require.Len(t, invoice.Items, 2)
	assert.Equal(t, "Tiền phòng", invoice.Items[0].Label)
	assert.Equal(t, "Minibar", invoice.Items[1].Label)
	assert.Equal(t, 100.0, invoice.Items[1].Total)
}

func TestRoomChargeIgnoresActualCheckoutDate(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db)
	_, receipt := seedReceipt(t, db, 1000, 0)

	// Khách trả phòng sớm: phiếu thuê chốt sau 1 đêm thực tế,
	// tiền phòng vẫn tính 2 đêm đã đặt
	require.NoError(t, db.Model(&models.RentalReceipt{}).Where("id = ?", receipt.ID).
		Update("status", constants.RentalStatusCheckedOut).Error)

	preview, err := svc.PreviewInvoice(receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, preview.RoomCharge)
}

func TestPreviewInvoiceDoesNotPersist(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db)
	_, receipt := seedReceipt(t, db, 1000, 200)

	preview, err := svc.PreviewInvoice(receipt.ID)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, preview.Total)

	var count int64
	require.NoError(t, db.Model(&models.Invoice{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPreviewInvoiceNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestInvoiceService(db)

	_, err := svc.PreviewInvoice(999)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.GetAppError(err).Code)
}
