package services

import (
	"testing"
	"time"

	"hotelhub/constants"
	"hotelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCodeStartsAtOne(t *testing.T) {
	db := setupTestDB(t)

	code, err := NextCode(db, &models.Booking{}, BookingCodePrefix)
	require.NoError(t, err)
	assert.Equal(t, "DP001", code)
}

func TestNextCodeIncrementsHighest(t *testing.T) {
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Khách Mã")

	for _, code := range []string{"DP003", "DP007", "DP001"} {
		require.NoError(t, db.Create(&models.Booking{
			Code:         code,
			CustomerID:   customer.ID,
			CheckInDate:  date(2026, time.January, 1),
			CheckOutDate: date(2026, time.January, 2),
			Status:       constants.BookingStatusCheckedOut,
		}).Error)
	}

	code, err := NextCode(db, &models.Booking{}, BookingCodePrefix)
	require.NoError(t, err)
	assert.Equal(t, "DP008", code)
}

func TestNextCodePerPrefix(t *testing.T) {
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Khách Mã 2")

	require.NoError(t, db.Create(&models.Booking{
		Code:         "DP005",
		CustomerID:   customer.ID,
		CheckInDate:  date(2026, time.January, 1),
		CheckOutDate: date(2026, time.January, 2),
		Status:       constants.BookingStatusCheckedOut,
	}).Error)

	// Mã hóa đơn đếm riêng, không bị ảnh hưởng bởi mã đặt phòng
	code, err := NextCode(db, &models.Invoice{}, InvoiceCodePrefix)
	require.NoError(t, err)
	assert.Equal(t, "HD001", code)
}

func TestNextCodeBeyondPadding(t *testing.T) {
	db := setupTestDB(t)
	customer := seedCustomer(t, db, "Khách Mã 3")

	// Qua mốc 999 phần số dài hơn số chữ số đệm: "DP999" > "DP1000"
	// theo thứ tự chuỗi thuần, mã sinh ra không được quay về "DP1000"
	for _, code := range []string{"DP998", "DP999", "DP1000"} {
		require.NoError(t, db.Create(&models.Booking{
			Code:         code,
			CustomerID:   customer.ID,
			CheckInDate:  date(2026, time.January, 1),
			CheckOutDate: date(2026, time.January, 2),
			Status:       constants.BookingStatusCheckedOut,
		}).Error)
	}

	code, err := NextCode(db, &models.Booking{}, BookingCodePrefix)
	require.NoError(t, err)
	assert.Equal(t, "DP1001", code)
}

func TestRandomCustomerCodeFormat(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := RandomCustomerCode()
		require.NoError(t, err)
		assert.Regexp(t, `^KH\d{4}$`, code)
	}
}
