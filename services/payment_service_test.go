package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
	"time"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestPaymentService(db *gorm.DB, bookings *BookingService) *PaymentService {
	return NewPaymentService(PaymentServiceOptions{DB: db, Bookings: bookings})
}

func seedPendingBooking(t *testing.T, db *gorm.DB) *models.Booking {
	t.Helper()

	customer := seedCustomer(t, db, "Khách Thanh Toán")
	booking := models.Booking{
		Code:         "DP500",
		CustomerID:   customer.ID,
		Category:     constants.RoomCategoryNormal,
		CheckInDate:  date(2026, time.December, 1),
		CheckOutDate: date(2026, time.December, 3),
		GuestCount:   1,
		Status:       constants.BookingStatusPending,
	}
	require.NoError(t, db.Create(&booking).Error)
	return &booking
}

func TestCreateDepositSession(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db, nil)
	booking := seedPendingBooking(t, db)

	session, err := svc.CreateDepositSession(booking.ID, 500)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, session.BookingID)
	assert.Equal(t, 500.0, session.Amount)
	assert.Equal(t, constants.PaymentSessionPending, session.Status)
	assert.Len(t, session.SessionRef, 32)
	assert.Contains(t, session.QrURL, "img.vietqr.io")
	assert.Contains(t, session.QrURL, session.SessionRef)
}

func TestCreateDepositSessionRejectsBadInput(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db, nil)
	booking := seedPendingBooking(t, db)

	_, err := svc.CreateDepositSession(booking.ID, 0)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidAmount, errors.GetAppError(err).Code)

	_, err = svc.CreateDepositSession(9999, 500)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNotFound, errors.GetAppError(err).Code)
}

func TestConfirmSessionMarksBookingDepositPaid(t *testing.T) {
	db := setupTestDB(t)
	seedRooms(t, db, constants.RoomCategoryNormal, 1)
	bookings := newTestBookingService(db)
	svc := newTestPaymentService(db, bookings)

	booking, err := bookings.CreateBooking(CreateBookingInput{
		CustomerID:   seedCustomer(t, db, "Khách Cọc QR").ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.December, 10),
		CheckOutDate: date(2026, time.December, 12),
		GuestCount:   1,
	})
	require.NoError(t, err)

	session, err := svc.CreateDepositSession(booking.ID, 300)
	require.NoError(t, err)

	confirmed, err := svc.ConfirmSession(session.SessionRef, 300)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentSessionCompleted, confirmed.Status)

	var reloaded models.Booking
	require.NoError(t, db.First(&reloaded, booking.ID).Error)
	assert.Equal(t, constants.BookingStatusDepositPaid, reloaded.Status)
	assert.Equal(t, 300.0, reloaded.Deposit)

	// Webhook gọi lại lần nữa vô hại
	again, err := svc.ConfirmSession(session.SessionRef, 300)
	require.NoError(t, err)
	assert.Equal(t, constants.PaymentSessionCompleted, again.Status)
}

func TestConfirmSessionRejectsShortAmount(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestPaymentService(db, nil)
	booking := seedPendingBooking(t, db)

	session, err := svc.CreateDepositSession(booking.ID, 500)
	require.NoError(t, err)

	_, err = svc.ConfirmSession(session.SessionRef, 100)
	require.Error(t, err)

	var reloaded models.PaymentSession
	require.NoError(t, db.First(&reloaded, session.ID).Error)
	assert.Equal(t, constants.PaymentSessionFailed, reloaded.Status)
}

func TestVerifySignature(t *testing.T) {
	t.Setenv("PAYMENT_WEBHOOK_SECRET", "bi-mat")

	payload := []byte(`{"sessionRef":"abc","amount":500}`)
	mac := hmac.New(sha256.New, []byte("bi-mat"))
	mac.Write(payload)
	signature := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, VerifySignature(payload, signature))
	assert.False(t, VerifySignature(payload, "sai-chu-ky"))
	assert.False(t, VerifySignature([]byte("payload khác"), signature))
}

func TestVerifySignatureWithoutSecret(t *testing.T) {
	t.Setenv("PAYMENT_WEBHOOK_SECRET", "")
	assert.False(t, VerifySignature([]byte("x"), "y"))
}
