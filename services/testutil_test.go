package services

import (
	"fmt"
	"testing"
	"time"

	"hotelhub/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Customer{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.RentalReceipt{},
		&models.HotelService{},
		&models.ServiceUsage{},
		&models.Invoice{},
		&models.InvoiceItem{},
		&models.Setting{},
		&models.PaymentSession{},
	)
	require.NoError(t, err)

	return db
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// seedRooms tạo một hạng phòng với n phòng
func seedRooms(t *testing.T, db *gorm.DB, category int, n int) []models.Room {
	t.Helper()

	roomType := models.RoomType{
		Name:      fmt.Sprintf("Hạng %d", category),
		Category:  category,
		BasePrice: 1000,
	}
	require.NoError(t, db.Create(&roomType).Error)

	rooms := make([]models.Room, 0, n)
	for i := 1; i <= n; i++ {
		room := models.Room{
			Code:       fmt.Sprintf("P%d%02d", category, i),
			RoomTypeID: roomType.ID,
			Price:      1000,
		}
		require.NoError(t, db.Create(&room).Error)
		rooms = append(rooms, room)
	}
	return rooms
}

var customerSeq int

func seedCustomer(t *testing.T, db *gorm.DB, name string) models.Customer {
	t.Helper()

	customerSeq++
	customer := models.Customer{
		Code: fmt.Sprintf("KH%04d", customerSeq),
		Name: name,
	}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func newTestBookingService(db *gorm.DB) *BookingService {
	return NewBookingService(BookingServiceOptions{DB: db})
}

func newTestInvoiceService(db *gorm.DB) *InvoiceService {
	return NewInvoiceService(InvoiceServiceOptions{DB: db})
}

func intPtr(v int) *int { return &v }
func floatPtr(v float64) *float64 { return &v }
