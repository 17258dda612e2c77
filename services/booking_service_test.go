package services

import (
	"math/rand"
	"testing"
	"time"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBlockingStatus(t *testing.T) {
	assert.True(t, IsBlockingStatus(constants.BookingStatusPending))
	assert.True(t, IsBlockingStatus(constants.BookingStatusDepositPaid))
	assert.True(t, IsBlockingStatus(constants.BookingStatusCheckedIn))

	assert.False(t, IsBlockingStatus(constants.BookingStatusCheckedOut))
	assert.False(t, IsBlockingStatus(constants.BookingStatusCancelled))
	assert.False(t, IsBlockingStatus(constants.BookingStatusNoShow))
	assert.False(t, IsBlockingStatus(constants.BookingStatusDepositCancel))
}

func TestCanTransition(t *testing.T) {
	// Chuyển lặp lại cùng trạng thái được chấp nhận
	assert.True(t, CanTransition(constants.BookingStatusPending, constants.BookingStatusPending))
	assert.True(t, CanTransition(constants.BookingStatusCheckedOut, constants.BookingStatusCheckedOut))

	assert.True(t, CanTransition(constants.BookingStatusPending, constants.BookingStatusDepositPaid))
	assert.True(t, CanTransition(constants.BookingStatusPending, constants.BookingStatusCheckedIn))
	assert.True(t, CanTransition(constants.BookingStatusPending, constants.BookingStatusNoShow))
	assert.True(t, CanTransition(constants.BookingStatusDepositPaid, constants.BookingStatusCheckedIn))
	assert.True(t, CanTransition(constants.BookingStatusCheckedIn, constants.BookingStatusCheckedOut))

	// Trạng thái cuối không quay lại được
	assert.False(t, CanTransition(constants.BookingStatusCheckedOut, constants.BookingStatusCheckedIn))
	assert.False(t, CanTransition(constants.BookingStatusCancelled, constants.BookingStatusPending))
	assert.False(t, CanTransition(constants.BookingStatusCheckedIn, constants.BookingStatusPending))
	assert.False(t, CanTransition(constants.BookingStatusCheckedIn, constants.BookingStatusCancelled))
	assert.False(t, CanTransition(constants.BookingStatusNoShow, constants.BookingStatusCheckedIn))
}

func TestCreateBookingAssignsFirstFreeRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	rooms := seedRooms(t, db, constants.RoomCategoryStandard, 2)
	customer := seedCustomer(t, db, "Nguyễn Văn A")

	first, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryStandard),
		CheckInDate:  date(2026, time.January, 1),
		CheckOutDate: date(2026, time.January, 5),
		GuestCount:   1,
	})
	require.NoError(t, err)
	require.Len(t, first.Rooms, 1)
	assert.Equal(t, rooms[0].ID, first.Rooms[0].RoomID)
	assert.Equal(t, constants.BookingStatusPending, first.Status)
	assert.Equal(t, "DP001", first.Code)

	// Cùng khoảng ngày: phòng thứ hai được chọn
	second, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryStandard),
		CheckInDate:  date(2026, time.January, 2),
		CheckOutDate: date(2026, time.January, 4),
		GuestCount:   1,
	})
	require.NoError(t, err)
	require.Len(t, second.Rooms, 1)
	assert.Equal(t, rooms[1].ID, second.Rooms[0].RoomID)
	assert.Equal(t, "DP002", second.Code)

	// Hết phòng: lỗi báo về caller, không retry
	_, err = svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryStandard),
		CheckInDate:  date(2026, time.January, 3),
		CheckOutDate: date(2026, time.January, 4),
		GuestCount:   1,
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrCodeNoRoomAvailable, appErr.Code)
}

func TestCreateBookingAdjacentIntervalsShareRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	rooms := seedRooms(t, db, constants.RoomCategoryNormal, 1)
	customer := seedCustomer(t, db, "Trần Thị B")

	first, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.January, 1),
		CheckOutDate: date(2026, time.January, 5),
		GuestCount:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, rooms[0].ID, first.Rooms[0].RoomID)

	// Khoảng nửa hở: trả phòng ngày 5, nhận phòng ngày 5 không đụng nhau
	second, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.January, 5),
		CheckOutDate: date(2026, time.January, 8),
		GuestCount:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, rooms[0].ID, second.Rooms[0].RoomID)
}

func TestCreateBookingValidation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	seedRooms(t, db, constants.RoomCategoryNormal, 1)
	customer := seedCustomer(t, db, "Lê Văn C")

	cases := []struct {
		name  string
		input CreateBookingInput
	}{
		{
			name: "thiếu khách hàng",
			input: CreateBookingInput{
				Category:     intPtr(constants.RoomCategoryNormal),
				CheckInDate:  date(2026, time.January, 1),
				CheckOutDate: date(2026, time.January, 2),
				GuestCount:   1,
			},
		},
		{
			name: "thiếu hạng phòng",
			input: CreateBookingInput{
				CustomerID:   customer.ID,
				CheckInDate:  date(2026, time.January, 1),
				CheckOutDate: date(2026, time.January, 2),
				GuestCount:   1,
			},
		},
		{
			name: "ngày trả trước ngày nhận",
			input: CreateBookingInput{
				CustomerID:   customer.ID,
				Category:     intPtr(constants.RoomCategoryNormal),
				CheckInDate:  date(2026, time.January, 5),
				CheckOutDate: date(2026, time.January, 1),
				GuestCount:   1,
			},
		},
		{
			name: "số khách bằng 0",
			input: CreateBookingInput{
				CustomerID:   customer.ID,
				Category:     intPtr(constants.RoomCategoryNormal),
				CheckInDate:  date(2026, time.January, 1),
				CheckOutDate: date(2026, time.January, 2),
			},
		},
		{
			name: "cọc âm",
			input: CreateBookingInput{
				CustomerID:   customer.ID,
				Category:     intPtr(constants.RoomCategoryNormal),
				CheckInDate:  date(2026, time.January, 1),
				CheckOutDate: date(2026, time.January, 2),
				GuestCount:   1,
				Deposit:      -100,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestBookingCodeContinuesFromExisting(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	seedRooms(t, db, constants.RoomCategoryNormal, 5)
	customer := seedCustomer(t, db, "Phạm Văn D")

	require.NoError(t, db.Create(&models.Booking{
		Code:         "DP007",
		CustomerID:   customer.ID,
		Category:     constants.RoomCategoryNormal,
		CheckInDate:  date(2025, time.December, 1),
		CheckOutDate: date(2025, time.December, 2),
		Status:       constants.BookingStatusCheckedOut,
	}).Error)

	booking, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.February, 1),
		CheckOutDate: date(2026, time.February, 3),
		GuestCount:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, "DP008", booking.Code)
}

func TestPendingBlocksRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	seedRooms(t, db, constants.RoomCategoryPremium, 1)
	customer := seedCustomer(t, db, "Hoàng Văn E")

	// Đơn Pending đến trước thắng
	_, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryPremium),
		CheckInDate:  date(2026, time.March, 1),
		CheckOutDate: date(2026, time.March, 5),
		GuestCount:   1,
	})
	require.NoError(t, err)

	_, err = svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryPremium),
		CheckInDate:  date(2026, time.March, 3),
		CheckOutDate: date(2026, time.March, 6),
		GuestCount:   1,
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeNoRoomAvailable, errors.GetAppError(err).Code)
}

func TestCancelledBookingFreesRoom(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	rooms := seedRooms(t, db, constants.RoomCategoryNormal, 1)
	customer := seedCustomer(t, db, "Vũ Thị F")

	booking, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.April, 1),
		CheckOutDate: date(2026, time.April, 5),
		GuestCount:   1,
	})
	require.NoError(t, err)

	cancelled, err := svc.CancelBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusCancelled, cancelled.Status)

	var room models.Room
	require.NoError(t, db.First(&room, rooms[0].ID).Error)
	assert.Equal(t, constants.RoomStatusAvailable, room.Status)

	// Hủy lại lần nữa không lỗi
	_, err = svc.CancelBooking(booking.ID)
	require.NoError(t, err)

	// Phòng trống trở lại cho đơn mới cùng khoảng ngày
	replacement, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.April, 1),
		CheckOutDate: date(2026, time.April, 5),
		GuestCount:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, rooms[0].ID, replacement.Rooms[0].RoomID)
}

func TestCancelBookingBypassesTransitionTable(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	rooms := seedRooms(t, db, constants.RoomCategoryNormal, 1)
	customer := seedCustomer(t, db, "Lý Văn G")

	booking, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.May, 1),
		CheckOutDate: date(2026, time.May, 3),
		GuestCount:   1,
	})
	require.NoError(t, err)

	checkedIn := constants.BookingStatusCheckedIn
	_, err = svc.UpdateBooking(booking.ID, UpdateBookingInput{Status: &checkedIn})
	require.NoError(t, err)

	// Đường cập nhật thường không cho hủy đơn đã nhận phòng
	assert.False(t, CanTransition(constants.BookingStatusCheckedIn, constants.BookingStatusCancelled))

	// Đường hủy hành chính ép hủy được và trả phòng về trống
	cancelled, err := svc.CancelBooking(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusCancelled, cancelled.Status)

	var room models.Room
	require.NoError(t, db.First(&room, rooms[0].ID).Error)
	assert.Equal(t, constants.RoomStatusAvailable, room.Status)
}

func TestUpdateBookingInvalidTransition(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	seedRooms(t, db, constants.RoomCategoryNormal, 1)
	customer := seedCustomer(t, db, "Đỗ Văn G")

	booking, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.May, 1),
		CheckOutDate: date(2026, time.May, 3),
		GuestCount:   1,
	})
	require.NoError(t, err)

	_, err = svc.UpdateBooking(booking.ID, UpdateBookingInput{
		Status: intPtr(constants.BookingStatusCheckedIn),
	})
	require.NoError(t, err)

	// CheckedIn không quay về Pending được
	_, err = svc.UpdateBooking(booking.ID, UpdateBookingInput{
		Status: intPtr(constants.BookingStatusPending),
	})
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidTransition, errors.GetAppError(err).Code)
}

func TestUpdateBookingSyncsRoomStatus(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	rooms := seedRooms(t, db, constants.RoomCategoryNormal, 1)
	customer := seedCustomer(t, db, "Bùi Thị H")

	booking, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.June, 1),
		CheckOutDate: date(2026, time.June, 3),
		GuestCount:   1,
	})
	require.NoError(t, err)

	_, err = svc.UpdateBooking(booking.ID, UpdateBookingInput{
		Status: intPtr(constants.BookingStatusCheckedIn),
	})
	require.NoError(t, err)

	var room models.Room
	require.NoError(t, db.First(&room, rooms[0].ID).Error)
	assert.Equal(t, constants.RoomStatusOccupied, room.Status)

	_, err = svc.UpdateBooking(booking.ID, UpdateBookingInput{
		Status: intPtr(constants.BookingStatusCheckedOut),
	})
	require.NoError(t, err)

	require.NoError(t, db.First(&room, rooms[0].ID).Error)
	assert.Equal(t, constants.RoomStatusAvailable, room.Status)
}

func TestMaintenanceRoomSkippedByResolver(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	rooms := seedRooms(t, db, constants.RoomCategoryNormal, 2)
	customer := seedCustomer(t, db, "Ngô Văn I")

	require.NoError(t, db.Model(&models.Room{}).Where("id = ?", rooms[0].ID).
		Update("status", constants.RoomStatusMaintenance).Error)

	booking, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.July, 1),
		CheckOutDate: date(2026, time.July, 3),
		GuestCount:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, rooms[1].ID, booking.Rooms[0].RoomID)
}

func TestCreateWalkInReusesCustomerByIdentity(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	seedRooms(t, db, constants.RoomCategoryNormal, 2)

	existing := models.Customer{
		Code:           "KH0001",
		Name:           "Khách Cũ",
		IdentityNumber: "012345678901",
	}
	require.NoError(t, db.Create(&existing).Error)

	booking, err := svc.CreateWalkIn(WalkInInput{
		GuestName:      "Khách Cũ",
		IdentityNumber: "012345678901",
		Category:       intPtr(constants.RoomCategoryNormal),
		CheckInDate:    date(2026, time.August, 1),
		CheckOutDate:   date(2026, time.August, 3),
		GuestCount:     1,
	})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, booking.CustomerID)

	var count int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateWalkInCreatesCustomerWithRandomCode(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	seedRooms(t, db, constants.RoomCategoryNormal, 1)

	booking, err := svc.CreateWalkIn(WalkInInput{
		GuestName:      "Khách Mới",
		IdentityNumber: "098765432109",
		Category:       intPtr(constants.RoomCategoryNormal),
		CheckInDate:    date(2026, time.August, 10),
		CheckOutDate:   date(2026, time.August, 12),
		GuestCount:     1,
	})
	require.NoError(t, err)

	var customer models.Customer
	require.NoError(t, db.First(&customer, booking.CustomerID).Error)
	assert.Equal(t, "Khách Mới", customer.Name)
	assert.Regexp(t, `^KH\d{4}$`, customer.Code)
}

func TestConfirmDeposit(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	seedRooms(t, db, constants.RoomCategoryNormal, 1)
	customer := seedCustomer(t, db, "Khách Cọc")

	booking, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.September, 1),
		CheckOutDate: date(2026, time.September, 3),
		GuestCount:   1,
	})
	require.NoError(t, err)

	updated, err := svc.ConfirmDeposit(booking.ID, 500)
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusDepositPaid, updated.Status)
	assert.Equal(t, 500.0, updated.Deposit)
}

func TestSweepNoShow(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	rooms := seedRooms(t, db, constants.RoomCategoryNormal, 2)
	customer := seedCustomer(t, db, "Khách Trễ")

	stale, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.October, 1),
		CheckOutDate: date(2026, time.October, 3),
		GuestCount:   1,
	})
	require.NoError(t, err)

	fresh, err := svc.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     intPtr(constants.RoomCategoryNormal),
		CheckInDate:  date(2026, time.October, 10),
		CheckOutDate: date(2026, time.October, 12),
		GuestCount:   1,
	})
	require.NoError(t, err)

	marked, err := svc.SweepNoShow(date(2026, time.October, 5))
	require.NoError(t, err)
	assert.Equal(t, 1, marked)

	var reloaded models.Booking
	require.NoError(t, db.First(&reloaded, stale.ID).Error)
	assert.Equal(t, constants.BookingStatusNoShow, reloaded.Status)

	var reloadedFresh models.Booking
	require.NoError(t, db.First(&reloadedFresh, fresh.ID).Error)
	assert.Equal(t, constants.BookingStatusPending, reloadedFresh.Status)

	var room models.Room
	require.NoError(t, db.First(&room, rooms[0].ID).Error)
	assert.Equal(t, constants.RoomStatusAvailable, room.Status)
}

// TestNoDoubleAssignment tạo ngẫu nhiên nhiều booking và kiểm tra bất biến:
// không có hai booking đang giữ phòng nào chung phòng với khoảng ở giao nhau
func TestNoDoubleAssignment(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestBookingService(db)
	seedRooms(t, db, constants.RoomCategoryNormal, 3)
	customer := seedCustomer(t, db, "Khách Ngẫu Nhiên")

	rng := rand.New(rand.NewSource(42))
	base := date(2026, time.November, 1)

	for i := 0; i < 60; i++ {
		start := base.AddDate(0, 0, rng.Intn(20))
		end := start.AddDate(0, 0, 1+rng.Intn(5))
		_, err := svc.CreateBooking(CreateBookingInput{
			CustomerID:   customer.ID,
			Category:     intPtr(constants.RoomCategoryNormal),
			CheckInDate:  start,
			CheckOutDate: end,
			GuestCount:   1,
		})
		if err != nil {
			// Hết phòng là kết quả hợp lệ
			require.Equal(t, errors.ErrCodeNoRoomAvailable, errors.GetAppError(err).Code)
		}
	}

	var bookings []models.Booking
	require.NoError(t, db.Preload("Rooms").Find(&bookings).Error)

	for i := range bookings {
		for j := i + 1; j < len(bookings); j++ {
			a, b := bookings[i], bookings[j]
			if !IsBlockingStatus(a.Status) || !IsBlockingStatus(b.Status) {
				continue
			}
			if !a.CheckInDate.Before(b.CheckOutDate) || !b.CheckInDate.Before(a.CheckOutDate) {
				continue
			}
			for _, ra := range a.Rooms {
				for _, rb := range b.Rooms {
					assert.NotEqual(t, ra.RoomID, rb.RoomID,
						"booking %s và %s chung phòng với khoảng ở giao nhau", a.Code, b.Code)
				}
			}
		}
	}
}
