package services

import (
	"fmt"
	"time"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"
	"hotelhub/services/logger"
	"hotelhub/services/notification"

	"gorm.io/gorm"
)

// IsBlockingStatus cho biết một booking có giữ phòng hay không.
// Đây là định nghĩa duy nhất trong toàn hệ thống, mọi chỗ kiểm tra
// trùng phòng đều phải dùng hàm này, không liệt kê lại trạng thái.
// Pending vẫn giữ phòng: đơn Pending đến trước thắng, đơn cạnh tranh
// đến sau sẽ không được gán cùng phòng.
func IsBlockingStatus(status int) bool {
	switch status {
	case constants.BookingStatusCancelled,
		constants.BookingStatusCheckedOut,
		constants.BookingStatusNoShow,
		constants.BookingStatusDepositCancel:
		return false
	default:
		return true
	}
}

// nonBlockingStatuses dùng cho mệnh đề NOT IN của các truy vấn xung đột
func nonBlockingStatuses() []int {
	return []int{
		constants.BookingStatusCancelled,
		constants.BookingStatusCheckedOut,
		constants.BookingStatusNoShow,
		constants.BookingStatusDepositCancel,
	}
}

// CanTransition là bảng chuyển trạng thái hợp lệ của booking.
// Chuyển lặp lại cùng trạng thái được chấp nhận (idempotent).
func CanTransition(from, to int) bool {
	if from == to {
		return true
	}
	switch from {
	case constants.BookingStatusPending:
		switch to {
		case constants.BookingStatusDepositPaid,
			constants.BookingStatusCheckedIn,
			constants.BookingStatusCancelled,
			constants.BookingStatusNoShow,
			constants.BookingStatusDepositCancel:
			return true
		}
	case constants.BookingStatusDepositPaid:
		switch to {
		case constants.BookingStatusCheckedIn,
			constants.BookingStatusCancelled,
			constants.BookingStatusNoShow,
			constants.BookingStatusDepositCancel:
			return true
		}
	case constants.BookingStatusCheckedIn:
		return to == constants.BookingStatusCheckedOut
	}
	return false
}

type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
	notifs *notification.Service
}

type BookingServiceOptions struct {
	DB            *gorm.DB
	Logger        logger.Logger
	Notifications *notification.Service
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	return &BookingService{
		db:     opts.DB,
		logger: opts.Logger,
		notifs: opts.Notifications,
	}
}

// CreateBookingInput là tham số tạo booking
type CreateBookingInput struct {
	Code         string
	CustomerID   uint
	Category     *int
	CheckInDate  time.Time
	CheckOutDate time.Time
	GuestCount   int
	Deposit      float64
	RoomID       uint // gán phòng tường minh, 0 nếu để hệ thống tự tìm
}

// WalkInInput là tham số tạo booking cho khách vãng lai
type WalkInInput struct {
	GuestName      string
	GuestEmail     string
	GuestPhone     string
	IdentityNumber string
	Category       *int
	CheckInDate    time.Time
	CheckOutDate   time.Time
	GuestCount     int
	Deposit        float64
}

// UpdateBookingInput là tham số cập nhật booking, field nil giữ nguyên
type UpdateBookingInput struct {
	Category     *int
	CheckInDate  *time.Time
	CheckOutDate *time.Time
	GuestCount   *int
	Deposit      *float64
	Status       *int
	RoomID       *uint
}

// FindAvailableRoom tìm một phòng của hạng phòng còn trống trong khoảng
// [start, end). Duyệt phòng theo thứ tự trả về từ store, phòng đầu tiên
// không vướng booking đang giữ phòng sẽ thắng; hết phòng trả về nil chứ
// không phải lỗi. Không kiểm tra start < end ở đây, đó là việc của caller.
func (s *BookingService) FindAvailableRoom(tx *gorm.DB, category int, start, end time.Time, excludeBookingID uint) (*models.Room, error) {
	if tx == nil {
		tx = s.db
	}

	var rooms []models.Room
	err := tx.
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("room_types.category = ?", category).
		Where("rooms.status <> ?", constants.RoomStatusMaintenance).
		Find(&rooms).Error
	if err != nil {
		return nil, err
	}

	for i := range rooms {
		conflicts, err := s.countConflicts(tx, rooms[i].ID, start, end, excludeBookingID)
		if err != nil {
			return nil, err
		}
		if conflicts == 0 {
			return &rooms[i], nil
		}
	}

	return nil, nil
}

// countConflicts đếm các booking khác đang giữ phòng này với khoảng ở
// giao nhau, theo phép thử nửa hở: existing.start < end AND existing.end > start
func (s *BookingService) countConflicts(tx *gorm.DB, roomID uint, start, end time.Time, excludeBookingID uint) (int64, error) {
	var count int64
	q := tx.Model(&models.Booking{}).
		Joins("JOIN booking_rooms ON booking_rooms.booking_id = bookings.id").
		Where("booking_rooms.room_id = ?", roomID).
		Where("bookings.status NOT IN ?", nonBlockingStatuses()).
		Where("bookings.check_in_date < ? AND bookings.check_out_date > ?", end, start)
	if excludeBookingID != 0 {
		q = q.Where("bookings.id <> ?", excludeBookingID)
	}
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CreateBooking tạo booking mới ở trạng thái Pending. Nếu không có gán
// phòng tường minh, resolver sẽ tự tìm; hết phòng của hạng là lỗi báo
// về caller, không retry. Tìm phòng và ghi booking chạy chung một
// transaction để tra xung đột và ghi không tách rời nhau.
func (s *BookingService) CreateBooking(input CreateBookingInput) (*models.Booking, error) {
	if input.CustomerID == 0 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Khách hàng không được để trống", nil)
	}
	if input.Category == nil {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Hạng phòng không được để trống", nil)
	}
	if input.CheckInDate.IsZero() || input.CheckOutDate.IsZero() {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Ngày nhận và trả phòng không được để trống", nil)
	}
	if input.GuestCount < 1 {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Số khách phải ít nhất là 1", nil)
	}
	if !input.CheckInDate.Before(input.CheckOutDate) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	if input.Deposit < 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidAmount, "Tiền cọc không được âm", nil)
	}

	category := *input.Category
	var booking models.Booking

	err := s.db.Transaction(func(tx *gorm.DB) error {
		code := input.Code
		if code == "" {
			var err error
			code, err = NextCode(tx, &models.Booking{}, BookingCodePrefix)
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không sinh được mã đặt phòng", err)
			}
		}

		roomID := input.RoomID
		if roomID == 0 {
			room, err := s.FindAvailableRoom(tx, category, input.CheckInDate, input.CheckOutDate, 0)
			if err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tìm phòng trống", err)
			}
			if room == nil {
				return errors.NewAppError(errors.ErrCodeNoRoomAvailable,
					fmt.Sprintf("Không còn phòng trống cho hạng %s trong khoảng thời gian này", constants.CategoryName(category)), nil)
			}
			roomID = room.ID
		}

		booking = models.Booking{
			Code:         code,
			CustomerID:   input.CustomerID,
			Category:     category,
			CheckInDate:  input.CheckInDate,
			CheckOutDate: input.CheckOutDate,
			GuestCount:   input.GuestCount,
			Deposit:      input.Deposit,
			Status:       constants.BookingStatusPending,
			Rooms:        []models.BookingRoom{{RoomID: roomID}},
		}

		if err := tx.Create(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không tạo được đặt phòng", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyCustomer(booking.CustomerID, "Đặt phòng mới",
		fmt.Sprintf("Đơn đặt phòng %s đã được tạo", booking.Code))

	if err := s.db.Preload("Customer").Preload("Rooms.Room").First(&booking, booking.ID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc lại được đặt phòng", err)
	}
	return &booking, nil
}

// CreateWalkIn tạo booking cho khách vãng lai: tìm khách theo số giấy tờ
// hoặc email, chưa có thì tạo mới với mã hậu tố ngẫu nhiên
// (chủ đích khác với mã tuần tự của luồng đăng ký tài khoản).
func (s *BookingService) CreateWalkIn(input WalkInInput) (*models.Booking, error) {
	if input.GuestName == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}
	if input.IdentityNumber == "" && input.GuestEmail == "" {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField, "Cần số giấy tờ hoặc email của khách", nil)
	}

	var customer models.Customer
	err := s.db.
		Where("identity_number = ? AND identity_number <> ''", input.IdentityNumber).
		Or("email = ? AND email <> ''", input.GuestEmail).
		First(&customer).Error
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tìm khách hàng", err)
		}

		code, err := RandomCustomerCode()
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Không sinh được mã khách hàng", err)
		}
		customer = models.Customer{
			Code:           code,
			Name:           input.GuestName,
			Email:          input.GuestEmail,
			PhoneNumber:    input.GuestPhone,
			IdentityNumber: input.IdentityNumber,
		}
		if err := s.db.Create(&customer).Error; err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBError, "Không tạo được khách hàng", err)
		}
		if s.logger != nil {
			s.logger.Info("Đã tạo khách vãng lai %s (%s)", customer.Name, customer.Code)
		}
	}

	return s.CreateBooking(CreateBookingInput{
		CustomerID:   customer.ID,
		Category:     input.Category,
		CheckInDate:  input.CheckInDate,
		CheckOutDate: input.CheckOutDate,
		GuestCount:   input.GuestCount,
		Deposit:      input.Deposit,
	})
}

// statusEntersStay cho biết trạng thái mới có cần phòng chắc chắn chưa
func statusEntersStay(status int) bool {
	return status == constants.BookingStatusDepositPaid || status == constants.BookingStatusCheckedIn
}

// UpdateBooking cập nhật booking. Đổi hạng/ngày hoặc chuyển sang trạng
// thái cần phòng mà chưa có phòng thì resolver chạy lại (loại chính
// booking này khỏi phép tra xung đột). Đã có phòng mà chuyển sang trạng
// thái cần phòng thì kiểm tra trùng lần nữa, trùng là lỗi chứ không tự
// đổi phòng. Side effect lên trạng thái phòng chỉ phụ thuộc trạng thái
// mới trong payload, lặp lại không gây lỗi.
func (s *BookingService) UpdateBooking(id uint, input UpdateBookingInput) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Rooms").First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đặt phòng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc đặt phòng", err)
	}

	if input.Status != nil && !CanTransition(booking.Status, *input.Status) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition,
			fmt.Sprintf("Không thể chuyển trạng thái từ %d sang %d", booking.Status, *input.Status), nil)
	}

	if input.Category != nil {
		booking.Category = *input.Category
	}
	if input.CheckInDate != nil {
		booking.CheckInDate = *input.CheckInDate
	}
	if input.CheckOutDate != nil {
		booking.CheckOutDate = *input.CheckOutDate
	}
	if !booking.CheckInDate.Before(booking.CheckOutDate) {
		return nil, errors.NewAppError(errors.ErrCodeValidation, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	if input.GuestCount != nil {
		if *input.GuestCount < 1 {
			return nil, errors.NewAppError(errors.ErrCodeValidation, "Số khách phải ít nhất là 1", nil)
		}
		booking.GuestCount = *input.GuestCount
	}
	if input.Deposit != nil {
		booking.Deposit = *input.Deposit
	}

	newStatus := booking.Status
	if input.Status != nil {
		newStatus = *input.Status
	}

	touchesAssignment := input.Category != nil || input.CheckInDate != nil || input.CheckOutDate != nil ||
		(input.Status != nil && statusEntersStay(*input.Status))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if input.RoomID != nil && *input.RoomID != 0 {
			// gán phòng tường minh từ payload
			if err := tx.Where("booking_id = ?", booking.ID).Delete(&models.BookingRoom{}).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được gán phòng", err)
			}
			booking.Rooms = []models.BookingRoom{{BookingID: booking.ID, RoomID: *input.RoomID}}
			if err := tx.Create(&booking.Rooms[0]).Error; err != nil {
				return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được gán phòng", err)
			}
		}

		if touchesAssignment {
			if len(booking.Rooms) == 0 {
				room, err := s.FindAvailableRoom(tx, booking.Category, booking.CheckInDate, booking.CheckOutDate, booking.ID)
				if err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi tìm phòng trống", err)
				}
				if room == nil {
					return errors.NewAppError(errors.ErrCodeNoRoomAvailable,
						fmt.Sprintf("Không còn phòng trống cho hạng %s trong khoảng thời gian này", constants.CategoryName(booking.Category)), nil)
				}
				br := models.BookingRoom{BookingID: booking.ID, RoomID: room.ID}
				if err := tx.Create(&br).Error; err != nil {
					return errors.NewAppError(errors.ErrCodeDBError, "Không gán được phòng", err)
				}
				booking.Rooms = append(booking.Rooms, br)
			} else if input.Status != nil && statusEntersStay(*input.Status) {
				// đã có phòng: kiểm tra trùng lần nữa, không tự đổi phòng
				for _, br := range booking.Rooms {
					conflicts, err := s.countConflicts(tx, br.RoomID, booking.CheckInDate, booking.CheckOutDate, booking.ID)
					if err != nil {
						return errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi kiểm tra trùng phòng", err)
					}
					if conflicts > 0 {
						return errors.NewAppError(errors.ErrCodeConflict,
							"Phòng đã được giữ bởi đơn khác trong khoảng thời gian này", nil)
					}
				}
			}
		}

		booking.Status = newStatus
		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được đặt phòng", err)
		}

		return s.syncRoomStatus(tx, &booking, newStatus)
	})
	if err != nil {
		return nil, err
	}

	if input.Status != nil {
		s.notifyCustomer(booking.CustomerID, "Cập nhật đặt phòng",
			fmt.Sprintf("Đơn %s chuyển sang trạng thái %d", booking.Code, newStatus))
	}

	if err := s.db.Preload("Customer").Preload("Rooms.Room").First(&booking, booking.ID).Error; err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Không đọc lại được đặt phòng", err)
	}
	return &booking, nil
}

// syncRoomStatus đồng bộ trạng thái phòng theo trạng thái mới của booking.
// Chỉ trạng thái mới quyết định, không phụ thuộc trạng thái cũ.
func (s *BookingService) syncRoomStatus(tx *gorm.DB, booking *models.Booking, newStatus int) error {
	var roomStatus int
	switch newStatus {
	case constants.BookingStatusCheckedIn:
		roomStatus = constants.RoomStatusOccupied
	case constants.BookingStatusCheckedOut, constants.BookingStatusCancelled, constants.BookingStatusNoShow:
		roomStatus = constants.RoomStatusAvailable
	default:
		return nil
	}

	for _, br := range booking.Rooms {
		if err := tx.Model(&models.Room{}).Where("id = ?", br.RoomID).
			Update("status", roomStatus).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không cập nhật được trạng thái phòng", err)
		}
	}
	return nil
}

// CancelBooking ép booking về Cancelled và trả phòng về trạng thái trống,
// bất kể trạng thái trước đó. Hủy một đơn đã hủy vẫn trả phòng về trống
// và không lỗi.
func (s *BookingService) CancelBooking(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Rooms").First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đặt phòng", err)
		}
		return nil, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi đọc đặt phòng", err)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		booking.Status = constants.BookingStatusCancelled
		if err := tx.Save(&booking).Error; err != nil {
			return errors.NewAppError(errors.ErrCodeDBError, "Không hủy được đặt phòng", err)
		}
		return s.syncRoomStatus(tx, &booking, constants.BookingStatusCancelled)
	})
	if err != nil {
		return nil, err
	}

	s.notifyCustomer(booking.CustomerID, "Hủy đặt phòng",
		fmt.Sprintf("Đơn %s đã bị hủy", booking.Code))

	return &booking, nil
}

// DeleteBooking xóa cứng, không đụng trạng thái phòng
// (lối thoát quản trị, chủ đích bỏ qua lifecycle)
func (s *BookingService) DeleteBooking(id uint) error {
	result := s.db.Delete(&models.Booking{}, id)
	if result.Error != nil {
		return errors.NewAppError(errors.ErrCodeDBError, "Không xóa được đặt phòng", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đặt phòng", nil)
	}
	return nil
}

// ConfirmDeposit chuyển Pending sang DepositPaid khi cổng thanh toán
// báo đã thu cọc thành công
func (s *BookingService) ConfirmDeposit(bookingID uint, amount float64) (*models.Booking, error) {
	status := constants.BookingStatusDepositPaid
	return s.UpdateBooking(bookingID, UpdateBookingInput{
		Status:  &status,
		Deposit: &amount,
	})
}

// SweepNoShow đánh dấu NoShow các đơn Pending đã qua ngày nhận phòng
// và trả phòng về trạng thái trống. Chạy bởi cron mỗi đêm.
func (s *BookingService) SweepNoShow(now time.Time) (int, error) {
	var stale []models.Booking
	err := s.db.Preload("Rooms").
		Where("status = ? AND check_in_date < ?", constants.BookingStatusPending, now).
		Find(&stale).Error
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBError, "Lỗi khi quét đơn quá hạn", err)
	}

	marked := 0
	for i := range stale {
		err := s.db.Transaction(func(tx *gorm.DB) error {
			stale[i].Status = constants.BookingStatusNoShow
			if err := tx.Save(&stale[i]).Error; err != nil {
				return err
			}
			return s.syncRoomStatus(tx, &stale[i], constants.BookingStatusNoShow)
		})
		if err != nil {
			if s.logger != nil {
				s.logger.Error("Không đánh dấu được NoShow cho đơn %s: %v", stale[i].Code, err)
			}
			continue
		}
		marked++
		s.notifyCustomer(stale[i].CustomerID, "Đơn quá hạn nhận phòng",
			fmt.Sprintf("Đơn %s đã bị đánh dấu không đến", stale[i].Code))
	}

	return marked, nil
}

// notifyCustomer gửi thông báo đến tài khoản gắn với khách hàng, nếu có
func (s *BookingService) notifyCustomer(customerID uint, message, description string) {
	if s.notifs == nil {
		return
	}
	var account models.User
	if err := s.db.Where("customer_id = ?", customerID).First(&account).Error; err != nil {
		return
	}
	if err := s.notifs.Notify(account.ID, message, description); err != nil && s.logger != nil {
		s.logger.Error("Lỗi khi gửi thông báo: %v", err)
	}
}
