package validator

import (
	"regexp"

	"hotelhub/constants"
	"hotelhub/errors"
	"hotelhub/models"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex    = regexp.MustCompile(`^0\d{9,10}$`)
	identityRegex = regexp.MustCompile(`^\d{9,12}$`)
)

func isValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

func isValidPhone(phone string) bool {
	return phoneRegex.MatchString(phone)
}

// ValidateUser validate thông tin tài khoản
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeValidation, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < 0 || user.Role > 3 {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateCustomer validate hồ sơ khách hàng
func ValidateCustomer(customer *models.Customer) error {
	if customer.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách hàng không được để trống", nil)
	}

	if customer.Email != "" && !isValidEmail(customer.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidEmail, "Email không hợp lệ", nil)
	}

	if customer.PhoneNumber != "" && !isValidPhone(customer.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidPhone, "Số điện thoại không hợp lệ", nil)
	}

	if customer.IdentityNumber != "" && !identityRegex.MatchString(customer.IdentityNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Số giấy tờ không hợp lệ", nil)
	}

	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.Code == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Mã phòng không được để trống", nil)
	}

	if room.RoomTypeID == 0 {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Hạng phòng không được để trống", nil)
	}

	if room.Price < 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá phòng không được âm", nil)
	}

	if err := room.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái phòng không hợp lệ", err)
	}

	return nil
}

// ValidateRoomType validate hạng phòng
func ValidateRoomType(roomType *models.RoomType) error {
	if roomType.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên hạng phòng không được để trống", nil)
	}

	if roomType.Category < constants.RoomCategoryNormal || roomType.Category > constants.RoomCategoryLuxury {
		return errors.NewAppError(errors.ErrCodeValidation, "Hạng phòng không hợp lệ", nil)
	}

	if roomType.BasePrice <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Giá cơ bản phải lớn hơn 0", nil)
	}

	return nil
}

// ValidateService validate dịch vụ
func ValidateService(service *models.HotelService) error {
	if service.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên dịch vụ không được để trống", nil)
	}

	if service.UnitPrice <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidAmount, "Đơn giá dịch vụ phải lớn hơn 0", nil)
	}

	return nil
}
