package validator

import (
	"testing"

	"hotelhub/errors"
	"hotelhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUser(t *testing.T) {
	valid := models.User{
		Email:       "nhanvien@example.com",
		Password:    "matkhau123",
		PhoneNumber: "0912345678",
		Role:        3,
	}
	assert.NoError(t, ValidateUser(&valid))

	cases := []struct {
		name string
		user models.User
		code errors.ErrorCode
	}{
		{
			name: "thiếu email",
			user: models.User{Password: "matkhau123"},
			code: errors.ErrCodeRequiredField,
		},
		{
			name: "email sai định dạng",
			user: models.User{Email: "khong-phai-email", Password: "matkhau123"},
			code: errors.ErrCodeInvalidEmail,
		},
		{
			name: "mật khẩu ngắn",
			user: models.User{Email: "a@b.com", Password: "123"},
			code: errors.ErrCodeValidation,
		},
		{
			name: "số điện thoại sai",
			user: models.User{Email: "a@b.com", Password: "matkhau123", PhoneNumber: "12345"},
			code: errors.ErrCodeInvalidPhone,
		},
		{
			name: "role ngoài khoảng",
			user: models.User{Email: "a@b.com", Password: "matkhau123", Role: 9},
			code: errors.ErrCodeInvalidRole,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateUser(&tc.user)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, tc.code, appErr.Code)
		})
	}
}

func TestValidateCustomer(t *testing.T) {
	valid := models.Customer{
		Name:           "Nguyễn Văn A",
		Email:          "khach@example.com",
		PhoneNumber:    "0987654321",
		IdentityNumber: "012345678901",
	}
	assert.NoError(t, ValidateCustomer(&valid))

	// Email và số điện thoại không bắt buộc với khách vãng lai
	walkIn := models.Customer{Name: "Khách Vãng Lai"}
	assert.NoError(t, ValidateCustomer(&walkIn))

	missing := models.Customer{}
	err := ValidateCustomer(&missing)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeRequiredField, errors.GetAppError(err).Code)

	badIdentity := models.Customer{Name: "A", IdentityNumber: "abc"}
	err = ValidateCustomer(&badIdentity)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetAppError(err).Code)
}

func TestValidateRoom(t *testing.T) {
	valid := models.Room{Code: "P101", RoomTypeID: 1, Price: 500}
	assert.NoError(t, ValidateRoom(&valid))

	noCode := models.Room{RoomTypeID: 1}
	assert.Error(t, ValidateRoom(&noCode))

	noType := models.Room{Code: "P101"}
	assert.Error(t, ValidateRoom(&noType))

	negativePrice := models.Room{Code: "P101", RoomTypeID: 1, Price: -1}
	assert.Error(t, ValidateRoom(&negativePrice))

	badStatus := models.Room{Code: "P101", RoomTypeID: 1, Status: 9}
	assert.Error(t, ValidateRoom(&badStatus))
}

func TestValidateRoomType(t *testing.T) {
	valid := models.RoomType{Name: "Phòng đôi", Category: 1, BasePrice: 800}
	assert.NoError(t, ValidateRoomType(&valid))

	badCategory := models.RoomType{Name: "Phòng lạ", Category: 7, BasePrice: 800}
	assert.Error(t, ValidateRoomType(&badCategory))

	freePrice := models.RoomType{Name: "Phòng đôi", Category: 1}
	assert.Error(t, ValidateRoomType(&freePrice))
}

func TestValidateService(t *testing.T) {
	valid := models.HotelService{Name: "Giặt ủi", UnitPrice: 50}
	assert.NoError(t, ValidateService(&valid))

	assert.Error(t, ValidateService(&models.HotelService{UnitPrice: 50}))
	assert.Error(t, ValidateService(&models.HotelService{Name: "Giặt ủi"}))
}
