package controllers

import (
	"context"
	"log"
	"os"
	"time"

	"hotelhub/config"
	"hotelhub/dto"
	"hotelhub/models"
	"hotelhub/response"
	"hotelhub/services"
	"hotelhub/validator"

	"github.com/gin-gonic/gin"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

func toUserLoginResponse(user *models.User, token string) dto.UserLoginResponse {
	return dto.UserLoginResponse{
		UserID:     user.ID,
		Code:       user.Code,
		UserName:   user.Name,
		UserEmail:  user.Email,
		UserPhone:  user.PhoneNumber,
		UserRole:   user.Role,
		IsVerified: user.IsVerified,
		CustomerID: user.CustomerID,
		CreatedAt:  user.CreatedAt,
		Token:      token,
	}
}

// linkCustomerProfile tạo hồ sơ khách hàng với mã tuần tự và gắn vào
// tài khoản. Trả về ID hồ sơ vừa tạo.
func linkCustomerProfile(db *gorm.DB, user *models.User) (uint, error) {
	var customerID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		code, err := services.NextCode(tx, &models.Customer{}, services.CustomerCodePrefix)
		if err != nil {
			return err
		}
		customer := models.Customer{
			Code:        code,
			Name:        user.Name,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
		}
		if err := tx.Create(&customer).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("customer_id", customer.ID).Error; err != nil {
			return err
		}
		customerID = customer.ID
		return nil
	})
	return customerID, err
}

// Register đăng ký tài khoản khách. Tài khoản được tạo trước, hồ sơ
// khách hàng gắn kèm tạo sau: lỗi ở bước hồ sơ chỉ ghi log, việc
// đăng ký vẫn thành công.
func Register(c *gin.Context) {
	var input dto.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        0,
	}
	if err := validator.ValidateUser(&user); err != nil {
		response.FromError(c, err)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		response.Conflict(c, "Email đã được đăng ký")
		return
	}

	hashed, err := services.HashPassword(input.Password)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = hashed

	userCode, err := services.NextCode(config.DB, &models.User{}, services.StaffCodePrefix)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Code = userCode
	if err := config.DB.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	if customerID, err := linkCustomerProfile(config.DB, &user); err != nil {
		log.Printf("Lỗi khi tạo hồ sơ khách hàng cho tài khoản %s: %v", user.Code, err)
	} else {
		user.CustomerID = &customerID
	}

	token, err := services.CreateToken(user.ID, user.Role)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserLoginResponse(&user, token))
}

// Login đăng nhập bằng email hoặc số điện thoại
func Login(c *gin.Context) {
	var input dto.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	err := config.DB.
		Where("email = ? OR phone_number = ?", input.Identifier, input.Identifier).
		First(&user).Error
	if err != nil {
		response.Unauthorized(c)
		return
	}

	if err := services.CheckPassword(user.Password, input.Password); err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := services.CreateToken(user.ID, user.Role)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserLoginResponse(&user, token))
}

// AuthGoogle đăng nhập bằng Google ID token, chưa có tài khoản thì tạo mới
func AuthGoogle(c *gin.Context) {
	var input dto.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	payload, err := idtoken.Validate(context.Background(), input.IDToken, os.Getenv("GOOGLE_CLIENT_ID"))
	if err != nil {
		response.Unauthorized(c)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified {
		response.BadRequest(c, "Email Google chưa được xác thực")
		return
	}

	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error == gorm.ErrRecordNotFound {
		userCode, err := services.NextCode(config.DB, &models.User{}, services.StaffCodePrefix)
		if err != nil {
			response.ServerError(c)
			return
		}
		user = models.User{
			Code:       userCode,
			Name:       name,
			Email:      email,
			Role:       0,
			IsVerified: true,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			response.ServerError(c)
			return
		}

		if customerID, err := linkCustomerProfile(config.DB, &user); err != nil {
			log.Printf("Lỗi khi tạo hồ sơ khách hàng cho tài khoản %s: %v", user.Code, err)
		} else {
			user.CustomerID = &customerID
		}
	} else if result.Error != nil {
		response.ServerError(c)
		return
	}

	token, err := services.CreateToken(user.ID, user.Role)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, toUserLoginResponse(&user, token))
}

// ForgetPassword gửi mã OTP đặt lại mật khẩu qua email
func ForgetPassword(c *gin.Context) {
	var input dto.ForgetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	otp, err := services.GenerateOTP()
	if err != nil {
		response.ServerError(c)
		return
	}

	user.OtpCode = otp
	user.OtpCreatedAt = time.Now()
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	if err := services.SendOTPEmail(user.Email, otp); err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"mess": "Đã gửi mã xác thực qua email"})
}

// ResetPassword đặt lại mật khẩu với mã OTP đã gửi
func ResetPassword(c *gin.Context) {
	var input dto.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		response.NotFound(c)
		return
	}

	if user.OtpCode == "" || user.OtpCode != input.Code {
		response.BadRequest(c, "Mã xác thực không đúng")
		return
	}
	if services.OTPExpired(user.OtpCreatedAt) {
		response.BadRequest(c, "Mã xác thực đã hết hạn")
		return
	}
	if len(input.NewPassword) < 6 {
		response.BadRequest(c, "Mật khẩu phải có ít nhất 6 ký tự")
		return
	}

	hashed, err := services.HashPassword(input.NewPassword)
	if err != nil {
		response.ServerError(c)
		return
	}

	user.Password = hashed
	user.OtpCode = ""
	if err := config.DB.Save(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, gin.H{"mess": "Đổi mật khẩu thành công"})
}

// GetMe trả về thông tin tài khoản đang đăng nhập
func GetMe(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := config.DB.Preload("Customer").Preload("Position").First(&user, userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserLoginResponse(&user, ""))
}
