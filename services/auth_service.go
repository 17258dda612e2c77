package services

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/smtp"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so khớp mật khẩu với hash
func CheckPassword(hashed, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
}

// GenerateOTP sinh mã xác thực 6 số
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// OTPExpired kiểm tra mã OTP đã hết hạn chưa (hiệu lực 10 phút)
func OTPExpired(createdAt time.Time) bool {
	return time.Since(createdAt) > 10*time.Minute
}

func sendMail(to []string, msg []byte) error {
	host := "smtp.gmail.com"
	port := "587"
	from := os.Getenv("EMAIL_FROM")
	password := os.Getenv("EMAIL_PASSWORD")

	auth := smtp.PlainAuth("", from, password, host)
	return smtp.SendMail(host+":"+port, auth, from, to, msg)
}

// SendOTPEmail gửi mã xác thực đặt lại mật khẩu
func SendOTPEmail(email, code string) error {
	msg := []byte("To: " + email + "\r\n" +
		"Subject: Ma xac thuc dat lai mat khau\r\n" +
		"\r\n" +
		"Ma xac thuc cua ban la: " + code + "\r\n" +
		"Ma co hieu luc trong 10 phut.\r\n")
	return sendMail([]string{email}, msg)
}

// SendBookingEmail gửi email xác nhận đặt phòng
func SendBookingEmail(email, bookingCode string, total float64, checkIn, checkOut string) error {
	msg := []byte("To: " + email + "\r\n" +
		"Subject: Xac nhan dat phong " + bookingCode + "\r\n" +
		"\r\n" +
		fmt.Sprintf("Don dat phong %s cua ban da duoc ghi nhan.\r\nNhan phong: %s\r\nTra phong: %s\r\nTong tien du kien: %.0f\r\n",
			bookingCode, checkIn, checkOut, total))
	return sendMail([]string{email}, msg)
}
