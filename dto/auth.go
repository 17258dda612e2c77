package dto

import "time"

type RegisterInput struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

type ForgetPasswordInput struct {
	Email string `json:"email" binding:"required"`
}

type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type UserLoginResponse struct {
	UserID     uint      `json:"id"`
	Code       string    `json:"code"`
	UserName   string    `json:"name"`
	UserEmail  string    `json:"email"`
	UserPhone  string    `json:"phone"`
	UserRole   int       `json:"role"`
	IsVerified bool      `json:"verified"`
	CustomerID *uint     `json:"customerId,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	Token      string    `json:"token,omitempty"`
}
