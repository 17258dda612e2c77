package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Auth errors
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidToken ErrorCode = "INVALID_TOKEN"
	ErrCodeInvalidRole  ErrorCode = "INVALID_ROLE"

	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidAmount ErrorCode = "INVALID_AMOUNT"
	ErrCodeInvalidEmail  ErrorCode = "INVALID_EMAIL"
	ErrCodeInvalidPhone  ErrorCode = "INVALID_PHONE"

	// Business errors
	ErrCodeConflict          ErrorCode = "CONFLICT"
	ErrCodeNotFound          ErrorCode = "NOT_FOUND"
	ErrCodeNoRoomAvailable   ErrorCode = "NO_ROOM_AVAILABLE"
	ErrCodeInvalidTransition ErrorCode = "INVALID_TRANSITION"
	ErrCodeInvalidOperation  ErrorCode = "INVALID_OPERATION"

	// Database errors
	ErrCodeInternal    ErrorCode = "INTERNAL_ERROR"
	ErrCodeDBError     ErrorCode = "DB_ERROR"
	ErrCodeDBNotFound  ErrorCode = "DB_NOT_FOUND"
	ErrCodeDBDuplicate ErrorCode = "DB_DUPLICATE"
)

// AppError định nghĩa lỗi của ứng dụng, mang theo HTTP status
// để tầng transport trả về nguyên trạng
type AppError struct {
	Code    ErrorCode
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  statusForCode(code),
		Err:     err,
	}
}

func statusForCode(code ErrorCode) int {
	switch code {
	case ErrCodeUnauthorized, ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case ErrCodeNotFound, ErrCodeDBNotFound:
		return http.StatusNotFound
	case ErrCodeConflict, ErrCodeDBDuplicate:
		return http.StatusConflict
	case ErrCodeDBError, ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// IsAppError kiểm tra xem error có phải là AppError không
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// ValidationErrors gom nhiều lỗi validation vào một response,
// dùng khi tạo hóa đơn (báo tất cả vi phạm cùng lúc, không dừng ở lỗi đầu)
type ValidationErrors struct {
	Messages []string
}

func (e *ValidationErrors) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Add thêm một lỗi vào danh sách
func (e *ValidationErrors) Add(message string) {
	e.Messages = append(e.Messages, message)
}

// HasErrors kiểm tra có lỗi hay không
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Messages) > 0
}

// GetValidationErrors lấy ValidationErrors từ error
func GetValidationErrors(err error) *ValidationErrors {
	var vErrs *ValidationErrors
	if errors.As(err, &vErrs) {
		return vErrs
	}
	return nil
}
