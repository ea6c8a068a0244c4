package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Is matches on the status code so callers can assert the error kind
// with errors.Is regardless of the localized message.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Code == appErr.Code
}

// Common errors
var (
	ErrNotFound           = &AppError{Code: http.StatusNotFound, Message: "Không tìm thấy dữ liệu"}
	ErrUnauthorized       = &AppError{Code: http.StatusUnauthorized, Message: "Chưa đăng nhập hoặc phiên đã hết hạn"}
	ErrForbidden          = &AppError{Code: http.StatusForbidden, Message: "Bạn không có quyền thực hiện thao tác này"}
	ErrBadRequest         = &AppError{Code: http.StatusBadRequest, Message: "Dữ liệu không hợp lệ"}
	ErrInternalServer     = &AppError{Code: http.StatusInternalServerError, Message: "Lỗi hệ thống"}
	ErrConflict           = &AppError{Code: http.StatusConflict, Message: "Dữ liệu đã tồn tại"}
	ErrUnavailable        = &AppError{Code: http.StatusServiceUnavailable, Message: "Hệ thống tạm thời không phản hồi, vui lòng thử lại"}
	ErrInvalidCredentials = &AppError{Code: http.StatusUnauthorized, Message: "Tên đăng nhập hoặc mật khẩu không chính xác"}
	ErrInvalidToken       = &AppError{Code: http.StatusUnauthorized, Message: "Token không hợp lệ"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// NewConflictError creates a conflict error with a custom message
func NewConflictError(message string) *AppError {
	return &AppError{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
