package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode представляет код ошибки
type ErrorCode string

const (
	ErrCodeInternal      ErrorCode = "INTERNAL_ERROR"
	ErrCodeBadRequest    ErrorCode = "BAD_REQUEST"
	ErrCodeNotFound      ErrorCode = "NOT_FOUND"
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	ErrCodeCacheError    ErrorCode = "CACHE_ERROR"
	ErrCodeTransfer      ErrorCode = "TRANSFER_ERROR"
)

// AppError представляет типизированную ошибку приложения
type AppError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// PublicMessage is what the caller sees in the "error" field of a failure
// response. The cause's text is passed through as is.
func (e *AppError) PublicMessage() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

// HTTPStatus maps the error code onto a response status.
func (e *AppError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeTransfer:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (e *AppError) IsInternal() bool {
	return e.HTTPStatus() >= http.StatusInternalServerError
}

// WithDetail добавляет детальную информацию к ошибке
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

func NewBadRequestError(err error) *AppError {
	return Wrap(err, ErrCodeBadRequest, "Invalid request body")
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("id", id)
}

// NewDatabaseError создает ошибку базы данных
func NewDatabaseError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeDatabaseError, fmt.Sprintf("Database operation failed: %s", operation)).
		WithDetail("operation", operation)
}

// NewCacheError создает ошибку кэша
func NewCacheError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeCacheError, fmt.Sprintf("Cache operation failed: %s", operation)).
		WithDetail("operation", operation)
}

func NewTransferError(address string, err error) *AppError {
	return Wrap(err, ErrCodeTransfer, "Transfer initiation failed").
		WithDetail("wallet_address", address)
}

// AsAppError finds an AppError anywhere in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
