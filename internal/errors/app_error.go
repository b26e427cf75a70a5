package errors

import (
	"errors"
	"net/http"
)

// AppError is the single failure shape crossing every store boundary. View
// code reads Message; Code distinguishes the failure classes the stores care
// about (transport vs backend rejection vs local precondition).
type AppError struct {
	Code       string
	Message    string
	Detail     string
	StatusCode int
	Err        error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func (e *AppError) WithDetail(detail string) *AppError {
	e.Detail = detail

	return e
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeServer       = "SERVER_ERROR"
	ErrCodeTransport    = "TRANSPORT_ERROR"
	ErrCodePrecondition = "PRECONDITION_FAILED"
)

func ValidationError(message string) *AppError {
	return NewAppError(ErrCodeValidation, message, http.StatusBadRequest)
}

func BadRequestError(message string) *AppError {
	return NewAppError(ErrCodeBadRequest, message, http.StatusBadRequest)
}

func NotFoundError(message string) *AppError {
	return NewAppError(ErrCodeNotFound, message, http.StatusNotFound)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden)
}

// ServerError covers every 5xx; the backend message is not trusted here.
func ServerError(message string) *AppError {
	return NewAppError(ErrCodeServer, message, http.StatusInternalServerError)
}

// TransportError covers timeouts and connection failures where no response
// arrived at all.
func TransportError(message string) *AppError {
	return NewAppError(ErrCodeTransport, message, 0)
}

// PreconditionError is a local guard failure; no network call was made.
func PreconditionError(message string) *AppError {
	return NewAppError(ErrCodePrecondition, message, 0)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// HasCode reports whether err is an AppError with the given code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)

	return ok && appErr.Code == code
}
