// Package errors provides custom error types for the Investio API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Client errors.
var (
	ErrClientNotFound    = &AppError{Code: "CLIENT_NOT_FOUND", Message: "Client not found", StatusCode: http.StatusNotFound}
	ErrDuplicateDocument = &AppError{Code: "DUPLICATE_DOCUMENT", Message: "A client with this document already exists", StatusCode: http.StatusConflict}
)

// Product catalog errors.
var (
	ErrProductNotFound    = &AppError{Code: "PRODUCT_NOT_FOUND", Message: "Product not found", StatusCode: http.StatusNotFound}
	ErrInvalidProductType = &AppError{Code: "INVALID_PRODUCT_TYPE", Message: "Unrecognized product type", StatusCode: http.StatusBadRequest}
	ErrProductHeld        = &AppError{Code: "PRODUCT_HELD", Message: "Product is referenced by existing investments", StatusCode: http.StatusConflict}
)

// Investment errors.
var (
	ErrInvestmentNotFound     = &AppError{Code: "INVESTMENT_NOT_FOUND", Message: "Investment not found", StatusCode: http.StatusNotFound}
	ErrGuaranteeLimitExceeded = &AppError{Code: "GUARANTEE_LIMIT_EXCEEDED", Message: "Contribution exceeds the deposit guarantee ceiling for this product", StatusCode: http.StatusBadRequest}
	ErrNotRedeemable          = &AppError{Code: "NOT_REDEEMABLE", Message: "Investment cannot be redeemed yet", StatusCode: http.StatusBadRequest}
	ErrAlreadyRedeemed        = &AppError{Code: "ALREADY_REDEEMED", Message: "Investment has already been redeemed", StatusCode: http.StatusBadRequest}
)

// Profiling errors.
var (
	ErrNoHistoryAvailable = &AppError{Code: "NO_HISTORY_AVAILABLE", Message: "Client has no investments or simulations to profile", StatusCode: http.StatusUnprocessableEntity}
)
