// Package errors defines the application error taxonomy surfaced at the
// delivery boundary: validation failures, service-call failures and
// not-found conditions.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information.
// The copy still matches the original with errors.Is.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches errors sharing the same business code, so that copies made by
// WithDetails compare equal to the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// Validation errors. They are returned before any external service is contacted.
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please check the submitted data.",
		"",
	)

	ErrPhoneInvalid = NewBaseError(
		http.StatusBadRequest,
		"PHONE_INVALID",
		"Please enter a valid 10-digit phone number.",
		"",
	)

	ErrOTPInvalid = NewBaseError(
		http.StatusBadRequest,
		"OTP_INVALID",
		"Please enter a valid 6-digit OTP.",
		"",
	)

	ErrProfileFieldsMissing = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_FIELDS_MISSING",
		"Please fill in all fields.",
		"",
	)

	ErrProductFieldsMissing = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_FIELDS_MISSING",
		"Please fill in all required fields.",
		"",
	)

	ErrOrderFieldsMissing = NewBaseError(
		http.StatusBadRequest,
		"ORDER_FIELDS_MISSING",
		"Please select a user, a product, and enter a quantity.",
		"",
	)

	ErrProductNotSelected = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_NOT_SELECTED",
		"Please select a product.",
		"",
	)

	ErrQuantityInvalid = NewBaseError(
		http.StatusBadRequest,
		"QUANTITY_INVALID",
		"Please enter a valid quantity.",
		"",
	)

	ErrDeliveryDateInvalid = NewBaseError(
		http.StatusBadRequest,
		"DELIVERY_DATE_INVALID",
		"Delivery date must be tomorrow or later.",
		"",
	)

	ErrStatusInvalid = NewBaseError(
		http.StatusBadRequest,
		"STATUS_INVALID",
		"Unknown order status.",
		"",
	)

	ErrPaymentInvalid = NewBaseError(
		http.StatusBadRequest,
		"PAYMENT_INVALID",
		"Payment must be paid or unpaid.",
		"",
	)

	ErrNothingToExport = NewBaseError(
		http.StatusUnprocessableEntity,
		"NOTHING_TO_EXPORT",
		"There are no orders matching the current filters to download.",
		"",
	)

	// ErrNothingToInvoice shares the NOTHING_TO_EXPORT code with ErrNothingToExport.
	ErrNothingToInvoice = NewBaseError(
		http.StatusUnprocessableEntity,
		"NOTHING_TO_EXPORT",
		"There are no orders for the selected date to include in the invoice.",
		"",
	)
)

// Authentication errors.
var (
	ErrOTPIncorrect = NewBaseError(
		http.StatusUnauthorized,
		"OTP_INCORRECT",
		"The code you entered was incorrect. Please try again.",
		"",
	)

	ErrOTPExpired = NewBaseError(
		http.StatusUnauthorized,
		"OTP_EXPIRED",
		"The verification code has expired. Please request a new one.",
		"",
	)

	ErrOTPRateLimited = NewBaseError(
		http.StatusTooManyRequests,
		"OTP_RATE_LIMITED",
		"Too many verification requests. Please wait before trying again.",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token.",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied.",
		"",
	)
)

// Not-found errors.
var (
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found.",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found.",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found.",
		"",
	)

	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"Device not found.",
		"",
	)

	ErrExportNotFound = NewBaseError(
		http.StatusNotFound,
		"EXPORT_NOT_FOUND",
		"The requested document is no longer available.",
		"",
	)
)

// Service-call errors.
var (
	ErrServiceUnavailable = NewBaseError(
		http.StatusBadGateway,
		"SERVICE_UNAVAILABLE",
		"An external service failed. Please try again.",
		"",
	)

	ErrRenderFailed = NewBaseError(
		http.StatusInternalServerError,
		"RENDER_FAILED",
		"Could not generate the PDF.",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
