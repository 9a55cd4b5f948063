package errors

import (
	"encoding/json"
	"net/http"
	"strings"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeConflict         ErrorCode = "conflict"

	// Server errors (5xx)
	ErrCodeInternalError      ErrorCode = "internal_error"
	ErrCodeChainError         ErrorCode = "chain_error"
	ErrCodeServiceError       ErrorCode = "service_error"
	ErrCodeServiceUnavailable ErrorCode = "service_unavailable"
)

// MessageChainUnavailable is shown when no survey contract could be read
const MessageChainUnavailable = "No pudimos cargar las encuestas on-chain."

var statusCodes = map[ErrorCode]int{
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeValidationFailed:   http.StatusUnprocessableEntity,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeConflict:           http.StatusConflict,
	ErrCodeInternalError:      http.StatusInternalServerError,
	ErrCodeChainError:         http.StatusBadGateway,
	ErrCodeServiceError:       http.StatusBadGateway,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
}

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// StatusCode returns the HTTP status matching the error code
func (e *APIError) StatusCode() int {
	if status, ok := statusCodes[e.Code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newError(code ErrorCode, message string, details []string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return newError(ErrCodeBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *APIError {
	return newError(ErrCodeNotFound, message, details)
}

func NewValidationError(details ...string) *APIError {
	return newError(ErrCodeValidationFailed, "Validation failed", details)
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return newError(ErrCodeUnauthorized, message, details)
}

func NewConflictError(message string, details ...string) *APIError {
	return newError(ErrCodeConflict, message, details)
}

func NewInternalError(message string, details ...string) *APIError {
	return newError(ErrCodeInternalError, message, details)
}

// NewChainError reports that the chain could not be read, the message is user facing
func NewChainError(details ...string) *APIError {
	return newError(ErrCodeChainError, MessageChainUnavailable, details)
}

func NewServiceError(message string, details ...string) *APIError {
	return newError(ErrCodeServiceError, message, details)
}

func NewServiceUnavailableError(message string, details ...string) *APIError {
	return newError(ErrCodeServiceUnavailable, message, details)
}
