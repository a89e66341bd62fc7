package errors

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/poker-hand-logger/internal/domain"
	"github.com/feral-file/poker-hand-logger/internal/logger"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeTooManyRequests  ErrorCode = "too_many_requests"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
)

// FieldError is a single failed input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// APIError represents a structured API error that carries error code and details
type APIError struct {
	Code             ErrorCode    `json:"code"`
	Message          string       `json:"message"`
	Details          string       `json:"details,omitempty"`
	ValidationErrors []FieldError `json:"validationErrors,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeBadRequest,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeNotFound,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeConflict,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// NewValidationError builds a validation error listing every failed field
func NewValidationError(fields ...FieldError) *APIError {
	return &APIError{
		Code:             ErrCodeValidationFailed,
		Message:          "Validation failed",
		ValidationErrors: fields,
	}
}

func NewTooManyRequestsError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeTooManyRequests,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeInternalError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:    ErrCodeDatabaseError,
		Message: message,
		Details: strings.Join(details, ", "),
	}
}

// FromDomain converts an error returned by the domain or store layer into an APIError.
// action names the failed operation for internal errors (e.g., "create hand").
// Unrecognized errors are logged and never copied into the response.
func FromDomain(ctx context.Context, err error, action string) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		fields := make([]FieldError, 0, len(vErr.Fields))
		for _, f := range vErr.Fields {
			fields = append(fields, FieldError{Field: f.Field, Message: f.Message})
		}
		return NewValidationError(fields...)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(capitalize(err.Error()))
	case errors.Is(err, domain.ErrConflict):
		return NewConflictError(capitalize(strings.TrimPrefix(err.Error(), domain.ErrConflict.Error()+": ")))
	case errors.Is(err, domain.ErrValidation):
		return NewValidationError(FieldError{Message: err.Error()})
	default:
		logger.ErrorCtx(ctx, err, zap.String("action", action))
		return NewDatabaseError(fmt.Sprintf("Failed to %s", action))
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
