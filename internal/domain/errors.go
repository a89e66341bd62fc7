package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is the base error for references to absent entities
	ErrNotFound = errors.New("not found")
	// ErrConflict is the base error for uniqueness and state conflicts
	ErrConflict = errors.New("conflict")
	// ErrValidation is the base error for malformed or out-of-range input
	ErrValidation = errors.New("validation failed")
)

var (
	ErrTableNotFound  = fmt.Errorf("table %w", ErrNotFound)
	ErrPlayerNotFound = fmt.Errorf("player %w", ErrNotFound)
	ErrHandNotFound   = fmt.Errorf("hand %w", ErrNotFound)

	// ErrTableNameTaken is returned when a table with the same name exists
	ErrTableNameTaken = fmt.Errorf("%w: table name already exists", ErrConflict)
	// ErrPlayerNameTaken is returned when a player with the same name exists
	ErrPlayerNameTaken = fmt.Errorf("%w: player name already exists", ErrConflict)
	// ErrPlayerEmailTaken is returned when a player with the same email exists
	ErrPlayerEmailTaken = fmt.Errorf("%w: player email already exists", ErrConflict)
	// ErrHandNumberTaken is returned when the table already has a hand with the same number
	ErrHandNumberTaken = fmt.Errorf("%w: hand number already exists for this table", ErrConflict)
	// ErrHandCompleted is returned when appending an action to a hand at showdown
	ErrHandCompleted = fmt.Errorf("%w: hand is already completed", ErrConflict)
	// ErrHandNotCompleted is returned when settling a hand that has not reached showdown
	ErrHandNotCompleted = fmt.Errorf("%w: hand is not completed", ErrConflict)
)

// FieldError describes a single invalid input field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects every invalid field of a request
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError returns a validation error for a single field
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}

// Add records an invalid field
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// Addf records an invalid field with a formatted message
func (e *ValidationError) Addf(field, format string, args ...any) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// Err returns nil when no field was recorded, so callers can `return v.Err()`
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
