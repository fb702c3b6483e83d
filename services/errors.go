package services

import "errors"

var (
	// ErrNotFound wraps gorm.ErrRecordNotFound at the service boundary so
	// controllers can distinguish "no such record" from a real store failure.
	ErrNotFound = errors.New("record not found")

	// ErrBackwardTransition is returned when a check-in or check-out would
	// move a reservation's status backward.
	ErrBackwardTransition = errors.New("reservation status cannot move backward")
)

// ValidationError carries field-level messages for input that failed schema
// constraints. No write happens when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "validation failed" }

func fieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}
