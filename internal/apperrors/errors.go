package apperrors

import (
	"errors"
	"sort"
	"strings"
)

// Transaction validation errors.
var (
	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than zero")
	// ErrEmptyDescription is returned when a description is blank.
	ErrEmptyDescription = errors.New("description must not be empty")
	// ErrInvalidTransactionType is returned for a type other than expense or income.
	ErrInvalidTransactionType = errors.New("type must be expense or income")
	// ErrUnknownCategory is returned when the category id is not in the category set.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrCategoryTypeMismatch is returned when an income uses a non-income category or the reverse.
	ErrCategoryTypeMismatch = errors.New("category cannot be used for this transaction type")
	// ErrPlannedDateNotInFuture is returned when a planned transaction is dated now or earlier.
	ErrPlannedDateNotInFuture = errors.New("planned transactions must be dated in the future")
)

// ErrOperatorStopped is returned when an action is submitted after shutdown.
var ErrOperatorStopped = errors.New("operator stopped")

// ValidationError collects per-field validation failures.
type ValidationError struct {
	Fields map[string]string
	errs   []error
}

func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string]string)}
}

// Add records err against field. The first error for a field wins.
func (e *ValidationError) Add(field string, err error) {
	if _, ok := e.Fields[field]; ok {
		return
	}
	e.Fields[field] = err.Error()
	e.errs = append(e.errs, err)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// ErrOrNil returns e when it holds at least one failure, nil otherwise.
func (e *ValidationError) ErrOrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, len(fields))
	for i, field := range fields {
		parts[i] = field + ": " + e.Fields[field]
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() []error {
	return e.errs
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

// ErrInvalidMonth is returned for a month outside 1-12.
var ErrInvalidMonth = errors.New("month must be between 1 and 12")
