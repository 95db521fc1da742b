// Package errors provides consistent error types for the Growthlog CLI.
// Two categories exist: UserError (fixable by the user, including
// contract/precondition violations) and SystemError (storage or I/O
// failures the user cannot directly fix). Empty results are never
// errors; they surface as zero values.
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrUserNotInitialized = errors.New("user not initialized")
	ErrEntryNotFound      = errors.New("entry not found")
	ErrGoalNotFound       = errors.New("goal not found")
	ErrInvalidCategory    = errors.New("invalid category")
	ErrInvalidMood        = errors.New("invalid mood")
	ErrInvalidStreakType  = errors.New("invalid streak type")
	ErrInvalidDayKey      = errors.New("invalid date (use YYYY-MM-DD)")
	ErrInvalidTargetDays  = errors.New("target days must be positive")
	ErrInvalidGraceDays   = errors.New("grace days cannot be negative")
	ErrGoalArchived       = errors.New("goal is archived")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, missing required arguments, incorrect format.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
}

func (e *UserError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return e.Message
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// SystemError represents a system-level error that the user cannot
// directly fix. Examples: disk full, database corruption.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{Message: message, Cause: cause}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{Message: message, Cause: cause, Op: op}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// Suggestion returns the fix suggestion attached to an error, or "".
func Suggestion(err error) string {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.Suggestion
	}
	return ""
}

// Wrap annotates a storage-layer failure with the failing operation.
// A nil err returns nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return NewSystemErrorWithOp(op, "storage operation failed", err)
}
