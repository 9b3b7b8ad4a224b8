package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorTimeout  = 2   // Indicates the operation timed out.
	ExitErrorMismatch = 3   // Indicates a product mismatch between algorithms.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorInput    = 5   // Indicates a malformed operand.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// Arithmetic error kinds. They are never returned bare; an ArithmeticError
// carries them so that callers can match with errors.Is.
var (
	// ErrMalformedInput reports disallowed characters, several decimal
	// points or a misplaced sign in decimal text.
	ErrMalformedInput = errors.New("malformed input")
	// ErrInvalidConstruction reports a decimal point placed outside the
	// provided digits.
	ErrInvalidConstruction = errors.New("invalid construction")
	// ErrInvalidOperandShape reports a multi-digit operand given to a
	// single-digit operation.
	ErrInvalidOperandShape = errors.New("invalid operand shape")
	// ErrDivisionByZero reports a complex division by the zero value.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInternalInvariant reports a broken internal invariant, i.e. a bug.
	ErrInternalInvariant = errors.New("internal invariant violation")
	// ErrPrecisionLoss reports an inverse transform whose coefficients are
	// too far from integers to be rounded safely.
	ErrPrecisionLoss = errors.New("precision loss")
)

// ArithmeticError describes a failed arithmetic operation.
type ArithmeticError struct {
	// Op is the name of the failing operation (e.g., "fixed.Parse").
	Op string
	// Input is the offending operand, if any.
	Input string
	// Kind is one of the Err* sentinels above.
	Kind error
	// Detail is a short human-readable explanation.
	Detail string
}

// Error returns a message of the form "op: kind: detail (input)".
func (e ArithmeticError) Error() string {
	msg := e.Op + ": " + e.Kind.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Input != "" {
		msg += fmt.Sprintf(" (%q)", e.Input)
	}
	return msg
}

// Unwrap returns the error kind.
func (e ArithmeticError) Unwrap() error { return e.Kind }

// NewArithmeticError builds an ArithmeticError with a formatted detail.
func NewArithmeticError(op string, kind error, input, format string, a ...any) error {
	return ArithmeticError{Op: op, Input: input, Kind: kind, Detail: fmt.Sprintf(format, a...)}
}

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CalculationError encapsulates a failed multiplication while preserving the
// original cause.
type CalculationError struct {
	// Algorithm is the multiplier that failed.
	Algorithm string
	// Cause is the underlying error that triggered this calculation error.
	Cause error
}

// Error returns the error message from the underlying cause.
func (e CalculationError) Error() string {
	if e.Algorithm == "" {
		return e.Cause.Error()
	}
	return e.Algorithm + ": " + e.Cause.Error()
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CalculationError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// IsInputError reports whether err stems from a malformed or ill-shaped operand.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMalformedInput) ||
		errors.Is(err, ErrInvalidConstruction) ||
		errors.Is(err, ErrInvalidOperandShape)
}
