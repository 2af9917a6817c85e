package core

import "fmt"

// ErrorCode represents a vybium-circle-domains error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrUnsupportedModulus indicates the modulus is not prime, not
	// congruent to 3 mod 4, or p+1 is not a power of two
	ErrUnsupportedModulus

	// ErrInvalidPoint indicates coordinates that do not satisfy x²+y²=1
	ErrInvalidPoint

	// ErrDivisionByZero indicates an inverse of the additive identity
	ErrDivisionByZero

	// ErrOrderMismatch indicates a base point whose order does not match
	// what a coset construction requires
	ErrOrderMismatch

	// ErrDegenerateCoset indicates a twin-coset whose halves overlap or
	// that contains a fixed point of the involution
	ErrDegenerateCoset

	// ErrOutOfRange indicates a split or halve request outside the source
	// domain's size bounds
	ErrOutOfRange

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig

	// ErrInvalidInput represents an invalid input error
	ErrInvalidInput
)

// DomainError represents a vybium-circle-domains error
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error returns the error message
func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-circle-domains error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-circle-domains error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a DomainError with a formatted message
func NewError(code ErrorCode, format string, args ...interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates a DomainError that wraps a cause
func WrapError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
