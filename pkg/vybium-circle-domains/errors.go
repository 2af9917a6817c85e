package vybiumcircledomains

import (
	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
)

// ErrorCode represents a vybium-circle-domains error code
type ErrorCode = core.ErrorCode

// Error codes returned by this library. All are local, synchronous
// validation failures; none are retryable.
const (
	// ErrUnknown represents an unknown error
	ErrUnknown = core.ErrUnknown

	// ErrUnsupportedModulus indicates the modulus is not prime, not
	// congruent to 3 mod 4, or p+1 is not a power of two
	ErrUnsupportedModulus = core.ErrUnsupportedModulus

	// ErrInvalidPoint indicates coordinates off the circle curve
	ErrInvalidPoint = core.ErrInvalidPoint

	// ErrDivisionByZero indicates an inverse of the additive identity
	ErrDivisionByZero = core.ErrDivisionByZero

	// ErrOrderMismatch indicates a base point of the wrong exact order
	ErrOrderMismatch = core.ErrOrderMismatch

	// ErrDegenerateCoset indicates overlapping twin halves or an
	// involution fixed point in a coset
	ErrDegenerateCoset = core.ErrDegenerateCoset

	// ErrOutOfRange indicates a split or halve outside the source
	// domain's size bounds
	ErrOutOfRange = core.ErrOutOfRange

	// ErrInvalidConfig represents an invalid configuration error
	ErrInvalidConfig = core.ErrInvalidConfig

	// ErrInvalidInput represents an invalid input error
	ErrInvalidInput = core.ErrInvalidInput
)

// DomainError represents a vybium-circle-domains error
type DomainError = core.DomainError
