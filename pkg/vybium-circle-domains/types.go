package vybiumcircledomains

import (
	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/domains"
)

// FieldElement represents an element in the prime field
// This is the public type for field elements used throughout the library
type FieldElement = core.FieldElement

// Field represents a CFFT-friendly prime field
type Field = core.Field

// CirclePoint represents a point on the circle curve x² + y² = 1
type CirclePoint = core.CirclePoint

// SubgroupChain describes the nested power-of-two subgroups of the
// circle group
type SubgroupChain = domains.SubgroupChain

// SubgroupDescriptor represents one subgroup of the chain
type SubgroupDescriptor = domains.SubgroupDescriptor

// CosetDescriptor represents a twin-coset or standard-position coset
// evaluation domain
type CosetDescriptor = domains.CosetDescriptor

// PointIterator lazily enumerates the points of a subgroup or coset
type PointIterator = domains.PointIterator

// Config represents configuration for domain construction
type Config struct {
	// Field modulus for finite field arithmetic, as a decimal string.
	// Must be an odd prime p with p ≡ 3 (mod 4) and p+1 a power of two.
	FieldModulus string

	// Upper bound on x coordinates tried during generator search
	// (0 = unbounded)
	GeneratorSearchBound int

	// Worker goroutines used when materializing domain points
	MaterializeWorkers int

	// Hash function for descriptor digests ("sha256" or "sha3")
	HashFunction string
}

// DefaultConfig returns a default configuration
// Uses the Mersenne prime M31 = 2^31 - 1, the standard CFFT-friendly field
func DefaultConfig() *Config {
	return &Config{
		FieldModulus:         "2147483647", // 2^31 - 1
		GeneratorSearchBound: 0,
		MaterializeWorkers:   4,
		HashFunction:         "sha3",
	}
}
