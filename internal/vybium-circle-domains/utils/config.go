package utils

import (
	"fmt"
	"math/big"
)

// Config represents the configuration for circle domain construction
type Config struct {
	// Field parameters: an odd prime p with p ≡ 3 (mod 4) and p+1 a
	// power of two
	FieldModulus *big.Int

	// Generator search parameters
	GeneratorSearchBound int // Maximum x coordinate tried during generator search (0 = no bound)

	// Materialization parameters
	MaterializeWorkers int // Worker goroutines for parallel point materialization

	// Hash function for descriptor digests
	HashFunction string // "sha256" or "sha3"
}

// DefaultConfig returns a default configuration using the Mersenne prime
// M31 = 2^31 - 1, the standard CFFT-friendly modulus for Circle STARKs
func DefaultConfig() *Config {
	return &Config{
		FieldModulus:         big.NewInt(2147483647), // 2^31 - 1
		GeneratorSearchBound: 0,
		MaterializeWorkers:   4,
		HashFunction:         "sha3",
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.FieldModulus == nil || c.FieldModulus.Cmp(big.NewInt(2)) <= 0 {
		return fmt.Errorf("field modulus must be greater than 2")
	}

	if c.GeneratorSearchBound < 0 {
		return fmt.Errorf("generator search bound must be non-negative")
	}

	if c.MaterializeWorkers <= 0 {
		return fmt.Errorf("materialize workers must be positive")
	}

	if c.HashFunction != "sha256" && c.HashFunction != "sha3" {
		return fmt.Errorf("hash function must be 'sha256' or 'sha3', got '%s'", c.HashFunction)
	}

	return nil
}

// WithFieldModulus sets the field modulus
func (c *Config) WithFieldModulus(modulus *big.Int) *Config {
	c.FieldModulus = new(big.Int).Set(modulus)
	return c
}

// WithGeneratorSearchBound sets the generator search bound
func (c *Config) WithGeneratorSearchBound(bound int) *Config {
	c.GeneratorSearchBound = bound
	return c
}

// WithMaterializeWorkers sets the number of materialization workers
func (c *Config) WithMaterializeWorkers(workers int) *Config {
	c.MaterializeWorkers = workers
	return c
}

// WithHashFunction sets the hash function
func (c *Config) WithHashFunction(hashFunc string) *Config {
	c.HashFunction = hashFunc
	return c
}
