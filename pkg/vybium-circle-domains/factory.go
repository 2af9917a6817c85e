package vybiumcircledomains

import (
	"math/big"

	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/domains"
	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/utils"
)

// DomainFactory is the public interface for constructing and reshaping
// circle evaluation domains over one field configuration
type DomainFactory interface {
	// Field returns the underlying prime field
	Field() *Field

	// Chain returns the subgroup chain G_0 ⊂ G_1 ⊂ ... ⊂ G_m
	Chain() *SubgroupChain

	// TwinCoset builds the twin-coset Q·G_{n-1} ∪ Q⁻¹·G_{n-1} of size 2^n
	TwinCoset(q *CirclePoint, n int) (*CosetDescriptor, error)

	// StandardPositionCoset builds the standard-position coset Q·G_n of size 2^n
	StandardPositionCoset(q *CirclePoint, n int) (*CosetDescriptor, error)

	// Split decomposes a standard-position coset into twin-cosets of size 2^n
	Split(d *CosetDescriptor, n int) ([]*CosetDescriptor, error)

	// Halve applies the squaring endomorphism to shrink a domain by one power of two
	Halve(d *CosetDescriptor) (*CosetDescriptor, error)

	// DomainDigest returns the canonical transcript digest of a descriptor
	DomainDigest(d *CosetDescriptor) []byte

	// MaterializeDomain returns all points of a domain, using the
	// configured worker parallelism
	MaterializeDomain(d *CosetDescriptor) ([]*CirclePoint, error)
}

// factoryImpl is the internal implementation of DomainFactory
type factoryImpl struct {
	field  *core.Field
	chain  *domains.SubgroupChain
	config *utils.Config
}

// NewDomainFactory creates a domain factory with the given configuration.
// The subgroup chain for the configured modulus is built eagerly (and
// cached per modulus), so construction fails fast on an unsupported field.
func NewDomainFactory(config *Config) (DomainFactory, error) {
	// Parse field modulus
	modulus := new(big.Int)
	if _, ok := modulus.SetString(config.FieldModulus, 10); !ok {
		return nil, &DomainError{
			Code:    ErrInvalidConfig,
			Message: "invalid field modulus",
		}
	}

	internalConfig := utils.DefaultConfig().
		WithFieldModulus(modulus).
		WithGeneratorSearchBound(config.GeneratorSearchBound).
		WithMaterializeWorkers(config.MaterializeWorkers).
		WithHashFunction(config.HashFunction)
	if err := internalConfig.Validate(); err != nil {
		return nil, &DomainError{
			Code:    ErrInvalidConfig,
			Message: "invalid configuration: " + err.Error(),
			Cause:   err,
		}
	}

	field, err := core.NewField(modulus)
	if err != nil {
		return nil, err
	}

	var chain *domains.SubgroupChain
	if internalConfig.GeneratorSearchBound > 0 {
		chain, err = domains.BuildSubgroupChainBounded(field, internalConfig.GeneratorSearchBound)
	} else {
		chain, err = domains.SubgroupChainFor(field)
	}
	if err != nil {
		return nil, err
	}

	return &factoryImpl{
		field:  field,
		chain:  chain,
		config: internalConfig,
	}, nil
}

// Field returns the underlying prime field
func (f *factoryImpl) Field() *Field {
	return f.field
}

// Chain returns the subgroup chain
func (f *factoryImpl) Chain() *SubgroupChain {
	return f.chain
}

// TwinCoset builds a twin-coset domain
func (f *factoryImpl) TwinCoset(q *CirclePoint, n int) (*CosetDescriptor, error) {
	return domains.TwinCoset(q, n, f.chain)
}

// StandardPositionCoset builds a standard-position coset domain
func (f *factoryImpl) StandardPositionCoset(q *CirclePoint, n int) (*CosetDescriptor, error) {
	return domains.StandardPositionCoset(q, n, f.chain)
}

// Split decomposes a standard-position coset into twin-cosets
func (f *factoryImpl) Split(d *CosetDescriptor, n int) ([]*CosetDescriptor, error) {
	return domains.Split(d, n)
}

// Halve shrinks a domain by one power of two
func (f *factoryImpl) Halve(d *CosetDescriptor) (*CosetDescriptor, error) {
	return domains.Halve(d)
}

// DomainDigest returns the canonical transcript digest of a descriptor
func (f *factoryImpl) DomainDigest(d *CosetDescriptor) []byte {
	return d.Digest(f.config.HashFunction)
}

// MaterializeDomain returns all points of a domain using the configured
// worker parallelism
func (f *factoryImpl) MaterializeDomain(d *CosetDescriptor) ([]*CirclePoint, error) {
	return d.ParallelElements(f.config.MaterializeWorkers)
}
