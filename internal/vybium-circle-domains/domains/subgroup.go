// Package domains constructs and manipulates evaluation domains on the
// circle curve x² + y² = 1: the chain of power-of-two subgroups of the
// circle group, twin-cosets, and standard-position cosets, plus the
// decomposition and halving transforms the outer prover applies to them.
package domains

import (
	"math/big"
	"sync"

	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
)

// SubgroupChain describes the nested chain G_0 ⊂ G_1 ⊂ ... ⊂ G_m of
// cyclic subgroups of the circle group, where |G_k| = 2^k and
// G_m is the full group of order p+1 = 2^m. The chain is represented by
// a single generator of the full group; every G_k is derived from it by
// exponentiation, never materialized.
//
// A chain is immutable once built and safe for concurrent use.
type SubgroupChain struct {
	field     *core.Field
	generator *core.CirclePoint
}

// Chain cache: one chain per modulus, computed at most once
// (compute-once, read-many).
var (
	chainCacheMu sync.Mutex
	chainCache   = make(map[string]*SubgroupChain)
)

// SubgroupChainFor returns the cached chain for the field, building it on
// first use
func SubgroupChainFor(field *core.Field) (*SubgroupChain, error) {
	key := field.Modulus().String()

	chainCacheMu.Lock()
	defer chainCacheMu.Unlock()

	if chain, ok := chainCache[key]; ok {
		return chain, nil
	}

	chain, err := BuildSubgroupChain(field)
	if err != nil {
		return nil, err
	}
	chainCache[key] = chain
	return chain, nil
}

// BuildSubgroupChain finds a generator of the full circle group and
// returns the chain it spans.
//
// The search is deterministic: x coordinates are tried in increasing
// order 0, 1, 2, ...; for each x with 1−x² a quadratic residue, the
// canonical square root gives a candidate point whose order is verified
// by repeated squaring. The first candidate of exact order 2^m wins.
// Half of all circle group elements are generators, so the search
// terminates quickly in practice.
func BuildSubgroupChain(field *core.Field) (*SubgroupChain, error) {
	return BuildSubgroupChainBounded(field, 0)
}

// BuildSubgroupChainBounded is BuildSubgroupChain with an upper bound on
// the x coordinates tried (0 means no bound). A bound turns an
// exhaustive search over an unsuitable parameter set into a fast failure.
func BuildSubgroupChainBounded(field *core.Field, searchBound int) (*SubgroupChain, error) {
	m := field.TwoAdicity()
	one := field.One()
	modulus := field.Modulus()
	bound := new(big.Int).Set(modulus)
	if searchBound > 0 {
		candidate := big.NewInt(int64(searchBound))
		if candidate.Cmp(bound) < 0 {
			bound = candidate
		}
	}

	for xVal := big.NewInt(0); xVal.Cmp(bound) < 0; xVal.Add(xVal, big.NewInt(1)) {
		x := field.NewElement(xVal)
		ySquared := one.Sub(x.Square())
		y, err := ySquared.Sqrt()
		if err != nil {
			// 1-x² is a non-residue; no point with this x coordinate
			continue
		}

		candidate, err := core.NewCirclePoint(x, y)
		if err != nil {
			return nil, err
		}

		logOrder, err := candidate.OrderLog2()
		if err != nil {
			return nil, err
		}
		if logOrder == m {
			return &SubgroupChain{field: field, generator: candidate}, nil
		}
	}

	return nil, core.NewError(core.ErrUnsupportedModulus,
		"no circle group generator found for modulus %s within bound", modulus)
}

// NewSubgroupChainFromGenerator builds a chain from a caller-supplied
// candidate generator, verifying that its order is exactly p+1.
// Returns ErrOrderMismatch if the candidate does not generate the full
// group.
func NewSubgroupChainFromGenerator(field *core.Field, g *core.CirclePoint) (*SubgroupChain, error) {
	logOrder, err := g.OrderLog2()
	if err != nil {
		return nil, err
	}
	if logOrder != field.TwoAdicity() {
		return nil, core.NewError(core.ErrOrderMismatch,
			"candidate generator %s has order 2^%d, need 2^%d", g, logOrder, field.TwoAdicity())
	}
	return &SubgroupChain{field: field, generator: g}, nil
}

// Field returns the field the chain is defined over
func (c *SubgroupChain) Field() *core.Field {
	return c.field
}

// Generator returns the generator of the full circle group
func (c *SubgroupChain) Generator() *core.CirclePoint {
	return c.generator
}

// TwoAdicity returns m where the full group has order 2^m
func (c *SubgroupChain) TwoAdicity() int {
	return c.field.TwoAdicity()
}

// Subgroup returns the descriptor of G_k, the unique subgroup of order
// 2^k, generated by g^(2^(m-k)). Returns ErrOutOfRange unless 0 ≤ k ≤ m.
func (c *SubgroupChain) Subgroup(k int) (*SubgroupDescriptor, error) {
	m := c.field.TwoAdicity()
	if k < 0 || k > m {
		return nil, core.NewError(core.ErrOutOfRange, "subgroup index %d outside [0, %d]", k, m)
	}

	exponent := new(big.Int).Lsh(big.NewInt(1), uint(m-k))
	return &SubgroupDescriptor{
		field:     c.field,
		generator: c.generator.Pow(exponent),
		logOrder:  k,
	}, nil
}

// SubgroupDescriptor represents G_k compactly as a generator plus its
// log-order; the 2^k elements are only produced on demand
type SubgroupDescriptor struct {
	field     *core.Field
	generator *core.CirclePoint
	logOrder  int
}

// Generator returns the subgroup generator
func (s *SubgroupDescriptor) Generator() *core.CirclePoint {
	return s.generator
}

// LogOrder returns k where the subgroup has order 2^k
func (s *SubgroupDescriptor) LogOrder() int {
	return s.logOrder
}

// Order returns the subgroup order 2^k
func (s *SubgroupDescriptor) Order() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(s.logOrder))
}

// Contains reports whether the point lies in the subgroup. Membership in
// G_k is an order check: the circle group is cyclic, so p ∈ G_k iff
// the order of p divides 2^k.
func (s *SubgroupDescriptor) Contains(p *core.CirclePoint) bool {
	logOrder, err := p.OrderLog2()
	if err != nil {
		return false
	}
	return logOrder <= s.logOrder
}

// Points returns a lazy iterator over the subgroup elements, starting at
// the identity
func (s *SubgroupDescriptor) Points() *PointIterator {
	return newPointIterator(s.generator, core.Identity(s.field))
}

// Elements materializes all 2^k subgroup elements. Returns ErrOutOfRange
// for subgroups too large to hold in memory; use Points for those.
func (s *SubgroupDescriptor) Elements() ([]*core.CirclePoint, error) {
	if s.logOrder > maxMaterializeLog {
		return nil, core.NewError(core.ErrOutOfRange,
			"subgroup of order 2^%d is too large to materialize", s.logOrder)
	}
	return core.Walk(core.Identity(s.field), s.generator, 1<<uint(s.logOrder)), nil
}
