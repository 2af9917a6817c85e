package domains

import (
	"fmt"
	"math/big"

	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/utils"
)

// maxMaterializeLog bounds eager materialization; larger domains must be
// consumed through the lazy iterator
const maxMaterializeLog = 30

// CosetDescriptor represents an evaluation domain of size 2^n on the
// circle curve: the twin-coset Q·G_{n-1} ∪ Q⁻¹·G_{n-1}, which for an
// initial point of exact order 2^(n+1) simultaneously equals the
// standard-position coset Q·G_n.
//
// Descriptors are immutable values; Split and Halve produce new
// descriptors rather than mutating their input.
type CosetDescriptor struct {
	chain    *SubgroupChain
	initial  *core.CirclePoint
	logSize  int
	standard bool
}

// TwinCoset builds the twin-coset Q·G_{n-1} ∪ Q⁻¹·G_{n-1} of size 2^n.
//
// Preconditions: n ≥ 1 (G_{n-1} must exist; for n = 0 the only order-2
// candidates are the involution fixed points, which are always
// degenerate), and q must have order exactly 2^(n+1), reported as
// ErrOrderMismatch otherwise. Violations of the disjointness or
// no-fixed-point invariants are reported as ErrDegenerateCoset.
func TwinCoset(q *core.CirclePoint, n int, chain *SubgroupChain) (*CosetDescriptor, error) {
	if err := checkInitialOrder(q, n, chain); err != nil {
		return nil, err
	}
	return newTwinCoset(q, n, chain, false)
}

// StandardPositionCoset builds the standard-position coset Q·G_n of size
// 2^n. The preconditions are those of TwinCoset: a standard-position
// coset of size 2^n is exactly a twin-coset over G_{n-1} whose initial
// point has order 2^(n+1), and the returned descriptor enumerates it
// through the two twin halves, so the set equality with TwinCoset holds
// by construction.
func StandardPositionCoset(q *core.CirclePoint, n int, chain *SubgroupChain) (*CosetDescriptor, error) {
	if err := checkInitialOrder(q, n, chain); err != nil {
		return nil, err
	}
	return newTwinCoset(q, n, chain, true)
}

// checkInitialOrder enforces the exact-order precondition of the public
// constructors: order(q) = 2^(n+1)
func checkInitialOrder(q *core.CirclePoint, n int, chain *SubgroupChain) error {
	if !q.Field().Equals(chain.Field()) {
		return core.NewError(core.ErrInvalidInput, "initial point and chain use different moduli")
	}
	logOrder, err := q.OrderLog2()
	if err != nil {
		return err
	}
	if logOrder != n+1 {
		return core.NewError(core.ErrOrderMismatch,
			"initial point %s has order 2^%d, coset of size 2^%d requires order 2^%d", q, logOrder, n, n+1)
	}
	return nil
}

// newTwinCoset validates the structural twin-coset invariants and builds
// the descriptor. Unlike the public constructors it does not require the
// initial point's order to be exactly 2^(n+1): the pieces produced by
// Split keep the source domain's larger-order initial points and are
// still valid twin-cosets.
//
// Invariants checked:
//   - the two halves are disjoint, i.e. q² ∉ G_{n-1}
//   - no member is a fixed point of the involution J(x,y) = (x,-y);
//     the only such points, (1,0) and (-1,0), lie in G_1, so given
//     disjointness it suffices that q itself has y ≠ 0
func newTwinCoset(q *core.CirclePoint, n int, chain *SubgroupChain, standard bool) (*CosetDescriptor, error) {
	if n < 1 || n > chain.TwoAdicity() {
		return nil, core.NewError(core.ErrOutOfRange,
			"coset log-size %d outside [1, %d]", n, chain.TwoAdicity())
	}

	if q.Y.IsZero() {
		return nil, core.NewError(core.ErrDegenerateCoset,
			"initial point %s is a fixed point of the involution", q)
	}

	squareLogOrder, err := q.Square().OrderLog2()
	if err != nil {
		return nil, err
	}
	if squareLogOrder <= n-1 {
		return nil, core.NewError(core.ErrDegenerateCoset,
			"halves overlap: square of initial point %s lies in G_%d", q, n-1)
	}

	return &CosetDescriptor{
		chain:    chain,
		initial:  q,
		logSize:  n,
		standard: standard,
	}, nil
}

// Initial returns the initial point Q
func (d *CosetDescriptor) Initial() *core.CirclePoint {
	return d.initial
}

// LogSize returns n where the domain has 2^n points
func (d *CosetDescriptor) LogSize() int {
	return d.logSize
}

// Size returns the number of points, 2^n
func (d *CosetDescriptor) Size() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(d.logSize))
}

// IsStandard reports whether the descriptor was constructed as a
// standard-position coset
func (d *CosetDescriptor) IsStandard() bool {
	return d.standard
}

// Chain returns the subgroup chain the domain is defined over
func (d *CosetDescriptor) Chain() *SubgroupChain {
	return d.chain
}

// Subgroup returns G_{n-1}, the subgroup both twin halves are cosets of
func (d *CosetDescriptor) Subgroup() (*SubgroupDescriptor, error) {
	return d.chain.Subgroup(d.logSize - 1)
}

// Points returns a lazy iterator over the domain: first the half-coset
// Q·G_{n-1}, then Q⁻¹·G_{n-1}. Standard-position cosets enumerate
// through the same two halves.
func (d *CosetDescriptor) Points() (*PointIterator, error) {
	half, err := d.Subgroup()
	if err != nil {
		return nil, err
	}
	return newPointIterator(half.Generator(), d.initial, d.initial.Inverse()), nil
}

// Elements materializes all 2^n points, half-coset A then half-coset B.
// Returns ErrOutOfRange for domains too large to hold in memory.
func (d *CosetDescriptor) Elements() ([]*core.CirclePoint, error) {
	return d.materialize(1)
}

// ParallelElements materializes all 2^n points using the given number of
// worker goroutines. Point computations are independent, so workers need
// no synchronization; the output ordering matches Elements exactly.
func (d *CosetDescriptor) ParallelElements(numWorkers int) ([]*core.CirclePoint, error) {
	if numWorkers < 1 {
		return nil, core.NewError(core.ErrInvalidInput, "worker count must be positive, got %d", numWorkers)
	}
	return d.materialize(numWorkers)
}

func (d *CosetDescriptor) materialize(numWorkers int) ([]*core.CirclePoint, error) {
	if d.logSize > maxMaterializeLog {
		return nil, core.NewError(core.ErrOutOfRange,
			"domain of size 2^%d is too large to materialize", d.logSize)
	}

	half, err := d.Subgroup()
	if err != nil {
		return nil, err
	}
	halfSize := 1 << uint(d.logSize-1)

	a := core.ParallelWalk(d.initial, half.Generator(), halfSize, numWorkers)
	b := core.ParallelWalk(d.initial.Inverse(), half.Generator(), halfSize, numWorkers)
	return append(a, b...), nil
}

// Digest returns a canonical 32-byte digest binding the modulus, shape,
// and initial point of the domain. Downstream provers absorb it into
// their Fiat-Shamir transcript to commit to the evaluation domain.
func (d *CosetDescriptor) Digest(hashFunc string) []byte {
	t := utils.NewTranscript(hashFunc)
	t.Absorb(d.chain.Field().Modulus().Bytes())
	t.AbsorbUint64(uint64(d.logSize))
	if d.standard {
		t.Absorb([]byte{1})
	} else {
		t.Absorb([]byte{0})
	}
	t.Absorb(d.initial.Bytes())
	return t.Digest()
}

// String returns a human-readable representation
func (d *CosetDescriptor) String() string {
	kind := "twin-coset"
	if d.standard {
		kind = "standard-position coset"
	}
	return fmt.Sprintf("%s{initial: %s, size: 2^%d}", kind, d.initial, d.logSize)
}
