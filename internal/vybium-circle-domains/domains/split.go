package domains

import (
	"math/big"

	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
)

// maxSplitLog bounds the number of pieces a split may produce, since the
// result is a materialized slice of descriptors
const maxSplitLog = 30

// Split decomposes a standard-position coset D = Q·G_m of size 2^m into
// 2^(m-n) disjoint twin-cosets of size 2^n each:
//
//	D = ⋃_k  Q^(4k+1)·G_{n-1} ∪ Q^(-(4k+1))·G_{n-1},  k = 0 .. 2^(m-n)-1
//
// The union of the returned pieces is an exact partition of D. Each piece
// keeps the source initial point's order 2^(m+1); it satisfies the
// twin-coset invariants (disjoint halves, no involution fixed points),
// which is what makes it a usable evaluation domain, even though it would
// not pass TwinCoset's exact-order precondition.
//
// Requires 1 ≤ n ≤ m (ErrOutOfRange otherwise) and a standard-position
// input (ErrInvalidInput otherwise).
func Split(d *CosetDescriptor, n int) ([]*CosetDescriptor, error) {
	if !d.IsStandard() {
		return nil, core.NewError(core.ErrInvalidInput,
			"split requires a standard-position coset, got %s", d)
	}

	m := d.LogSize()
	if n < 1 || n > m {
		return nil, core.NewError(core.ErrOutOfRange,
			"split size 2^%d outside [2^1, 2^%d]", n, m)
	}
	if m-n > maxSplitLog {
		return nil, core.NewError(core.ErrOutOfRange,
			"split into 2^%d pieces is too large to materialize", m-n)
	}

	q := d.Initial()
	count := 1 << uint(m-n)
	pieces := make([]*CosetDescriptor, count)
	for k := 0; k < count; k++ {
		exponent := big.NewInt(4*int64(k) + 1)
		initial := q.Pow(exponent)

		// The single piece of a full-size split is the source domain
		// itself and stays in standard position
		piece, err := newTwinCoset(initial, n, d.Chain(), count == 1 && d.IsStandard())
		if err != nil {
			return nil, err
		}
		pieces[k] = piece
	}

	return pieces, nil
}
