package domains

import (
	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
)

// Halve applies the squaring endomorphism π to a twin-coset of size 2^n,
// producing the twin-coset of size 2^(n-1) over G_{n-2}. Because π is a
// homomorphism, the image of Q·G_{n-1} ∪ Q⁻¹·G_{n-1} is
// π(Q)·G_{n-2} ∪ π(Q)⁻¹·G_{n-2}, so the result is computed directly from
// the descriptor as (π(Q), n-1) — no points are materialized.
//
// A standard-position input yields a standard-position output: squaring
// an initial point of exact order 2^(n+1) gives exact order 2^n, which is
// the standard-position condition at size 2^(n-1).
//
// Requires n ≥ 2 (the result must still have two nonempty halves over an
// existing subgroup); returns ErrOutOfRange otherwise.
func Halve(d *CosetDescriptor) (*CosetDescriptor, error) {
	n := d.LogSize()
	if n < 2 {
		return nil, core.NewError(core.ErrOutOfRange,
			"cannot halve domain of size 2^%d", n)
	}

	return newTwinCoset(d.Initial().Square(), n-1, d.Chain(), d.IsStandard())
}
