package domains

import (
	"errors"
	"testing"

	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
)

// TestSplitReference tests the F_31 fixture: splitting the size-8
// standard-position coset into two size-4 twin-cosets reconstructs the
// original set exactly
func TestSplitReference(t *testing.T) {
	chain := mustChain(t, 31)
	q := mustPoint(t, chain.Field(), 13, 7)

	d, err := StandardPositionCoset(q, 3, chain)
	if err != nil {
		t.Fatalf("StandardPositionCoset failed: %v", err)
	}

	pieces, err := Split(d, 2)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(pieces) != 2 {
		t.Fatalf("got %d pieces, want 2", len(pieces))
	}

	var union []*core.CirclePoint
	for i, piece := range pieces {
		if piece.IsStandard() {
			t.Errorf("piece %d flagged standard", i)
		}
		if piece.Size().Int64() != 4 {
			t.Errorf("piece %d size = %s, want 4", i, piece.Size())
		}
		elements, err := piece.Elements()
		if err != nil {
			t.Fatalf("piece %d Elements failed: %v", i, err)
		}
		union = append(union, elements...)
	}

	// Exact partition: 8 points, no duplicates across pieces, equal to
	// the source domain as a set
	expectSet(t, union, referenceDomain31)
}

// TestSplitPartition tests the partition property across sizes over M31
func TestSplitPartition(t *testing.T) {
	chain := mustChain(t, 2147483647)
	sub, err := chain.Subgroup(9)
	if err != nil {
		t.Fatalf("Subgroup failed: %v", err)
	}

	d, err := StandardPositionCoset(sub.Generator(), 8, chain)
	if err != nil {
		t.Fatalf("StandardPositionCoset failed: %v", err)
	}
	source, err := d.Elements()
	if err != nil {
		t.Fatalf("Elements failed: %v", err)
	}
	sourceSet := pointSet(t, source)

	for n := 1; n <= 8; n++ {
		pieces, err := Split(d, n)
		if err != nil {
			t.Fatalf("Split(n=%d) failed: %v", n, err)
		}
		if len(pieces) != 1<<uint(8-n) {
			t.Fatalf("Split(n=%d) returned %d pieces, want %d", n, len(pieces), 1<<uint(8-n))
		}

		var union []*core.CirclePoint
		for _, piece := range pieces {
			elements, err := piece.Elements()
			if err != nil {
				t.Fatalf("piece Elements failed: %v", err)
			}
			union = append(union, elements...)
		}

		unionSet := pointSet(t, union) // fails on any duplicate across pieces
		if len(unionSet) != len(sourceSet) {
			t.Fatalf("Split(n=%d) union has %d points, want %d", n, len(unionSet), len(sourceSet))
		}
		for key := range unionSet {
			if !sourceSet[key] {
				t.Fatalf("Split(n=%d) produced point %s outside the source domain", n, key)
			}
		}
	}
}

// TestSplitFullSize tests that the single piece of a full-size split is
// the source domain itself, still in standard position
func TestSplitFullSize(t *testing.T) {
	chain := mustChain(t, 31)
	q := mustPoint(t, chain.Field(), 13, 7)

	d, err := StandardPositionCoset(q, 3, chain)
	if err != nil {
		t.Fatalf("StandardPositionCoset failed: %v", err)
	}

	pieces, err := Split(d, 3)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(pieces) != 1 {
		t.Fatalf("got %d pieces, want 1", len(pieces))
	}
	if !pieces[0].IsStandard() {
		t.Error("full-size split lost standard position")
	}
	if !pieces[0].Initial().Equal(q) {
		t.Errorf("full-size split initial = %s, want %s", pieces[0].Initial(), q)
	}
}

// TestSplitBounds tests the precondition failures
func TestSplitBounds(t *testing.T) {
	chain := mustChain(t, 31)
	q := mustPoint(t, chain.Field(), 13, 7)

	std, err := StandardPositionCoset(q, 3, chain)
	if err != nil {
		t.Fatalf("StandardPositionCoset failed: %v", err)
	}

	for _, n := range []int{-1, 0, 4, 10} {
		if _, err := Split(std, n); !errors.Is(err, &core.DomainError{Code: core.ErrOutOfRange}) {
			t.Errorf("Split(n=%d) error = %v, want ErrOutOfRange", n, err)
		}
	}

	twin, err := TwinCoset(q, 3, chain)
	if err != nil {
		t.Fatalf("TwinCoset failed: %v", err)
	}
	if _, err := Split(twin, 2); !errors.Is(err, &core.DomainError{Code: core.ErrInvalidInput}) {
		t.Errorf("Split of twin-coset error = %v, want ErrInvalidInput", err)
	}
}

// TestSplitPiecesAreValidTwins tests the structural invariants on every
// piece: disjoint halves and no involution fixed points
func TestSplitPiecesAreValidTwins(t *testing.T) {
	chain := mustChain(t, 31)
	q := mustPoint(t, chain.Field(), 13, 7)

	d, err := StandardPositionCoset(q, 3, chain)
	if err != nil {
		t.Fatalf("StandardPositionCoset failed: %v", err)
	}
	pieces, err := Split(d, 1)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}
	if len(pieces) != 4 {
		t.Fatalf("got %d pieces, want 4", len(pieces))
	}

	for i, piece := range pieces {
		elements, err := piece.Elements()
		if err != nil {
			t.Fatalf("piece %d Elements failed: %v", i, err)
		}
		pointSet(t, elements)
		for _, p := range elements {
			if p.Y.IsZero() {
				t.Fatalf("piece %d contains fixed point %s", i, p)
			}
		}
	}
}
