package domains

import (
	"errors"
	"testing"

	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
)

// TestHalveReference tests the F_31 fixture: halving the size-8 domain
// from Q = (13, 7) yields the size-4 twin-coset over G_1
func TestHalveReference(t *testing.T) {
	chain := mustChain(t, 31)
	q := mustPoint(t, chain.Field(), 13, 7)

	d, err := TwinCoset(q, 3, chain)
	if err != nil {
		t.Fatalf("TwinCoset failed: %v", err)
	}

	halved, err := Halve(d)
	if err != nil {
		t.Fatalf("Halve failed: %v", err)
	}
	if halved.LogSize() != 2 {
		t.Errorf("halved LogSize = %d, want 2", halved.LogSize())
	}
	if !halved.Initial().Equal(mustPoint(t, chain.Field(), 27, 27)) {
		t.Errorf("halved initial = %s, want (27, 27)", halved.Initial())
	}

	elements, err := halved.Elements()
	if err != nil {
		t.Fatalf("Elements failed: %v", err)
	}
	expectSet(t, elements, [][2]int64{{27, 27}, {4, 4}, {27, 4}, {4, 27}})
}

// TestHalveIsPointwiseSquaring tests that the descriptor-level halving
// agrees with applying π to every materialized point
func TestHalveIsPointwiseSquaring(t *testing.T) {
	chain := mustChain(t, 31)
	q := mustPoint(t, chain.Field(), 13, 7)

	d, err := StandardPositionCoset(q, 3, chain)
	if err != nil {
		t.Fatalf("StandardPositionCoset failed: %v", err)
	}
	halved, err := Halve(d)
	if err != nil {
		t.Fatalf("Halve failed: %v", err)
	}

	source, err := d.Elements()
	if err != nil {
		t.Fatalf("Elements failed: %v", err)
	}
	squared := core.BatchSquare(source)

	halvedElements, err := halved.Elements()
	if err != nil {
		t.Fatalf("Elements failed: %v", err)
	}
	halvedSet := pointSet(t, halvedElements)

	// π is 2-to-1 on the domain: the image set is exactly the halved
	// domain
	imageSet := make(map[string]bool)
	for _, p := range squared {
		if !halvedSet[p.String()] {
			t.Fatalf("π image %s missing from halved domain", p)
		}
		imageSet[p.String()] = true
	}
	if len(imageSet) != len(halvedSet) {
		t.Errorf("π image has %d distinct points, halved domain has %d", len(imageSet), len(halvedSet))
	}
}

// TestHalvePreservesStandardPosition tests that halving a
// standard-position coset yields a standard-position coset, down to the
// boundary
func TestHalvePreservesStandardPosition(t *testing.T) {
	chain := mustChain(t, 2147483647)
	sub, err := chain.Subgroup(11)
	if err != nil {
		t.Fatalf("Subgroup failed: %v", err)
	}

	d, err := StandardPositionCoset(sub.Generator(), 10, chain)
	if err != nil {
		t.Fatalf("StandardPositionCoset failed: %v", err)
	}

	for d.LogSize() >= 2 {
		halved, err := Halve(d)
		if err != nil {
			t.Fatalf("Halve at size 2^%d failed: %v", d.LogSize(), err)
		}
		if halved.LogSize() != d.LogSize()-1 {
			t.Fatalf("halved LogSize = %d, want %d", halved.LogSize(), d.LogSize()-1)
		}
		if !halved.IsStandard() {
			t.Fatalf("halving lost standard position at size 2^%d", halved.LogSize())
		}

		// The standard-position condition: initial order is exactly
		// 2^(n+1)
		logOrder, err := halved.Initial().OrderLog2()
		if err != nil {
			t.Fatalf("OrderLog2 failed: %v", err)
		}
		if logOrder != halved.LogSize()+1 {
			t.Fatalf("halved initial order 2^%d, want 2^%d", logOrder, halved.LogSize()+1)
		}
		d = halved
	}

	// Size 2^1 cannot be halved further
	if _, err := Halve(d); !errors.Is(err, &core.DomainError{Code: core.ErrOutOfRange}) {
		t.Errorf("Halve at size 2^1 error = %v, want ErrOutOfRange", err)
	}
}

// TestHalveSplitPieces tests that the twin-cosets produced by Split can
// themselves be halved
func TestHalveSplitPieces(t *testing.T) {
	chain := mustChain(t, 2147483647)
	sub, err := chain.Subgroup(7)
	if err != nil {
		t.Fatalf("Subgroup failed: %v", err)
	}

	d, err := StandardPositionCoset(sub.Generator(), 6, chain)
	if err != nil {
		t.Fatalf("StandardPositionCoset failed: %v", err)
	}
	pieces, err := Split(d, 3)
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	for i, piece := range pieces {
		halved, err := Halve(piece)
		if err != nil {
			t.Fatalf("Halve of piece %d failed: %v", i, err)
		}

		source, err := piece.Elements()
		if err != nil {
			t.Fatalf("Elements failed: %v", err)
		}
		halvedElements, err := halved.Elements()
		if err != nil {
			t.Fatalf("Elements failed: %v", err)
		}
		halvedSet := pointSet(t, halvedElements)
		for _, p := range source {
			if !halvedSet[p.Square().String()] {
				t.Fatalf("piece %d: π(%s) missing from halved piece", i, p)
			}
		}
	}
}

// TestHalveBounds tests the minimum size precondition
func TestHalveBounds(t *testing.T) {
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

	// Size-2 twin-cosets are below the halving boundary
	if _, err := Halve(pieces[0]); !errors.Is(err, &core.DomainError{Code: core.ErrOutOfRange}) {
		t.Errorf("Halve of size-2 domain error = %v, want ErrOutOfRange", err)
	}
}
