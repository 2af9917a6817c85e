package core

import (
	"math/rand"
	"testing"
)

// batchTestPoints builds a deterministic slice of points for batch tests
func batchTestPoints(t *testing.T, f *Field, n int) []*CirclePoint {
	t.Helper()
	rng := rand.New(rand.NewSource(7))
	points := make([]*CirclePoint, n)
	for i := range points {
		points[i] = randomPoint(t, f, rng)
	}
	return points
}

// TestBatchCompose tests elementwise composition
func TestBatchCompose(t *testing.T) {
	f := mustField(t, 31)
	a := batchTestPoints(t, f, 50)
	b := batchTestPoints(t, f, 50)

	results, err := BatchCompose(a, b)
	if err != nil {
		t.Fatalf("BatchCompose failed: %v", err)
	}
	for i := range results {
		if !results[i].Equal(a[i].Compose(b[i])) {
			t.Fatalf("mismatch at index %d", i)
		}
	}

	if _, err := BatchCompose(a, b[:10]); err == nil {
		t.Error("BatchCompose with mismatched lengths succeeded")
	}
}

// TestBatchSquare tests pointwise squaring
func TestBatchSquare(t *testing.T) {
	f := mustField(t, 31)
	points := batchTestPoints(t, f, 50)

	results := BatchSquare(points)
	for i := range results {
		if !results[i].Equal(points[i].Square()) {
			t.Fatalf("mismatch at index %d", i)
		}
	}
}

// TestParallelBatchSquare tests that the parallel path matches the
// sequential one exactly
func TestParallelBatchSquare(t *testing.T) {
	f := mustField(t, 2147483647)
	points := batchTestPoints(t, f, 3000)

	sequential := BatchSquare(points)
	for _, workers := range []int{1, 2, 3, 8} {
		parallel := ParallelBatchSquare(points, workers)
		if len(parallel) != len(sequential) {
			t.Fatalf("workers=%d: length %d, want %d", workers, len(parallel), len(sequential))
		}
		for i := range parallel {
			if !parallel[i].Equal(sequential[i]) {
				t.Fatalf("workers=%d: mismatch at index %d", workers, i)
			}
		}
	}
}

// TestWalk tests sequential walk materialization
func TestWalk(t *testing.T) {
	f := mustField(t, 31)
	start := mustPoint(t, f, 13, 7)
	step := mustPoint(t, f, 0, 1)

	walk := Walk(start, step, 8)
	if len(walk) != 8 {
		t.Fatalf("Walk length = %d, want 8", len(walk))
	}
	current := start
	for i, p := range walk {
		if !p.Equal(current) {
			t.Fatalf("Walk[%d] = %s, want %s", i, p, current)
		}
		current = current.Compose(step)
	}
}

// TestParallelWalk tests that chunked workers reproduce the sequential
// walk in order
func TestParallelWalk(t *testing.T) {
	f := mustField(t, 2147483647)
	rng := rand.New(rand.NewSource(8))
	start := randomPoint(t, f, rng)
	step := randomPoint(t, f, rng)
	const length = 2500

	sequential := Walk(start, step, length)
	for _, workers := range []int{1, 2, 3, 7} {
		parallel := ParallelWalk(start, step, length, workers)
		if len(parallel) != length {
			t.Fatalf("workers=%d: length %d, want %d", workers, len(parallel), length)
		}
		for i := range parallel {
			if !parallel[i].Equal(sequential[i]) {
				t.Fatalf("workers=%d: mismatch at index %d", workers, i)
			}
		}
	}
}
