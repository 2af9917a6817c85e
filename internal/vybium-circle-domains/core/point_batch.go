// Package core provides batch operations for circle point arithmetic
package core

import (
	"math/big"
	"sync"
)

// parallelThreshold is the batch size below which the parallel variants
// fall back to their sequential counterparts
const parallelThreshold = 1024

// BatchCompose composes pairs of points elementwise
func BatchCompose(a, b []*CirclePoint) ([]*CirclePoint, error) {
	if len(a) != len(b) {
		return nil, NewError(ErrInvalidInput, "batch compose requires equal-length arrays")
	}

	results := make([]*CirclePoint, len(a))
	for i := range a {
		results[i] = a[i].Compose(b[i])
	}
	return results, nil
}

// BatchSquare applies the squaring endomorphism π to every point
func BatchSquare(points []*CirclePoint) []*CirclePoint {
	results := make([]*CirclePoint, len(points))
	for i, p := range points {
		results[i] = p.Square()
	}
	return results
}

// ParallelBatchSquare applies π pointwise across worker goroutines.
// Each point's computation is independent modular arithmetic, so no
// synchronization beyond the final join is needed.
func ParallelBatchSquare(points []*CirclePoint, numWorkers int) []*CirclePoint {
	n := len(points)
	if n < parallelThreshold || numWorkers <= 1 {
		return BatchSquare(points)
	}

	results := make([]*CirclePoint, n)
	chunkSize := (n + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			start := workerID * chunkSize
			if start >= n {
				return
			}
			end := min(start+chunkSize, n)

			for i := start; i < end; i++ {
				results[i] = points[i].Square()
			}
		}(w)
	}

	wg.Wait()
	return results
}

// Walk materializes the sequence start, start·step, start·step², ...
// of the given length
func Walk(start, step *CirclePoint, length int) []*CirclePoint {
	results := make([]*CirclePoint, length)
	current := start
	for i := 0; i < length; i++ {
		results[i] = current
		current = current.Compose(step)
	}
	return results
}

// ParallelWalk materializes the same sequence as Walk across worker
// goroutines. Each worker jumps to its chunk's first point with a single
// Pow, then steps sequentially within the chunk.
func ParallelWalk(start, step *CirclePoint, length int, numWorkers int) []*CirclePoint {
	if length < parallelThreshold || numWorkers <= 1 {
		return Walk(start, step, length)
	}

	results := make([]*CirclePoint, length)
	chunkSize := (length + numWorkers - 1) / numWorkers

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			first := workerID * chunkSize
			if first >= length {
				return
			}
			end := min(first+chunkSize, length)

			current := start.Compose(step.Pow(big.NewInt(int64(first))))
			for i := first; i < end; i++ {
				results[i] = current
				current = current.Compose(step)
			}
		}(w)
	}

	wg.Wait()
	return results
}

// min returns the minimum of two integers
func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
