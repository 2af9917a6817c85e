package domains

import (
	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
)

// PointIterator walks one or more cosets of a cyclic subgroup lazily:
// from each phase's start point it repeatedly composes with the subgroup
// generator, moving to the next phase when the walk returns to its start.
// This enumerates each coset exactly once without any element counter, so
// it works unchanged for subgroup orders far beyond addressable memory.
type PointIterator struct {
	step    *core.CirclePoint
	phases  []*core.CirclePoint
	phase   int
	current *core.CirclePoint
	started bool
}

// newPointIterator creates an iterator over the cosets start·<step> for
// each start point, in order
func newPointIterator(step *core.CirclePoint, starts ...*core.CirclePoint) *PointIterator {
	return &PointIterator{
		step:   step,
		phases: starts,
	}
}

// Next returns the next point, or false when the iteration is exhausted
func (it *PointIterator) Next() (*core.CirclePoint, bool) {
	for it.phase < len(it.phases) {
		start := it.phases[it.phase]
		if !it.started {
			it.current = start
			it.started = true
			return it.current, true
		}

		next := it.current.Compose(it.step)
		if next.Equal(start) {
			// Walk closed its cycle; move to the next phase
			it.phase++
			it.started = false
			continue
		}
		it.current = next
		return it.current, true
	}
	return nil, false
}
