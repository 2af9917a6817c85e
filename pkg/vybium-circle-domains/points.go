package vybiumcircledomains

import (
	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/core"
)

// NewCirclePoint creates a circle point from two field elements,
// verifying x² + y² = 1
func NewCirclePoint(x, y *FieldElement) (*CirclePoint, error) {
	return core.NewCirclePoint(x, y)
}

// NewCirclePointFromInt64 creates a circle point from int64 coordinates
// reduced into the given field
func NewCirclePointFromInt64(field *Field, x, y int64) (*CirclePoint, error) {
	return core.NewCirclePointFromInt64(field, x, y)
}

// Identity returns the group identity (1, 0)
func Identity(field *Field) *CirclePoint {
	return core.Identity(field)
}
