package core

import (
	"fmt"
	"math/big"
)

// CirclePoint represents a point (x, y) on the circle curve x² + y² = 1.
// The set of all such points forms a cyclic group of order p+1 under
// Compose, with identity (1, 0). Points are immutable values: every
// operation returns a fresh point.
type CirclePoint struct {
	X *FieldElement
	Y *FieldElement
}

// NewCirclePoint creates a circle point from raw coordinates. Returns
// ErrInvalidPoint if the coordinates do not satisfy the curve equation.
func NewCirclePoint(x, y *FieldElement) (*CirclePoint, error) {
	if !x.Field().Equals(y.Field()) {
		return nil, NewError(ErrInvalidInput, "coordinates from different fields")
	}
	if !onCurve(x, y) {
		return nil, NewError(ErrInvalidPoint, "point (%s, %s) is not on x²+y²=1", x, y)
	}
	return &CirclePoint{X: x, Y: y}, nil
}

// NewCirclePointFromInt64 creates a validated circle point from raw int64
// coordinates. Convenience for tests and fixed parameter sets.
func NewCirclePointFromInt64(field *Field, x, y int64) (*CirclePoint, error) {
	return NewCirclePoint(field.NewElementFromInt64(x), field.NewElementFromInt64(y))
}

// onCurve reports whether x² + y² = 1
func onCurve(x, y *FieldElement) bool {
	sum := x.Square().Add(y.Square())
	return sum.IsOne()
}

// Identity returns the group identity (1, 0)
func Identity(field *Field) *CirclePoint {
	return &CirclePoint{X: field.One(), Y: field.Zero()}
}

// IsIdentity checks if the point is the group identity
func (p *CirclePoint) IsIdentity() bool {
	return p.X.IsOne() && p.Y.IsZero()
}

// Field returns the field the point's coordinates belong to
func (p *CirclePoint) Field() *Field {
	return p.X.Field()
}

// Compose applies the circle group law:
//
//	(x0, y0) · (x1, y1) = (x0·x1 − y0·y1, x0·y1 + y0·x1)
//
// The result is on the curve whenever both operands are, since
// (x0x1−y0y1)² + (x0y1+y0x1)² = (x0²+y0²)(x1²+y1²).
func (p *CirclePoint) Compose(q *CirclePoint) *CirclePoint {
	x := p.X.Mul(q.X).Sub(p.Y.Mul(q.Y))
	y := p.X.Mul(q.Y).Add(p.Y.Mul(q.X))
	return &CirclePoint{X: x, Y: y}
}

// Inverse returns the group inverse, the conjugate (x, −y)
func (p *CirclePoint) Inverse() *CirclePoint {
	return &CirclePoint{X: p.X, Y: p.Y.Neg()}
}

// Conjugate is the involution J(x, y) = (x, −y). On the circle group it
// coincides with Inverse; fixed points are exactly the points with y = 0.
func (p *CirclePoint) Conjugate() *CirclePoint {
	return p.Inverse()
}

// Square applies the squaring endomorphism π(P) = P·P = (2x²−1, 2xy).
// π is a group homomorphism: π(P·Q) = π(P)·π(Q).
func (p *CirclePoint) Square() *CirclePoint {
	x := p.X.Square().Double().Sub(p.Field().One())
	y := p.X.Mul(p.Y).Double()
	return &CirclePoint{X: x, Y: y}
}

// Pow computes P^k by binary exponentiation. Negative exponents are
// handled via the inverse.
func (p *CirclePoint) Pow(k *big.Int) *CirclePoint {
	base := p
	exp := new(big.Int).Set(k)
	if exp.Sign() < 0 {
		base = p.Inverse()
		exp.Neg(exp)
	}

	result := Identity(p.Field())
	current := base
	for exp.Sign() > 0 {
		if exp.Bit(0) == 1 {
			result = result.Compose(current)
		}
		current = current.Square()
		exp.Rsh(exp, 1)
	}
	return result
}

// PowInt64 computes P^k for a machine-word exponent
func (p *CirclePoint) PowInt64(k int64) *CirclePoint {
	return p.Pow(big.NewInt(k))
}

// OrderLog2 returns the least j such that P^(2^j) is the identity.
// Every point order divides the group order p+1 = 2^m, so orders are
// powers of two and j is found by at most m squarings — never by naive
// iteration. Returns ErrInvalidPoint if the point is not in the group
// (more than m squarings would be needed).
func (p *CirclePoint) OrderLog2() (int, error) {
	m := p.Field().TwoAdicity()
	current := p
	for j := 0; j <= m; j++ {
		if current.IsIdentity() {
			return j, nil
		}
		current = current.Square()
	}
	return 0, NewError(ErrInvalidPoint, "point (%s, %s) has order not dividing 2^%d", p.X, p.Y, m)
}

// Order returns the exact order of the point as a big.Int
func (p *CirclePoint) Order() (*big.Int, error) {
	logOrder, err := p.OrderLog2()
	if err != nil {
		return nil, err
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(logOrder)), nil
}

// Equal checks if two points have identical coordinates
func (p *CirclePoint) Equal(q *CirclePoint) bool {
	return p.X.Equal(q.X) && p.Y.Equal(q.Y)
}

// String returns the string representation
func (p *CirclePoint) String() string {
	return fmt.Sprintf("(%s, %s)", p.X, p.Y)
}

// Bytes returns the canonical encoding of the point: the fixed-width
// x coordinate followed by the fixed-width y coordinate
func (p *CirclePoint) Bytes() []byte {
	out := p.X.Bytes()
	return append(out, p.Y.Bytes()...)
}
