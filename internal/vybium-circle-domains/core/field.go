package core

import (
	"math/big"

	"github.com/vybium/vybium-circle-domains/internal/vybium-circle-domains/utils"
)

// primalityRounds is the number of Miller-Rabin rounds used to validate the
// modulus. math/big additionally runs a Baillie-PSW test, so the check is
// deterministic for all 64-bit moduli.
const primalityRounds = 20

// Field represents a CFFT-friendly prime field: an odd prime p with
// p ≡ 3 (mod 4) and p+1 a power of two. These two conditions make the
// circle curve x² + y² = 1 a cyclic group of order p+1 with full
// two-adicity, which is what the domain constructions require.
type Field struct {
	modulus *big.Int
	// Precomputed values for optimization
	modulusMinus2 *big.Int
	modulusPlus1  *big.Int
	sqrtExponent  *big.Int // (p+1)/4, valid because p ≡ 3 (mod 4)
	twoAdicity    int      // m where p+1 = 2^m
}

// FieldElement represents an element in the finite field
type FieldElement struct {
	field *Field
	value *big.Int
}

// NewField creates a new field and validates that the modulus supports the
// circle group construction. Returns ErrUnsupportedModulus if p is not
// prime, p ≢ 3 (mod 4), or p+1 is not a power of two.
func NewField(modulus *big.Int) (*Field, error) {
	if modulus.Cmp(big.NewInt(2)) <= 0 {
		return nil, NewError(ErrUnsupportedModulus, "modulus must be greater than 2, got %s", modulus)
	}
	if !modulus.ProbablyPrime(primalityRounds) {
		return nil, NewError(ErrUnsupportedModulus, "modulus %s is not prime", modulus)
	}
	if new(big.Int).Mod(modulus, big.NewInt(4)).Cmp(big.NewInt(3)) != 0 {
		return nil, NewError(ErrUnsupportedModulus, "modulus %s is not congruent to 3 mod 4", modulus)
	}

	modulusPlus1 := new(big.Int).Add(modulus, big.NewInt(1))
	twoAdicity := utils.Log2Big(modulusPlus1)
	if twoAdicity < 0 {
		return nil, NewError(ErrUnsupportedModulus, "modulus %s has p+1 not a power of two", modulus)
	}

	sqrtExponent := new(big.Int).Rsh(modulusPlus1, 2) // (p+1)/4

	return &Field{
		modulus:       new(big.Int).Set(modulus),
		modulusMinus2: new(big.Int).Sub(modulus, big.NewInt(2)),
		modulusPlus1:  modulusPlus1,
		sqrtExponent:  sqrtExponent,
		twoAdicity:    twoAdicity,
	}, nil
}

// NewFieldFromUint64 creates a new field with the given modulus
func NewFieldFromUint64(modulus uint64) (*Field, error) {
	return NewField(new(big.Int).SetUint64(modulus))
}

// Modulus returns the field modulus
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// GroupOrder returns p+1, the order of the circle group over this field
func (f *Field) GroupOrder() *big.Int {
	return new(big.Int).Set(f.modulusPlus1)
}

// TwoAdicity returns m where p+1 = 2^m
func (f *Field) TwoAdicity() int {
	return f.twoAdicity
}

// NewElement creates a new field element from a big.Int
func (f *Field) NewElement(value *big.Int) *FieldElement {
	normalized := new(big.Int).Mod(value, f.modulus)
	return &FieldElement{
		field: f,
		value: normalized,
	}
}

// NewElementFromInt64 creates a new field element from an int64
func (f *Field) NewElementFromInt64(value int64) *FieldElement {
	return f.NewElement(big.NewInt(value))
}

// Zero returns the additive identity
func (f *Field) Zero() *FieldElement {
	return f.NewElement(big.NewInt(0))
}

// One returns the multiplicative identity
func (f *Field) One() *FieldElement {
	return f.NewElement(big.NewInt(1))
}

// Equals checks if two fields have the same modulus
func (f *Field) Equals(other *Field) bool {
	return f.modulus.Cmp(other.modulus) == 0
}

// ByteLen returns the canonical byte width of an element of this field
func (f *Field) ByteLen() int {
	return (f.modulus.BitLen() + 7) / 8
}

// Big returns the value as a big.Int
func (fe *FieldElement) Big() *big.Int {
	return new(big.Int).Set(fe.value)
}

// Field returns the field this element belongs to
func (fe *FieldElement) Field() *Field {
	return fe.field
}

// Add performs field addition
func (fe *FieldElement) Add(other *FieldElement) *FieldElement {
	if !fe.field.Equals(other.field) {
		panic("cannot add elements from different fields")
	}
	result := new(big.Int).Add(fe.value, other.value)
	return fe.field.NewElement(result)
}

// Sub performs field subtraction
func (fe *FieldElement) Sub(other *FieldElement) *FieldElement {
	if !fe.field.Equals(other.field) {
		panic("cannot subtract elements from different fields")
	}
	result := new(big.Int).Sub(fe.value, other.value)
	return fe.field.NewElement(result)
}

// Mul performs field multiplication
func (fe *FieldElement) Mul(other *FieldElement) *FieldElement {
	if !fe.field.Equals(other.field) {
		panic("cannot multiply elements from different fields")
	}
	result := new(big.Int).Mul(fe.value, other.value)
	return fe.field.NewElement(result)
}

// Neg returns the additive inverse (negation) of the field element
func (fe *FieldElement) Neg() *FieldElement {
	result := new(big.Int).Neg(fe.value)
	return fe.field.NewElement(result)
}

// Square computes the square of the field element
func (fe *FieldElement) Square() *FieldElement {
	return fe.Mul(fe)
}

// Double computes twice the field element
func (fe *FieldElement) Double() *FieldElement {
	return fe.Add(fe)
}

// Inv computes the multiplicative inverse using the extended Euclidean
// algorithm. Returns ErrDivisionByZero for the additive identity.
//
// The Fermat-exponentiation route (invFermat) must produce bit-identical
// results; TestInvAgreement pins this down.
func (fe *FieldElement) Inv() (*FieldElement, error) {
	if fe.IsZero() {
		return nil, NewError(ErrDivisionByZero, "cannot invert zero")
	}

	inv := new(big.Int).ModInverse(fe.value, fe.field.modulus)
	if inv == nil {
		// Unreachable for a prime modulus and nonzero value
		return nil, NewError(ErrDivisionByZero, "inverse of %s does not exist", fe.value)
	}
	return fe.field.NewElement(inv), nil
}

// invFermat computes the multiplicative inverse as a^(p-2) mod p
func (fe *FieldElement) invFermat() (*FieldElement, error) {
	if fe.IsZero() {
		return nil, NewError(ErrDivisionByZero, "cannot invert zero")
	}
	result := new(big.Int).Exp(fe.value, fe.field.modulusMinus2, fe.field.modulus)
	return fe.field.NewElement(result), nil
}

// Div performs field division (multiplication by inverse)
func (fe *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	if !fe.field.Equals(other.field) {
		return nil, NewError(ErrInvalidInput, "cannot divide elements from different fields")
	}
	inv, err := other.Inv()
	if err != nil {
		return nil, err
	}
	return fe.Mul(inv), nil
}

// Exp performs field exponentiation
func (fe *FieldElement) Exp(exponent *big.Int) *FieldElement {
	result := new(big.Int).Exp(fe.value, exponent, fe.field.modulus)
	return fe.field.NewElement(result)
}

// Sqrt returns a square root of the field element. Because the field
// guarantees p ≡ 3 (mod 4), the root is n^((p+1)/4); no Tonelli-Shanks
// loop is needed. The returned root is canonical: it is the unique value
// produced by that exponentiation, which makes every search that relies
// on Sqrt deterministic. Returns ErrInvalidInput for non-residues.
func (fe *FieldElement) Sqrt() (*FieldElement, error) {
	if fe.IsZero() {
		return fe.field.Zero(), nil
	}

	root := fe.Exp(fe.field.sqrtExponent)
	if !root.Square().Equal(fe) {
		return nil, NewError(ErrInvalidInput, "element %s is not a quadratic residue", fe.value)
	}
	return root, nil
}

// Equal checks if two field elements are equal
func (fe *FieldElement) Equal(other *FieldElement) bool {
	if !fe.field.Equals(other.field) {
		return false
	}
	return fe.value.Cmp(other.value) == 0
}

// IsZero checks if the element is zero
func (fe *FieldElement) IsZero() bool {
	return fe.value.Sign() == 0
}

// IsOne checks if the element is one
func (fe *FieldElement) IsOne() bool {
	return fe.value.Cmp(big.NewInt(1)) == 0
}

// String returns a string representation of the field element
func (fe *FieldElement) String() string {
	return fe.value.String()
}

// Bytes returns the canonical fixed-width big-endian encoding of the
// element, padded to the field's byte length
func (fe *FieldElement) Bytes() []byte {
	buf := make([]byte, fe.field.ByteLen())
	fe.value.FillBytes(buf)
	return buf
}
