package k256

import (
	"fmt"
	"math/big"
)

// Point is an element of the secp256k1 group. It is either an affine point
// (x, y) on the curve or the point at infinity. The zero value is the point
// at infinity.
//
// Points are immutable. Every operation returns a new Point and the
// coordinate accessors return copies.
type Point struct {
	// x and y are nil for the point at infinity and reduced field elements
	// on the curve otherwise.
	x, y *big.Int
}

// generator is G. Its coordinates are shared by every copy returned from
// Generator, which is safe because nothing writes to them.
var generator = Point{
	x: mustParseHex(GeneratorXHex),
	y: mustParseHex(GeneratorYHex),
}

// Generator returns the base point G.
func Generator() Point {
	return generator
}

// Infinity returns the point at infinity, the identity of the group.
func Infinity() Point {
	return Point{}
}

// NewPoint returns the point with the given affine coordinates. Coordinates
// outside [0, P) or not satisfying the curve equation yield ErrInvalidPoint.
func NewPoint(x, y *big.Int) (Point, error) {
	if !VerifyPoint(x, y) {
		return Point{}, makeError(ErrInvalidPoint, "point is not on the "+
			"secp256k1 curve")
	}
	return Point{x: new(big.Int).Set(x), y: new(big.Int).Set(y)}, nil
}

// IsInfinity reports whether p is the point at infinity.
func (p Point) IsInfinity() bool {
	return p.x == nil
}

// IsOnCurve reports whether p is an affine point satisfying the curve
// equation. The point at infinity has no affine form and reports false.
func (p Point) IsOnCurve() bool {
	return !p.IsInfinity() && VerifyPoint(p.x, p.y)
}

// X returns a copy of the x coordinate, or nil for the point at infinity.
func (p Point) X() *big.Int {
	if p.IsInfinity() {
		return nil
	}
	return new(big.Int).Set(p.x)
}

// Y returns a copy of the y coordinate, or nil for the point at infinity.
func (p Point) Y() *big.Int {
	if p.IsInfinity() {
		return nil
	}
	return new(big.Int).Set(p.y)
}

// Equal reports whether p and q are the same group element.
func (p Point) Equal(q Point) bool {
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.x.Cmp(q.x) == 0 && p.y.Cmp(q.y) == 0
}

// Negate returns -p, the mirror image of p across the x axis.
func (p Point) Negate() Point {
	if p.IsInfinity() {
		return p
	}
	return Point{x: p.x, y: fieldSub(fieldP, p.y)}
}

// String returns the coordinates in hex, or "infinity".
func (p Point) String() string {
	if p.IsInfinity() {
		return "infinity"
	}
	return fmt.Sprintf("(0x%064x, 0x%064x)", p.x, p.y)
}

// double applies the tangent formula. The caller guarantees p is affine with
// y != 0.
func double(p Point) Point {
	// The slope is the derivative of y^2 = x^3 + 7, 2y dy = 3x^2 dx.
	num := fieldMul(bigThree, fieldSqr(p.x))
	slope := fieldMul(num, fieldInv(fieldAdd(p.y, p.y)))
	x := fieldSub(fieldSqr(slope), fieldAdd(p.x, p.x))
	y := fieldSub(fieldMul(slope, fieldSub(p.x, x)), p.y)
	return Point{x: x, y: y}
}

// add applies the chord formula. The caller guarantees p and q are affine
// with different x coordinates.
func add(p, q Point) Point {
	slope := fieldMul(fieldSub(q.y, p.y), fieldInv(fieldSub(q.x, p.x)))
	x := fieldSub(fieldSub(fieldSqr(slope), p.x), q.x)
	y := fieldSub(fieldMul(slope, fieldSub(p.x, x)), p.y)
	return Point{x: x, y: y}
}

// DoublePoint returns 2p. Doubling the point at infinity or a point with
// y = 0 is rejected with ErrInvalidOperand; neither has an affine result.
func DoublePoint(p Point) (Point, error) {
	if p.IsInfinity() {
		return Point{}, makeError(ErrInvalidOperand, "cannot double the "+
			"point at infinity")
	}
	if p.y.Sign() == 0 {
		return Point{}, makeError(ErrInvalidOperand, "cannot double a "+
			"point with y = 0")
	}
	return double(p), nil
}

// AddPoints returns p + q using the chord formula. p and q must be distinct
// affine points that are not inverses of each other, otherwise
// ErrInvalidOperand is returned. Use DoublePoint for p == q, or Add for the
// complete group law.
func AddPoints(p, q Point) (Point, error) {
	switch {
	case p.IsInfinity() || q.IsInfinity():
		return Point{}, makeError(ErrInvalidOperand, "cannot add the point "+
			"at infinity")
	case p.Equal(q):
		return Point{}, makeError(ErrInvalidOperand, "cannot add a point "+
			"to itself, use DoublePoint")
	case p.x.Cmp(q.x) == 0:
		return Point{}, makeError(ErrInvalidOperand, "cannot add a point "+
			"to its inverse, the sum is the point at infinity")
	}
	return add(p, q), nil
}

// Add returns p + q under the complete group law: the point at infinity is
// the identity, p + p is a doubling and p + (-p) is the point at infinity.
func Add(p, q Point) Point {
	switch {
	case p.IsInfinity():
		return q
	case q.IsInfinity():
		return p
	case p.x.Cmp(q.x) != 0:
		return add(p, q)
	case p.y.Cmp(q.y) != 0 || p.y.Sign() == 0:
		// Same x, so q is -p.
		return Point{}
	}
	return double(p)
}
