package k256

import (
	"math/big"
)

// GLV endomorphism. Lambda is a primitive cube root of unity modulo N and
// beta one modulo P, paired so that lambda*(x, y) = (beta*x, y). Splitting a
// multiplier k into k1 + k2*lambda with both halves below 2^128 halves the
// number of doublings in Multiply.

var (
	glvLambda = mustParseHex("5363AD4CC05C30E0A5261C028812645A122E22EA20816678DF02967C1B23BD72")
	glvBeta   = mustParseHex("7AE96A2B657C07106E64479EAC3434E99CF0497512F58995C1396C28719501EE")

	// Lattice basis and precomputed round(2^384 * b / N) values used by
	// splitScalar.
	glvMinusB1 = mustParseHex("E4437ED6010E88286F547FA90ABFE4C3")
	glvMinusB2 = mustParseHex("FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFE8A280AC50774346DD765CDA83DB1562C")
	glvG1      = mustParseHex("3086D221A7D46BCDE86C90E49284EB153DAA8A1471E8CA7FE893209A45DBB031")
	glvG2      = mustParseHex("E4437ED6010E88286F547FA90ABFE4C4221208AC9DF506C61571B4AE8AC47F71")

	groupHalfN = new(big.Int).Rsh(groupN, 1)
)

// mulShiftRound returns round(k*g / 2^shift).
func mulShiftRound(k, g *big.Int, shift uint) *big.Int {
	r := new(big.Int).Mul(k, g)
	r.Add(r, new(big.Int).Lsh(big.NewInt(1), shift-1))
	return r.Rsh(r, shift)
}

// splitScalar returns k1, k2 with k1 + k2*lambda == k (mod N), each
// reduced modulo N and within 2^128 of zero or of N. k must be in [0, N).
func splitScalar(k *big.Int) (k1, k2 *big.Int) {
	c1 := MulScalars(mulShiftRound(k, glvG1, 384), glvMinusB1)
	c2 := MulScalars(mulShiftRound(k, glvG2, 384), glvMinusB2)
	k2 = AddScalars(c1, c2)
	k1 = new(big.Int).Sub(k, MulScalars(k2, glvLambda))
	return k1.Mod(k1, groupN), k2
}

// mulLambda returns lambda*p.
func mulLambda(p Point) Point {
	if p.IsInfinity() {
		return p
	}
	return Point{x: fieldMul(glvBeta, p.x), y: new(big.Int).Set(p.y)}
}

// signedHalf maps a split half to a non-negative magnitude, negating p when
// the half lies above N/2.
func signedHalf(k *big.Int, p Point) (*big.Int, Point) {
	if k.Cmp(groupHalfN) > 0 {
		return new(big.Int).Sub(groupN, k), p.Negate()
	}
	return k, p
}

// multiplyGLV returns k*p for k in [0, N) by interleaving the two half
// length multiplications over a shared chain of doublings.
func multiplyGLV(p Point, k *big.Int) Point {
	k1, k2 := splitScalar(k)
	k1, p1 := signedHalf(k1, p)
	k2, p2 := signedHalf(k2, mulLambda(p))
	p12 := Add(p1, p2)

	bits := k1.BitLen()
	if n := k2.BitLen(); n > bits {
		bits = n
	}

	var acc Point
	for i := bits - 1; i >= 0; i-- {
		acc = Add(acc, acc)
		switch b1, b2 := k1.Bit(i), k2.Bit(i); {
		case b1 == 1 && b2 == 1:
			acc = Add(acc, p12)
		case b1 == 1:
			acc = Add(acc, p1)
		case b2 == 1:
			acc = Add(acc, p2)
		}
	}
	return acc
}
