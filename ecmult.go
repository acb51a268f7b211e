package k256

import (
	"math/big"
)

// ScalarMultiply returns k*p for k in (0, N). Zero and N both map to the
// point at infinity and are rejected with ErrInvalidScalar, as is any k
// outside that range. p must not be the point at infinity.
//
// The product is computed by double-and-add over the bits of k from the most
// significant down: starting from p at the top set bit, every following bit
// doubles the accumulator and a set bit then adds p. Since every prefix of k
// is itself in (0, N), the accumulator is never the point at infinity and
// never equals p when p is added to it.
func ScalarMultiply(p Point, k *big.Int) (Point, error) {
	if !IsValidScalar(k) {
		return Point{}, makeError(ErrInvalidScalar, "scalar multiplier "+
			"must be in the range (0, N)")
	}
	if p.IsInfinity() {
		return Point{}, makeError(ErrInvalidOperand, "cannot multiply the "+
			"point at infinity")
	}
	return scalarMult(p, k), nil
}

// ScalarBaseMultiply returns k*G for k in (0, N), with the same checks as
// ScalarMultiply.
func ScalarBaseMultiply(k *big.Int) (Point, error) {
	return ScalarMultiply(generator, k)
}

// Multiply returns k*p for any integer k, reducing it modulo N first. A
// reduced multiplier of zero, or p being the point at infinity, gives the
// point at infinity. The product is computed with the GLV endomorphism and
// equals ScalarMultiply(p, k) wherever the latter succeeds.
func Multiply(p Point, k *big.Int) Point {
	kr := ReduceScalar(k)
	if kr.Sign() == 0 || p.IsInfinity() {
		return Point{}
	}
	return multiplyGLV(p, kr)
}

// scalarMult expects affine p and k in (0, N).
func scalarMult(p Point, k *big.Int) Point {
	acc := p
	for i := k.BitLen() - 2; i >= 0; i-- {
		acc = double(acc)
		if k.Bit(i) == 1 {
			acc = Add(p, acc)
		}
	}
	return acc
}
