package k256

import (
	"math/big"
)

// secp256k1 domain parameters, big-endian hex.
const (
	// PrimeHex is the field prime P = 2^256 - 2^32 - 977.
	PrimeHex = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F"

	// OrderHex is the order N of the group generated by G.
	OrderHex = "FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141"

	// GeneratorXHex and GeneratorYHex are the affine coordinates of G.
	GeneratorXHex = "79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798"
	GeneratorYHex = "483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8"

	// CurveB is the constant term of y^2 = x^3 + 7.
	CurveB = 7
)

// Parsed forms of the constants above. These are never written after
// initialisation; every exported accessor hands out a copy.
var (
	fieldP       = mustParseHex(PrimeHex)
	fieldPMinus2 = new(big.Int).Sub(fieldP, big.NewInt(2))
	curveB       = big.NewInt(CurveB)
	bigThree     = big.NewInt(3)
)

func mustParseHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("k256: invalid hex constant " + s)
	}
	return n
}

// Prime returns a copy of the field prime P.
func Prime() *big.Int {
	return new(big.Int).Set(fieldP)
}

// fieldReduce returns a mod P in [0, P). a is not modified.
func fieldReduce(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, fieldP)
}

func fieldAdd(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, fieldP)
}

func fieldSub(a, b *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return r.Mod(r, fieldP)
}

func fieldMul(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, fieldP)
}

func fieldSqr(a *big.Int) *big.Int {
	return fieldMul(a, a)
}

// fieldInv returns a^(P-2) mod P, which is a^-1 for a != 0 since P is prime.
func fieldInv(a *big.Int) *big.Int {
	r := fieldReduce(a)
	return r.Exp(r, fieldPMinus2, fieldP)
}

// fieldInverse is fieldInv with the zero check.
func fieldInverse(a *big.Int) (*big.Int, error) {
	if fieldReduce(a).Sign() == 0 {
		return nil, makeError(ErrInvalidOperand, "division by zero: "+
			"value has no inverse modulo the field prime")
	}
	return fieldInv(a), nil
}

// ModularDivide returns a * b^-1 mod P. It fails with ErrInvalidOperand when
// b is congruent to zero, since no inverse exists.
func ModularDivide(a, b *big.Int) (*big.Int, error) {
	if a == nil || b == nil {
		return nil, makeError(ErrInvalidOperand, "nil operand")
	}
	inv, err := fieldInverse(b)
	if err != nil {
		return nil, err
	}
	return fieldMul(a, inv), nil
}

// curveRHS returns x^3 + 7 mod P.
func curveRHS(x *big.Int) *big.Int {
	return fieldAdd(fieldMul(fieldSqr(x), x), curveB)
}

// VerifyPoint reports whether (x, y) satisfies y^2 = x^3 + 7 mod P. Both
// coordinates must already be reduced, i.e. in [0, P).
func VerifyPoint(x, y *big.Int) bool {
	if !isFieldElement(x) || !isFieldElement(y) {
		return false
	}
	return fieldSqr(y).Cmp(curveRHS(x)) == 0
}

func isFieldElement(a *big.Int) bool {
	return a != nil && a.Sign() >= 0 && a.Cmp(fieldP) < 0
}
