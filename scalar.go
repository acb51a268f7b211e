package k256

import (
	"math/big"
)

var (
	groupN       = mustParseHex(OrderHex)
	groupNMinus2 = new(big.Int).Sub(groupN, big.NewInt(2))
)

// Order returns a copy of the group order N.
func Order() *big.Int {
	return new(big.Int).Set(groupN)
}

// IsValidScalar reports whether k is in the range (0, N), which is the range
// accepted for private keys, nonces and ScalarMultiply multipliers.
func IsValidScalar(k *big.Int) bool {
	return k != nil && k.Sign() > 0 && k.Cmp(groupN) < 0
}

// ReduceScalar returns a mod N in [0, N). A nil argument reduces to zero.
func ReduceScalar(a *big.Int) *big.Int {
	if a == nil {
		return new(big.Int)
	}
	return new(big.Int).Mod(a, groupN)
}

// AddScalars returns a + b mod N.
func AddScalars(a, b *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return r.Mod(r, groupN)
}

// MulScalars returns a * b mod N.
func MulScalars(a, b *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return r.Mod(r, groupN)
}

// InvertScalar returns a^-1 mod N using a^(N-2), N being prime. Zero has no
// inverse and yields ErrInvalidOperand.
func InvertScalar(a *big.Int) (*big.Int, error) {
	r := ReduceScalar(a)
	if r.Sign() == 0 {
		return nil, makeError(ErrInvalidOperand, "division by zero: "+
			"value has no inverse modulo the group order")
	}
	return r.Exp(r, groupNMinus2, groupN), nil
}
