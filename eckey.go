package k256

import (
	"math/big"
)

// Key tweaks keep a secret key d and its public key d*G in step: adding t to
// d moves the public key by t*G, and multiplying d by t multiplies the public
// key by t. Tweaks must be valid scalars, and a result of zero (or the point
// at infinity) is rejected with ErrInvalidScalar.

// NegateSecret returns N - d for a valid secret key d.
func NegateSecret(d *big.Int) (*big.Int, error) {
	if !IsValidScalar(d) {
		return nil, makeError(ErrInvalidScalar, "invalid secret key")
	}
	return new(big.Int).Sub(groupN, d), nil
}

// TweakAddSecret returns d + t mod N.
func TweakAddSecret(d, t *big.Int) (*big.Int, error) {
	if !IsValidScalar(d) {
		return nil, makeError(ErrInvalidScalar, "invalid secret key")
	}
	if !IsValidScalar(t) {
		return nil, makeError(ErrInvalidScalar, "invalid tweak")
	}
	r := AddScalars(d, t)
	if r.Sign() == 0 {
		return nil, makeError(ErrInvalidScalar, "resulting secret key is zero")
	}
	return r, nil
}

// TweakMulSecret returns d * t mod N. The product of two non-zero scalars is
// never zero since N is prime.
func TweakMulSecret(d, t *big.Int) (*big.Int, error) {
	if !IsValidScalar(d) {
		return nil, makeError(ErrInvalidScalar, "invalid secret key")
	}
	if !IsValidScalar(t) {
		return nil, makeError(ErrInvalidScalar, "invalid tweak")
	}
	return MulScalars(d, t), nil
}

// TweakAddPublic returns pub + t*G.
func TweakAddPublic(pub Point, t *big.Int) (Point, error) {
	if !IsValidScalar(t) {
		return Point{}, makeError(ErrInvalidScalar, "invalid tweak")
	}
	if !pub.IsOnCurve() {
		return Point{}, makeError(ErrInvalidPoint, "invalid public key")
	}
	r := Add(pub, BaseMultiply(t))
	if r.IsInfinity() {
		return Point{}, makeError(ErrInvalidScalar, "resulting public key "+
			"is the point at infinity")
	}
	return r, nil
}

// TweakMulPublic returns t*pub.
func TweakMulPublic(pub Point, t *big.Int) (Point, error) {
	if !pub.IsOnCurve() {
		return Point{}, makeError(ErrInvalidPoint, "invalid public key")
	}
	return ScalarMultiply(pub, t)
}
