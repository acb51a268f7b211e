package ecdsa

import (
	"math/big"

	"k256.mleku.dev"
)

// Verify reports whether sig is a valid signature of digest under the public
// key pub. It returns false, rather than failing, for signatures with r or s
// outside [1, N) and for public keys that are not points on the curve.
func Verify(digest *big.Int, sig *Signature, pub k256.Point) bool {
	return CheckSignature(digest, sig, pub) == nil
}

// CheckSignature is Verify with the reason for a rejection. The returned
// error is nil for a valid signature, and otherwise has one of the kinds
// ErrInvalidDigest, ErrSigRRange, ErrSigSRange, k256.ErrInvalidPoint or
// ErrVerifyFailed.
func CheckSignature(digest *big.Int, sig *Signature, pub k256.Point) error {
	if digest == nil {
		return signatureError(ErrInvalidDigest, "digest is nil")
	}
	if sig == nil || !k256.IsValidScalar(sig.r) {
		return signatureError(ErrSigRRange, "signature r is not in [1, N)")
	}
	if !k256.IsValidScalar(sig.s) {
		return signatureError(ErrSigSRange, "signature s is not in [1, N)")
	}
	if !pub.IsOnCurve() {
		return signatureError(k256.ErrInvalidPoint, "public key is not a "+
			"point on the curve")
	}

	sInv, err := k256.InvertScalar(sig.s)
	if err != nil {
		return err
	}
	u1 := k256.MulScalars(k256.ReduceScalar(digest), sInv)
	u2 := k256.MulScalars(sig.r, sInv)

	// R = u1*G + u2*Q. Either term may be the point at infinity for
	// adversarial input, so use the complete group law.
	R := k256.Add(k256.BaseMultiply(u1), k256.Multiply(pub, u2))
	if R.IsInfinity() {
		return signatureError(ErrVerifyFailed, "u1*G + u2*Q is the point "+
			"at infinity")
	}
	if k256.ReduceScalar(R.X()).Cmp(sig.r) != 0 {
		return signatureError(ErrVerifyFailed, "signature does not match "+
			"digest and public key")
	}
	return nil
}
