package ecdsa

import (
	"math/big"

	"k256.mleku.dev"
)

// noncePoint computes the nonce commitment nonce*G. Tests swap it to reach
// the r = 0 branch, which no known nonce triggers.
var noncePoint = k256.ScalarBaseMultiply

// DerivePublicKey returns Q = d*G for the private key d. d is reduced modulo
// N first and must not reduce to zero.
func DerivePublicKey(privateKey *big.Int) (k256.Point, error) {
	d := k256.ReduceScalar(privateKey)
	if privateKey == nil || d.Sign() == 0 {
		return k256.Point{}, signatureError(ErrInvalidPrivateKey,
			"private key must be non-zero modulo the group order")
	}
	return k256.ScalarBaseMultiply(d)
}

// Sign produces a signature of digest under privateKey using the supplied
// nonce, which must be in (0, N) and must never be reused.
//
// The digest and private key are reduced modulo N. The signature is
//
//	r = (nonce*G).x mod N
//	s = nonce^-1 * (digest + r*privateKey) mod N
//
// If r or s is zero, ErrInvalidNonce is returned and the caller should sign
// again with a fresh nonce. A nonce outside (0, N) fails with
// k256.ErrInvalidScalar. Neither the key nor the nonce is retained.
func Sign(digest, privateKey, nonce *big.Int) (*Signature, error) {
	if digest == nil {
		return nil, signatureError(ErrInvalidDigest, "digest is nil")
	}
	d := k256.ReduceScalar(privateKey)
	if privateKey == nil || d.Sign() == 0 {
		return nil, signatureError(ErrInvalidPrivateKey,
			"private key must be non-zero modulo the group order")
	}

	R, err := noncePoint(nonce)
	if err != nil {
		return nil, err
	}
	r := k256.ReduceScalar(R.X())
	if r.Sign() == 0 {
		return nil, signatureError(ErrInvalidNonce, "nonce produced r = 0, "+
			"sign again with a fresh nonce")
	}

	kInv, err := k256.InvertScalar(nonce)
	if err != nil {
		return nil, err
	}
	e := k256.ReduceScalar(digest)
	s := k256.MulScalars(kInv, k256.AddScalars(e, k256.MulScalars(r, d)))
	if s.Sign() == 0 {
		return nil, signatureError(ErrInvalidNonce, "nonce produced s = 0, "+
			"sign again with a fresh nonce")
	}

	return &Signature{r: r, s: s}, nil
}
