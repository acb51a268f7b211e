package signer

import (
	"crypto/hmac"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"

	"k256.mleku.dev"
)

// rfc6979 is the HMAC-SHA256 DRBG of RFC 6979 section 3.2, keyed with the
// secret key and the message digest.
type rfc6979 struct {
	v, k  [32]byte
	retry bool
}

func hmacSHA256(key []byte, data ...[]byte) []byte {
	mac := hmac.New(sha256simd.New, key)
	for _, d := range data {
		mac.Write(d)
	}
	return mac.Sum(nil)
}

// newRFC6979 seeds the generator with sec and digest, both as 32 big-endian
// bytes. The digest is reduced modulo N first (bits2octets).
func newRFC6979(sec, digest *big.Int) *rfc6979 {
	rng := &rfc6979{}

	// 3.2.b and 3.2.c
	for i := range rng.v {
		rng.v[i] = 0x01
	}

	seed := append(scalar32(sec), scalar32(k256.ReduceScalar(digest))...)
	defer clear(seed)

	// 3.2.d through 3.2.g
	copy(rng.k[:], hmacSHA256(rng.k[:], rng.v[:], []byte{0x00}, seed))
	copy(rng.v[:], hmacSHA256(rng.k[:], rng.v[:]))
	copy(rng.k[:], hmacSHA256(rng.k[:], rng.v[:], []byte{0x01}, seed))
	copy(rng.v[:], hmacSHA256(rng.k[:], rng.v[:]))

	return rng
}

// next returns the next candidate in (0, N), skipping values outside it as
// 3.2.h requires.
func (rng *rfc6979) next() *big.Int {
	for {
		if rng.retry {
			copy(rng.k[:], hmacSHA256(rng.k[:], rng.v[:], []byte{0x00}))
			copy(rng.v[:], hmacSHA256(rng.k[:], rng.v[:]))
		}
		rng.retry = true

		copy(rng.v[:], hmacSHA256(rng.k[:], rng.v[:]))
		k := new(big.Int).SetBytes(rng.v[:])
		if k256.IsValidScalar(k) {
			return k
		}
	}
}

// clear wipes the generator state.
func (rng *rfc6979) clear() {
	clear(rng.v[:])
	clear(rng.k[:])
}
