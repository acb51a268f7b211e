// Package signer wraps the k256 ECDSA primitives behind a key holding
// interface that hashes messages and draws nonces, the parts the ecdsa
// package leaves to its callers.
//
// Two implementations are provided: K256Signer on top of this module and
// BtcecSigner on top of github.com/btcsuite/btcd/btcec/v2. They produce
// signatures the other accepts, which makes BtcecSigner a reference for
// interoperability tests and benchmarks.
package signer

import (
	"errors"
	"math/big"

	sha256simd "github.com/minio/sha256-simd"

	"k256.mleku.dev"
	"k256.mleku.dev/ecdsa"
)

var (
	// ErrNoSecret is returned by operations that need the secret key when
	// the signer only holds a public key.
	ErrNoSecret = errors.New("no secret key available")

	// ErrNoPublic is returned by Verify on a signer without a key.
	ErrNoPublic = errors.New("no public key available for verification")

	// ErrSecretLength is returned by InitSec for input that is not 32
	// bytes long.
	ErrSecretLength = errors.New("secret key must be 32 bytes")

	// ErrSecretRange is returned by InitSec for a secret that is zero or
	// not less than the group order.
	ErrSecretRange = errors.New("secret key must be in the range (0, N)")

	// ErrInvalidPublicKey is returned by InitPub and ECDH for a point that
	// is not on the curve.
	ErrInvalidPublicKey = errors.New("public key is not a point on the curve")
)

// I is the interface implemented by the signers in this package.
type I interface {
	// Generate creates a fresh key pair from system entropy.
	Generate() error
	// InitSec sets the secret key from 32 big-endian bytes and derives the
	// public key.
	InitSec(sec []byte) error
	// InitPub sets a public key only; the signer can then only verify.
	InitPub(pub k256.Point) error
	// Sec returns the secret key as 32 big-endian bytes, or nil.
	Sec() []byte
	// Pub returns the public key, the point at infinity if there is none.
	Pub() k256.Point
	// Sign hashes msg with SHA-256 and signs the digest.
	Sign(msg []byte) (*ecdsa.Signature, error)
	// Verify hashes msg with SHA-256 and checks sig against the public key.
	Verify(msg []byte, sig *ecdsa.Signature) (bool, error)
	// ECDH returns the 32 byte x coordinate of sec*pub (RFC 5903).
	ECDH(pub k256.Point) ([]byte, error)
	// Zero wipes the secret key.
	Zero()
}

// Digest returns the SHA-256 hash of msg as an integer, the form the ecdsa
// package signs.
func Digest(msg []byte) *big.Int {
	sum := sha256simd.Sum256(msg)
	return new(big.Int).SetBytes(sum[:])
}

// wipe overwrites the words of n before it is dropped.
func wipe(n *big.Int) {
	if n == nil {
		return
	}
	words := n.Bits()
	for i := range words {
		words[i] = 0
	}
	n.SetInt64(0)
}

// scalar32 returns k as 32 big-endian bytes. k must be in [0, 2^256).
func scalar32(k *big.Int) []byte {
	return k.FillBytes(make([]byte, 32))
}
