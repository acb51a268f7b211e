package signer

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"k256.mleku.dev"
	"k256.mleku.dev/ecdsa"
)

// maxSignAttempts bounds the number of fresh nonces Sign tries when the
// ecdsa package reports ErrInvalidNonce.
const maxSignAttempts = 8

// K256Signer implements the I interface using the k256 and ecdsa packages
type K256Signer struct {
	sec       *big.Int
	pub       k256.Point
	hasSecret bool // Whether we have the secret key (if false, can only verify)
	rand      io.Reader

	// deterministic selects RFC 6979 nonces instead of nonces from rand
	deterministic bool
}

// NewK256Signer creates a new K256Signer drawing randomness from crypto/rand
func NewK256Signer() *K256Signer {
	return NewK256SignerWithRand(rand.Reader)
}

// NewK256SignerWithRand creates a new K256Signer drawing keys and nonces
// from r
func NewK256SignerWithRand(r io.Reader) *K256Signer {
	return &K256Signer{rand: r}
}

// NewK256SignerDeterministic creates a new K256Signer that derives nonces
// from the secret key and digest with RFC 6979. Generate still draws keys
// from crypto/rand.
func NewK256SignerDeterministic() *K256Signer {
	return &K256Signer{rand: rand.Reader, deterministic: true}
}

// reader returns the entropy source, crypto/rand for a zero value signer.
func (s *K256Signer) reader() io.Reader {
	if s.rand == nil {
		return rand.Reader
	}
	return s.rand
}

// randScalar reads a uniform scalar in (0, N) from r.
func randScalar(r io.Reader) (*big.Int, error) {
	k, err := rand.Int(r, new(big.Int).Sub(k256.Order(), big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}

// Generate creates a fresh new key pair from the signer's entropy source
func (s *K256Signer) Generate() error {
	sec, err := randScalar(s.reader())
	if err != nil {
		return err
	}
	return s.setSecret(sec)
}

// InitSec initialises the secret (signing) key from the raw bytes, and also derives the public key
func (s *K256Signer) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return ErrSecretLength
	}
	d := new(big.Int).SetBytes(sec)
	if !k256.IsValidScalar(d) {
		return ErrSecretRange
	}
	return s.setSecret(d)
}

func (s *K256Signer) setSecret(d *big.Int) error {
	pub, err := ecdsa.DerivePublicKey(d)
	if err != nil {
		wipe(d)
		return err
	}
	s.Zero()
	s.sec = d
	s.pub = pub
	s.hasSecret = true
	return nil
}

// InitPub initializes the public (verification) key
func (s *K256Signer) InitPub(pub k256.Point) error {
	if !pub.IsOnCurve() {
		return ErrInvalidPublicKey
	}
	s.Zero()
	s.pub = pub
	return nil
}

// Sec returns the secret key bytes
func (s *K256Signer) Sec() []byte {
	if !s.hasSecret {
		return nil
	}
	return scalar32(s.sec)
}

// Pub returns the public key
func (s *K256Signer) Pub() k256.Point {
	return s.pub
}

// Sign hashes msg and signs the digest with a random or RFC 6979 nonce.
// Nonces that yield r = 0 or s = 0 are replaced, up to maxSignAttempts
// times.
func (s *K256Signer) Sign(msg []byte) (*ecdsa.Signature, error) {
	if !s.hasSecret {
		return nil, ErrNoSecret
	}

	digest := Digest(msg)
	nextNonce := func() (*big.Int, error) { return randScalar(s.reader()) }
	if s.deterministic {
		rng := newRFC6979(s.sec, digest)
		defer rng.clear()
		nextNonce = func() (*big.Int, error) { return rng.next(), nil }
	}

	for attempt := 0; attempt < maxSignAttempts; attempt++ {
		nonce, err := nextNonce()
		if err != nil {
			return nil, err
		}
		sig, err := ecdsa.Sign(digest, s.sec, nonce)
		wipe(nonce)
		if errors.Is(err, ecdsa.ErrInvalidNonce) {
			continue
		}
		return sig, err
	}
	return nil, fmt.Errorf("no usable nonce after %d attempts: %w",
		maxSignAttempts, ecdsa.ErrInvalidNonce)
}

// Verify checks a message and signature match the stored public key
func (s *K256Signer) Verify(msg []byte, sig *ecdsa.Signature) (bool, error) {
	if s.pub.IsInfinity() {
		return false, ErrNoPublic
	}
	return ecdsa.Verify(Digest(msg), sig, s.pub), nil
}

// ECDH returns the x coordinate of the secret key times pub
func (s *K256Signer) ECDH(pub k256.Point) ([]byte, error) {
	if !s.hasSecret {
		return nil, ErrNoSecret
	}
	if !pub.IsOnCurve() {
		return nil, ErrInvalidPublicKey
	}
	shared, err := k256.ScalarMultiply(pub, s.sec)
	if err != nil {
		return nil, err
	}
	return scalar32(shared.X()), nil
}

// Zero wipes the secret key and forgets the public key
func (s *K256Signer) Zero() {
	wipe(s.sec)
	s.sec = nil
	s.pub = k256.Infinity()
	s.hasSecret = false
}
