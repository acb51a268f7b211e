package signer

import (
	"math/big"

	"github.com/btcsuite/btcd/btcec/v2"
	btcecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"

	"k256.mleku.dev"
	"k256.mleku.dev/ecdsa"
)

// BtcecSigner implements the I interface using btcec (pure Go implementation)
type BtcecSigner struct {
	privKey   *btcec.PrivateKey
	pubKey    *btcec.PublicKey
	hasSecret bool
}

// NewBtcecSigner creates a new BtcecSigner instance
func NewBtcecSigner() *BtcecSigner {
	return &BtcecSigner{
		hasSecret: false,
	}
}

// Generate creates a fresh new key pair from system entropy
func (s *BtcecSigner) Generate() error {
	privKey, err := btcec.NewPrivateKey()
	if err != nil {
		return err
	}

	s.Zero()
	s.privKey = privKey
	s.pubKey = privKey.PubKey()
	s.hasSecret = true

	return nil
}

// InitSec initialises the secret (signing) key from the raw bytes, and also derives the public key
func (s *BtcecSigner) InitSec(sec []byte) error {
	if len(sec) != 32 {
		return ErrSecretLength
	}
	// PrivKeyFromBytes reduces silently, so range check first.
	if !k256.IsValidScalar(new(big.Int).SetBytes(sec)) {
		return ErrSecretRange
	}

	privKey, pubKey := btcec.PrivKeyFromBytes(sec)

	s.Zero()
	s.privKey = privKey
	s.pubKey = pubKey
	s.hasSecret = true

	return nil
}

// InitPub initializes the public (verification) key
func (s *BtcecSigner) InitPub(pub k256.Point) error {
	if !pub.IsOnCurve() {
		return ErrInvalidPublicKey
	}

	s.Zero()
	s.pubKey = toBtcecPubKey(pub)

	return nil
}

// Sec returns the secret key bytes
func (s *BtcecSigner) Sec() []byte {
	if !s.hasSecret || s.privKey == nil {
		return nil
	}
	return s.privKey.Serialize()
}

// Pub returns the public key
func (s *BtcecSigner) Pub() k256.Point {
	if s.pubKey == nil {
		return k256.Infinity()
	}
	// btcec only holds points on the curve, NewPoint cannot fail here.
	pub, err := k256.NewPoint(s.pubKey.X(), s.pubKey.Y())
	if err != nil {
		return k256.Infinity()
	}
	return pub
}

// Sign hashes msg and signs the digest with an RFC6979 nonce
func (s *BtcecSigner) Sign(msg []byte) (*ecdsa.Signature, error) {
	if !s.hasSecret || s.privKey == nil {
		return nil, ErrNoSecret
	}

	digest := scalar32(Digest(msg))

	// The compact format is a recovery byte followed by R and S.
	compact := btcecdsa.SignCompact(s.privKey, digest, true)

	r := new(big.Int).SetBytes(compact[1:33])
	sv := new(big.Int).SetBytes(compact[33:65])
	return ecdsa.NewSignature(r, sv), nil
}

// Verify checks a message and signature match the stored public key
func (s *BtcecSigner) Verify(msg []byte, sig *ecdsa.Signature) (bool, error) {
	if s.pubKey == nil {
		return false, ErrNoPublic
	}
	if sig == nil {
		return false, nil
	}

	r, sv := sig.R(), sig.S()
	if !k256.IsValidScalar(r) || !k256.IsValidScalar(sv) {
		return false, nil
	}

	var rs, ss btcec.ModNScalar
	rs.SetByteSlice(scalar32(r))
	ss.SetByteSlice(scalar32(sv))

	digest := scalar32(Digest(msg))
	return btcecdsa.NewSignature(&rs, &ss).Verify(digest, s.pubKey), nil
}

// ECDH returns a shared secret derived using Elliptic Curve Diffie-Hellman on the I secret and provided pubkey
func (s *BtcecSigner) ECDH(pub k256.Point) ([]byte, error) {
	if !s.hasSecret || s.privKey == nil {
		return nil, ErrNoSecret
	}
	if !pub.IsOnCurve() {
		return nil, ErrInvalidPublicKey
	}

	return btcec.GenerateSharedSecret(s.privKey, toBtcecPubKey(pub)), nil
}

// Zero wipes the secret key to prevent memory leaks
func (s *BtcecSigner) Zero() {
	if s.privKey != nil {
		s.privKey.Zero()
		s.privKey = nil
	}
	s.hasSecret = false
	s.pubKey = nil
}

// toBtcecPubKey converts an affine point, which must be on the curve.
func toBtcecPubKey(p k256.Point) *btcec.PublicKey {
	var x, y btcec.FieldVal
	x.SetByteSlice(scalar32(p.X()))
	y.SetByteSlice(scalar32(p.Y()))
	return btcec.NewPublicKey(&x, &y)
}
