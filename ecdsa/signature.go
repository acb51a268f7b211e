package ecdsa

import (
	"fmt"
	"math/big"
)

// Signature is an ECDSA signature (r, s). It is immutable; the accessors
// return copies.
type Signature struct {
	r, s *big.Int
}

// NewSignature returns a signature holding copies of r and s. The values are
// not range checked here; Verify rejects anything outside [1, N).
func NewSignature(r, s *big.Int) *Signature {
	sig := &Signature{r: new(big.Int), s: new(big.Int)}
	if r != nil {
		sig.r.Set(r)
	}
	if s != nil {
		sig.s.Set(s)
	}
	return sig
}

// R returns a copy of the r component.
func (sig *Signature) R() *big.Int {
	return orZero(sig.r)
}

// S returns a copy of the s component.
func (sig *Signature) S() *big.Int {
	return orZero(sig.s)
}

// IsEqual compares this Signature instance to the one passed, returning true
// if both Signatures are equivalent. Unset components compare as zero.
func (sig *Signature) IsEqual(other *Signature) bool {
	if other == nil {
		return false
	}
	return sig.R().Cmp(other.R()) == 0 && sig.S().Cmp(other.S()) == 0
}

// String returns r and s in hex.
func (sig *Signature) String() string {
	return fmt.Sprintf("r=0x%x, s=0x%x", sig.R(), sig.S())
}

// orZero copies n, or returns zero for nil so the zero value Signature is
// usable.
func orZero(n *big.Int) *big.Int {
	if n == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(n)
}
