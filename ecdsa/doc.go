// Package ecdsa signs and verifies secp256k1 ECDSA signatures on top of the
// point arithmetic in package k256.
//
// Messages enter as already hashed integer digests and every signature needs
// a caller supplied nonce in (0, N). The package never hashes, never
// generates randomness and never serializes keys or signatures. A nonce that
// produces r = 0 or s = 0 is reported as ErrInvalidNonce so the caller can
// retry with a fresh one. Reusing a nonce for two different digests under
// the same key reveals the private key.
//
// Verification never panics on adversarial input: Verify reports false and
// CheckSignature returns an Error describing the first check that failed.
package ecdsa
