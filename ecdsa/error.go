package ecdsa

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidNonce is returned when signing with a nonce yields r = 0 or
	// s = 0. Sign again with a fresh nonce.
	ErrInvalidNonce = ErrorKind("ErrInvalidNonce")

	// ErrInvalidPrivateKey is returned when a private key is nil or
	// congruent to zero modulo the group order.
	ErrInvalidPrivateKey = ErrorKind("ErrInvalidPrivateKey")

	// ErrInvalidDigest is returned when the message digest is nil.
	ErrInvalidDigest = ErrorKind("ErrInvalidDigest")

	// ErrSigRRange is returned when the R value of a signature is not in
	// the range [1, N).
	ErrSigRRange = ErrorKind("ErrSigRRange")

	// ErrSigSRange is returned when the S value of a signature is not in
	// the range [1, N).
	ErrSigSRange = ErrorKind("ErrSigSRange")

	// ErrVerifyFailed is returned when a well formed signature does not
	// match the digest and public key.
	ErrVerifyFailed = ErrorKind("ErrVerifyFailed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to an ECDSA signature. It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// signatureError creates an Error given a set of arguments.
func signatureError(kind error, desc string) Error {
	return Error{Err: kind, Description: desc}
}
