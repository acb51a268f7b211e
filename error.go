package k256

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidOperand is returned when an arithmetic precondition does not
	// hold, such as division by zero, doubling a point with a zero y
	// coordinate or adding a point to itself with the chord formula.
	ErrInvalidOperand = ErrorKind("ErrInvalidOperand")

	// ErrInvalidScalar is returned when a multiplier is not in the range
	// (0, N) where N is the group order.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidPoint is returned when coordinates do not describe a point
	// on the curve.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 arithmetic. It has full
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

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
