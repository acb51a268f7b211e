// Package k256 implements affine elliptic curve arithmetic over secp256k1.
//
// Field elements and scalars are *big.Int values reduced modulo the field
// prime and the group order respectively. Points are immutable values of type
// Point, which is either an affine (x, y) pair on the curve or the point at
// infinity.
//
// Two families of point operations are provided:
//
//   - DoublePoint, AddPoints and ScalarMultiply are strict: they reject any
//     input whose result would be the point at infinity (coincident operands,
//     inverse operands, multipliers of 0 or the group order) with an Error
//     of kind ErrInvalidOperand or ErrInvalidScalar.
//   - Add, Multiply and BaseMultiply implement the complete group law and
//     return the point at infinity where it is the correct answer.
//
// Multiply splits its multiplier with the GLV endomorphism. NegateSecret and
// the Tweak functions adjust a secret key and its public key in step.
//
// The ecdsa sub package builds signing and verification on top of these.
//
// None of the operations here run in constant time.
package k256
