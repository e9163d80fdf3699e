// Package weierstrass implements constant-time prime-field and
// short-Weierstrass elliptic-curve group arithmetic, parameterized by the
// curve at runtime rather than generated per curve.
//
// Field and scalar elements live in the Montgomery domain and are always
// fully reduced. Point addition and doubling use the complete formulas of
// Renes, Costello and Batina (https://eprint.iacr.org/2015/1060), so no
// operation branches on whether an operand is the identity, a double, or a
// 2-torsion point. Scalar multiplication runs a fixed-window ladder whose
// instruction count and memory-access pattern are independent of the scalar.
//
// Secret-dependent failure (a non-residue x coordinate, inverting zero, an
// out-of-range encoding of the right length) is reported through 0/1 validity
// masks rather than errors; only structural problems with public wire data
// (wrong length, unknown tag) produce ordinary errors.
//
// The curves subpackage carries ready-made parameters for the common curves.
package weierstrass
