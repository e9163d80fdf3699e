package weierstrass

import (
	"math/bits"

	"lukechampine.com/uint128"
)

// Limb-vector primitives shared by the field and scalar engines. Every loop
// below is bounded by the length of its operands, which is fixed by the curve
// configuration; none of the control flow depends on limb values.

// addCarry computes z = x + y over equal-length limb vectors and returns the
// final carry.
func addCarry(z, x, y []uint64) uint64 {
	var c uint64
	for i := range x {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// subBorrow computes z = x - y over equal-length limb vectors and returns the
// final borrow.
func subBorrow(z, x, y []uint64) uint64 {
	var b uint64
	for i := range x {
		z[i], b = bits.Sub64(x[i], y[i], b)
	}
	return b
}

// madd2 returns the 128-bit value x*y + a + b as (hi, lo). The sum cannot
// overflow 128 bits; the wrap variants keep the carry handling branch-free.
func madd2(x, y, a, b uint64) (hi, lo uint64) {
	p := uint128.From64(x).MulWrap64(y).AddWrap64(a).AddWrap64(b)
	return p.Hi, p.Lo
}

// ctMask expands a 0/1 condition into an all-zeros or all-ones word.
func ctMask(cond uint64) uint64 {
	return -(cond & 1)
}

// ctSelectWord returns a when cond = 1 and b when cond = 0.
func ctSelectWord(cond, a, b uint64) uint64 {
	mask := ctMask(cond)
	return b ^ (mask & (a ^ b))
}

// ctSelect sets z = a when cond = 1 and z = b when cond = 0.
func ctSelect(z, a, b []uint64, cond uint64) {
	mask := ctMask(cond)
	for i := range z {
		z[i] = b[i] ^ (mask & (a[i] ^ b[i]))
	}
}

// ctEq returns 1 when the vectors hold identical limbs.
func ctEq(x, y []uint64) uint64 {
	var acc uint64
	for i := range x {
		acc |= x[i] ^ y[i]
	}
	return ctIsZeroWord(acc)
}

// ctIsZero returns 1 when every limb is zero.
func ctIsZero(x []uint64) uint64 {
	var acc uint64
	for i := range x {
		acc |= x[i]
	}
	return ctIsZeroWord(acc)
}

// ctIsZeroWord returns 1 when w = 0.
func ctIsZeroWord(w uint64) uint64 {
	return 1 ^ ((w | -w) >> 63)
}

// ctLt returns 1 when x < y, comparing as unsigned little-endian integers.
func ctLt(x, y []uint64) uint64 {
	var b uint64
	for i := range x {
		_, b = bits.Sub64(x[i], y[i], b)
	}
	return b
}

// ctGt returns 1 when x > y.
func ctGt(x, y []uint64) uint64 {
	return ctLt(y, x)
}

// negTwos computes the two's complement negation z = ^x + 1 over a saturated
// limb vector.
func negTwos(z, x []uint64) {
	var c uint64 = 1
	for i := range x {
		z[i], c = bits.Add64(^x[i], 0, c)
	}
}

// sar1 performs an arithmetic (sign-extending) right shift by one bit over a
// saturated two's-complement limb vector.
func sar1(z []uint64) {
	n := len(z)
	for i := 0; i < n-1; i++ {
		z[i] = z[i]>>1 | z[i+1]<<63
	}
	z[n-1] = uint64(int64(z[n-1]) >> 1)
}

// shrBits shifts x right by k bits into z. Only used on public values during
// curve initialization; k is never secret.
func shrBits(z, x []uint64, k uint) {
	limbShift := int(k / 64)
	bitShift := k % 64
	n := len(x)
	for i := 0; i < n; i++ {
		var w uint64
		if i+limbShift < n {
			w = x[i+limbShift] >> bitShift
			if bitShift > 0 && i+limbShift+1 < n {
				w |= x[i+limbShift+1] << (64 - bitShift)
			}
		}
		z[i] = w
	}
}

// bitLen returns the bit length of a public little-endian limb vector.
func bitLen(x []uint64) int {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*64 + bits.Len64(x[i])
		}
	}
	return 0
}
