package weierstrass

import (
	"fmt"

	fasthex "github.com/tmthrgd/go-hex"
)

// Limb capacities. The engine supports odd prime moduli up to 576 bits, which
// covers every short-Weierstrass curve shape this package targets.
const (
	maxLimbs    = 9            // 576 bits of 64-bit limbs
	maxSatLimbs = maxLimbs + 1 // saturated divstep vectors carry one sign limb
)

// Element is a residue modulo the prime of the Field it was produced by,
// stored in the Montgomery domain: the limbs hold v such that the represented
// value is v*R⁻¹ mod M, R = 2^(64*limbs). Elements are always fully reduced to
// [0, M); this backend has no transient unnormalized state. Limbs beyond the
// field's limb count are zero.
//
// An Element is only meaningful together with the Field that produced it.
// Mixing elements across fields miscomputes silently, as with any
// fixed-modulus representation.
type Element struct {
	limbs [maxLimbs]uint64
}

// Set copies x into e.
func (e *Element) Set(x *Element) *Element {
	*e = *x
	return e
}

// Select sets e to a when cond = 1 and to b when cond = 0, in constant time.
func (e *Element) Select(a, b *Element, cond int) *Element {
	ctSelect(e.limbs[:], a.limbs[:], b.limbs[:], uint64(cond))
	return e
}

// Field implements constant-time arithmetic modulo a fixed odd prime M of
// 128 to 576 bits. All Montgomery constants are derived once at construction
// time; a Field is immutable afterwards and safe for concurrent use.
type Field struct {
	m      [maxLimbs]uint64 // modulus, little-endian limbs
	nlimbs int
	bits   int
	size   int // encoded byte width, ceil(bits/8)

	m0inv uint64  // -M⁻¹ mod 2^64
	one   Element // R mod M, the Montgomery domain 1
	r2    Element // R² mod M
	r3    Element // R³ mod M

	invIters   int     // Bernstein-Yang divstep count, fixed per bit length
	invPrecomp Element // ((M+1)/2)^invIters, Montgomery form

	sqrt3Mod4 bool
	sqrtExp   [maxLimbs]uint64 // (M+1)/4 when M ≡ 3 (mod 4), else (T-1)/2
	tsS       uint32           // Tonelli-Shanks: M - 1 = T * 2^tsS, T odd
	tsRoot    Element          // nonresidue^T, a primitive 2^tsS-th root of unity
	minusOne  Element
}

// NewField builds the arithmetic engine for the odd prime given as a
// big-endian hex string. The string length fixes the encoded byte width of
// field elements.
func NewField(modulusHex string) (*Field, error) {
	raw, err := fasthex.DecodeString(modulusHex)
	if err != nil {
		return nil, fmt.Errorf("weierstrass: invalid modulus hex: %w", err)
	}
	f := &Field{size: len(raw)}
	if f.size < 16 || f.size > maxLimbs*8 {
		return nil, fmt.Errorf("weierstrass: modulus width %d bytes out of range", f.size)
	}
	f.nlimbs = (f.size + 7) / 8
	setBytesRaw(f.m[:], raw)
	f.bits = bitLen(f.m[:f.nlimbs])
	if f.m[0]&1 == 0 {
		return nil, fmt.Errorf("weierstrass: modulus must be odd")
	}
	if (f.bits+7)/8 != f.size {
		return nil, fmt.Errorf("weierstrass: modulus hex must not carry leading zero bytes")
	}

	f.m0inv = negInvWord(f.m[0])

	// R mod M and R² mod M by repeated modular doubling of 1. Montgomery
	// multiplication only needs m0inv, so everything else derives from these.
	var acc Element
	acc.limbs[0] = 1
	for i := 0; i < 64*f.nlimbs; i++ {
		f.Add(&acc, &acc, &acc)
	}
	f.one = acc
	for i := 0; i < 64*f.nlimbs; i++ {
		f.Add(&acc, &acc, &acc)
	}
	f.r2 = acc
	f.montMul(&f.r3, &f.r2, &f.r2)
	f.Neg(&f.minusOne, &f.one)

	f.initInvert()
	if err := f.initSqrt(); err != nil {
		return nil, err
	}
	return f, nil
}

// Bits returns the modulus bit length.
func (f *Field) Bits() int { return f.bits }

// Size returns the canonical encoded width of an element in bytes.
func (f *Field) Size() int { return f.size }

// SetBytes decodes a canonical fixed-width big-endian encoding into z. A
// wrong-length slice is a hard error; a value not below the modulus clears
// the returned mask (and z is set to zero) without any value-dependent
// branching, so callers holding secret encodings can gate on the mask later.
func (f *Field) SetBytes(z *Element, b []byte) (int, error) {
	if len(b) != f.size {
		return 0, fmt.Errorf("weierstrass: invalid element length %d, want %d", len(b), f.size)
	}
	var raw [maxLimbs]uint64
	setBytesRaw(raw[:], b)
	ok := ctLt(raw[:f.nlimbs], f.m[:f.nlimbs])
	var zero [maxLimbs]uint64
	ctSelect(raw[:], raw[:], zero[:], ok)
	f.montMul(z, &Element{limbs: raw}, &f.r2)
	return int(ok), nil
}

// Bytes returns the canonical fixed-width big-endian encoding of x.
func (f *Field) Bytes(x *Element) []byte {
	out := make([]byte, f.size)
	f.FillBytes(x, out)
	return out
}

// FillBytes writes the canonical encoding of x into dst, which must be
// exactly Size() bytes.
func (f *Field) FillBytes(x *Element, dst []byte) {
	if len(dst) != f.size {
		panic("weierstrass: invalid destination length")
	}
	var raw Element
	f.fromMont(&raw, x)
	for i := 0; i < f.size; i++ {
		dst[f.size-1-i] = byte(raw.limbs[i/8] >> (8 * (i % 8)))
	}
}

// SetUint sets z to the small integer v, which must be below the modulus.
func (f *Field) SetUint(z *Element, v uint64) *Element {
	var raw Element
	raw.limbs[0] = v
	f.montMul(z, &raw, &f.r2)
	return z
}

// One sets z to the multiplicative identity.
func (f *Field) One(z *Element) *Element {
	*z = f.one
	return z
}

// Zero sets z to the additive identity.
func (f *Field) Zero(z *Element) *Element {
	*z = Element{}
	return z
}

// Add sets z = x + y mod M.
func (f *Field) Add(z, x, y *Element) *Element {
	n := f.nlimbs
	var sum, red [maxLimbs]uint64
	c := addCarry(sum[:n], x.limbs[:n], y.limbs[:n])
	b := subBorrow(red[:n], sum[:n], f.m[:n])
	// Keep the reduced value when the raw sum overflowed 2^(64n) or
	// reached the modulus.
	ctSelect(z.limbs[:n], red[:n], sum[:n], c|(b^1))
	clearHigh(z, n)
	return z
}

// Sub sets z = x - y mod M.
func (f *Field) Sub(z, x, y *Element) *Element {
	n := f.nlimbs
	var diff, mm [maxLimbs]uint64
	b := subBorrow(diff[:n], x.limbs[:n], y.limbs[:n])
	mask := ctMask(b)
	for i := 0; i < n; i++ {
		mm[i] = f.m[i] & mask
	}
	addCarry(z.limbs[:n], diff[:n], mm[:n])
	clearHigh(z, n)
	return z
}

// Neg sets z = -x mod M.
func (f *Field) Neg(z, x *Element) *Element {
	var zero Element
	return f.Sub(z, &zero, x)
}

// Mul sets z = x * y mod M.
func (f *Field) Mul(z, x, y *Element) *Element {
	f.montMul(z, x, y)
	return z
}

// Square sets z = x² mod M.
func (f *Field) Square(z, x *Element) *Element {
	f.montMul(z, x, x)
	return z
}

// Double sets z = 2x mod M.
func (f *Field) Double(z, x *Element) *Element {
	return f.Add(z, x, x)
}

// IsZero returns 1 when x = 0, in constant time.
func (f *Field) IsZero(x *Element) int {
	return int(ctIsZero(x.limbs[:f.nlimbs]))
}

// Equal returns 1 when x = y, in constant time. Elements are always fully
// reduced, so the Montgomery representation is unique and limbs compare
// directly.
func (f *Field) Equal(x, y *Element) int {
	return int(ctEq(x.limbs[:f.nlimbs], y.limbs[:f.nlimbs]))
}

// IsOdd returns 1 when the canonical value of x is odd, in constant time.
func (f *Field) IsOdd(x *Element) int {
	var raw Element
	f.fromMont(&raw, x)
	return int(raw.limbs[0] & 1)
}

// IsEven returns 1 when the canonical value of x is even, in constant time.
func (f *Field) IsEven(x *Element) int {
	return 1 - f.IsOdd(x)
}

// clearHigh zeroes the limbs beyond the field's limb count.
func clearHigh(z *Element, n int) {
	for i := n; i < maxLimbs; i++ {
		z.limbs[i] = 0
	}
}

// setBytesRaw parses a big-endian byte string into little-endian limbs.
func setBytesRaw(limbs []uint64, b []byte) {
	for i := range limbs {
		limbs[i] = 0
	}
	for i := 0; i < len(b); i++ {
		limbs[i/8] |= uint64(b[len(b)-1-i]) << (8 * (i % 8))
	}
}

// negInvWord returns -m0⁻¹ mod 2^64 for odd m0 by Newton iteration; each step
// doubles the number of correct low bits.
func negInvWord(m0 uint64) uint64 {
	inv := m0 // correct mod 2^3
	for i := 0; i < 5; i++ {
		inv *= 2 - m0*inv
	}
	return -inv
}
