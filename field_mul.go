package weierstrass

import "math/bits"

// montMul sets z = x*y*R⁻¹ mod M using the interleaved (CIOS) Montgomery
// multiplication. y must be fully reduced; x may be any n-limb integer below
// R, which the wide scalar reduction relies on. The outer accumulator stays
// below 2M, so a single conditional subtraction at the end canonicalizes the
// result.
func (f *Field) montMul(z, x, y *Element) {
	n := f.nlimbs
	var t [maxLimbs + 2]uint64

	for i := 0; i < n; i++ {
		// t += x[i] * y
		var c, c2 uint64
		xi := x.limbs[i]
		for j := 0; j < n; j++ {
			c, t[j] = madd2(xi, y.limbs[j], t[j], c)
		}
		t[n], c2 = bits.Add64(t[n], c, 0)
		t[n+1] += c2

		// t += q*M with q chosen so the low limb cancels, then t >>= 64
		q := t[0] * f.m0inv
		c, _ = madd2(q, f.m[0], t[0], 0)
		for j := 1; j < n; j++ {
			c, t[j-1] = madd2(q, f.m[j], t[j], c)
		}
		t[n-1], c2 = bits.Add64(t[n], c, 0)
		t[n] = t[n+1] + c2
		t[n+1] = 0
	}

	var red [maxLimbs]uint64
	b := subBorrow(red[:n], t[:n], f.m[:n])
	ctSelect(z.limbs[:n], red[:n], t[:n], t[n]|(b^1))
	clearHigh(z, n)
}

// fromMont translates x out of the Montgomery domain, producing the canonical
// residue in z's limbs.
func (f *Field) fromMont(z, x *Element) {
	var one Element
	one.limbs[0] = 1
	f.montMul(z, x, &one)
}

// expVartime sets z = x^exp. Variable time with respect to the exponent,
// which is always public (modulus-derived) in this package; constant time
// with respect to the base.
func (f *Field) expVartime(z, x *Element, exp []uint64) *Element {
	x1 := *x // aliasing-safe
	res := f.one
	for i := bitLen(exp) - 1; i >= 0; i-- {
		f.Square(&res, &res)
		if exp[i/64]>>(uint(i)%64)&1 == 1 {
			f.Mul(&res, &res, &x1)
		}
	}
	*z = res
	return z
}
