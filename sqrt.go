package weierstrass

import "fmt"

// Modular square roots, adapted from https://eprint.iacr.org/2012/685.pdf.
// M ≡ 3 (mod 4) gets the single-exponentiation Shanks path; every other odd
// prime goes through the constant-time Tonelli-Shanks ladder (page 12,
// algorithm 5).

// The least quadratic nonresidue of a prime in the supported range is far
// below this bound. A modulus that exhausts the search is not prime.
const nonresidueSearchLimit = 1000

// initSqrt derives the square root parameters for the modulus. The modulus
// and the nonresidue search are public, so variable-time exponentiation is
// fine here.
func (f *Field) initSqrt() error {
	n := f.nlimbs
	if f.m[0]&3 == 3 {
		f.sqrt3Mod4 = true
		// (M+1)/4 = (M>>2) + 1 for M ≡ 3 (mod 4).
		shrBits(f.sqrtExp[:n], f.m[:n], 2)
		var one [maxLimbs]uint64
		one[0] = 1
		addCarry(f.sqrtExp[:n], f.sqrtExp[:n], one[:n])
		return nil
	}

	// M - 1 = T * 2^S with T odd.
	var mm1 [maxLimbs]uint64
	copy(mm1[:n], f.m[:n])
	mm1[0]--
	s := uint32(0)
	for mm1[int(s)/64]>>(s%64)&1 == 0 {
		s++
	}
	f.tsS = s
	var t [maxLimbs]uint64
	shrBits(t[:n], mm1[:n], uint(s))

	// Least quadratic nonresidue by the Euler criterion; its T-th power is
	// a primitive 2^S-th root of unity.
	var euler [maxLimbs]uint64
	shrBits(euler[:n], mm1[:n], 1)
	var g, chi Element
	found := false
	for gv := uint64(2); gv < nonresidueSearchLimit; gv++ {
		f.SetUint(&g, gv)
		f.expVartime(&chi, &g, euler[:n])
		if f.Equal(&chi, &f.minusOne) == 1 {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("weierstrass: no quadratic nonresidue below %d, modulus is not prime", nonresidueSearchLimit)
	}
	f.expVartime(&f.tsRoot, &g, t[:n])

	shrBits(f.sqrtExp[:n], t[:n], 1)
	return nil
}

// Sqrt sets z to a square root of x mod M and returns 1, or returns 0 when x
// is not a quadratic residue (z then holds an unrelated value the caller must
// discard). Which of the two roots is produced is fixed per field but
// otherwise unspecified. Runs in constant time for a given modulus.
func (f *Field) Sqrt(z, x *Element) int {
	if f.sqrt3Mod4 {
		var s, check Element
		f.expVartime(&s, x, f.sqrtExp[:f.nlimbs])
		f.Square(&check, &s)
		ok := f.Equal(&check, x)
		z.Set(&s)
		return ok
	}
	return f.sqrtTonelliShanks(z, x)
}

func (f *Field) sqrtTonelliShanks(z, x *Element) int {
	var w, xc, b, zeta Element
	f.expVartime(&w, x, f.sqrtExp[:f.nlimbs])
	f.Mul(&xc, x, &w)
	f.Mul(&b, &xc, &w)
	zeta = f.tsRoot

	v := f.tsS
	for maxV := f.tsS; maxV >= 1; maxV-- {
		k := uint32(1)
		var tmp Element
		f.Square(&tmp, &b)
		jLessThanV := uint64(1)

		for j := uint32(2); j < maxV; j++ {
			tmpIsOne := uint64(f.Equal(&tmp, &f.one))
			var sel, squared Element
			sel.Select(&zeta, &tmp, int(tmpIsOne))
			f.Square(&squared, &sel)
			tmp.Select(&tmp, &squared, int(tmpIsOne))
			var newZeta Element
			newZeta.Select(&squared, &zeta, int(tmpIsOne))
			jLessThanV &= 1 ^ ctIsZeroWord(uint64(j^v))
			k = uint32(ctSelectWord(tmpIsOne, uint64(k), uint64(j)))
			zeta.Select(&newZeta, &zeta, int(jLessThanV))
		}

		var result Element
		f.Mul(&result, &xc, &zeta)
		xc.Select(&xc, &result, f.Equal(&b, &f.one))
		f.Square(&zeta, &zeta)
		f.Mul(&b, &b, &zeta)
		v = k
	}

	var check Element
	f.Square(&check, &xc)
	ok := f.Equal(&check, x)
	z.Set(&xc)
	return ok
}
