package weierstrass

// Constant-time modular inversion via the Bernstein-Yang divstep algorithm,
// following the fiat-crypto word-saturated template.
//
// See: https://eprint.iacr.org/2019/266 and https://eprint.iacr.org/2021/549

// initInvert fixes the divstep iteration count for the modulus bit length and
// precomputes ((M+1)/2)^iterations in Montgomery form, the constant that
// undoes the halvings accumulated by the transition vectors.
func (f *Field) initInvert() {
	// Bernstein-Yang 2019 p.366; valid for every bit length this engine
	// accepts (>= 46).
	f.invIters = (49*f.bits + 57) / 17

	half := f.halfRoundedUp()
	var base Element
	f.montMul(&base, &Element{limbs: half}, &f.r2)
	f.expVartime(&f.invPrecomp, &base, []uint64{uint64(f.invIters)})
}

// halfRoundedUp returns (M+1)/2 as canonical limbs.
func (f *Field) halfRoundedUp() [maxLimbs]uint64 {
	var h [maxLimbs]uint64
	shrBits(h[:f.nlimbs], f.m[:f.nlimbs], 1)
	var one [maxLimbs]uint64
	one[0] = 1
	addCarry(h[:f.nlimbs], h[:f.nlimbs], one[:f.nlimbs])
	return h
}

// Invert sets z = x⁻¹ mod M and returns 1, or sets z = 0 and returns 0 when
// x is zero. The divstep count, every iteration's work, and the final
// correction are identical for all inputs.
func (f *Field) Invert(z, x *Element) int {
	var xr Element
	f.fromMont(&xr, x)

	// f/g are (n+1)-limb two's-complement values: the modulus and the
	// canonical input. v/r accumulate the transition mod M, starting at
	// (0, 1) with 1 in Montgomery form.
	var fv, gv [maxSatLimbs]uint64
	copy(fv[:f.nlimbs], f.m[:f.nlimbs])
	copy(gv[:f.nlimbs], xr.limbs[:f.nlimbs])
	var v, r Element
	r = f.one

	d := uint64(1)
	for i := 0; i < f.invIters; i++ {
		d = f.divstep(d, &fv, &gv, &v, &r)
	}

	// f ends at ±gcd; negate v when it ended negative.
	sign := int(fv[f.nlimbs] >> 63)
	var negv Element
	f.Neg(&negv, &v)
	v.Select(&negv, &v, sign)

	f.montMul(z, &v, &f.invPrecomp)
	return 1 - f.IsZero(x)
}

// divstep performs one Bernstein-Yang transition step:
//
//	d > 0, g odd:  d, f, g, v, r = 1-d, g, (g-f)/2, 2r, r-v
//	otherwise:     d, f, g, v, r = 1+d, f, (g + (g mod 2)f)/2, 2v, r + (g mod 2)v
//
// f and g are two's-complement saturated vectors; v and r are residues mod M.
func (f *Field) divstep(d uint64, fs, gs *[maxSatLimbs]uint64, v, r *Element) uint64 {
	nsat := f.nlimbs + 1
	cond := ((-d) >> 63) & gs[0] & 1
	g0 := gs[0] & 1

	dNew := ctSelectWord(cond, 1-d, 1+d)

	var negf, fNew, sel, addend, gNew [maxSatLimbs]uint64
	negTwos(negf[:nsat], fs[:nsat])
	ctSelect(fNew[:nsat], gs[:nsat], fs[:nsat], cond)
	ctSelect(sel[:nsat], negf[:nsat], fs[:nsat], cond)
	gm := ctMask(g0)
	for i := 0; i < nsat; i++ {
		addend[i] = sel[i] & gm
	}
	addCarry(gNew[:nsat], gs[:nsat], addend[:nsat])
	sar1(gNew[:nsat])

	var vSel, vNew Element
	vSel.Select(r, v, int(cond))
	f.Add(&vNew, &vSel, &vSel)

	var rSub, rAdd, vMasked, rNew Element
	f.Sub(&rSub, r, v)
	for i := 0; i < f.nlimbs; i++ {
		vMasked.limbs[i] = v.limbs[i] & gm
	}
	f.Add(&rAdd, r, &vMasked)
	rNew.Select(&rSub, &rAdd, int(cond))

	*fs, *gs, *v, *r = fNew, gNew, vNew, rNew
	return dNew
}
