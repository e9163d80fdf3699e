package weierstrass

// Complete point addition and doubling formulas from Renes-Costello-Batina
// 2015 (https://eprint.iacr.org/2015/1060), over homogeneous projective
// coordinates. The generic-a functions implement Algorithms 1-3 and are valid
// for every short-Weierstrass curve; the minus3 functions implement the
// shorter Algorithms 4-6 and require a = -3. Which family runs is fixed per
// curve at construction time; within a family there are no data-dependent
// branches, so identity operands and 2-torsion need no special casing (except
// the documented mixed-addition identity fixup).

// addGeneric sets r = p + q (Algorithm 1). r may alias p or q.
func (c *Curve) addGeneric(r, p, q *ProjectivePoint) {
	f := c.fe
	var t0, t1, t2, t3, t4, t5, x3, y3, z3 Element

	f.Mul(&t0, &p.x, &q.x)
	f.Mul(&t1, &p.y, &q.y)
	f.Mul(&t2, &p.z, &q.z)
	f.Add(&t3, &p.x, &p.y)
	f.Add(&t4, &q.x, &q.y)
	f.Mul(&t3, &t3, &t4)
	f.Add(&t4, &t0, &t1)
	f.Sub(&t3, &t3, &t4)
	f.Add(&t4, &p.x, &p.z)
	f.Add(&t5, &q.x, &q.z)
	f.Mul(&t4, &t4, &t5)
	f.Add(&t5, &t0, &t2)
	f.Sub(&t4, &t4, &t5)
	f.Add(&t5, &p.y, &p.z)
	f.Add(&x3, &q.y, &q.z)
	f.Mul(&t5, &t5, &x3)
	f.Add(&x3, &t1, &t2)
	f.Sub(&t5, &t5, &x3)
	f.Mul(&z3, &c.a, &t4)
	f.Mul(&x3, &c.b3, &t2)
	f.Add(&z3, &x3, &z3)
	f.Sub(&x3, &t1, &z3)
	f.Add(&z3, &t1, &z3)
	f.Mul(&y3, &x3, &z3)
	f.Add(&t1, &t0, &t0)
	f.Add(&t1, &t1, &t0)
	f.Mul(&t2, &c.a, &t2)
	f.Mul(&t4, &c.b3, &t4)
	f.Add(&t1, &t1, &t2)
	f.Sub(&t2, &t0, &t2)
	f.Mul(&t2, &c.a, &t2)
	f.Add(&t4, &t4, &t2)
	f.Mul(&t0, &t1, &t4)
	f.Add(&y3, &y3, &t0)
	f.Mul(&t0, &t5, &t4)
	f.Mul(&x3, &t3, &x3)
	f.Sub(&x3, &x3, &t0)
	f.Mul(&t0, &t3, &t1)
	f.Mul(&z3, &t5, &z3)
	f.Add(&z3, &z3, &t0)

	r.c, r.x, r.y, r.z = c, x3, y3, z3
}

// addMixedGeneric sets r = p + q for affine q (Algorithm 2). The formula
// assumes q.Z = 1 and so cannot represent the affine identity; that case is
// patched by a final constant-time select of p. r may alias p.
func (c *Curve) addMixedGeneric(r, p *ProjectivePoint, q *AffinePoint) {
	f := c.fe
	var t0, t1, t2, t3, t4, t5, x3, y3, z3 Element

	f.Mul(&t0, &p.x, &q.x)
	f.Mul(&t1, &p.y, &q.y)
	f.Add(&t3, &q.x, &q.y)
	f.Add(&t4, &p.x, &p.y)
	f.Mul(&t3, &t3, &t4)
	f.Add(&t4, &t0, &t1)
	f.Sub(&t3, &t3, &t4)
	f.Mul(&t4, &q.x, &p.z)
	f.Add(&t4, &t4, &p.x)
	f.Mul(&t5, &q.y, &p.z)
	f.Add(&t5, &t5, &p.y)
	f.Mul(&z3, &c.a, &t4)
	f.Mul(&x3, &c.b3, &p.z)
	f.Add(&z3, &x3, &z3)
	f.Sub(&x3, &t1, &z3)
	f.Add(&z3, &t1, &z3)
	f.Mul(&y3, &x3, &z3)
	f.Add(&t1, &t0, &t0)
	f.Add(&t1, &t1, &t0)
	f.Mul(&t2, &c.a, &p.z)
	f.Mul(&t4, &c.b3, &t4)
	f.Add(&t1, &t1, &t2)
	f.Sub(&t2, &t0, &t2)
	f.Mul(&t2, &c.a, &t2)
	f.Add(&t4, &t4, &t2)
	f.Mul(&t0, &t1, &t4)
	f.Add(&y3, &y3, &t0)
	f.Mul(&t0, &t5, &t4)
	f.Mul(&x3, &t3, &x3)
	f.Sub(&x3, &x3, &t0)
	f.Mul(&t0, &t3, &t1)
	f.Mul(&z3, &t5, &z3)
	f.Add(&z3, &z3, &t0)

	sum := ProjectivePoint{c: c, x: x3, y: y3, z: z3}
	r.Select(p, &sum, q.IsIdentity())
}

// doubleGeneric sets r = 2p (Algorithm 3). r may alias p.
func (c *Curve) doubleGeneric(r, p *ProjectivePoint) {
	f := c.fe
	var t0, t1, t2, t3, x3, y3, z3 Element

	f.Mul(&t0, &p.x, &p.x)
	f.Mul(&t1, &p.y, &p.y)
	f.Mul(&t2, &p.z, &p.z)
	f.Mul(&t3, &p.x, &p.y)
	f.Add(&t3, &t3, &t3)
	f.Mul(&z3, &p.x, &p.z)
	f.Add(&z3, &z3, &z3)
	f.Mul(&x3, &c.a, &z3)
	f.Mul(&y3, &c.b3, &t2)
	f.Add(&y3, &x3, &y3)
	f.Sub(&x3, &t1, &y3)
	f.Add(&y3, &t1, &y3)
	f.Mul(&y3, &x3, &y3)
	f.Mul(&x3, &t3, &x3)
	f.Mul(&z3, &c.b3, &z3)
	f.Mul(&t2, &c.a, &t2)
	f.Sub(&t3, &t0, &t2)
	f.Mul(&t3, &c.a, &t3)
	f.Add(&t3, &t3, &z3)
	f.Add(&z3, &t0, &t0)
	f.Add(&t0, &z3, &t0)
	f.Add(&t0, &t0, &t2)
	f.Mul(&t0, &t0, &t3)
	f.Add(&y3, &y3, &t0)
	f.Mul(&t2, &p.y, &p.z)
	f.Add(&t2, &t2, &t2)
	f.Mul(&t0, &t2, &t3)
	f.Sub(&x3, &x3, &t0)
	f.Mul(&z3, &t2, &t1)
	f.Add(&z3, &z3, &z3)
	f.Add(&z3, &z3, &z3)

	r.c, r.x, r.y, r.z = c, x3, y3, z3
}

// addMinus3 sets r = p + q for curves with a = -3 (Algorithm 4). r may alias
// p or q.
func (c *Curve) addMinus3(r, p, q *ProjectivePoint) {
	f := c.fe
	var xx, yy, zz, xyPairs, yzPairs, xzPairs, t, u Element

	f.Mul(&xx, &p.x, &q.x)
	f.Mul(&yy, &p.y, &q.y)
	f.Mul(&zz, &p.z, &q.z)

	f.Add(&t, &p.x, &p.y)
	f.Add(&u, &q.x, &q.y)
	f.Mul(&xyPairs, &t, &u)
	f.Add(&t, &xx, &yy)
	f.Sub(&xyPairs, &xyPairs, &t)

	f.Add(&t, &p.y, &p.z)
	f.Add(&u, &q.y, &q.z)
	f.Mul(&yzPairs, &t, &u)
	f.Add(&t, &yy, &zz)
	f.Sub(&yzPairs, &yzPairs, &t)

	f.Add(&t, &p.x, &p.z)
	f.Add(&u, &q.x, &q.z)
	f.Mul(&xzPairs, &t, &u)
	f.Add(&t, &xx, &zz)
	f.Sub(&xzPairs, &xzPairs, &t)

	var bzzPart, bzz3Part, yyMBzz3, yyPBzz3 Element
	f.Mul(&t, &c.b, &zz)
	f.Sub(&bzzPart, &xzPairs, &t)
	f.Double(&bzz3Part, &bzzPart)
	f.Add(&bzz3Part, &bzz3Part, &bzzPart)
	f.Sub(&yyMBzz3, &yy, &bzz3Part)
	f.Add(&yyPBzz3, &yy, &bzz3Part)

	var zz3, bxzPart, bxz3Part, xx3MZz3 Element
	f.Double(&zz3, &zz)
	f.Add(&zz3, &zz3, &zz)
	f.Mul(&bxzPart, &c.b, &xzPairs)
	f.Add(&t, &zz3, &xx)
	f.Sub(&bxzPart, &bxzPart, &t)
	f.Double(&bxz3Part, &bxzPart)
	f.Add(&bxz3Part, &bxz3Part, &bxzPart)
	f.Double(&xx3MZz3, &xx)
	f.Add(&xx3MZz3, &xx3MZz3, &xx)
	f.Sub(&xx3MZz3, &xx3MZz3, &zz3)

	var x3, y3, z3 Element
	f.Mul(&x3, &yyPBzz3, &xyPairs)
	f.Mul(&t, &yzPairs, &bxz3Part)
	f.Sub(&x3, &x3, &t)
	f.Mul(&y3, &yyPBzz3, &yyMBzz3)
	f.Mul(&t, &xx3MZz3, &bxz3Part)
	f.Add(&y3, &y3, &t)
	f.Mul(&z3, &yyMBzz3, &yzPairs)
	f.Mul(&t, &xyPairs, &xx3MZz3)
	f.Add(&z3, &z3, &t)

	r.c, r.x, r.y, r.z = c, x3, y3, z3
}

// addMixedMinus3 sets r = p + q for affine q on curves with a = -3
// (Algorithm 5), with the same identity fixup as the generic variant. r may
// alias p.
func (c *Curve) addMixedMinus3(r, p *ProjectivePoint, q *AffinePoint) {
	f := c.fe
	var xx, yy, xyPairs, yzPairs, xzPairs, t, u Element

	f.Mul(&xx, &p.x, &q.x)
	f.Mul(&yy, &p.y, &q.y)

	f.Add(&t, &p.x, &p.y)
	f.Add(&u, &q.x, &q.y)
	f.Mul(&xyPairs, &t, &u)
	f.Add(&t, &xx, &yy)
	f.Sub(&xyPairs, &xyPairs, &t)

	f.Mul(&yzPairs, &q.y, &p.z)
	f.Add(&yzPairs, &yzPairs, &p.y)
	f.Mul(&xzPairs, &q.x, &p.z)
	f.Add(&xzPairs, &xzPairs, &p.x)

	var bzPart, bz3Part, yyMBzz3, yyPBzz3 Element
	f.Mul(&t, &c.b, &p.z)
	f.Sub(&bzPart, &xzPairs, &t)
	f.Double(&bz3Part, &bzPart)
	f.Add(&bz3Part, &bz3Part, &bzPart)
	f.Sub(&yyMBzz3, &yy, &bz3Part)
	f.Add(&yyPBzz3, &yy, &bz3Part)

	var z3, bxzPart, bxz3Part, xx3MZz3 Element
	f.Double(&z3, &p.z)
	f.Add(&z3, &z3, &p.z)
	f.Mul(&bxzPart, &c.b, &xzPairs)
	f.Add(&t, &z3, &xx)
	f.Sub(&bxzPart, &bxzPart, &t)
	f.Double(&bxz3Part, &bxzPart)
	f.Add(&bxz3Part, &bxz3Part, &bxzPart)
	f.Double(&xx3MZz3, &xx)
	f.Add(&xx3MZz3, &xx3MZz3, &xx)
	f.Sub(&xx3MZz3, &xx3MZz3, &z3)

	var rx, ry, rz Element
	f.Mul(&rx, &yyPBzz3, &xyPairs)
	f.Mul(&t, &yzPairs, &bxz3Part)
	f.Sub(&rx, &rx, &t)
	f.Mul(&ry, &yyPBzz3, &yyMBzz3)
	f.Mul(&t, &xx3MZz3, &bxz3Part)
	f.Add(&ry, &ry, &t)
	f.Mul(&rz, &yyMBzz3, &yzPairs)
	f.Mul(&t, &xyPairs, &xx3MZz3)
	f.Add(&rz, &rz, &t)

	sum := ProjectivePoint{c: c, x: rx, y: ry, z: rz}
	r.Select(p, &sum, q.IsIdentity())
}

// doubleMinus3 sets r = 2p for curves with a = -3 (Algorithm 6). r may alias
// p.
func (c *Curve) doubleMinus3(r, p *ProjectivePoint) {
	f := c.fe
	var xx, yy, zz, xy2, xz2, t Element

	f.Square(&xx, &p.x)
	f.Square(&yy, &p.y)
	f.Square(&zz, &p.z)
	f.Mul(&xy2, &p.x, &p.y)
	f.Double(&xy2, &xy2)
	f.Mul(&xz2, &p.x, &p.z)
	f.Double(&xz2, &xz2)

	var bzzPart, bzz3Part, yyMBzz3, yyPBzz3, yFrag, xFrag Element
	f.Mul(&bzzPart, &c.b, &zz)
	f.Sub(&bzzPart, &bzzPart, &xz2)
	f.Double(&bzz3Part, &bzzPart)
	f.Add(&bzz3Part, &bzz3Part, &bzzPart)
	f.Sub(&yyMBzz3, &yy, &bzz3Part)
	f.Add(&yyPBzz3, &yy, &bzz3Part)
	f.Mul(&yFrag, &yyPBzz3, &yyMBzz3)
	f.Mul(&xFrag, &yyMBzz3, &xy2)

	var zz3, bxz2Part, bxz6Part, xx3MZz3 Element
	f.Double(&zz3, &zz)
	f.Add(&zz3, &zz3, &zz)
	f.Mul(&bxz2Part, &c.b, &xz2)
	f.Add(&t, &zz3, &xx)
	f.Sub(&bxz2Part, &bxz2Part, &t)
	f.Double(&bxz6Part, &bxz2Part)
	f.Add(&bxz6Part, &bxz6Part, &bxz2Part)
	f.Double(&xx3MZz3, &xx)
	f.Add(&xx3MZz3, &xx3MZz3, &xx)
	f.Sub(&xx3MZz3, &xx3MZz3, &zz3)

	var x3, y3, z3, yz2 Element
	f.Mul(&t, &xx3MZz3, &bxz6Part)
	f.Add(&y3, &yFrag, &t)
	f.Mul(&yz2, &p.y, &p.z)
	f.Double(&yz2, &yz2)
	f.Mul(&t, &bxz6Part, &yz2)
	f.Sub(&x3, &xFrag, &t)
	f.Mul(&z3, &yz2, &yy)
	f.Double(&z3, &z3)
	f.Double(&z3, &z3)

	r.c, r.x, r.y, r.z = c, x3, y3, z3
}
