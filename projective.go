package weierstrass

// ProjectivePoint is a curve point in homogeneous projective coordinates
// (X : Y : Z), representing the affine point (X/Z, Y/Z). The point at
// infinity is (0 : 1 : 0). All group operations are complete and constant
// time; points only leave projective form at explicit ToAffine calls.
type ProjectivePoint struct {
	c       *Curve
	x, y, z Element
}

// Identity returns the point at infinity.
func (c *Curve) Identity() *ProjectivePoint {
	p := &ProjectivePoint{c: c}
	p.y = c.fe.one
	return p
}

// Set copies q into p.
func (p *ProjectivePoint) Set(q *ProjectivePoint) *ProjectivePoint {
	*p = *q
	return p
}

// Select sets p to a when cond = 1 and to b when cond = 0, in constant time.
func (p *ProjectivePoint) Select(a, b *ProjectivePoint, cond int) *ProjectivePoint {
	p.c = a.c
	p.x.Select(&a.x, &b.x, cond)
	p.y.Select(&a.y, &b.y, cond)
	p.z.Select(&a.z, &b.z, cond)
	return p
}

// FromAffine sets p to the projective form of q.
func (p *ProjectivePoint) FromAffine(q *AffinePoint) *ProjectivePoint {
	lifted := ProjectivePoint{c: q.c, x: q.x, y: q.y, z: q.c.fe.one}
	return p.Select(q.c.Identity(), &lifted, q.IsIdentity())
}

// ToAffine converts p to affine coordinates by a single field inversion of
// Z. The identity, whose Z is not invertible, maps to the affine identity
// through a constant-time select rather than a division.
func (p *ProjectivePoint) ToAffine() *AffinePoint {
	f := p.c.fe
	var zinv Element
	ok := f.Invert(&zinv, &p.z)

	var a AffinePoint
	a.c = p.c
	f.Mul(&a.x, &p.x, &zinv)
	f.Mul(&a.y, &p.y, &zinv)
	return a.Select(&a, p.c.AffineIdentity(), ok)
}

// IsIdentity returns 1 when p is the point at infinity, in constant time.
func (p *ProjectivePoint) IsIdentity() int {
	return p.c.fe.IsZero(&p.z)
}

// Equal returns 1 when p and q represent the same point, comparing the
// underlying affine coordinates by cross multiplication, in constant time.
func (p *ProjectivePoint) Equal(q *ProjectivePoint) int {
	f := p.c.fe
	var l, r Element
	f.Mul(&l, &p.x, &q.z)
	f.Mul(&r, &q.x, &p.z)
	eq := f.Equal(&l, &r)
	f.Mul(&l, &p.y, &q.z)
	f.Mul(&r, &q.y, &p.z)
	return eq & f.Equal(&l, &r)
}

// Neg sets p = -q.
func (p *ProjectivePoint) Neg(q *ProjectivePoint) *ProjectivePoint {
	p.c = q.c
	p.x = q.x
	q.c.fe.Neg(&p.y, &q.y)
	p.z = q.z
	return p
}

// Add sets p = a + b using the complete addition formula for the curve's
// equation family. Handles a == b and identity operands without branching.
func (p *ProjectivePoint) Add(a, b *ProjectivePoint) *ProjectivePoint {
	c := a.c
	if c.aMinus3 {
		c.addMinus3(p, a, b)
	} else {
		c.addGeneric(p, a, b)
	}
	return p
}

// AddMixed sets p = a + b for affine b, saving the work of b's unit Z.
func (p *ProjectivePoint) AddMixed(a *ProjectivePoint, b *AffinePoint) *ProjectivePoint {
	c := a.c
	if c.aMinus3 {
		c.addMixedMinus3(p, a, b)
	} else {
		c.addMixedGeneric(p, a, b)
	}
	return p
}

// Sub sets p = a - b.
func (p *ProjectivePoint) Sub(a, b *ProjectivePoint) *ProjectivePoint {
	var nb ProjectivePoint
	nb.Neg(b)
	return p.Add(a, &nb)
}

// Double sets p = 2q.
func (p *ProjectivePoint) Double(q *ProjectivePoint) *ProjectivePoint {
	c := q.c
	if c.aMinus3 {
		c.doubleMinus3(p, q)
	} else {
		c.doubleGeneric(p, q)
	}
	return p
}

// ScalarMult sets p = [k]q with a fixed-window double-and-add ladder. The
// ladder walks the scalar's nibbles from most significant to least over a
// 16-entry table of small multiples; every iteration performs the same four
// doublings and one full-scan masked table read, so the instruction count
// and memory-access trace are independent of k, leading zero nibbles
// included.
func (p *ProjectivePoint) ScalarMult(q *ProjectivePoint, k *Element) *ProjectivePoint {
	c := q.c
	kb := c.sc.Bytes(k)

	var table lookupTable
	table.init(c, q)

	acc := c.Identity()
	pos := len(kb)*8 - 4
	for {
		nibble := (kb[len(kb)-1-(pos>>3)] >> (pos & 7)) & 0xf

		var t ProjectivePoint
		table.selectPoint(&t, nibble)
		acc.Add(acc, &t)

		if pos == 0 {
			break
		}
		acc.Double(acc)
		acc.Double(acc)
		acc.Double(acc)
		acc.Double(acc)
		pos -= 4
	}
	return p.Set(acc)
}

// ScalarBaseMult sets p = [k]G for the curve's generator.
func (p *ProjectivePoint) ScalarBaseMult(c *Curve, k *Element) *ProjectivePoint {
	var g ProjectivePoint
	g.FromAffine(c.Generator())
	return p.ScalarMult(&g, k)
}

// lookupTable holds the multiples {0P, 1P, ..., 15P} for one scalar
// multiplication. It is built with public control flow and read only through
// full-scan masked selection.
type lookupTable struct {
	points [16]ProjectivePoint
}

func (lt *lookupTable) init(c *Curve, p *ProjectivePoint) {
	lt.points[0] = *c.Identity()
	lt.points[1] = *p
	for i := 2; i < 16; i++ {
		if i%2 == 0 {
			lt.points[i].Double(&lt.points[i/2])
		} else {
			lt.points[i].Add(&lt.points[i-1], p)
		}
	}
}

// selectPoint sets t to points[idx] by scanning every entry and accumulating
// under a masked equality, never indexing by the secret value.
func (lt *lookupTable) selectPoint(t *ProjectivePoint, idx byte) {
	*t = lt.points[0]
	for i := 1; i < 16; i++ {
		t.Select(&lt.points[i], t, int(ctIsZeroWord(uint64(idx)^uint64(i))))
	}
}
