package weierstrass

import "fmt"

// AffinePoint is a curve point in affine coordinates. The point at infinity
// is flagged by inf and carries zero coordinates, so selection and comparison
// stay plain limb operations.
type AffinePoint struct {
	c    *Curve
	x, y Element
	inf  int // 1 marks the point at infinity
}

// AffineIdentity returns the point at infinity.
func (c *Curve) AffineIdentity() *AffinePoint {
	return &AffinePoint{c: c, inf: 1}
}

// NewAffinePoint builds a point from canonical big-endian coordinate
// encodings and verifies it lies on the curve. Meant for public inputs such
// as peer keys; all failures are hard errors.
func (c *Curve) NewAffinePoint(x, y []byte) (*AffinePoint, error) {
	p := &AffinePoint{c: c}
	okX, err := c.fe.SetBytes(&p.x, x)
	if err != nil {
		return nil, err
	}
	okY, err := c.fe.SetBytes(&p.y, y)
	if err != nil {
		return nil, err
	}
	if okX&okY != 1 {
		return nil, fmt.Errorf("curve %s: coordinate not below field modulus", c.name)
	}
	if c.isOnCurve(&p.x, &p.y) != 1 {
		return nil, fmt.Errorf("curve %s: point not on curve", c.name)
	}
	return p, nil
}

// Set copies q into p.
func (p *AffinePoint) Set(q *AffinePoint) *AffinePoint {
	*p = *q
	return p
}

// Select sets p to a when cond = 1 and to b when cond = 0, in constant time.
func (p *AffinePoint) Select(a, b *AffinePoint, cond int) *AffinePoint {
	p.c = a.c
	p.x.Select(&a.x, &b.x, cond)
	p.y.Select(&a.y, &b.y, cond)
	p.inf = int(ctSelectWord(uint64(cond), uint64(a.inf), uint64(b.inf)))
	return p
}

// IsIdentity returns 1 when p is the point at infinity, in constant time.
func (p *AffinePoint) IsIdentity() int {
	return p.inf & 1
}

// IsOnCurve returns 1 when p satisfies the curve equation or is the
// identity, in constant time.
func (p *AffinePoint) IsOnCurve() int {
	return p.c.isOnCurve(&p.x, &p.y) | p.inf
}

// Equal returns 1 when p and q represent the same point, in constant time.
func (p *AffinePoint) Equal(q *AffinePoint) int {
	f := p.c.fe
	eq := f.Equal(&p.x, &q.x) & f.Equal(&p.y, &q.y)
	sameInf := int(ctIsZeroWord(uint64(p.inf ^ q.inf)))
	return eq & sameInf
}

// Neg sets p = -q, flipping the y coordinate. Negating the identity yields
// the identity since its coordinates are zero.
func (p *AffinePoint) Neg(q *AffinePoint) *AffinePoint {
	p.c = q.c
	p.x = q.x
	q.c.fe.Neg(&p.y, &q.y)
	p.inf = q.inf
	return p
}

// XBytes returns the canonical encoding of the x coordinate. Zero for the
// identity.
func (p *AffinePoint) XBytes() []byte {
	return p.c.fe.Bytes(&p.x)
}

// YBytes returns the canonical encoding of the y coordinate. Zero for the
// identity.
func (p *AffinePoint) YBytes() []byte {
	return p.c.fe.Bytes(&p.y)
}

// Decompress recovers the point with the given x coordinate whose y parity
// matches yParity (0 even, 1 odd). Returns the point and 1 on success; when
// x³ + ax + b is not a square the point is the identity and the mask is 0.
// Constant time with respect to the coordinate values.
func (c *Curve) Decompress(x *Element, yParity int) (*AffinePoint, int) {
	f := c.fe
	alpha := c.rhs(x)
	var beta Element
	ok := f.Sqrt(&beta, alpha)

	// Pick the root with the requested parity.
	var negBeta, y Element
	f.Neg(&negBeta, &beta)
	match := 1 ^ (f.IsOdd(&beta) ^ (yParity & 1))
	y.Select(&beta, &negBeta, match)

	p := &AffinePoint{c: c}
	p.Select(&AffinePoint{c: c, x: *x, y: y}, c.AffineIdentity(), ok)
	return p, ok
}

// Decompact recovers the point with the given x coordinate whose y is the
// numerically smaller of the two square roots, the canonical choice of the
// compact encoding. Same masking contract as Decompress.
func (c *Curve) Decompact(x *Element) (*AffinePoint, int) {
	f := c.fe
	alpha := c.rhs(x)
	var beta Element
	ok := f.Sqrt(&beta, alpha)

	var negBeta, y Element
	f.Neg(&negBeta, &beta)
	y.Select(&beta, &negBeta, f.lessCanonical(&beta, &negBeta))

	p := &AffinePoint{c: c}
	p.Select(&AffinePoint{c: c, x: *x, y: y}, c.AffineIdentity(), ok)
	return p, ok
}

// rhs evaluates x³ + ax + b.
func (c *Curve) rhs(x *Element) *Element {
	f := c.fe
	var r, t Element
	f.Square(&r, x)
	f.Mul(&r, &r, x)
	f.Mul(&t, &c.a, x)
	f.Add(&r, &r, &t)
	f.Add(&r, &r, &c.b)
	return &r
}

// lessCanonical returns 1 when the canonical value of x is below that of y,
// in constant time.
func (f *Field) lessCanonical(x, y *Element) int {
	var xr, yr Element
	f.fromMont(&xr, x)
	f.fromMont(&yr, y)
	return int(ctLt(xr.limbs[:f.nlimbs], yr.limbs[:f.nlimbs]))
}
