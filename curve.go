package weierstrass

import (
	"fmt"

	fasthex "github.com/tmthrgd/go-hex"
)

// CurveParams spells out a short-Weierstrass curve y² = x³ + ax + b over
// GF(p) with prime group order n. All values are fixed-width big-endian hex;
// the width of P fixes the encoded size of field elements and points.
type CurveParams struct {
	Name string
	P    string // field modulus
	N    string // group order
	A    string
	B    string
	Gx   string
	Gy   string
}

// Curve bundles the two field engines and the curve constants the point
// arithmetic needs. A Curve is immutable after construction and safe for
// concurrent use; all secret-dependent operations on its points run in
// constant time.
type Curve struct {
	name string
	fe   *Field
	sc   *ScalarField

	a, b, b3 Element // b3 = 3b, used by the complete addition formulas
	aMinus3  bool    // selects the a = -3 formula family, public per curve

	g AffinePoint
}

// NewCurve validates the parameters and builds the arithmetic engine for the
// curve. Parameters are public, so validation may branch freely.
func NewCurve(p CurveParams) (*Curve, error) {
	fe, err := NewField(p.P)
	if err != nil {
		return nil, fmt.Errorf("curve %s: %w", p.Name, err)
	}
	sc, err := NewScalarField(p.N)
	if err != nil {
		return nil, fmt.Errorf("curve %s: %w", p.Name, err)
	}
	c := &Curve{name: p.Name, fe: fe, sc: sc}

	if err := c.setElementHex(&c.a, p.A, "a"); err != nil {
		return nil, err
	}
	if err := c.setElementHex(&c.b, p.B, "b"); err != nil {
		return nil, err
	}
	var t Element
	fe.Double(&t, &c.b)
	fe.Add(&c.b3, &t, &c.b)

	var minus3 Element
	fe.SetUint(&minus3, 3)
	fe.Neg(&minus3, &minus3)
	c.aMinus3 = fe.Equal(&c.a, &minus3) == 1

	var gx, gy Element
	if err := c.setElementHex(&gx, p.Gx, "gx"); err != nil {
		return nil, err
	}
	if err := c.setElementHex(&gy, p.Gy, "gy"); err != nil {
		return nil, err
	}
	c.g = AffinePoint{c: c, x: gx, y: gy}
	if c.isOnCurve(&gx, &gy) != 1 {
		return nil, fmt.Errorf("curve %s: generator not on curve", p.Name)
	}
	return c, nil
}

func (c *Curve) setElementHex(z *Element, hexStr, name string) error {
	raw, err := fasthex.DecodeString(hexStr)
	if err != nil {
		return fmt.Errorf("curve %s: invalid %s hex: %w", c.name, name, err)
	}
	ok, err := c.fe.SetBytes(z, raw)
	if err != nil {
		return fmt.Errorf("curve %s: %s: %w", c.name, name, err)
	}
	if ok != 1 {
		return fmt.Errorf("curve %s: %s not below field modulus", c.name, name)
	}
	return nil
}

// isOnCurve evaluates y² = x³ + ax + b over the canonical equation, in
// constant time.
func (c *Curve) isOnCurve(x, y *Element) int {
	f := c.fe
	var lhs, rhs, t Element
	f.Square(&lhs, y)
	f.Square(&rhs, x)
	f.Mul(&rhs, &rhs, x)
	f.Mul(&t, &c.a, x)
	f.Add(&rhs, &rhs, &t)
	f.Add(&rhs, &rhs, &c.b)
	return f.Equal(&lhs, &rhs)
}

// Name returns the curve's display name.
func (c *Curve) Name() string { return c.name }

// Field returns the base field engine.
func (c *Curve) Field() *Field { return c.fe }

// ScalarField returns the group-order field engine.
func (c *Curve) ScalarField() *ScalarField { return c.sc }

// Generator returns the fixed base point.
func (c *Curve) Generator() *AffinePoint {
	g := c.g
	return &g
}
