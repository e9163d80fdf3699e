package weierstrass

import "fmt"

// SEC1 point encoding (SEC 1: Elliptic Curve Cryptography, Version 2.0,
// section 2.3), plus the compact tag from the draft-jivsov-ecc-compact
// scheme. Tag and length checking is structural and may branch; everything
// downstream of a well-formed encoding runs under the masked-validity
// contract.
const (
	tagIdentity     = 0x00
	tagCompressed   = 0x02 // low bit carries y parity
	tagUncompressed = 0x04
	tagCompact      = 0x05
)

// Bytes returns the SEC1 uncompressed encoding 04 || x || y, or the single
// byte 00 for the identity.
func (p *AffinePoint) Bytes() []byte {
	if p.IsIdentity() == 1 {
		return []byte{tagIdentity}
	}
	size := p.c.fe.Size()
	out := make([]byte, 1+2*size)
	out[0] = tagUncompressed
	p.c.fe.FillBytes(&p.x, out[1:1+size])
	p.c.fe.FillBytes(&p.y, out[1+size:])
	return out
}

// BytesCompressed returns the SEC1 compressed encoding 02/03 || x, the tag's
// low bit carrying the parity of y, or the single byte 00 for the identity.
func (p *AffinePoint) BytesCompressed() []byte {
	if p.IsIdentity() == 1 {
		return []byte{tagIdentity}
	}
	size := p.c.fe.Size()
	out := make([]byte, 1+size)
	out[0] = tagCompressed | byte(p.c.fe.IsOdd(&p.y))
	p.c.fe.FillBytes(&p.x, out[1:])
	return out
}

// BytesCompact returns the compact encoding 05 || x and mask 1 when p's y
// coordinate is the numerically smaller square root, the canonical form the
// compact scheme can represent. For any other point the mask is 0 and the
// encoding must be discarded. The identity encodes as the single byte 00.
func (p *AffinePoint) BytesCompact() ([]byte, int) {
	if p.IsIdentity() == 1 {
		return []byte{tagIdentity}, 1
	}
	f := p.c.fe
	var negY Element
	f.Neg(&negY, &p.y)
	ok := 1 ^ f.lessCanonical(&negY, &p.y)

	size := f.Size()
	out := make([]byte, 1+size)
	out[0] = tagCompact
	f.FillBytes(&p.x, out[1:])
	return out, ok
}

// DecodePoint decodes any SEC1 point encoding. Wrong lengths and unknown tags
// are hard errors; a well-formed encoding that does not name a curve point
// (coordinate out of range, non-residue x, off-curve pair) yields the
// identity with mask 0, decided in constant time.
func (c *Curve) DecodePoint(b []byte) (*AffinePoint, int, error) {
	size := c.fe.Size()
	if len(b) == 0 {
		return nil, 0, fmt.Errorf("curve %s: empty point encoding", c.name)
	}
	switch b[0] {
	case tagIdentity:
		if len(b) != 1 {
			return nil, 0, fmt.Errorf("curve %s: identity encoding must be one byte", c.name)
		}
		return c.AffineIdentity(), 1, nil

	case tagCompressed, tagCompressed | 1:
		if len(b) != 1+size {
			return nil, 0, fmt.Errorf("curve %s: invalid compressed point length %d", c.name, len(b))
		}
		var x Element
		okX, err := c.fe.SetBytes(&x, b[1:])
		if err != nil {
			return nil, 0, err
		}
		p, okY := c.Decompress(&x, int(b[0]&1))
		ok := okX & okY
		p.Select(p, c.AffineIdentity(), ok)
		return p, ok, nil

	case tagUncompressed:
		if len(b) != 1+2*size {
			return nil, 0, fmt.Errorf("curve %s: invalid uncompressed point length %d", c.name, len(b))
		}
		var x, y Element
		okX, err := c.fe.SetBytes(&x, b[1:1+size])
		if err != nil {
			return nil, 0, err
		}
		okY, err := c.fe.SetBytes(&y, b[1+size:])
		if err != nil {
			return nil, 0, err
		}
		ok := okX & okY & c.isOnCurve(&x, &y)
		p := &AffinePoint{c: c}
		p.Select(&AffinePoint{c: c, x: x, y: y}, c.AffineIdentity(), ok)
		return p, ok, nil

	case tagCompact:
		if len(b) != 1+size {
			return nil, 0, fmt.Errorf("curve %s: invalid compact point length %d", c.name, len(b))
		}
		var x Element
		okX, err := c.fe.SetBytes(&x, b[1:])
		if err != nil {
			return nil, 0, err
		}
		p, okY := c.Decompact(&x)
		ok := okX & okY
		p.Select(p, c.AffineIdentity(), ok)
		return p, ok, nil
	}
	return nil, 0, fmt.Errorf("curve %s: invalid point tag %#02x", c.name, b[0])
}
