package weierstrass

import (
	"fmt"

	sha256simd "github.com/minio/sha256-simd"
)

// ScalarField is the field of residues modulo a curve's group order N. It
// carries the full modular arithmetic engine plus the scalar-specific
// operations protocol layers need: high-half classification for signature
// canonicalization and wide reduction for hash-to-scalar.
type ScalarField struct {
	*Field

	halfOrder [maxLimbs]uint64 // floor(N/2), canonical limbs
}

// NewScalarField builds the scalar engine for the group order given as a
// big-endian hex string.
func NewScalarField(orderHex string) (*ScalarField, error) {
	f, err := NewField(orderHex)
	if err != nil {
		return nil, err
	}
	s := &ScalarField{Field: f}
	shrBits(s.halfOrder[:f.nlimbs], f.m[:f.nlimbs], 1)
	return s, nil
}

// IsHigh returns 1 when the canonical value of x exceeds floor(N/2), in
// constant time. Callers use this to map a signature s to its low-half
// representative.
func (s *ScalarField) IsHigh(x *Element) int {
	var raw Element
	s.fromMont(&raw, x)
	return int(ctGt(raw.limbs[:s.nlimbs], s.halfOrder[:s.nlimbs]))
}

// Reduce decodes an oversized big-endian integer of at most twice the scalar
// width and reduces it into [0, N). The reduction folds the value at the
// Montgomery radix, so every input length takes the same arithmetic path.
func (s *ScalarField) Reduce(z *Element, b []byte) error {
	if len(b) > 2*s.size {
		return fmt.Errorf("weierstrass: wide value length %d exceeds %d", len(b), 2*s.size)
	}
	s.reduceWide(z, b)
	return nil
}

// ReduceNonZero is Reduce followed by a shift into [1, N-1], so the result
// can serve directly as a nonzero nonce or blinding scalar.
func (s *ScalarField) ReduceNonZero(z *Element, b []byte) error {
	if len(b) > 2*s.size {
		return fmt.Errorf("weierstrass: wide value length %d exceeds %d", len(b), 2*s.size)
	}
	var r Element
	s.reduceWide(&r, b)
	s.Add(z, &r, &s.one)
	// Input ≡ N-1 wraps the increment back to zero; pin it to one.
	z.Select(&s.one, z, s.IsZero(z))
	return nil
}

// HashToScalar hashes the concatenation of data with SHA-256 and reduces the
// digest into [0, N).
func (s *ScalarField) HashToScalar(z *Element, data ...[]byte) {
	h := sha256simd.New()
	for _, d := range data {
		h.Write(d)
	}
	s.reduceWide(z, h.Sum(nil))
}

// reduceWide interprets b as a big-endian integer below R², splits it at the
// Montgomery radix R as hi*R + lo, and folds both halves into the Montgomery
// domain: lo*R = montMul(lo, R²) and hi*R*R = montMul(hi, R³). Both products
// are fully reduced, so their modular sum is the reduced Montgomery form of
// the input.
func (s *ScalarField) reduceWide(z *Element, b []byte) {
	n := s.nlimbs
	var wide [2 * maxLimbs]uint64
	for i := 0; i < len(b); i++ {
		wide[i/8] |= uint64(b[len(b)-1-i]) << (8 * (i % 8))
	}
	var lo, hi Element
	copy(lo.limbs[:n], wide[:n])
	copy(hi.limbs[:n], wide[n:2*n])
	var loM, hiM Element
	s.montMul(&loM, &lo, &s.r2)
	s.montMul(&hiM, &hi, &s.r3)
	s.Add(z, &loM, &hiM)
}
