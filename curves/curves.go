// Package curves provides ready-made engines for the common short-Weierstrass
// curves. Each curve is built on first use and shared afterwards; the returned
// values are immutable and safe for concurrent use.
package curves

import (
	"sync"

	weierstrass "weierstrass.mleku.dev"
)

func mustCurve(p weierstrass.CurveParams) func() *weierstrass.Curve {
	return sync.OnceValue(func() *weierstrass.Curve {
		c, err := weierstrass.NewCurve(p)
		if err != nil {
			panic(err)
		}
		return c
	})
}

// P224 returns the NIST P-224 curve (secp224r1).
var P224 = mustCurve(weierstrass.CurveParams{
	Name: "P-224",
	P:    "ffffffffffffffffffffffffffffffff000000000000000000000001",
	N:    "ffffffffffffffffffffffffffff16a2e0b8f03e13dd29455c5c2a3d",
	A:    "fffffffffffffffffffffffffffffffefffffffffffffffffffffffe",
	B:    "b4050a850c04b3abf54132565044b0b7d7bfd8ba270b39432355ffb4",
	Gx:   "b70e0cbd6bb4bf7f321390b94a03c1d356c21122343280d6115c1d21",
	Gy:   "bd376388b5f723fb4c22dfe6cd4375a05a07476444d5819985007e34",
})

// P256 returns the NIST P-256 curve (secp256r1, prime256v1).
var P256 = mustCurve(weierstrass.CurveParams{
	Name: "P-256",
	P:    "ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
	N:    "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551",
	A:    "ffffffff00000001000000000000000000000000fffffffffffffffffffffffc",
	B:    "5ac635d8aa3a93e7b3ebbd55769886bc651d06b0cc53b0f63bce3c3e27d2604b",
	Gx:   "6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
	Gy:   "4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
})

// P384 returns the NIST P-384 curve (secp384r1).
var P384 = mustCurve(weierstrass.CurveParams{
	Name: "P-384",
	P:    "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff",
	N:    "ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973",
	A:    "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000fffffffc",
	B:    "b3312fa7e23ee7e4988e056be3f82d19181d9c6efe8141120314088f5013875ac656398d8a2ed19d2a85c8edd3ec2aef",
	Gx:   "aa87ca22be8b05378eb1c71ef320ad746e1d3b628ba79b9859f741e082542a385502f25dbf55296c3a545e3872760ab7",
	Gy:   "3617de4a96262c6f5d9e98bf9292dc29f8f41dbd289a147ce9da3113b5f0b8c00a60b1ce1d7e819d7a431d7c90ea0e5f",
})

// P521 returns the NIST P-521 curve (secp521r1).
var P521 = mustCurve(weierstrass.CurveParams{
	Name: "P-521",
	P:    "01ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
	N:    "01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409",
	A:    "01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffc",
	B:    "0051953eb9618e1c9a1f929a21a0b68540eea2da725b99b315f3b8b489918ef109e156193951ec7e937b1652c0bd3bb1bf073573df883d2c34f1ef451fd46b503f00",
	Gx:   "00c6858e06b70404e9cd9e3ecb662395b4429c648139053fb521f828af606b4d3dbaa14b5e77efe75928fe1dc127a2ffa8de3348b3c1856a429bf97e7e31c2e5bd66",
	Gy:   "011839296a789a3bc0045c8a5fb42c7d1bd998f54449579b446817afbd17273e662c97ee72995ef42640c550b9013fad0761353c7086a272c24088be94769fd16650",
})

// Secp256k1 returns the SECG secp256k1 curve.
var Secp256k1 = mustCurve(weierstrass.CurveParams{
	Name: "secp256k1",
	P:    "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f",
	N:    "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
	A:    "0000000000000000000000000000000000000000000000000000000000000000",
	B:    "0000000000000000000000000000000000000000000000000000000000000007",
	Gx:   "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	Gy:   "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
})

// BrainpoolP256r1 returns the brainpoolP256r1 curve (RFC 5639).
var BrainpoolP256r1 = mustCurve(weierstrass.CurveParams{
	Name: "brainpoolP256r1",
	P:    "a9fb57dba1eea9bc3e660a909d838d726e3bf623d52620282013481d1f6e5377",
	N:    "a9fb57dba1eea9bc3e660a909d838d718c397aa3b561a6f7901e0e82974856a7",
	A:    "7d5a0975fc2c3057eef67530417affe7fb8055c126dc5c6ce94a4b44f330b5d9",
	B:    "26dc5c6ce94a4b44f330b5d9bbd77cbf958416295cf7e1ce6bccdc18ff8c07b6",
	Gx:   "8bd2aeb9cb7e57cb2c4b482ffc81b7afb9de27e1e3bd23c23a4453bd9ace3262",
	Gy:   "547ef835c3dac4fd97f8461a14611dc9c27745132ded8e545c1d54c72f046997",
})
