package weierstrass

import (
	"crypto/sha256"
	"math/big"
	"testing"
)

var testOrders = []struct {
	name string
	hex  string
}{
	{"p256", "ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551"},
	{"secp256k1", "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"},
	{"p224", "ffffffffffffffffffffffffffff16a2e0b8f03e13dd29455c5c2a3d"},
	{"p521", "01fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffa51868783bf2f966b7fcc0148f709a5d03bb5c9b8899c47aebb6fb71e91386409"},
}

func mustScalarField(t *testing.T, hex string) (*ScalarField, *big.Int) {
	t.Helper()
	s, err := NewScalarField(hex)
	if err != nil {
		t.Fatalf("NewScalarField: %v", err)
	}
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		t.Fatalf("bad order hex")
	}
	return s, n
}

func scalarFromBig(t *testing.T, s *ScalarField, v *big.Int) Element {
	t.Helper()
	enc := make([]byte, s.Size())
	v.FillBytes(enc)
	var e Element
	ok, err := s.SetBytes(&e, enc)
	if err != nil || ok != 1 {
		t.Fatalf("scalarFromBig: ok=%d err=%v", ok, err)
	}
	return e
}

func TestIsHigh(t *testing.T) {
	for _, to := range testOrders {
		t.Run(to.name, func(t *testing.T) {
			s, n := mustScalarField(t, to.hex)
			half := new(big.Int).Rsh(n, 1) // floor(N/2)

			cases := []struct {
				name string
				v    *big.Int
				want int
			}{
				{"zero", big.NewInt(0), 0},
				{"one", big.NewInt(1), 0},
				{"half", new(big.Int).Set(half), 0},
				{"half_plus_one", new(big.Int).Add(half, big.NewInt(1)), 1},
				{"order_minus_one", new(big.Int).Sub(n, big.NewInt(1)), 1},
			}
			for _, tc := range cases {
				t.Run(tc.name, func(t *testing.T) {
					e := scalarFromBig(t, s, tc.v)
					if got := s.IsHigh(&e); got != tc.want {
						t.Errorf("IsHigh(%v) = %d, want %d", tc.v, got, tc.want)
					}
				})
			}
		})
	}
}

func TestReduce(t *testing.T) {
	for _, to := range testOrders {
		t.Run(to.name, func(t *testing.T) {
			s, n := mustScalarField(t, to.hex)

			// Deterministic wide values spanning zero, narrow, order-
			// straddling and maximal double-width inputs.
			wides := []*big.Int{
				big.NewInt(0),
				big.NewInt(1),
				new(big.Int).Sub(n, big.NewInt(1)),
				new(big.Int).Set(n),
				new(big.Int).Add(n, big.NewInt(1)),
				new(big.Int).Mul(n, n),
				new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(16*s.Size())), big.NewInt(1)),
			}
			for i := 0; i < 16; i++ {
				h := sha256.Sum256([]byte{byte(i), 0x52})
				v := new(big.Int).SetBytes(h[:])
				v.Mul(v, v)
				v.Mod(v, new(big.Int).Lsh(big.NewInt(1), uint(16*s.Size())))
				wides = append(wides, v)
			}

			for i, w := range wides {
				enc := make([]byte, 2*s.Size())
				w.FillBytes(enc)
				var e Element
				if err := s.Reduce(&e, enc); err != nil {
					t.Fatalf("Reduce: %v", err)
				}
				want := new(big.Int).Mod(w, n)
				if elementBig(s.Field, &e).Cmp(want) != 0 {
					t.Fatalf("Reduce mismatch at case %d", i)
				}

				// Short encodings reduce the same way.
				short := make([]byte, s.Size())
				if w.BitLen() <= 8*s.Size() {
					w.FillBytes(short)
					if err := s.Reduce(&e, short); err != nil {
						t.Fatalf("Reduce short: %v", err)
					}
					if elementBig(s.Field, &e).Cmp(want) != 0 {
						t.Fatalf("short Reduce mismatch at case %d", i)
					}
				}
			}

			var e Element
			if err := s.Reduce(&e, make([]byte, 2*s.Size()+1)); err == nil {
				t.Error("over-wide input accepted")
			}
		})
	}
}

func TestReduceNonZero(t *testing.T) {
	s, n := mustScalarField(t, testOrders[0].hex)

	cases := []struct {
		name string
		v    *big.Int
		want *big.Int
	}{
		{"zero", big.NewInt(0), big.NewInt(1)},
		{"one", big.NewInt(1), big.NewInt(2)},
		{"two", big.NewInt(2), big.NewInt(3)},
		{"order_minus_two", new(big.Int).Sub(n, big.NewInt(2)), new(big.Int).Sub(n, big.NewInt(1))},
		{"order_minus_one", new(big.Int).Sub(n, big.NewInt(1)), big.NewInt(1)},
		{"order", new(big.Int).Set(n), big.NewInt(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enc := make([]byte, 2*s.Size())
			tc.v.FillBytes(enc)
			var e Element
			if err := s.ReduceNonZero(&e, enc); err != nil {
				t.Fatalf("ReduceNonZero: %v", err)
			}
			if elementBig(s.Field, &e).Cmp(tc.want) != 0 {
				t.Errorf("ReduceNonZero(%v) = %v, want %v", tc.v, elementBig(s.Field, &e), tc.want)
			}
		})
	}

	// Never zero over a spread of inputs.
	for i := 0; i < 64; i++ {
		h := sha256.Sum256([]byte{byte(i), 0x4e})
		var e Element
		if err := s.ReduceNonZero(&e, h[:]); err != nil {
			t.Fatalf("ReduceNonZero: %v", err)
		}
		if s.IsZero(&e) == 1 {
			t.Fatalf("ReduceNonZero produced zero at %d", i)
		}
	}
}

func TestHashToScalar(t *testing.T) {
	s, n := mustScalarField(t, testOrders[1].hex)

	msg := [][]byte{[]byte("weierstrass"), []byte("hash-to-scalar")}
	var e Element
	s.HashToScalar(&e, msg...)

	h := sha256.New()
	for _, m := range msg {
		h.Write(m)
	}
	want := new(big.Int).SetBytes(h.Sum(nil))
	want.Mod(want, n)
	if elementBig(s.Field, &e).Cmp(want) != 0 {
		t.Error("HashToScalar disagrees with manual SHA-256 + reduce")
	}

	// Same input split differently hashes identically.
	var e2 Element
	s.HashToScalar(&e2, []byte("weierstrasshash-to-scalar"))
	if s.Equal(&e, &e2) != 1 {
		t.Error("HashToScalar not a function of the concatenation")
	}
}
