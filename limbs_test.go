package weierstrass

import "testing"

func TestCtPredicates(t *testing.T) {
	if ctIsZeroWord(0) != 1 || ctIsZeroWord(1) != 0 || ctIsZeroWord(^uint64(0)) != 0 {
		t.Error("ctIsZeroWord broken")
	}
	if ctMask(0) != 0 || ctMask(1) != ^uint64(0) {
		t.Error("ctMask broken")
	}
	if ctSelectWord(1, 7, 9) != 7 || ctSelectWord(0, 7, 9) != 9 {
		t.Error("ctSelectWord broken")
	}

	a := []uint64{1, 2, 3}
	b := []uint64{1, 2, 3}
	c := []uint64{1, 2, 4}
	if ctEq(a, b) != 1 || ctEq(a, c) != 0 {
		t.Error("ctEq broken")
	}
	if ctLt(a, c) != 1 || ctLt(c, a) != 0 || ctLt(a, b) != 0 {
		t.Error("ctLt broken")
	}
	if ctGt(c, a) != 1 || ctGt(a, c) != 0 {
		t.Error("ctGt broken")
	}
}

func TestAddSubCarry(t *testing.T) {
	max := ^uint64(0)
	x := []uint64{max, max}
	y := []uint64{1, 0}
	z := make([]uint64, 2)
	if c := addCarry(z, x, y); c != 1 || z[0] != 0 || z[1] != 0 {
		t.Errorf("addCarry: got %v carry %d", z, c)
	}
	if b := subBorrow(z, y, x); b != 1 {
		t.Errorf("subBorrow: borrow %d", b)
	}
}

func TestTwosComplementShift(t *testing.T) {
	// -2 >> 1 == -1 under arithmetic shift.
	v := []uint64{^uint64(1), ^uint64(0)}
	sar1(v)
	if v[0] != ^uint64(0) || v[1] != ^uint64(0) {
		t.Errorf("sar1(-2) = %v", v)
	}

	neg := make([]uint64, 2)
	negTwos(neg, []uint64{5, 0})
	got := make([]uint64, 2)
	addCarry(got, neg, []uint64{5, 0})
	if got[0] != 0 || got[1] != 0 {
		t.Errorf("negTwos(5) + 5 = %v", got)
	}
}

func TestMadd2(t *testing.T) {
	max := ^uint64(0)
	// Worst case max*max + max + max fills exactly 128 bits.
	hi, lo := madd2(max, max, max, max)
	if hi != max || lo != max {
		t.Errorf("madd2 overflow case: %x %x", hi, lo)
	}
	hi, lo = madd2(3, 5, 7, 11)
	if hi != 0 || lo != 33 {
		t.Errorf("madd2(3,5,7,11) = %x %x", hi, lo)
	}
}

func TestShrBits(t *testing.T) {
	x := []uint64{0, 0, 1} // 2^128
	z := make([]uint64, 3)
	shrBits(z, x, 64)
	if z[0] != 0 || z[1] != 1 || z[2] != 0 {
		t.Errorf("shrBits by 64: %v", z)
	}
	shrBits(z, x, 127)
	if z[0] != 2 || z[1] != 0 || z[2] != 0 {
		t.Errorf("shrBits by 127: %v", z)
	}
	if bitLen(x) != 129 || bitLen([]uint64{0, 0, 0}) != 0 {
		t.Error("bitLen broken")
	}
}
