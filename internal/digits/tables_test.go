package digits

import "testing"

func TestAdd_Exhaustive(t *testing.T) {
	t.Parallel()
	for a := byte(0); a <= Max; a++ {
		for b := byte(0); b <= Max; b++ {
			for c := byte(0); c <= 1; c++ {
				digit, carry := Add(a, b, c)
				if got, want := int(carry)*10+int(digit), int(a)+int(b)+int(c); got != want {
					t.Errorf("Add(%d, %d, %d) = %d, want %d", a, b, c, got, want)
				}
				if digit > Max || carry > 1 {
					t.Errorf("Add(%d, %d, %d) produced out-of-range cell (%d, %d)", a, b, c, digit, carry)
				}
			}
		}
	}
}

func TestMul_Exhaustive(t *testing.T) {
	t.Parallel()
	tests := []struct {
		a, b   byte
		lo, hi byte
	}{
		{0, 0, 0, 0}, {0, 9, 0, 0}, {1, 0, 0, 0}, {1, 9, 9, 0},
		{7, 3, 1, 2}, {8, 5, 0, 4}, {2, 9, 8, 1}, {9, 9, 1, 8},
	}
	for _, tt := range tests {
		lo, hi := Mul(tt.a, tt.b)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("Mul(%d, %d) = (%d, %d), want (%d, %d)", tt.a, tt.b, lo, hi, tt.lo, tt.hi)
		}
	}
	for a := byte(0); a <= Max; a++ {
		for b := byte(0); b <= Max; b++ {
			lo, hi := Mul(a, b)
			if int(hi)*10+int(lo) != int(a)*int(b) {
				t.Errorf("Mul(%d, %d) = %d%d", a, b, hi, lo)
			}
		}
	}
}

func TestIncDec(t *testing.T) {
	t.Parallel()
	for d := byte(0); d <= Max; d++ {
		inc, carry := Inc(d)
		if d == 9 {
			if inc != 0 || carry != 1 {
				t.Errorf("Inc(9) = (%d, %d), want (0, 1)", inc, carry)
			}
		} else if inc != d+1 || carry != 0 {
			t.Errorf("Inc(%d) = (%d, %d)", d, inc, carry)
		}

		dec, borrow := Dec(d)
		if d == 0 {
			if dec != 9 || borrow != 1 {
				t.Errorf("Dec(0) = (%d, %d), want (9, 1)", dec, borrow)
			}
		} else if dec != d-1 || borrow != 0 {
			t.Errorf("Dec(%d) = (%d, %d)", d, dec, borrow)
		}
	}
}

func TestNines(t *testing.T) {
	t.Parallel()
	for d := byte(0); d <= Max; d++ {
		if Nines(d)+d != 9 {
			t.Errorf("Nines(%d) = %d", d, Nines(d))
		}
	}
}

func TestParseChar(t *testing.T) {
	t.Parallel()
	for d := byte(0); d <= Max; d++ {
		c := Char(d)
		got, ok := Parse(c)
		if !ok || got != d {
			t.Errorf("Parse(Char(%d)) = (%d, %v)", d, got, ok)
		}
	}
	for _, c := range []byte{'a', '-', '.', ' ', '/', ':', 0} {
		if _, ok := Parse(c); ok {
			t.Errorf("Parse(%q) should fail", c)
		}
	}
}
