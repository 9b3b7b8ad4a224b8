package fixed

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/decicalc/internal/errors"
)

func TestParseString(t *testing.T) {
	t.Parallel()
	tests := []struct{ in, want string }{
		{"12345", "12345"},
		{"-12345", "-12345"},
		{"123.45", "123.45"},
		{"-123.45", "-123.45"},
		{"123.450000000000000", "123.45"},
		{"000000000000123.45", "123.45"},
		{"000000000000123.450000000000000", "123.45"},
		{"123000000000000.450000000000000", "123000000000000.45"},
		{"-000000000000123.450000000000000", "-123.45"},
		{".1", "0.1"},
		{".10", "0.1"},
		{"-.1", "-0.1"},
		{"-0.10", "-0.1"},
		{"0.010", "0.01"},
		{"-0.010", "-0.01"},
		{"0.01010", "0.0101"},
		{"10", "10"},
		{"100", "100"},
		{"1.0", "1"},
		{"1.00", "1"},
		{"10.", "10"},
		{"100.", "100"},
		{"0", "0"},
		{"-0.000", "0"},
		{" 7.5 ", "7.5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			d, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.in, err)
			}
			if got := d.String(); got != tt.want {
				t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseMalformed(t *testing.T) {
	t.Parallel()
	for _, in := range []string{"", "-", ".", "-.", "1.2.3", "1-2", "12-", "--1", "1e5", "1,000", "abc", "12%"} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse(in); !errors.Is(err, apperrors.ErrMalformedInput) {
				t.Errorf("Parse(%q) error = %v, want ErrMalformedInput", in, err)
			}
		})
	}
}

func TestFromDigits(t *testing.T) {
	t.Parallel()
	tests := []struct {
		highest  int
		negative bool
		want     string
	}{
		{-3, false, "0.00123"},
		{-2, false, "0.0123"},
		{-1, false, "0.123"},
		{0, false, "1.23"},
		{1, false, "12.3"},
		{2, false, "123"},
		{2, true, "-123"},
	}
	for _, tt := range tests {
		d, err := FromDigits([]byte{1, 2, 3}, tt.highest, tt.negative)
		if err != nil {
			t.Fatalf("FromDigits(123, %d): %v", tt.highest, err)
		}
		if got := d.String(); got != tt.want {
			t.Errorf("FromDigits(123, %d) = %q, want %q", tt.highest, got, tt.want)
		}
	}
}

func TestFromDigitsInvalidConstruction(t *testing.T) {
	t.Parallel()
	for _, highest := range []int{3, 4, 100} {
		for _, negative := range []bool{false, true} {
			_, err := FromDigits([]byte{1, 2, 3}, highest, negative)
			if !errors.Is(err, apperrors.ErrInvalidConstruction) {
				t.Errorf("FromDigits(123, %d, %v) error = %v, want ErrInvalidConstruction", highest, negative, err)
			}
		}
	}
	if _, err := FromDigits([]byte{1, 12}, 0, false); !errors.Is(err, apperrors.ErrMalformedInput) {
		t.Errorf("out-of-range digit error = %v", err)
	}
}

func TestFromDigitsCopies(t *testing.T) {
	t.Parallel()
	src := []byte{4, 5}
	d, err := FromDigits(src, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = 9
	if d.String() != "45" {
		t.Errorf("FromDigits shares storage: %s", d)
	}
}

func TestDigitPowers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want []DigitPower
	}{
		{"0", []DigitPower{}},
		{".1", []DigitPower{{1, -1}}},
		{"-.12", []DigitPower{{1, -1}, {2, -2}}},
		{"123", []DigitPower{{1, 2}, {2, 1}, {3, 0}}},
		{"-1.5", []DigitPower{{1, 0}, {5, -1}}},
	}
	for _, tt := range tests {
		got := MustParse(tt.in).DigitPowers()
		if len(got) != len(tt.want) {
			t.Fatalf("DigitPowers(%s) = %v, want %v", tt.in, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("DigitPowers(%s)[%d] = %v, want %v", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestMantissaScale(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in       string
		mantissa string
		scale    int
	}{
		{"0", "0", 0},
		{"120", "120", 0},
		{"-1.25", "125", 2},
		{"0.007", "7", 3},
	}
	for _, tt := range tests {
		d := MustParse(tt.in)
		if d.Mantissa() != tt.mantissa || d.Scale() != tt.scale {
			t.Errorf("%s: mantissa %s scale %d, want %s %d", tt.in, d.Mantissa(), d.Scale(), tt.mantissa, tt.scale)
		}
		back, err := FromMantissa(d.Mantissa(), d.Scale(), d.IsNegative())
		if err != nil || !Equal(back, d) {
			t.Errorf("FromMantissa round trip of %s = %s, %v", tt.in, back, err)
		}
	}
	if _, err := FromMantissa("12", -1, false); !errors.Is(err, apperrors.ErrInvalidConstruction) {
		t.Errorf("negative scale error = %v", err)
	}
}

func TestFloat64(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"-123.45", -123.45},
		{"0.001", 0.001},
	}
	for _, tt := range tests {
		if got := MustParse(tt.in).Float64(); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Float64(%s) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
