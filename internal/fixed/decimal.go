// Package fixed implements a signed fixed-point decimal number and its
// multiplication by the grid method.
package fixed

import (
	"slices"
	"strconv"
	"strings"

	"github.com/agbru/decicalc/internal/digits"
	apperrors "github.com/agbru/decicalc/internal/errors"
)

// Decimal is a signed fixed-point decimal value. The zero value is 0.
//
// Non-zero values keep their digits most-significant first with no leading
// zero, always reach down to at least the units digit, and carry no trailing
// fractional zero.
type Decimal struct {
	digits  []byte
	highest int // power of ten of digits[0]
	neg     bool
}

// DigitPower pairs a digit with the power of ten it is worth.
type DigitPower struct {
	Digit byte
	Power int
}

// Zero returns the number 0.
func Zero() Decimal { return Decimal{} }

// Parse reads text of the form [-]digits[.digits]. A missing integer part
// (".5") or an empty fractional part ("10.") is accepted. Surrounding
// whitespace is trimmed.
func Parse(s string) (Decimal, error) {
	const op = "fixed.Parse"
	t := strings.TrimSpace(s)
	neg := false
	if strings.HasPrefix(t, "-") {
		neg = true
		t = t[1:]
	}

	ds := make([]byte, 0, len(t))
	point := -1
	for i := 0; i < len(t); i++ {
		c := t[i]
		if c == '.' {
			if point >= 0 {
				return Decimal{}, apperrors.NewArithmeticError(op, apperrors.ErrMalformedInput, s, "more than one decimal point")
			}
			point = len(ds)
			continue
		}
		d, ok := digits.Parse(c)
		if !ok {
			if c == '-' {
				return Decimal{}, apperrors.NewArithmeticError(op, apperrors.ErrMalformedInput, s, "misplaced sign")
			}
			return Decimal{}, apperrors.NewArithmeticError(op, apperrors.ErrMalformedInput, s, "unexpected character %q", c)
		}
		ds = append(ds, d)
	}
	if len(ds) == 0 {
		return Decimal{}, apperrors.NewArithmeticError(op, apperrors.ErrMalformedInput, s, "no digits")
	}
	if point < 0 {
		point = len(ds)
	}
	return normalize(ds, point-1, neg), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Decimal {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

// FromDigits builds a Decimal from digits given most-significant first and
// the power of ten of the first digit.
//
// Parameters:
//   - ds: Digit values 0-9, most significant first. The slice is copied.
//   - highestPower: The power of ten of ds[0]; must be below len(ds).
//   - negative: The sign of the result (ignored for zero).
//
// Returns:
//   - Decimal: The constructed value.
//   - error: ErrInvalidConstruction when the decimal point would fall beyond
//     the provided digits, ErrMalformedInput for an out-of-range digit.
func FromDigits(ds []byte, highestPower int, negative bool) (Decimal, error) {
	const op = "fixed.FromDigits"
	if highestPower >= len(ds) {
		return Decimal{}, apperrors.NewArithmeticError(op, apperrors.ErrInvalidConstruction, "",
			"highest power %d needs more than %d digits", highestPower, len(ds))
	}
	for i, d := range ds {
		if !digits.Valid(d) {
			return Decimal{}, apperrors.NewArithmeticError(op, apperrors.ErrMalformedInput, "", "digit %d at position %d out of range", d, i)
		}
	}
	return normalize(slices.Clone(ds), highestPower, negative), nil
}

// FromMantissa builds mantissa * 10^-scale from unsigned decimal text.
func FromMantissa(mantissa string, scale int, negative bool) (Decimal, error) {
	ds := make([]byte, len(mantissa))
	for i := 0; i < len(mantissa); i++ {
		d, ok := digits.Parse(mantissa[i])
		if !ok {
			return Decimal{}, apperrors.NewArithmeticError("fixed.FromMantissa", apperrors.ErrMalformedInput, mantissa, "unexpected character %q", mantissa[i])
		}
		ds[i] = d
	}
	return FromDigits(ds, len(ds)-1-scale, negative)
}

// normalize takes ownership of ds and brings it to canonical form.
func normalize(ds []byte, highest int, neg bool) Decimal {
	for len(ds) > 0 && ds[0] == 0 {
		ds = ds[1:]
		highest--
	}
	for len(ds) > 0 && ds[len(ds)-1] == 0 && highest-len(ds)+1 < 0 {
		ds = ds[:len(ds)-1]
	}
	if len(ds) == 0 {
		return Decimal{}
	}
	// Digits must reach the units position.
	if lowest := highest - len(ds) + 1; lowest > 0 {
		ds = append(ds, make([]byte, lowest)...)
	}
	return Decimal{digits: ds, highest: highest, neg: neg}
}

// IsZero reports whether d is 0.
func (d Decimal) IsZero() bool { return len(d.digits) == 0 }

// IsNegative reports whether d is strictly negative.
func (d Decimal) IsNegative() bool { return d.neg }

// HighestPower returns the power of ten of the most significant digit.
// It is 0 for zero.
func (d Decimal) HighestPower() int { return d.highest }

// Scale returns the number of fractional digits.
func (d Decimal) Scale() int {
	if d.IsZero() {
		return 0
	}
	return len(d.digits) - 1 - d.highest
}

// Mantissa returns the unsigned digits of d with the point removed, so that
// |d| == mantissa * 10^-Scale().
func (d Decimal) Mantissa() string {
	if d.IsZero() {
		return "0"
	}
	b := make([]byte, len(d.digits))
	for i, x := range d.digits {
		b[i] = digits.Char(x)
	}
	return string(b)
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	if d.IsZero() {
		return d
	}
	return Decimal{digits: slices.Clone(d.digits), highest: d.highest, neg: !d.neg}
}

// DigitPowers lists every digit with its power of ten, most significant first.
// Zero has no digits.
func (d Decimal) DigitPowers() []DigitPower {
	out := make([]DigitPower, len(d.digits))
	for i, x := range d.digits {
		out[i] = DigitPower{Digit: x, Power: d.highest - i}
	}
	return out
}

// String renders d as [-]integer[.fraction], writing "0" for an empty
// integer part and omitting the point when there is no fraction.
func (d Decimal) String() string {
	if d.IsZero() {
		return "0"
	}
	var b strings.Builder
	b.Grow(len(d.digits) + 3 + max(0, -d.highest))
	if d.neg {
		b.WriteByte('-')
	}
	if d.highest < 0 {
		b.WriteString("0.")
		for i := d.highest + 1; i < 0; i++ {
			b.WriteByte('0')
		}
		for _, x := range d.digits {
			b.WriteByte(digits.Char(x))
		}
		return b.String()
	}
	for i, x := range d.digits {
		if i == d.highest+1 {
			b.WriteByte('.')
		}
		b.WriteByte(digits.Char(x))
	}
	return b.String()
}

// Float64 returns the nearest float64 to d.
func (d Decimal) Float64() float64 {
	// Out-of-range magnitudes come back as ±Inf with ErrRange.
	f, _ := strconv.ParseFloat(d.String(), 64)
	return f
}

// Equal reports whether a and b denote the same value.
func Equal(a, b Decimal) bool {
	return a.neg == b.neg && a.highest == b.highest && slices.Equal(a.digits, b.digits)
}
