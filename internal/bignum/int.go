package bignum

import (
	"slices"
	"strings"

	"github.com/agbru/decicalc/internal/digits"
	apperrors "github.com/agbru/decicalc/internal/errors"
)

// Sign is the sign of an Int. Zero is always Positive.
type Sign int8

const (
	Positive Sign = iota
	Negative
)

// flip returns the opposite sign.
func (s Sign) flip() Sign {
	if s == Positive {
		return Negative
	}
	return Positive
}

// Int is a signed arbitrary-precision integer.
// The zero value is the number 0.
type Int struct {
	digits []byte // least-significant first, no most-significant zeros
	sign   Sign
}

var zeroDigits = []byte{0}

// mag returns the magnitude digits, least-significant first.
// The returned slice must not be modified.
func (x Int) mag() []byte {
	if len(x.digits) == 0 {
		return zeroDigits
	}
	return x.digits
}

// fromOwned builds an Int from a digit slice the caller hands over.
// Most-significant zeros are trimmed and a zero magnitude is made positive.
func fromOwned(ds []byte, sign Sign) Int {
	ds = trim(ds)
	if len(ds) == 1 && ds[0] == 0 {
		return Int{digits: []byte{0}, sign: Positive}
	}
	return Int{digits: ds, sign: sign}
}

// trim drops most-significant zero digits, keeping at least one digit.
func trim(ds []byte) []byte {
	n := len(ds)
	for n > 1 && ds[n-1] == 0 {
		n--
	}
	if n == 0 {
		return []byte{0}
	}
	return ds[:n]
}

// Zero returns the number 0.
func Zero() Int {
	return Int{digits: []byte{0}}
}

// Parse reads an optionally signed decimal integer such as "-1234".
// Surrounding whitespace is trimmed; redundant leading zeros are dropped and
// an all-zero input becomes positive 0.
func Parse(s string) (Int, error) {
	t := strings.TrimSpace(s)
	sign := Positive
	if strings.HasPrefix(t, "-") {
		sign = Negative
		t = t[1:]
	}
	return parseDigits("bignum.Parse", s, t, sign)
}

// New builds an Int from unsigned, most-significant-first decimal text and
// an explicit sign.
//
// Parameters:
//   - text: Decimal digits only, most significant first.
//   - negative: Whether the value is negative (ignored for zero).
//
// Returns:
//   - Int: The parsed value.
//   - error: An ArithmeticError of kind ErrMalformedInput for any non-digit.
func New(text string, negative bool) (Int, error) {
	sign := Positive
	if negative {
		sign = Negative
	}
	return parseDigits("bignum.New", text, text, sign)
}

func parseDigits(op, input, text string, sign Sign) (Int, error) {
	if text == "" {
		return Int{}, apperrors.NewArithmeticError(op, apperrors.ErrMalformedInput, input, "no digits")
	}
	ds := make([]byte, len(text))
	for i := 0; i < len(text); i++ {
		d, ok := digits.Parse(text[i])
		if !ok {
			if text[i] == '-' {
				return Int{}, apperrors.NewArithmeticError(op, apperrors.ErrMalformedInput, input, "misplaced sign at offset %d", i)
			}
			return Int{}, apperrors.NewArithmeticError(op, apperrors.ErrMalformedInput, input, "unexpected character %q", text[i])
		}
		ds[len(text)-1-i] = d
	}
	return fromOwned(ds, sign), nil
}

// FromDigits builds an Int from digit values given least-significant first.
// The slice is copied.
func FromDigits(lsdFirst []byte, negative bool) (Int, error) {
	if len(lsdFirst) == 0 {
		return Int{}, apperrors.NewArithmeticError("bignum.FromDigits", apperrors.ErrMalformedInput, "", "no digits")
	}
	for i, d := range lsdFirst {
		if !digits.Valid(d) {
			return Int{}, apperrors.NewArithmeticError("bignum.FromDigits", apperrors.ErrMalformedInput, "", "digit %d at position %d out of range", d, i)
		}
	}
	sign := Positive
	if negative {
		sign = Negative
	}
	return fromOwned(slices.Clone(lsdFirst), sign), nil
}

// MustParse is like Parse but panics on malformed input.
// It simplifies safe initialisation of package-level values and tests.
func MustParse(s string) Int {
	x, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return x
}

// String renders the value as an optional "-" followed by the minimal digits.
func (x Int) String() string {
	ds := x.mag()
	var b strings.Builder
	b.Grow(len(ds) + 1)
	if x.sign == Negative {
		b.WriteByte('-')
	}
	for i := len(ds) - 1; i >= 0; i-- {
		b.WriteByte(digits.Char(ds[i]))
	}
	return b.String()
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int {
	switch {
	case x.IsZero():
		return 0
	case x.sign == Negative:
		return -1
	}
	return 1
}

// IsZero reports whether x is 0.
func (x Int) IsZero() bool {
	ds := x.mag()
	return len(ds) == 1 && ds[0] == 0
}

// IsNegative reports whether x is strictly negative.
func (x Int) IsNegative() bool {
	return x.sign == Negative
}

// Len returns the number of decimal digits of |x|; 0 has one digit.
func (x Int) Len() int {
	return len(x.mag())
}

// Digits returns a copy of the magnitude digits, least-significant first.
func (x Int) Digits() []byte {
	return slices.Clone(x.mag())
}

// Neg returns -x with its own copy of the digits.
func (x Int) Neg() Int {
	return fromOwned(slices.Clone(x.mag()), x.sign.flip())
}

// Abs returns |x|.
func (x Int) Abs() Int {
	return fromOwned(slices.Clone(x.mag()), Positive)
}

// MulPow10 returns x * 10^power by prepending zero digits.
func (x Int) MulPow10(power uint) Int {
	if x.IsZero() || power == 0 {
		return fromOwned(slices.Clone(x.mag()), x.sign)
	}
	ds := make([]byte, int(power), int(power)+x.Len())
	ds = append(ds, x.mag()...)
	return fromOwned(ds, x.sign)
}

// DecimalDecompose splits x around 10^power so that
// high*10^power + low == x. Both parts keep the sign of x.
//
// Parameters:
//   - power: The split position counted in digits from the least significant.
//
// Returns:
//   - low: The digits below 10^power.
//   - high: The digits at and above 10^power.
func (x Int) DecimalDecompose(power uint) (low, high Int) {
	ds := x.mag()
	if int(power) >= len(ds) {
		return fromOwned(slices.Clone(ds), x.sign), Zero()
	}
	if power == 0 {
		return Zero(), fromOwned(slices.Clone(ds), x.sign)
	}
	low = fromOwned(slices.Clone(ds[:power]), x.sign)
	high = fromOwned(slices.Clone(ds[power:]), x.sign)
	return low, high
}

// Cmp compares a and b and returns -1, 0 or +1.
// Negative values sort before positive ones; among values of the same sign
// the digit count decides first, then the digits from the most significant.
func Cmp(a, b Int) int {
	if a.sign != b.sign {
		if a.sign == Negative {
			return -1
		}
		return 1
	}
	m := cmpMag(a.mag(), b.mag())
	if a.sign == Negative {
		return -m
	}
	return m
}

// Equal reports whether a and b denote the same integer.
func Equal(a, b Int) bool {
	return Cmp(a, b) == 0
}

func cmpMag(x, y []byte) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
