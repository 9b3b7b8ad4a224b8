package dft

import (
	"fmt"
	"math"
	"strings"

	"github.com/agbru/decicalc/internal/complexnum"
	"github.com/agbru/decicalc/internal/digits"
	apperrors "github.com/agbru/decicalc/internal/errors"
)

// Order is the digit order of an operand string.
type Order int

const (
	// Descending is the usual reading order, most significant digit first.
	Descending Order = iota
	// Ascending puts the least significant digit first.
	Ascending
)

// String returns "desc" or "asc".
func (o Order) String() string {
	if o == Ascending {
		return "asc"
	}
	return "desc"
}

// ParseOrder converts "desc" or "asc" into an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "desc", "descending", "":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	}
	return Descending, fmt.Errorf("unknown digit order %q (expected desc or asc)", s)
}

// RoundingTolerance is the largest distance between an inverse-transform
// coefficient and the nearest integer that Multiply accepts.
const RoundingTolerance = 0.25

// Transformer is a forward/inverse transform pair.
type Transformer struct {
	Name    string
	Forward func([]complexnum.Complex) []complexnum.Complex
	Inverse func([]complexnum.Complex) []complexnum.Complex
}

// Direct evaluates the transform from its definition in O(N²).
var Direct = Transformer{Name: "direct", Forward: Transform, Inverse: Inverse}

// Multiply returns the product of two unsigned decimal digit strings using
// the direct transform. The result is always most significant digit first,
// without leading zeros and with at least one digit.
func Multiply(x, y string, order Order) (string, error) {
	return MultiplyWith(Direct, x, y, order)
}

// MultiplyWith is Multiply with an explicit transform pair.
//
// Both operands are turned into real sequences of their digits, least
// significant first, and zero-padded to the smallest power of two that holds
// len(x)+len(y) coefficients so the cyclic convolution does not wrap. The
// transforms are multiplied pointwise and inverted; every coefficient is
// rounded to the nearest integer and a single carry pass produces the digits.
//
// Returns:
//   - string: The product in descending digit order.
//   - error: ErrMalformedInput for an empty or non-digit operand,
//     ErrPrecisionLoss when a coefficient is not within RoundingTolerance of
//     an integer.
func MultiplyWith(t Transformer, x, y string, order Order) (string, error) {
	n := nextPowerOfTwo(len(x) + len(y))

	xs := acquireSequence(n)
	defer releaseSequence(xs)
	if err := load(xs, x, order); err != nil {
		return "", err
	}
	ys := acquireSequence(n)
	defer releaseSequence(ys)
	if err := load(ys, y, order); err != nil {
		return "", err
	}

	X, Y := t.Forward(xs), t.Forward(ys)
	product := acquireSequence(n)
	defer releaseSequence(product)
	for i := range product {
		product[i] = X[i].Mul(Y[i])
	}
	coeffs := t.Inverse(product)

	out := make([]byte, 0, n+1) // least significant first
	var carry int64
	for i, c := range coeffs {
		r := math.Round(c.Re)
		if math.Abs(c.Re-r) > RoundingTolerance || r < 0 {
			return "", apperrors.NewArithmeticError("dft.Multiply", apperrors.ErrPrecisionLoss, "",
				"coefficient %d is %g, too far from an integer", i, c.Re)
		}
		s := int64(r) + carry
		out = append(out, byte(s%10))
		carry = s / 10
	}
	for carry > 0 {
		out = append(out, byte(carry%10))
		carry /= 10
	}

	top := len(out) - 1
	for top > 0 && out[top] == 0 {
		top--
	}
	var b strings.Builder
	b.Grow(top + 1)
	for i := top; i >= 0; i-- {
		b.WriteByte(digits.Char(out[i]))
	}
	return b.String(), nil
}

// load writes the digits of s into seq, least significant first.
func load(seq []complexnum.Complex, s string, order Order) error {
	if s == "" {
		return apperrors.NewArithmeticError("dft.Multiply", apperrors.ErrMalformedInput, s, "no digits")
	}
	for i := 0; i < len(s); i++ {
		d, ok := digits.Parse(s[i])
		if !ok {
			return apperrors.NewArithmeticError("dft.Multiply", apperrors.ErrMalformedInput, s, "unexpected character %q", s[i])
		}
		pos := i
		if order == Descending {
			pos = len(s) - 1 - i
		}
		seq[pos] = complexnum.Real(float64(d))
	}
	return nil
}
