package multiply

import (
	"context"
	"fmt"
	"math/big"
	"slices"

	"github.com/govalues/decimal"

	"github.com/agbru/decicalc/internal/bignum"
	"github.com/agbru/decicalc/internal/dft"
	"github.com/agbru/decicalc/internal/fixed"
)

// scaled multiplies the unsigned mantissas of a and b with mul and puts the
// decimal point back.
func scaled(a, b fixed.Decimal, mul func(x, y string) (string, error)) (fixed.Decimal, error) {
	m, err := mul(a.Mantissa(), b.Mantissa())
	if err != nil {
		return fixed.Decimal{}, err
	}
	return fixed.FromMantissa(m, a.Scale()+b.Scale(), a.IsNegative() != b.IsNegative())
}

// bignumMul adapts a bignum multiplication to mantissa text.
func bignumMul(f func(x, y bignum.Int) bignum.Int) func(x, y string) (string, error) {
	return func(x, y string) (string, error) {
		bx, err := bignum.New(x, false)
		if err != nil {
			return "", err
		}
		by, err := bignum.New(y, false)
		if err != nil {
			return "", err
		}
		return f(bx, by).String(), nil
	}
}

// Schoolbook multiplies the mantissas with bignum long multiplication.
type Schoolbook struct{}

// Name returns "schoolbook".
func (Schoolbook) Name() string { return "schoolbook" }

// MultiplyCore implements coreMultiplier.
func (Schoolbook) MultiplyCore(_ context.Context, _ ProgressReporter, a, b fixed.Decimal, _ Options) (fixed.Decimal, error) {
	return scaled(a, b, bignumMul(bignum.Mul))
}

// Karatsuba multiplies the mantissas with bignum.Karatsuba.
type Karatsuba struct{}

// Name returns "karatsuba".
func (Karatsuba) Name() string { return "karatsuba" }

// MultiplyCore implements coreMultiplier.
func (Karatsuba) MultiplyCore(_ context.Context, _ ProgressReporter, a, b fixed.Decimal, _ Options) (fixed.Decimal, error) {
	return scaled(a, b, bignumMul(bignum.Karatsuba))
}

// Grid multiplies the decimals directly with the grid method.
type Grid struct{}

// Name returns "grid".
func (Grid) Name() string { return "grid" }

// MultiplyCore implements coreMultiplier.
func (Grid) MultiplyCore(_ context.Context, _ ProgressReporter, a, b fixed.Decimal, _ Options) (fixed.Decimal, error) {
	return fixed.Mul(a, b), nil
}

// Convolution multiplies the mantissas by DFT convolution.
type Convolution struct {
	name      string
	transform dft.Transformer
}

// Name returns the registered name.
func (c Convolution) Name() string { return c.name }

// MultiplyCore implements coreMultiplier. With Ascending order the mantissas
// are reversed before being handed to the convolution.
func (c Convolution) MultiplyCore(_ context.Context, reporter ProgressReporter, a, b fixed.Decimal, opts Options) (fixed.Decimal, error) {
	return scaled(a, b, func(x, y string) (string, error) {
		if opts.Order == dft.Ascending {
			x, y = reversed(x), reversed(y)
		}
		reporter(0.1)
		return dft.MultiplyWith(c.transform, x, y, opts.Order)
	})
}

func reversed(s string) string {
	b := []byte(s)
	slices.Reverse(b)
	return string(b)
}

// MathBig multiplies the mantissas with math/big, as a reference.
type MathBig struct{}

// Name returns "mathbig".
func (MathBig) Name() string { return "mathbig" }

// MultiplyCore implements coreMultiplier.
func (MathBig) MultiplyCore(_ context.Context, _ ProgressReporter, a, b fixed.Decimal, _ Options) (fixed.Decimal, error) {
	return scaled(a, b, func(x, y string) (string, error) {
		bx, ok := new(big.Int).SetString(x, 10)
		if !ok {
			return "", fmt.Errorf("mathbig: invalid mantissa %q", x)
		}
		by, ok := new(big.Int).SetString(y, 10)
		if !ok {
			return "", fmt.Errorf("mathbig: invalid mantissa %q", y)
		}
		return bx.Mul(bx, by).String(), nil
	})
}

// FixedPoint multiplies with github.com/govalues/decimal, a 19-digit decimal
// type. Products that may not fit its coefficient are reported as
// ErrUnsupported instead of being rounded.
type FixedPoint struct{}

// Name returns "govalues".
func (FixedPoint) Name() string { return "govalues" }

// MultiplyCore implements coreMultiplier.
func (FixedPoint) MultiplyCore(_ context.Context, _ ProgressReporter, a, b fixed.Decimal, _ Options) (fixed.Decimal, error) {
	if len(a.Mantissa())+len(b.Mantissa()) > decimal.MaxPrec {
		return fixed.Decimal{}, fmt.Errorf("govalues: %d+%d digits exceed %d: %w",
			len(a.Mantissa()), len(b.Mantissa()), decimal.MaxPrec, ErrUnsupported)
	}
	x, err := decimal.Parse(a.String())
	if err != nil {
		return fixed.Decimal{}, err
	}
	y, err := decimal.Parse(b.String())
	if err != nil {
		return fixed.Decimal{}, err
	}
	p, err := x.Mul(y)
	if err != nil {
		return fixed.Decimal{}, err
	}
	return fixed.Parse(p.String())
}
