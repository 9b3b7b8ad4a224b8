// Package complexnum provides the small complex-number type used as the
// coefficient domain of the discrete Fourier transform.
package complexnum

import (
	"math"
	"math/cmplx"
	"strconv"

	apperrors "github.com/agbru/decicalc/internal/errors"
)

// Tolerance is the largest per-component difference for which two values
// are considered equal.
const Tolerance = 1e-6

// Complex is a complex number with float64 components.
type Complex struct {
	Re, Im float64
}

// New returns re + im·i.
func New(re, im float64) Complex { return Complex{Re: re, Im: im} }

// Real returns re + 0i.
func Real(re float64) Complex { return Complex{Re: re} }

// Expi returns the unit rotation cos(theta) + i·sin(theta).
func Expi(theta float64) Complex {
	s, c := math.Sincos(theta)
	return Complex{Re: c, Im: s}
}

// Add returns a + b.
func (a Complex) Add(b Complex) Complex { return Complex{a.Re + b.Re, a.Im + b.Im} }

// Sub returns a - b.
func (a Complex) Sub(b Complex) Complex { return Complex{a.Re - b.Re, a.Im - b.Im} }

// Mul returns a * b.
func (a Complex) Mul(b Complex) Complex {
	return Complex{a.Re*b.Re - a.Im*b.Im, a.Re*b.Im + a.Im*b.Re}
}

// Scale returns f * a.
func (a Complex) Scale(f float64) Complex { return Complex{f * a.Re, f * a.Im} }

// Conj returns the complex conjugate of a.
func (a Complex) Conj() Complex { return Complex{a.Re, -a.Im} }

// Div returns a / b. It fails with ErrDivisionByZero only when the squared
// magnitude of b is exactly zero.
func (a Complex) Div(b Complex) (Complex, error) {
	den := b.Re*b.Re + b.Im*b.Im
	if den == 0 {
		return Complex{}, apperrors.NewArithmeticError("complexnum.Div", apperrors.ErrDivisionByZero, b.String(), "divisor has zero magnitude")
	}
	num := a.Mul(b.Conj())
	return Complex{num.Re / den, num.Im / den}, nil
}

// Abs returns the Euclidean norm of a.
func (a Complex) Abs() float64 { return cmplx.Abs(complex(a.Re, a.Im)) }

// Equal reports whether both components differ by less than Tolerance.
func (a Complex) Equal(b Complex) bool {
	return math.Abs(a.Re-b.Re) < Tolerance && math.Abs(a.Im-b.Im) < Tolerance
}

// String formats a as "(re+imi)".
func (a Complex) String() string {
	return strconv.FormatComplex(complex(a.Re, a.Im), 'g', -1, 128)
}
