package bignum

import (
	"github.com/agbru/decicalc/internal/digits"
	apperrors "github.com/agbru/decicalc/internal/errors"
)

// signPair is the dispatch key for sign-dependent operations.
type signPair struct{ a, b Sign }

func signs(a, b Int) signPair { return signPair{a.sign, b.sign} }

// productSign is Negative iff exactly one factor is negative.
func productSign(a, b Int) Sign {
	if a.sign != b.sign {
		return Negative
	}
	return Positive
}

// Add returns a + b.
func Add(a, b Int) Int {
	switch signs(a, b) {
	case signPair{Positive, Negative}:
		return Sub(a, b.Neg())
	case signPair{Negative, Positive}:
		return Sub(b, a.Neg())
	case signPair{Negative, Negative}:
		return Add(a.Neg(), b.Neg()).Neg()
	}
	return fromOwned(addMag(a.mag(), b.mag()), Positive)
}

// Sub returns a - b. Two positive operands are subtracted with the ten's
// complement of b; every other sign combination is rewritten in terms of Add
// or a positive Sub.
//
// Sub panics with an ArithmeticError of kind ErrInternalInvariant if the
// complement sum lacks the expected leading digit. That cannot happen for
// well-formed values and indicates a bug.
func Sub(a, b Int) Int {
	switch signs(a, b) {
	case signPair{Positive, Negative}:
		return Add(a, b.Neg())
	case signPair{Negative, Positive}:
		return Add(a.Neg(), b).Neg()
	case signPair{Negative, Negative}:
		return Sub(a.Neg(), b.Neg()).Neg()
	}

	bm := b.mag()
	width := len(bm)
	complement := trim(addOne(ninesComplement(bm)))
	sum := trim(addMag(a.mag(), complement))

	// a >= b exactly when the sum reaches 10^width.
	if len(sum) > width {
		ds, err := subtractTenPower(sum, width)
		if err != nil {
			panic(err)
		}
		return fromOwned(ds, Positive)
	}
	padded := make([]byte, width)
	copy(padded, sum)
	return fromOwned(addOne(ninesComplement(padded)), Negative)
}

// MulDigit multiplies two single-digit values.
//
// Returns:
//   - Int: The product, negative iff exactly one operand is negative.
//   - error: ErrInvalidOperandShape if either operand has more than one digit.
func MulDigit(a, b Int) (Int, error) {
	if a.Len() != 1 || b.Len() != 1 {
		return Int{}, apperrors.NewArithmeticError("bignum.MulDigit", apperrors.ErrInvalidOperandShape,
			a.String()+"*"+b.String(), "operands must be single digits")
	}
	lo, hi := digits.Mul(a.mag()[0], b.mag()[0])
	return fromOwned([]byte{lo, hi}, productSign(a, b)), nil
}

// Mul returns a * b using long multiplication, one shifted row per digit of b.
func Mul(a, b Int) Int {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	x, y := a.mag(), b.mag()
	acc := []byte{0}
	for shift, d := range y {
		if d == 0 {
			continue
		}
		row := make([]byte, shift, shift+len(x)+1)
		row = append(row, mulRow(x, d)...)
		acc = addMag(acc, row)
	}
	return fromOwned(acc, productSign(a, b))
}

// karatsubaThreshold is the operand length below which Karatsuba falls back
// to long multiplication.
const karatsubaThreshold = 16

// Karatsuba returns a * b by recursively splitting the operands with
// DecimalDecompose: three half-size products replace four.
func Karatsuba(a, b Int) Int {
	return karatsuba(a.Abs(), b.Abs(), karatsubaThreshold).withSign(productSign(a, b))
}

func karatsuba(x, y Int, threshold int) Int {
	if x.Len() < threshold || y.Len() < threshold {
		return Mul(x, y)
	}
	m := uint(max(x.Len(), y.Len()) / 2)
	x0, x1 := x.DecimalDecompose(m)
	y0, y1 := y.DecimalDecompose(m)

	z0 := karatsuba(x0, y0, threshold)
	z2 := karatsuba(x1, y1, threshold)
	z1 := Sub(Sub(karatsuba(Add(x0, x1), Add(y0, y1), threshold), z2), z0)

	return Add(Add(z2.MulPow10(2*m), z1.MulPow10(m)), z0)
}

func (x Int) withSign(s Sign) Int {
	return fromOwned(x.digits, s)
}

// addMag adds two magnitudes digit by digit through the addition table.
func addMag(x, y []byte) []byte {
	n := max(len(x), len(y))
	out := make([]byte, 0, n+1)
	var carry byte
	for i := 0; i < n; i++ {
		var d byte
		d, carry = digits.Add(at(x, i), at(y, i), carry)
		out = append(out, d)
	}
	if carry != 0 {
		out = append(out, carry)
	}
	return out
}

// mulRow multiplies a magnitude by a single digit.
func mulRow(x []byte, d byte) []byte {
	out := make([]byte, 0, len(x)+1)
	var carry byte
	for _, xd := range x {
		lo, hi := digits.Mul(xd, d)
		digit, c := digits.Add(lo, carry, 0)
		carry, _ = digits.Add(hi, c, 0)
		out = append(out, digit)
	}
	if carry != 0 {
		out = append(out, carry)
	}
	return out
}

func at(ds []byte, i int) byte {
	if i < len(ds) {
		return ds[i]
	}
	return 0
}

// ninesComplement replaces every digit d with 9-d.
func ninesComplement(ds []byte) []byte {
	out := make([]byte, len(ds))
	for i, d := range ds {
		out[i] = digits.Nines(d)
	}
	return out
}

// addOne increments a magnitude. An all-nines input grows by one digit.
func addOne(ds []byte) []byte {
	out := make([]byte, len(ds), len(ds)+1)
	carry := byte(1)
	for i, d := range ds {
		if carry == 0 {
			out[i] = d
			continue
		}
		out[i], carry = digits.Inc(d)
	}
	if carry != 0 {
		out = append(out, carry)
	}
	return out
}

// subtractTenPower returns ds - 10^power. The digits from position power up
// must hold a non-zero digit to borrow from.
func subtractTenPower(ds []byte, power int) ([]byte, error) {
	for i := power; i < len(ds); i++ {
		if ds[i] == 0 {
			continue
		}
		out := make([]byte, len(ds))
		copy(out, ds)
		for j := power; j < i; j++ {
			out[j] = digits.Max
		}
		out[i], _ = digits.Dec(ds[i])
		return out, nil
	}
	return nil, apperrors.NewArithmeticError("bignum.subtractTenPower", apperrors.ErrInternalInvariant,
		fromOwned(append([]byte(nil), ds...), Positive).String(), "no non-zero digit at or above 10^%d", power)
}
