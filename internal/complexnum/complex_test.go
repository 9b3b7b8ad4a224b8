package complexnum

import (
	"errors"
	"math"
	"testing"

	apperrors "github.com/agbru/decicalc/internal/errors"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestArithmetic(t *testing.T) {
	t.Parallel()
	a, b := New(1, 2), New(3, -4)
	tests := []struct {
		name string
		got  Complex
		want Complex
	}{
		{"add", a.Add(b), New(4, -2)},
		{"sub", a.Sub(b), New(-2, 6)},
		{"mul", a.Mul(b), New(11, 2)},
		{"scale", a.Scale(0.5), New(0.5, 1)},
		{"conj", b.Conj(), New(3, 4)},
		{"expi", Expi(math.Pi / 2), New(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if !tt.got.Equal(tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestDiv(t *testing.T) {
	t.Parallel()
	q, err := New(11, 2).Div(New(3, -4))
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equal(New(1, 2)) {
		t.Errorf("(11+2i)/(3-4i) = %v, want (1+2i)", q)
	}
	if _, err := New(1, 1).Div(Complex{}); !errors.Is(err, apperrors.ErrDivisionByZero) {
		t.Errorf("division by zero error = %v", err)
	}
	// Tiny but non-zero divisors are allowed.
	if _, err := New(1, 0).Div(New(1e-150, 0)); err != nil {
		t.Errorf("tiny divisor rejected: %v", err)
	}
}

func TestAbsAndEqual(t *testing.T) {
	t.Parallel()
	if got := New(3, 4).Abs(); got != 5 {
		t.Errorf("|3+4i| = %v, want 5", got)
	}
	if !New(1, 1).Equal(New(1+Tolerance/2, 1-Tolerance/2)) {
		t.Error("values within tolerance should be equal")
	}
	if New(1, 1).Equal(New(1+2*Tolerance, 1)) {
		t.Error("values outside tolerance should differ")
	}
	if s := New(1, -2).String(); s != "(1-2i)" {
		t.Errorf("String = %q", s)
	}
}

func TestDivInvertsMul_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	component := gen.Float64Range(-1000, 1000)

	properties.Property("(a*b)/b == a", prop.ForAll(
		func(ar, ai, br, bi float64) bool {
			b := New(br, bi)
			if b.Abs() < 1e-3 {
				return true
			}
			a := New(ar, ai)
			q, err := a.Mul(b).Div(b)
			return err == nil && q.Equal(a)
		},
		component, component, component, component,
	))
	properties.TestingRun(t)
}
