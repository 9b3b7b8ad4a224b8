package dft

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/agbru/decicalc/internal/complexnum"
	apperrors "github.com/agbru/decicalc/internal/errors"
)

func reverse(s string) string {
	b := []byte(s)
	slices.Reverse(b)
	return string(b)
}

func TestMultiply(t *testing.T) {
	t.Parallel()
	tests := []struct{ x, y, want string }{
		{"0", "0", "0"},
		{"0", "12345", "0"},
		{"1", "1", "1"},
		{"9", "9", "81"},
		{"12", "34", "408"},
		{"99", "99", "9801"},
		{"007", "3", "21"},
		{"12345678", "87654321", "1082152022374638"},
		{"99999999", "99999999", "9999999800000001"},
	}
	for _, tt := range tests {
		t.Run(tt.x+"*"+tt.y, func(t *testing.T) {
			t.Parallel()
			got, err := Multiply(tt.x, tt.y, Descending)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("%s * %s = %s, want %s", tt.x, tt.y, got, tt.want)
			}
			got, err = MultiplyWith(Direct, reverse(tt.x), reverse(tt.y), Ascending)
			if err != nil {
				t.Fatalf("ascending: %v", err)
			}
			if got != tt.want {
				t.Errorf("ascending: %s * %s = %s, want %s", tt.x, tt.y, got, tt.want)
			}
			got, err = Multiply(tt.y, tt.x, Descending)
			if err != nil {
				t.Fatalf("swapped: %v", err)
			}
			if got != tt.want {
				t.Errorf("swapped: %s * %s = %s, want %s", tt.y, tt.x, got, tt.want)
			}
		})
	}
}

// TestMultiplyRandom mirrors the original acceptance run: random operands
// below 10^8 in a random digit order must give the exact product.
func TestMultiplyRandom(t *testing.T) {
	t.Parallel()
	r := rand.New(rand.NewPCG(42, 0))
	for i := 0; i < 300; i++ {
		a, b := r.Int64N(100_000_000-1)+1, r.Int64N(100_000_000-1)+1
		x, y := strconv.FormatInt(a, 10), strconv.FormatInt(b, 10)
		order := Descending
		if r.IntN(2) == 1 {
			order = Ascending
			x, y = reverse(x), reverse(y)
		}
		got, err := Multiply(x, y, order)
		if err != nil {
			t.Fatalf("Multiply(%d, %d): %v", a, b, err)
		}
		if want := strconv.FormatInt(a*b, 10); got != want {
			t.Fatalf("Multiply(%d, %d, %s) = %s, want %s", a, b, order, got, want)
		}
		swapped, err := Multiply(y, x, order)
		if err != nil {
			t.Fatalf("Multiply(%d, %d): %v", b, a, err)
		}
		if swapped != got {
			t.Fatalf("Multiply(%d, %d, %s) = %s, but swapped operands give %s", a, b, order, got, swapped)
		}
	}
}

func TestMultiplyCommutes_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 40
	properties := gopter.NewProperties(parameters)

	digitString := gen.SliceOfN(60, gen.IntRange(0, 9)).Map(func(ds []int) string {
		b := make([]byte, len(ds))
		for i, d := range ds {
			b[i] = byte('0' + d)
		}
		return string(b)
	})
	properties.Property("operand order does not change the product", prop.ForAll(
		func(x, y string, xLen, yLen int, asc bool) bool {
			x, y = x[:xLen], y[:yLen]
			order := Descending
			if asc {
				order = Ascending
			}
			xy, err1 := Multiply(x, y, order)
			yx, err2 := Multiply(y, x, order)
			return err1 == nil && err2 == nil && xy == yx
		},
		digitString, digitString, gen.IntRange(1, 60), gen.IntRange(1, 60), gen.Bool(),
	))
	properties.Property("all-nines operand commutes", prop.ForAll(
		func(n int, y string) bool {
			nines := strings.Repeat("9", n)
			a, err1 := Multiply(nines, y, Descending)
			b, err2 := Multiply(y, nines, Descending)
			return err1 == nil && err2 == nil && a == b
		},
		gen.IntRange(1, 80), digitString,
	))
	properties.TestingRun(t)
}

func TestMultiplyMalformed(t *testing.T) {
	t.Parallel()
	for _, in := range [][2]string{{"", "1"}, {"1", ""}, {"12a", "3"}, {"-1", "2"}, {"1.5", "2"}} {
		if _, err := Multiply(in[0], in[1], Descending); !errors.Is(err, apperrors.ErrMalformedInput) {
			t.Errorf("Multiply(%q, %q) error = %v, want ErrMalformedInput", in[0], in[1], err)
		}
	}
}

func TestMultiplyPrecisionLoss(t *testing.T) {
	t.Parallel()
	noisy := Transformer{
		Name:    "noisy",
		Forward: Transform,
		Inverse: func(X []complexnum.Complex) []complexnum.Complex {
			out := Inverse(X)
			out[0] = out[0].Add(complexnum.Real(0.4))
			return out
		},
	}
	if _, err := MultiplyWith(noisy, "3", "3", Descending); !errors.Is(err, apperrors.ErrPrecisionLoss) {
		t.Errorf("error = %v, want ErrPrecisionLoss", err)
	}
}

func TestParseOrder(t *testing.T) {
	t.Parallel()
	for in, want := range map[string]Order{"desc": Descending, "ASC": Ascending, "": Descending, "ascending": Ascending} {
		got, err := ParseOrder(in)
		if err != nil || got != want {
			t.Errorf("ParseOrder(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseOrder("sideways"); err == nil {
		t.Error("ParseOrder(sideways) should fail")
	}
}

func TestSequencePoolReturnsZeroed(t *testing.T) {
	s := acquireSequence(8)
	for i := range s {
		s[i] = complexnum.Real(float64(i + 1))
	}
	releaseSequence(s)
	again := acquireSequence(8)
	for i, c := range again {
		if c != (complexnum.Complex{}) {
			t.Fatalf("pooled sequence not cleared at %d: %v", i, c)
		}
	}
	if sizeClass(1<<(maxPooledClass+1)) != -1 {
		t.Error("oversized sequences must not be pooled")
	}
}
