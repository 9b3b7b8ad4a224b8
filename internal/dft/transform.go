package dft

import (
	"math"
	"math/bits"

	"github.com/agbru/decicalc/internal/complexnum"
)

// Transform returns the discrete Fourier transform of x, evaluated directly:
//
//	X[k] = Σ x[n]·e^(-2πi·k·n/N)
func Transform(x []complexnum.Complex) []complexnum.Complex {
	return direct(x, -1)
}

// Inverse returns the inverse discrete Fourier transform of X:
//
//	x[n] = (1/N)·Σ X[k]·e^(2πi·k·n/N)
func Inverse(X []complexnum.Complex) []complexnum.Complex {
	out := direct(X, 1)
	scale(out)
	return out
}

func direct(x []complexnum.Complex, sign float64) []complexnum.Complex {
	n := len(x)
	out := make([]complexnum.Complex, n)
	for k := 0; k < n; k++ {
		var acc complexnum.Complex
		for j := 0; j < n; j++ {
			a := 2 * math.Pi * float64(k) * float64(j) / float64(n)
			acc = acc.Add(x[j].Mul(complexnum.Expi(sign * a)))
		}
		out[k] = acc
	}
	return out
}

func scale(x []complexnum.Complex) {
	if len(x) == 0 {
		return
	}
	f := 1 / float64(len(x))
	for i := range x {
		x[i] = x[i].Scale(f)
	}
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// nextPowerOfTwo returns the smallest power of two >= n (1 for n <= 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
