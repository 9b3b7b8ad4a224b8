//go:build gmp

// The gmp reference multiplier is compiled only with the "gmp" build tag,
// because it needs libgmp at link time:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp

package multiply

import (
	"context"
	"fmt"

	"github.com/ncw/gmp"

	"github.com/agbru/decicalc/internal/fixed"
)

func init() {
	_ = RegisterMultiplier("gmp", func() coreMultiplier { return GMP{} })
}

// GMP multiplies the mantissas with libgmp.
type GMP struct{}

// Name returns "gmp".
func (GMP) Name() string { return "gmp" }

// MultiplyCore implements coreMultiplier.
func (GMP) MultiplyCore(_ context.Context, _ ProgressReporter, a, b fixed.Decimal, _ Options) (fixed.Decimal, error) {
	return scaled(a, b, func(x, y string) (string, error) {
		gx, ok := gmp.NewInt(0).SetString(x, 10)
		if !ok {
			return "", fmt.Errorf("gmp: invalid mantissa %q", x)
		}
		gy, ok := gmp.NewInt(0).SetString(y, 10)
		if !ok {
			return "", fmt.Errorf("gmp: invalid mantissa %q", y)
		}
		return gx.Mul(gx, gy).String(), nil
	})
}
