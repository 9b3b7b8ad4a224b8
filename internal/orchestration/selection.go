package orchestration

import (
	"github.com/agbru/decicalc/internal/config"
	"github.com/agbru/decicalc/internal/multiply"
)

// SelectMultipliers returns the multipliers named by cfg.Algo, in sorted
// order for "all" and in the given order otherwise. Unknown names are
// dropped; Validate has rejected them already.
func SelectMultipliers(cfg config.AppConfig, factory multiply.Factory) []multiply.Multiplier {
	names := cfg.Algorithms(factory.List())
	multipliers := make([]multiply.Multiplier, 0, len(names))
	for _, name := range names {
		if m, err := factory.Get(name); err == nil {
			multipliers = append(multipliers, m)
		}
	}
	return multipliers
}
