// SPDX-License-Identifier: MIT

package breeding

import (
	"fmt"
	"math"
)

// Validate reports the first parameter outside its domain, wrapped in
// ErrInvalidParams. Seed is unrestricted.
func (p Params) Validate() error {
	switch {
	case !(p.H2 > 0 && p.H2 <= 1):
		return fmt.Errorf("%w: h2=%g, want 0 < h2 ≤ 1", ErrInvalidParams, p.H2)
	case !(p.Intensity >= 0) || math.IsInf(p.Intensity, 1):
		return fmt.Errorf("%w: intensity=%g, want finite i ≥ 0", ErrInvalidParams, p.Intensity)
	case !(p.GenInterval > 0) || math.IsInf(p.GenInterval, 1):
		return fmt.Errorf("%w: genInterval=%g, want > 0", ErrInvalidParams, p.GenInterval)
	case p.PopSize < 4:
		return fmt.Errorf("%w: popSize=%d, want ≥ 4", ErrInvalidParams, p.PopSize)
	case p.NGenerations < 1:
		return fmt.Errorf("%w: nGenerations=%d, want ≥ 1", ErrInvalidParams, p.NGenerations)
	case math.IsNaN(p.InitMean) || math.IsInf(p.InitMean, 0):
		return fmt.Errorf("%w: initMean=%g, want finite", ErrInvalidParams, p.InitMean)
	case !(p.PhenoVar > 0) || math.IsInf(p.PhenoVar, 1):
		return fmt.Errorf("%w: phenoVar=%g, want > 0", ErrInvalidParams, p.PhenoVar)
	case !p.Strategy.valid():
		return fmt.Errorf("%w: %w %d", ErrInvalidParams, ErrUnknownStrategy, int(p.Strategy))
	}

	return nil
}
