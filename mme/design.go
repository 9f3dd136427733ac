// SPDX-License-Identifier: MIT

package mme

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/breedlab/matrix"
)

// BuildDesign turns an observation table into y, X and Z.
// ids is the animal index space of the relationship matrix (pedigree order).
// Records with a NaN value are skipped; fixed-effect levels are the distinct
// Group labels of the kept records, sorted.
//
// Errors: ErrStructural wrapping ErrNoObservations or ErrUnknownAnimal.
// Complexity: O(n_obs·(p+q)) for the dense incidence matrices.
func BuildDesign(obs []Observation, ids []string) (*Design, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: empty animal index", ErrStructural)
	}
	animal := make(map[string]int, len(ids))
	for i, id := range ids {
		animal[id] = i
	}

	kept := make([]Observation, 0, len(obs))
	seen := make(map[string]struct{})
	for _, o := range obs {
		if math.IsNaN(o.Value) {
			continue
		}
		if _, ok := animal[o.Animal]; !ok {
			return nil, fmt.Errorf("%w: %w %q", ErrStructural, ErrUnknownAnimal, o.Animal)
		}
		kept = append(kept, o)
		seen[o.Group] = struct{}{}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrStructural, ErrNoObservations)
	}

	levels := make([]string, 0, len(seen))
	for g := range seen {
		levels = append(levels, g)
	}
	sort.Strings(levels)
	level := make(map[string]int, len(levels))
	for i, g := range levels {
		level[g] = i
	}

	n := len(kept)
	X, err := matrix.NewDense(n, len(levels))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	Z, err := matrix.NewDense(n, len(ids))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	y := make([]float64, n)
	for r, o := range kept {
		y[r] = o.Value
		_ = X.Set(r, level[o.Group], 1)
		_ = Z.Set(r, animal[o.Animal], 1)
	}

	return &Design{Y: y, X: X, Z: Z, Levels: levels}, nil
}
