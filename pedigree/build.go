// SPDX-License-Identifier: MIT

package pedigree

import (
	"fmt"

	"github.com/katalvlaran/breedlab/matrix"
)

// half is the transmission probability of a gene from parent to offspring.
const half = 0.5

// Build computes A and F for an ordered pedigree (parents before offspring).
//
// Implementation:
//   - Stage 1: Optionally Sort; index IDs (a repeated ID maps to its last
//     occurrence); in strict mode reject duplicates and out-of-order parents.
//   - Stage 2: For each animal i, resolve parents to indices < i (founder otherwise),
//     set F_i and A[i][i], then fill row/column i against all j < i.
//
// Errors:
//   - ErrEmptyPedigree, ErrEmptyID.
//   - ErrDuplicateID, ErrParentAfterOffspring (WithStrictOrder only).
//   - ErrDuplicateID, ErrCycle (WithSort only).
//
// Determinism:
//   - Fixed i→j order; identical pedigrees produce bit-identical matrices.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Build(ped []Record, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	n := len(ped)
	if n == 0 {
		return nil, ErrEmptyPedigree
	}
	if o.Sort {
		sorted, err := Sort(ped)
		if err != nil {
			return nil, err
		}
		ped = sorted
	}

	// Stage 1: index identifiers.
	ids := make([]string, n)
	index := make(map[string]int, n)
	for i, rec := range ped {
		if rec.ID == "" {
			return nil, fmt.Errorf("record %d: %w", i, ErrEmptyID)
		}
		if _, dup := index[rec.ID]; dup && o.StrictOrder {
			return nil, fmt.Errorf("record %d (%s): %w", i, rec.ID, ErrDuplicateID)
		}
		ids[i] = rec.ID
		index[rec.ID] = i
	}
	if o.StrictOrder {
		if err := validateOrder(ped, index); err != nil {
			return nil, err
		}
	}

	A, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("pedigree: %w", err)
	}
	F := make([]float64, n)
	res := &Result{IDs: ids, A: A, F: F, index: index}
	if o.Trace {
		res.Trace = make([]Step, 0, n)
	}

	// Stage 2: tabular recursion. A is filled through Set on indices already
	// known to be in range, so errors cannot occur and are discarded.
	var (
		i, j            int
		s, d            int
		sd, vs, vd, aij float64
		sireID, damID   string
	)
	for i = 0; i < n; i++ {
		sireID, damID = ped[i].Sire, ped[i].Dam
		s = resolve(index, sireID, i)
		d = resolve(index, damID, i)

		sd = 0
		if s != founder && d != founder {
			sd, _ = A.At(s, d)
			F[i] = half * sd
		}
		_ = A.Set(i, i, 1+F[i])
		if o.Trace {
			res.Trace = append(res.Trace, Step{
				Kind: StepDiagonal, Animal: ids[i], Sire: sireID, Dam: damID,
				SireTerm: sd, F: F[i], Value: 1 + F[i],
			})
		}

		for j = 0; j < i; j++ {
			vs, vd = 0, 0
			if s != founder {
				vs, _ = A.At(j, s)
			}
			if d != founder {
				vd, _ = A.At(j, d)
			}
			aij = half * (vs + vd)
			_ = A.Set(i, j, aij)
			_ = A.Set(j, i, aij)

			if o.Trace && aij != 0 {
				res.Trace = append(res.Trace, Step{
					Kind: StepOffDiagonal, Animal: ids[i], Other: ids[j], Sire: sireID, Dam: damID,
					SireTerm: vs, DamTerm: vd, Value: aij,
				})
			}
		}
	}

	return res, nil
}

// resolve maps a parent ID to its matrix index, or founder when the ID is
// empty, unknown, or not strictly earlier than the offspring at position i.
func resolve(index map[string]int, id string, i int) int {
	if id == "" {
		return founder
	}
	idx, ok := index[id]
	if !ok || idx >= i {
		return founder
	}
	return idx
}

// validateOrder enforces parents-before-offspring for parents that appear in
// the pedigree. Parents absent from the pedigree remain implicit founders.
func validateOrder(ped []Record, index map[string]int) error {
	for i, rec := range ped {
		for _, p := range [2]string{rec.Sire, rec.Dam} {
			if p == "" {
				continue
			}
			if idx, ok := index[p]; ok && idx >= i {
				return fmt.Errorf("record %d (%s) references %s at %d: %w", i, rec.ID, p, idx, ErrParentAfterOffspring)
			}
		}
	}
	return nil
}
