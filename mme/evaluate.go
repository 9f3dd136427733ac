// SPDX-License-Identifier: MIT

package mme

import (
	"fmt"

	"github.com/katalvlaran/breedlab/pedigree"
)

// Evaluation bundles a full pedigree-based evaluation: the relationship
// matrix it used, the design built from the observations and the solution.
type Evaluation struct {
	Pedigree *pedigree.Result
	Design   *Design
	Solution *Solution
}

// EBV returns the predicted breeding value of id.
func (e *Evaluation) EBV(id string) (float64, bool) {
	i, ok := e.Pedigree.Index(id)
	if !ok {
		return 0, false
	}
	return e.Solution.Breeding[i], true
}

// Reliability returns the reliability of the prediction for id.
func (e *Evaluation) Reliability(id string) (float64, bool) {
	i, ok := e.Pedigree.Index(id)
	if !ok {
		return 0, false
	}
	return e.Solution.Reliability[i], true
}

// Evaluate builds A from ped, the design from obs, and solves the MME.
// Pedigree options (e.g. pedigree.WithStrictOrder) are forwarded to
// pedigree.Build. Pedigree errors are reported as ErrStructural.
func Evaluate(ped []pedigree.Record, obs []Observation, sigmaE2, sigmaA2 float64, opts ...pedigree.Option) (*Evaluation, error) {
	rel, err := pedigree.Build(ped, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStructural, err)
	}
	d, err := BuildDesign(obs, rel.IDs)
	if err != nil {
		return nil, err
	}
	sol, err := Solve(d.Y, d.X, d.Z, rel.A, sigmaE2, sigmaA2)
	if err != nil {
		return nil, err
	}

	return &Evaluation{Pedigree: rel, Design: d, Solution: sol}, nil
}
