// SPDX-License-Identifier: MIT

package mme

import (
	"errors"

	"github.com/katalvlaran/breedlab/matrix"
)

var (
	// ErrStructural marks input whose shape is unusable regardless of its values.
	ErrStructural = errors.New("mme: structural input error")

	// ErrNumerical marks input whose values make the system unsolvable.
	ErrNumerical = errors.New("mme: numerical error")

	// ErrNoObservations is returned when no usable phenotype is supplied.
	ErrNoObservations = errors.New("mme: no observations")

	// ErrUnknownAnimal is returned when an observation names an animal absent
	// from the relationship matrix index space.
	ErrUnknownAnimal = errors.New("mme: unknown animal")

	// ErrNonPositiveVariance is returned when σ²e or σ²a is ≤ 0 or not finite.
	ErrNonPositiveVariance = errors.New("mme: variance components must be positive and finite")
)

// Observation is one phenotypic record: its value, the fixed-effect level it
// belongs to (e.g. herd or contemporary group) and the animal that produced it.
// A NaN Value marks a missing record; BuildDesign drops it.
type Observation struct {
	Value  float64
	Group  string
	Animal string
}

// Design is the incidence structure of one evaluation run.
type Design struct {
	// Y holds the phenotypes in observation order.
	Y []float64
	// X is n_obs×p, one column per fixed-effect level.
	X *matrix.Dense
	// Z is n_obs×q, one column per animal of the relationship matrix.
	Z *matrix.Dense
	// Levels names the columns of X, sorted lexicographically.
	Levels []string
}

// Solution is the outcome of one MME solve. LHS, RHS and AInv are retained
// for audit and explanation; they are not reused by later calls.
type Solution struct {
	// Fixed holds BLUE, one per column of X.
	Fixed []float64
	// Breeding holds BLUP, one per column of Z (animal index order).
	Breeding []float64
	// LHS is the (p+q)×(p+q) coefficient matrix; RHS the right-hand side.
	LHS *matrix.Dense
	RHS []float64
	// AInv is the inverse relationship matrix used in the penalty block.
	AInv *matrix.Dense
	// Alpha is the variance ratio σ²e/σ²a.
	Alpha float64
	// Cond is the 2-norm condition number of LHS.
	Cond float64
	// Reliability holds r² = 1 − PEV/σ²a per animal, clamped into [0, 1].
	Reliability []float64
}
