// SPDX-License-Identifier: MIT

package pedigree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/breedlab/matrix"
)

var (
	// ErrEmptyPedigree is returned when Build receives no records.
	ErrEmptyPedigree = errors.New("pedigree: empty pedigree")

	// ErrEmptyID is returned when a record carries an empty identifier.
	ErrEmptyID = errors.New("pedigree: empty animal id")

	// ErrDuplicateID is returned in strict mode when an identifier repeats.
	ErrDuplicateID = errors.New("pedigree: duplicate animal id")

	// ErrParentAfterOffspring is returned in strict mode when a parent is listed
	// after (or is) its offspring.
	ErrParentAfterOffspring = errors.New("pedigree: parent listed after offspring")
)

// founder is the sentinel index of an unknown parent.
const founder = -1

// Record is one animal in an ordered pedigree. Empty Sire/Dam means unknown.
type Record struct {
	ID         string
	Sire       string
	Dam        string
	Generation int
}

// StepKind labels a derivation step.
type StepKind int

const (
	// StepDiagonal records the computation of A[i][i] = 1 + F_i.
	StepDiagonal StepKind = iota
	// StepOffDiagonal records A[i][j] = ½(A[j][sire] + A[j][dam]).
	StepOffDiagonal
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	if k == StepDiagonal {
		return "diagonal"
	}
	return "offdiag"
}

// MarshalText implements encoding.TextMarshaler so traces serialize by name.
func (k StepKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *StepKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "diagonal":
		*k = StepDiagonal
	case "offdiag":
		*k = StepOffDiagonal
	default:
		return fmt.Errorf("pedigree: unknown step kind %q", b)
	}
	return nil
}

// Step is one derivation step of the tabular method, kept for explanatory
// rendering. It never influences the returned matrix.
type Step struct {
	Kind StepKind
	// Animal is the row being filled (i); Other is the column (j) for off-diagonal steps.
	Animal string
	Other  string
	// Sire and Dam are the recorded parent IDs of Animal ("" when unknown).
	Sire string
	Dam  string
	// SireTerm and DamTerm are the two summands read from earlier rows
	// (A[j][sire], A[j][dam] off-diagonal; A[sire][dam] and 0 on the diagonal).
	SireTerm float64
	DamTerm  float64
	// F is the inbreeding coefficient of Animal (diagonal steps only).
	F float64
	// Value is the resulting matrix entry.
	Value float64
}

// Result holds the relationship matrix and its by-products.
// A is owned by the caller; Build never touches it again.
type Result struct {
	// IDs lists animals in matrix index order (pedigree order).
	IDs []string
	// A is the n×n additive relationship matrix.
	A *matrix.Dense
	// F holds one inbreeding coefficient per animal, aligned with IDs.
	F []float64
	// Trace is populated only with WithTrace().
	Trace []Step

	index map[string]int
}

// Index returns the matrix index of id.
func (r *Result) Index(id string) (int, bool) {
	i, ok := r.index[id]
	return i, ok
}

// Relationship returns A[id1][id2], or false when either ID is unknown.
func (r *Result) Relationship(id1, id2 string) (float64, bool) {
	i, ok := r.index[id1]
	if !ok {
		return 0, false
	}
	j, ok := r.index[id2]
	if !ok {
		return 0, false
	}
	v, _ := r.A.At(i, j)
	return v, true
}

// Inverse returns A⁻¹, the penalty block used by the mixed-model equations.
// Complexity: O(n³).
func (r *Result) Inverse() (*matrix.Dense, error) {
	return matrix.Inverse(r.A)
}

// Option configures optional behavior of Build.
type Option func(*Options)

// Options holds configurable parameters for Build.
type Options struct {
	// Trace records every diagonal step and every non-zero off-diagonal step.
	Trace bool

	// StrictOrder rejects duplicate IDs and parents that are not listed
	// before their offspring. Default false keeps the silent founder fallback.
	StrictOrder bool

	// Sort reorders the pedigree with Sort before building, so the matrix
	// index follows the sorted order.
	Sort bool
}

// DefaultOptions returns Options with tracing and strict ordering disabled.
func DefaultOptions() Options {
	return Options{
		Trace:       false,
		StrictOrder: false,
		Sort:        false,
	}
}

// WithTrace returns an Option that records derivation steps.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithStrictOrder returns an Option that validates pedigree order before building.
func WithStrictOrder() Option {
	return func(o *Options) {
		o.StrictOrder = true
	}
}

// WithSort returns an Option that puts parents before offspring first.
func WithSort() Option {
	return func(o *Options) {
		o.Sort = true
	}
}
