// SPDX-License-Identifier: MIT

package breeding

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	// ErrInvalidParams is returned for any parameter outside its domain.
	ErrInvalidParams = errors.New("breeding: invalid parameters")

	// ErrUnknownStrategy is returned for an unrecognized mating strategy.
	ErrUnknownStrategy = errors.New("breeding: unknown mating strategy")
)

// None marks an unknown parent.
const None = -1

// Strategy selects how sires and dams are paired.
type Strategy int

const (
	// Random draws sire and dam independently and uniformly.
	Random Strategy = iota
	// Avoidance pairs cyclically with an offset between the two pools.
	Avoidance
	// OptimalContribution caps the number of offspring per sire.
	OptimalContribution
)

// Strategies lists every supported Strategy in declaration order.
var Strategies = []Strategy{Random, Avoidance, OptimalContribution}

// String returns the configuration tag of s.
func (s Strategy) String() string {
	switch s {
	case Random:
		return "random"
	case Avoidance:
		return "avoidance"
	case OptimalContribution:
		return "optimal"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	if !s.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strategy) UnmarshalText(b []byte) error {
	v, err := ParseStrategy(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s Strategy) valid() bool {
	return s >= Random && s <= OptimalContribution
}

// ParseStrategy accepts "random", "avoidance" and "optimal" (case-insensitive).
func ParseStrategy(tag string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "random":
		return Random, nil
	case "avoidance":
		return Avoidance, nil
	case "optimal":
		return OptimalContribution, nil
	default:
		return 0, fmt.Errorf("%w: %w %q", ErrInvalidParams, ErrUnknownStrategy, tag)
	}
}

// Params is the flat configuration of one run.
type Params struct {
	// H2 is the narrow-sense heritability, 0 < H2 ≤ 1.
	H2 float64 `json:"h2"`
	// Intensity is the selection intensity i ≥ 0.
	Intensity float64 `json:"intensity"`
	// GenInterval is the generation interval in years (> 0).
	GenInterval float64 `json:"genInterval"`
	// PopSize is the number of animals per generation (≥ 4).
	PopSize int `json:"popSize"`
	// NGenerations is the number of transitions simulated (≥ 1).
	NGenerations int `json:"nGenerations"`
	// InitMean is the founder mean breeding value.
	InitMean float64 `json:"initMean"`
	// PhenoVar is the phenotypic variance VP (> 0).
	PhenoVar float64 `json:"phenoVar"`
	// Strategy is the mating strategy.
	Strategy Strategy `json:"strategy"`
	// Seed seeds the generator; 0 selects DefaultSeed.
	Seed int64 `json:"seed"`
}

// DefaultParams returns a moderate dairy-like scenario.
func DefaultParams() Params {
	return Params{
		H2:           0.35,
		Intensity:    1.76,
		GenInterval:  5,
		PopSize:      200,
		NGenerations: 15,
		InitMean:     100,
		PhenoVar:     100,
		Strategy:     Random,
		Seed:         DefaultSeed,
	}
}

// Individual is one simulated animal. Sire and Dam hold parent IDs or None.
type Individual struct {
	ID         int     `json:"id"`
	BV         float64 `json:"bv"`
	Phenotype  float64 `json:"phenotype"`
	Sire       int     `json:"sire"`
	Dam        int     `json:"dam"`
	Inbreeding float64 `json:"inbreeding"`
}

// Generation is the population of one generation. Each snapshot handed to a
// hook owns its Individuals; the run never modifies or reads it again.
type Generation struct {
	Index       int
	Individuals []Individual
}

// GenerationSummary aggregates one generation.
type GenerationSummary struct {
	Gen              int     `json:"gen"`
	MeanBV           float64 `json:"meanBV"`
	VarBV            float64 `json:"varBV"`
	MeanPhenotype    float64 `json:"meanPhenotype"`
	DeltaG           float64 `json:"deltaG"`
	CumulativeDeltaG float64 `json:"cumulativeDeltaG"`
	MeanF            float64 `json:"meanF"`
	PopSize          int     `json:"popSize"`
}

// Summary condenses a run.
type Summary struct {
	// ExpectedDeltaG is i·h²·σP per generation.
	ExpectedDeltaG float64 `json:"expectedDeltaG"`
	// RealizedDeltaG is the mean DeltaG over generations 1..n.
	RealizedDeltaG float64 `json:"realizedDeltaG"`
	// TotalGain is the final mean BV minus the founder mean BV.
	TotalGain float64 `json:"totalGain"`
	// FinalF is the mean approximate inbreeding of the last generation.
	FinalF float64 `json:"finalF"`
	// Efficiency is TotalGain per generation.
	Efficiency float64 `json:"efficiency"`
	// GainPerYear is RealizedDeltaG divided by the generation interval.
	GainPerYear float64 `json:"gainPerYear"`
}

// Result is the output of Run.
type Result struct {
	RunID       uuid.UUID           `json:"runId"`
	Params      Params              `json:"params"`
	Generations []GenerationSummary `json:"generations"`
	Summary     Summary             `json:"summary"`
}

// Option configures optional behavior of Run.
type Option func(*Options)

// Options holds configurable parameters for Run.
type Options struct {
	// Ctx is checked between generations; defaults to context.Background().
	Ctx context.Context

	// OnGeneration, if non-nil, receives every generation snapshot, founders
	// included. Returning an error aborts the run with that error.
	OnGeneration func(g Generation) error

	// Source overrides the uniform generator. Nil uses Park–Miller seeded
	// from Params.Seed.
	Source Source
}

// DefaultOptions returns Options with a background context, no hook and the
// built-in generator.
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		OnGeneration: nil,
		Source:       nil,
	}
}

// WithContext returns an Option that sets the Context for the run.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSnapshots returns an Option that installs fn as the generation hook.
func WithSnapshots(fn func(g Generation) error) Option {
	return func(o *Options) {
		o.OnGeneration = fn
	}
}

// WithSource returns an Option that replaces the uniform generator.
// A Source is consumed by one run only; do not share it across goroutines.
func WithSource(src Source) Option {
	return func(o *Options) {
		o.Source = src
	}
}
