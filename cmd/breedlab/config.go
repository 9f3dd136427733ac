package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/hjson/hjson-go/v4"

	"github.com/katalvlaran/breedlab/breeding"
	"github.com/katalvlaran/breedlab/mme"
	"github.com/katalvlaran/breedlab/pedigree"
)

var errConfig = errors.New("breedlab: invalid configuration")

// Config is the HJSON parameter file. Each subcommand reads its own section;
// the others may be omitted.
type Config struct {
	Simulation SimulationConfig `json:"simulation"`
	Evaluation EvaluationConfig `json:"evaluation"`
	Genotypes  [][]float64      `json:"genotypes"`
}

// SimulationConfig mirrors breeding.Params with the strategy as a tag.
// Zero fields take their breeding.DefaultParams value, except Intensity and
// InitMean, where zero is a real setting and only an absent key means default.
type SimulationConfig struct {
	H2           float64  `json:"h2"`
	Intensity    *float64 `json:"intensity"`
	GenInterval  float64  `json:"genInterval"`
	PopSize      int      `json:"popSize"`
	NGenerations int      `json:"nGenerations"`
	InitMean     *float64 `json:"initMean"`
	PhenoVar     float64  `json:"phenoVar"`
	Strategy     string   `json:"strategy"`
	Seed         int64    `json:"seed"`
}

// EvaluationConfig holds a pedigree, its phenotypes and variance components.
type EvaluationConfig struct {
	SigmaE2      float64            `json:"sigmaE2"`
	SigmaA2      float64            `json:"sigmaA2"`
	Strict       bool               `json:"strict"`
	Sort         bool               `json:"sort"`
	Pedigree     []PedigreeEntry    `json:"pedigree"`
	Observations []ObservationEntry `json:"observations"`
}

// PedigreeEntry is one pedigree.Record; empty sire or dam means unknown.
type PedigreeEntry struct {
	ID         string `json:"id"`
	Sire       string `json:"sire"`
	Dam        string `json:"dam"`
	Generation int    `json:"generation"`
}

// ObservationEntry uses a null value for a missing record.
type ObservationEntry struct {
	Animal string   `json:"animal"`
	Group  string   `json:"group"`
	Value  *float64 `json:"value"`
}

// loadConfig reads path, or returns an empty Config when path is empty.
func loadConfig(path string) (*Config, error) {
	if path == "" {
		return &Config{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg Config
	if err := hjson.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", errConfig, path, err)
	}
	return &cfg, nil
}

// Params resolves the simulation section against the defaults.
func (s SimulationConfig) Params() (breeding.Params, error) {
	p := breeding.DefaultParams()
	if s.H2 != 0 {
		p.H2 = s.H2
	}
	if s.Intensity != nil {
		p.Intensity = *s.Intensity
	}
	if s.GenInterval != 0 {
		p.GenInterval = s.GenInterval
	}
	if s.PopSize != 0 {
		p.PopSize = s.PopSize
	}
	if s.NGenerations != 0 {
		p.NGenerations = s.NGenerations
	}
	if s.InitMean != nil {
		p.InitMean = *s.InitMean
	}
	if s.PhenoVar != 0 {
		p.PhenoVar = s.PhenoVar
	}
	if s.Seed != 0 {
		p.Seed = s.Seed
	}
	if s.Strategy != "" {
		st, err := breeding.ParseStrategy(s.Strategy)
		if err != nil {
			return p, err
		}
		p.Strategy = st
	}
	return p, p.Validate()
}

func (e EvaluationConfig) records() []pedigree.Record {
	out := make([]pedigree.Record, len(e.Pedigree))
	for i, r := range e.Pedigree {
		out[i] = pedigree.Record{ID: r.ID, Sire: r.Sire, Dam: r.Dam, Generation: r.Generation}
	}
	return out
}

func (e EvaluationConfig) observations() []mme.Observation {
	out := make([]mme.Observation, len(e.Observations))
	for i, o := range e.Observations {
		v := math.NaN()
		if o.Value != nil {
			v = *o.Value
		}
		out[i] = mme.Observation{Value: v, Group: o.Group, Animal: o.Animal}
	}
	return out
}
