// SPDX-License-Identifier: MIT

package breeding

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/breedlab/quantgen"
)

// summarize aggregates generation gen; prev holds generations 0..gen-1.
func summarize(gen int, pop []Individual, prev []GenerationSummary) GenerationSummary {
	bv := make([]float64, len(pop))
	ph := make([]float64, len(pop))
	f := make([]float64, len(pop))
	for k, ind := range pop {
		bv[k], ph[k], f[k] = ind.BV, ind.Phenotype, ind.Inbreeding
	}

	s := GenerationSummary{
		Gen:           gen,
		MeanBV:        stat.Mean(bv, nil),
		VarBV:         stat.Variance(bv, nil),
		MeanPhenotype: stat.Mean(ph, nil),
		PopSize:       len(pop),
	}
	if gen > 0 {
		s.MeanF = stat.Mean(f, nil)
		s.DeltaG = s.MeanBV - prev[gen-1].MeanBV
		s.CumulativeDeltaG = s.MeanBV - prev[0].MeanBV
	}
	return s
}

func summarizeRun(p Params, gens []GenerationSummary) Summary {
	last := gens[len(gens)-1]
	deltas := make([]float64, 0, len(gens)-1)
	for _, g := range gens[1:] {
		deltas = append(deltas, g.DeltaG)
	}
	realized := stat.Mean(deltas, nil)
	total := last.MeanBV - gens[0].MeanBV

	return Summary{
		ExpectedDeltaG: quantgen.Response(p.Intensity, p.H2, math.Sqrt(p.PhenoVar)),
		RealizedDeltaG: realized,
		TotalGain:      total,
		FinalF:         last.MeanF,
		Efficiency:     total / float64(p.NGenerations),
		GainPerYear:    realized / p.GenInterval,
	}
}
