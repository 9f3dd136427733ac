// SPDX-License-Identifier: MIT

package breeding

import (
	"fmt"
	"math"
	"slices"
)

// Run simulates p.NGenerations rounds of truncation selection and mating.
//
// Implementation:
//   - Stage 1: Validate p, apply options, seed the generator.
//   - Stage 2: Draw founders (BV then phenotype, per animal).
//   - Stage 3: For each generation rank, split pools, mate, draw offspring.
//   - Stage 4: Summarize every generation and the run.
//
// Errors:
//   - ErrInvalidParams (validation).
//   - ctx.Err() when the context is cancelled between generations.
//   - Any error returned by the OnGeneration hook.
//
// Determinism:
//   - Identical Params and Source yield identical Results.
//
// Complexity:
//   - Time O(G·N log N), Space O(N + G).
func Run(p Params, opts ...Option) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	src := o.Source
	if src == nil {
		src = NewLCG(p.Seed)
	}
	p.Seed = normalizeSeed(p.Seed)

	var (
		sigmaA = math.Sqrt(p.H2 * p.PhenoVar)
		sigmaE = math.Sqrt((1 - p.H2) * p.PhenoVar)
		n      = p.PopSize
	)

	pop := make([]Individual, n)
	for k := range pop {
		bv := p.InitMean + sigmaA*Normal(src)
		pop[k] = Individual{
			ID:        k,
			BV:        bv,
			Phenotype: bv + sigmaE*Normal(src),
			Sire:      None,
			Dam:       None,
		}
	}
	if err := emit(o, Generation{Index: 0, Individuals: pop}); err != nil {
		return nil, err
	}
	summaries := make([]GenerationSummary, 0, p.NGenerations+1)
	summaries = append(summaries, summarize(0, pop, nil))

	nSires, nDams := PoolSizes(n, p.Intensity)
	for gen := 1; gen <= p.NGenerations; gen++ {
		if err := o.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("breeding: generation %d: %w", gen, err)
		}
		ranked := rank(pop)
		sires := ranked[:nSires]
		dams := ranked[nSires : nSires+nDams]

		next := make([]Individual, n)
		for k := range next {
			sire, dam := mate(p.Strategy, k, n, sires, dams, src)
			mendelian := 0.5 * sigmaA * math.Sqrt(1-0.5*(sire.Inbreeding+dam.Inbreeding)) * Normal(src)
			bv := 0.5*(sire.BV+dam.BV) + mendelian
			next[k] = Individual{
				ID:         gen*n + k,
				BV:         bv,
				Phenotype:  bv + sigmaE*Normal(src),
				Sire:       sire.ID,
				Dam:        dam.ID,
				Inbreeding: approxInbreeding(sire, dam, gen),
			}
		}
		pop = next
		if err := emit(o, Generation{Index: gen, Individuals: pop}); err != nil {
			return nil, err
		}
		summaries = append(summaries, summarize(gen, pop, summaries))
	}

	return &Result{
		RunID:       RunID(p),
		Params:      p,
		Generations: summaries,
		Summary:     summarizeRun(p, summaries),
	}, nil
}

// emit hands the hook its own copy of the population, so the run never reads
// what the hook writes.
func emit(o Options, g Generation) error {
	if o.OnGeneration == nil {
		return nil
	}
	g.Individuals = slices.Clone(g.Individuals)
	return o.OnGeneration(g)
}
