// SPDX-License-Identifier: MIT

package breeding

import (
	"sort"

	"github.com/katalvlaran/breedlab/quantgen"
)

// PoolSizes returns the sire and dam pool sizes for a population of n under
// intensity i. With p = quantgen.ProportionForIntensity(i):
//
//	nSelected = max(4, ⌊n·p⌋)
//	nSires    = max(2, ⌊0.4·nSelected⌋)
//	nDams     = max(2, nSelected − nSires), capped by the animals left
func PoolSizes(n int, i float64) (nSires, nDams int) {
	nSelected := max(4, int(float64(n)*quantgen.ProportionForIntensity(i)))
	nSires = max(2, int(float64(nSelected)*0.4))
	nDams = max(2, nSelected-nSires)
	if nSires+nDams > n {
		nDams = n - nSires
	}
	return nSires, nDams
}

// rank returns a copy of pop ordered by phenotype, highest first. Ties keep
// their previous order.
func rank(pop []Individual) []Individual {
	ranked := make([]Individual, len(pop))
	copy(ranked, pop)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Phenotype > ranked[b].Phenotype
	})
	return ranked
}

// mate returns the sire and dam of offspring k out of popSize.
func mate(s Strategy, k, popSize int, sires, dams []Individual, src Source) (Individual, Individual) {
	nSires, nDams := len(sires), len(dams)
	switch s {
	case Avoidance:
		return sires[k%nSires], dams[(k+nSires/2)%nDams]
	case OptimalContribution:
		maxPerSire := (popSize + nSires - 1) / nSires
		return sires[min(k/maxPerSire, nSires-1)], dams[k%nDams]
	default:
		sire := sires[pick(src, nSires)]
		dam := dams[pick(src, nDams)]
		return sire, dam
	}
}

// approxInbreeding is the offspring F heuristic: 0.25 for a selfed pair,
// 0.125 for paternal half sibs, otherwise 0.01 per generation; capped at 0.5.
func approxInbreeding(sire, dam Individual, gen int) float64 {
	var f float64
	switch {
	case sire.ID == dam.ID:
		f = 0.25
	case sire.Sire != None && sire.Sire == dam.Sire:
		f = 0.125
	default:
		f = 0.01 * float64(gen)
	}
	return min(f, 0.5)
}
