// SPDX-License-Identifier: MIT

package quantgen

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

var (
	// ErrInvalidProportion is returned for a selected proportion outside (0, 1).
	ErrInvalidProportion = errors.New("quantgen: proportion must lie in (0, 1)")

	// ErrInvalidCurve is returned for a non-positive variance or point count.
	ErrInvalidCurve = errors.New("quantgen: curve needs variance > 0 and at least one point")
)

// Variance is a phenotypic variance partition.
type Variance struct {
	VA, VD, VE float64
	// VP is VA + VD + VE.
	VP float64
	// H2Broad is (VA + VD)/VP; H2Narrow is VA/VP.
	H2Broad  float64
	H2Narrow float64
	// Share* are the percentage contributions to VP.
	ShareVA, ShareVD, ShareVE float64
}

// Partition splits VP into its additive, dominance and environmental parts.
// Ratios are zero when VP is zero.
func Partition(va, vd, ve float64) Variance {
	v := Variance{VA: va, VD: vd, VE: ve, VP: va + vd + ve}
	if v.VP > 0 {
		v.H2Broad = (va + vd) / v.VP
		v.H2Narrow = va / v.VP
		v.ShareVA = va / v.VP * 100
		v.ShareVD = vd / v.VP * 100
		v.ShareVE = ve / v.VP * 100
	}
	return v
}

// Response is the breeder's equation R = i·h²·σP.
func Response(i, h2, sigmaP float64) float64 {
	return i * h2 * sigmaP
}

// ResponsePerYear is Response divided by the generation interval L.
func ResponsePerYear(i, h2, sigmaP, l float64) float64 {
	return Response(i, h2, sigmaP) / l
}

// intensityBreaks maps intensity to the fraction kept: the first row whose
// Min does not exceed i wins.
var intensityBreaks = []struct {
	Min        float64
	Proportion float64
}{
	{2.4, 0.02},
	{2.0, 0.05},
	{1.76, 0.10},
	{1.4, 0.20},
	{1.0, 0.35},
	{0.8, 0.45},
}

// ProportionForIntensity returns the tabulated proportion selected for
// intensity i, the table the simulator selects with. Intensities below 0.8
// keep half the population.
func ProportionForIntensity(i float64) float64 {
	for _, b := range intensityBreaks {
		if i >= b.Min {
			return b.Proportion
		}
	}
	return 0.50
}

// IntensityForProportion returns the exact truncation-selection intensity
// φ(x)/p for a normal trait when the top fraction p is kept.
func IntensityForProportion(p float64) (float64, error) {
	if !(p > 0 && p < 1) {
		return 0, fmt.Errorf("%w: p=%g", ErrInvalidProportion, p)
	}
	x := distuv.UnitNormal.Quantile(1 - p)
	return distuv.UnitNormal.Prob(x) / p, nil
}

// Point is one (x, density) pair of a curve.
type Point struct {
	X, Density float64
}

// NormalCurve samples the N(mean, variance) density at nPoints+1 evenly
// spaced x from mean − 4σ to mean + 4σ inclusive.
func NormalCurve(mean, variance float64, nPoints int) ([]Point, error) {
	if !(variance > 0) || math.IsInf(variance, 1) || nPoints < 1 {
		return nil, fmt.Errorf("%w: variance=%g points=%d", ErrInvalidCurve, variance, nPoints)
	}
	d := distuv.Normal{Mu: mean, Sigma: math.Sqrt(variance)}
	lo, hi := mean-4*d.Sigma, mean+4*d.Sigma
	step := (hi - lo) / float64(nPoints)

	pts := make([]Point, nPoints+1)
	for k := range pts {
		x := lo + float64(k)*step
		pts[k] = Point{X: x, Density: d.Prob(x)}
	}
	return pts, nil
}
