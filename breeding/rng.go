// SPDX-License-Identifier: MIT

package breeding

import "math"

const (
	// DefaultSeed is used whenever a run is configured with Seed == 0.
	DefaultSeed int64 = 42

	lcgMultiplier int64 = 16807
	lcgModulus    int64 = 2147483647 // 2³¹ − 1
)

// Source yields uniform deviates in (0, 1).
type Source interface {
	Float64() float64
}

// LCG is the Park–Miller minimal standard generator
// state ← state·16807 mod (2³¹ − 1). It is not safe for concurrent use.
type LCG struct {
	state int64
}

// NewLCG returns a generator seeded with seed reduced into [1, 2³¹ − 2].
// Seeds that reduce to zero (0 and multiples of the modulus) use DefaultSeed.
func NewLCG(seed int64) *LCG {
	return &LCG{state: normalizeSeed(seed)}
}

// Float64 advances the generator and returns state/(2³¹ − 1).
func (g *LCG) Float64() float64 {
	g.state = g.state * lcgMultiplier % lcgModulus
	return float64(g.state&0x7fffffff) / 0x7fffffff
}

func normalizeSeed(seed int64) int64 {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	if s == 0 {
		s = DefaultSeed
	}
	return s
}

// Normal returns a standard normal deviate drawn from src with the Marsaglia
// polar form of Box–Muller. Each call consumes an even number of uniforms and
// discards the second deviate of the pair.
func Normal(src Source) float64 {
	var u, v, s float64
	for {
		u = 2*src.Float64() - 1
		v = 2*src.Float64() - 1
		s = u*u + v*v
		if s < 1 && s != 0 {
			break
		}
	}
	return u * math.Sqrt(-2*math.Log(s)/s)
}

// pick maps a uniform deviate onto [0, n).
func pick(src Source, n int) int {
	k := int(math.Floor(src.Float64() * float64(n)))
	if k >= n {
		k = n - 1
	}
	if k < 0 {
		k = 0
	}
	return k
}
