// Package breeding runs a multi-generation Monte Carlo breeding simulation
// under the infinitesimal model.
//
// 🚀 One run
//
//	Generation 0 draws PopSize founders with BV ~ N(InitMean, σ²A) and
//	phenotype = BV + N(0, σ²E), where σ²A = h²·VP and σ²E = (1 − h²)·VP.
//	Each transition then
//
//	  1. ranks the population by phenotype, highest first;
//	  2. keeps the top fraction implied by the selection intensity;
//	  3. splits it into a sire pool (≈40%) and a dam pool (the rest);
//	  4. pairs sires with dams according to the mating Strategy;
//	  5. draws offspring BV = ½(BVs + BVd) + Mendelian sampling deviate
//	     with SD ½·σA·√(1 − ½(Fs + Fd)), and phenotype = BV + N(0, σ²E).
//
// ✨ Strategies
//
//   - Random: sire and dam drawn uniformly and independently per offspring.
//   - Avoidance: cyclic sires with dams offset by ⌊nSires/2⌋, so consecutive
//     offspring do not repeat the same pair.
//   - OptimalContribution: each sire is capped at ⌈PopSize/nSires⌉ offspring,
//     dams cycle.
//
// Inbreeding is approximate. An offspring of a sire and dam that are the same
// animal gets 0.25, of two half sibs through the sire 0.125, otherwise a
// baseline of 0.01 per generation; all capped at 0.5. It is not pedigree F.
//
// 🎲 Reproducibility
//
//	Every draw comes from the Park–Miller minimal standard generator and the
//	Marsaglia polar method. The same Params (Seed included) reproduce the whole
//	trajectory bit for bit. Seed 0 means DefaultSeed; no clock is consulted.
//
// ⚙️ Usage:
//
//	p := breeding.DefaultParams()
//	p.Strategy = breeding.Avoidance
//	res, err := breeding.Run(p)
//
//	all, err := breeding.Compare(ctx, p) // every strategy, concurrently
package breeding
