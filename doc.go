// Package breedlab is a quantitative-genetics engine for animal breeding:
// pedigree relationships, BLUP evaluation, genomic relationships and a
// Monte Carlo breeding simulator.
//
// 🚀 What is inside?
//
//	A deterministic, dependency-light toolkit that brings together:
//		• Pedigree: additive relationship matrix A and inbreeding F (tabular method)
//		• Evaluation: Henderson's mixed-model equations, BLUE and BLUP, reliabilities
//		• Genomics: VanRaden G matrix from SNP dosages, ridge for GBLUP
//		• Simulation: truncation selection and mating strategies over generations
//		• Theory: variance partitioning, breeder's equation, selection intensity
//
// Under the hood:
//
//	matrix/: dense row-major float64 matrices, validators, LU, inverse, pivoted solve
//	pedigree/: tabular-method A, F, the derivation trace and parent-first sort
//	mme/: design matrices, MME assembly and solution, Evaluate
//	genomic/: allele frequencies, centring, G = ZZᵀ/s
//	breeding/: seeded simulator, run summaries, concurrent strategy comparison
//	quantgen/: closed-form helpers shared with the simulator
//	cmd/breedlab: HJSON-configured host that prints JSON
//
// Quick example:
//
//	S   D          A = [1    0    0.5 ]
//	 \ /               [0    1    0.5 ]
//	  O                [0.5  0.5  1   ]
//
// Every computation is pure and synchronous. Only breeding.Compare runs
// work concurrently, and each of its runs owns its own generator.
//
//	go get github.com/katalvlaran/breedlab
package breedlab
