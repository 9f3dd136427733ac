// Package genomic builds the genomic relationship matrix G from marker
// genotypes (VanRaden 2008, method 1).
//
// 🚀 What is G?
//
//	Where the pedigree matrix A gives expected relatedness, G measures the
//	realized share of the genome two animals carry, so full sibs no longer
//	all sit at exactly 0.5.
//
// ✨ Construction (n animals, m markers, dosages M[i][j] ∈ {0, 1, 2}):
//
//	p_j     = Σ_i M[i][j] / 2n
//	Z[i][j] = M[i][j] − 2·p_j
//	s       = 2 · Σ_j p_j·(1 − p_j)
//	G       = Z·Zᵀ / s
//
// G is symmetric, has no fixed diagonal, and may carry negative off-diagonal
// entries. When every marker is monomorphic s is zero and Build fails with
// ErrMonomorphic instead of dividing.
//
// ⚙️ Usage:
//
//	res, err := genomic.Build([][]float64{{0, 2}, {2, 0}, {1, 1}})
//	// res.G can stand in for A in mme.Solve after res.Regularized(0.01).
//
// Performance:
//
//   - Time:   O(n·m + n²·m)
//   - Memory: O(n·m + n²)
package genomic
