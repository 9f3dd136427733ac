// Package mme assembles and solves Henderson's mixed-model equations for the
// single-trait animal model
//
//	y = Xb + Za + e,   var(a) = Aσ²a,   var(e) = Iσ²e.
//
// With α = σ²e/σ²a the system is
//
//	[ X'X   X'Z        ] [b̂]   [X'y]
//	[ Z'X   Z'Z + A⁻¹α ] [â] = [Z'y]
//
// whose solution gives BLUE of the fixed effects (b̂) and BLUP of the
// breeding values (â). Variance components are supplied by the caller; this
// package never estimates them.
//
// Errors are split in two families that callers match with errors.Is:
// ErrStructural (shapes, unknown animals, empty input), which depends only on
// the layout of the inputs, and ErrNumerical (non-positive variances, singular
// A or coefficient matrix), which depends on the values.
//
// Scaling limit: the coefficient matrix is dense and solved in O((p+q)³).
// That is fine for tens of animals. National evaluations with thousands of
// animals need sparse storage and iterative solvers; both are out of scope.
package mme
