// Package quantgen holds the closed-form quantitative-genetics helpers that
// sit beside the simulator: variance partitioning, the breeder's equation,
// the link between selection intensity and the proportion selected, and
// normal density curves for plotting.
//
//	VP  = VA + VD + VE
//	H²  = (VA + VD)/VP        h² = VA/VP
//	R   = i · h² · σP
//	i(p) = φ(x_p)/p,  x_p the standard normal (1 − p) quantile
package quantgen
