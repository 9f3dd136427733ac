// Package pedigree builds the additive numerator relationship matrix A and the
// inbreeding coefficients F from an ordered pedigree (tabular method).
//
// 🚀 What is A?
//
//	A[i][j] is twice the coancestry of animals i and j: the expected proportion
//	of alleles identical by descent. The diagonal carries 1 + F_i.
//
// ✨ Recursion (animals processed in pedigree order, i = 0..n-1):
//
//	F_i     = ½ · A[sire_i][dam_i]          (both parents known, else 0)
//	A[i][i] = 1 + F_i
//	A[i][j] = A[j][i] = ½ · (A[j][sire_i] + A[j][dam_i])   for j < i
//
// Unknown ancestry:
//
//	A parent ID that is empty, absent from the pedigree, or listed after its
//	offspring resolves to the founder sentinel and contributes zero. The last
//	case is a caller error that default Build does not detect; pass
//	WithStrictOrder() to reject it instead.
//
// ⚙️ Usage:
//
//	res, err := pedigree.Build([]pedigree.Record{
//	  {ID: "A1"}, {ID: "A2"}, {ID: "A3", Sire: "A1", Dam: "A2"},
//	}, pedigree.WithTrace())
//
// Performance:
//
//   - Time:   O(n²)
//   - Memory: O(n²)
package pedigree
