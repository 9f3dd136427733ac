// SPDX-License-Identifier: MIT

package breeding

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// runNamespace scopes run identifiers; it is itself the SHA-1 UUID of the
// package path in the URL namespace.
var runNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("github.com/katalvlaran/breedlab/breeding"))

// RunID returns a name-based (version 5) UUID of the canonical form of p.
// Runs with equal parameters, after seed normalization, share an ID; since
// they also share a trajectory the ID identifies the result.
func RunID(p Params) uuid.UUID {
	ff := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	canonical := strings.Join([]string{
		"h2=" + ff(p.H2),
		"i=" + ff(p.Intensity),
		"L=" + ff(p.GenInterval),
		"N=" + strconv.Itoa(p.PopSize),
		"G=" + strconv.Itoa(p.NGenerations),
		"mu=" + ff(p.InitMean),
		"vp=" + ff(p.PhenoVar),
		"mating=" + p.Strategy.String(),
		"seed=" + strconv.FormatInt(normalizeSeed(p.Seed), 10),
	}, ";")

	return uuid.NewSHA1(runNamespace, []byte(canonical))
}
