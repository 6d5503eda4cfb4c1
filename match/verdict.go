// Package match scores candidate profiles against a query profile and keeps
// the best-ranked hits.
package match

import (
	"math"

	"github.com/carbocation/strmatch/profile"
)

// LocusVerdict classifies the relationship between the query's and a
// candidate's allele sets at one locus.
type LocusVerdict uint8

const (
	// Inconclusive means at least one side had no call at this locus.
	Inconclusive LocusVerdict = iota

	// Consistent means the two sides share at least one allele.
	Consistent

	// Mutated means no allele is shared, but some pair of alleles differs
	// by exactly one repeat unit.
	Mutated

	// Mismatch means no allele is shared and no pair is within one repeat.
	Mismatch
)

func (v LocusVerdict) String() string {
	switch v {
	case Consistent:
		return "consistent"
	case Mutated:
		return "mutated"
	case Mismatch:
		return "mismatch"
	}

	return "inconclusive"
}

// Penalty is the score deduction that this verdict contributes.
func (v LocusVerdict) Penalty() float64 {
	switch v {
	case Mutated:
		return 0.5
	case Mismatch:
		return 1.0
	}

	return 0
}

// EvaluateLocus compares the query's and the candidate's allele sets at a
// single locus. Sharing any allele makes the locus consistent, even when
// other alleles at the same locus are far apart.
func EvaluateLocus(query, candidate profile.AlleleSet) LocusVerdict {
	if query.Absent() || candidate.Absent() {
		return Inconclusive
	}

	for _, q := range query {
		if candidate.Contains(q) {
			return Consistent
		}
	}

	// No shared allele. A difference of exactly one repeat unit between any
	// pair is treated as a single-step mutation rather than an exclusion.
	for _, q := range query {
		for _, c := range candidate {
			if math.Abs(q-c) == 1 {
				return Mutated
			}
		}
	}

	return Mismatch
}
