package match

import (
	"testing"

	"github.com/carbocation/strmatch/profile"
)

func TestEvaluateLocus(t *testing.T) {
	type expectations struct {
		Query     profile.AlleleSet
		Candidate profile.AlleleSet
		Want      LocusVerdict
	}

	for _, v := range []expectations{
		// Missing calls on either side are uninformative
		{Query: nil, Candidate: nil, Want: Inconclusive},
		{Query: nil, Candidate: profile.AlleleSet{15}, Want: Inconclusive},
		{Query: profile.AlleleSet{15}, Candidate: nil, Want: Inconclusive},

		// Any shared allele wins, even when other alleles are far apart
		{Query: profile.AlleleSet{15}, Candidate: profile.AlleleSet{15}, Want: Consistent},
		{Query: profile.AlleleSet{15, 16}, Candidate: profile.AlleleSet{16, 17}, Want: Consistent},
		{Query: profile.AlleleSet{6, 9.3}, Candidate: profile.AlleleSet{9.3, 30}, Want: Consistent},

		// One repeat unit apart reads as a single-step mutation
		{Query: profile.AlleleSet{15}, Candidate: profile.AlleleSet{16}, Want: Mutated},
		{Query: profile.AlleleSet{16}, Candidate: profile.AlleleSet{15}, Want: Mutated},
		{Query: profile.AlleleSet{14, 18}, Candidate: profile.AlleleSet{15}, Want: Mutated},
		{Query: profile.AlleleSet{9.3}, Candidate: profile.AlleleSet{10.3}, Want: Mutated},

		// A step only counts when the float64 difference is exactly one
		{Query: profile.AlleleSet{7.3}, Candidate: profile.AlleleSet{8.3}, Want: Mismatch},

		// Fractional and integer repeats do not offset into a step
		{Query: profile.AlleleSet{10}, Candidate: profile.AlleleSet{9.3}, Want: Mismatch},

		{Query: profile.AlleleSet{15}, Candidate: profile.AlleleSet{17}, Want: Mismatch},
		{Query: profile.AlleleSet{12, 13}, Candidate: profile.AlleleSet{17, 19}, Want: Mismatch},
	} {
		got := EvaluateLocus(v.Query, v.Candidate)
		if got != v.Want {
			t.Fatalf("\nError with input: %+v\nGot: %v\nExpected: %v\n", v, got, v.Want)
		}
	}
}

func TestLocusVerdictPenalty(t *testing.T) {
	type expectations struct {
		Verdict LocusVerdict
		Want    float64
	}

	for _, v := range []expectations{
		{Verdict: Inconclusive, Want: 0},
		{Verdict: Consistent, Want: 0},
		{Verdict: Mutated, Want: 0.5},
		{Verdict: Mismatch, Want: 1},
	} {
		if got := v.Verdict.Penalty(); got != v.Want {
			t.Fatalf("\nError with input: %+v\nGot: %v\nExpected: %v\n", v, got, v.Want)
		}
	}
}

func TestLocusVerdictString(t *testing.T) {
	type expectations struct {
		Verdict LocusVerdict
		Want    string
	}

	for _, v := range []expectations{
		{Verdict: Inconclusive, Want: "inconclusive"},
		{Verdict: Consistent, Want: "consistent"},
		{Verdict: Mutated, Want: "mutated"},
		{Verdict: Mismatch, Want: "mismatch"},
	} {
		if got := v.Verdict.String(); got != v.Want {
			t.Fatalf("\nError with input: %+v\nGot: %q\nExpected: %q\n", v, got, v.Want)
		}
	}
}
