package match

import (
	"github.com/carbocation/strmatch/profile"
)

// scoreFloor keeps fully-mismatched candidates at a small positive
// likelihood ratio so they remain rankable.
const scoreFloor = 1e-6

// Result is one candidate's score against a query.
type Result struct {
	SampleID         string  `json:"sample_id"`
	Row              int     `json:"row"`
	CLR              float64 `json:"clr"`
	Posterior        float64 `json:"posterior"`
	ConsistentLoci   int     `json:"consistent_loci"`
	MutatedLoci      int     `json:"mutated_loci"`
	InconclusiveLoci int     `json:"inconclusive_loci"`
}

// ScoreAgainst scores one candidate record against query alleles that have
// already been aligned to the table's locus order. Inconclusive loci carry
// no weight in either direction.
func ScoreAgainst(queryAlleles []profile.AlleleSet, rec profile.Record, row int) Result {
	res := Result{SampleID: rec.SampleID, Row: row}

	var penalty float64
	for i, q := range queryAlleles {
		var c profile.AlleleSet
		if i < len(rec.Alleles) {
			c = rec.Alleles[i]
		}

		verdict := EvaluateLocus(q, c)
		penalty += verdict.Penalty()

		switch verdict {
		case Consistent:
			res.ConsistentLoci++
		case Mutated:
			res.MutatedLoci++
		case Inconclusive:
			res.InconclusiveLoci++
		}
	}

	raw := 2*float64(res.ConsistentLoci) + float64(res.MutatedLoci) - penalty
	if raw < 0 {
		raw = 0
	}

	res.CLR = raw + scoreFloor
	res.Posterior = res.CLR / (res.CLR + 1)

	return res
}
