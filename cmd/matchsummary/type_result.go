package main

// resultRow mirrors one line of strmatch output.
type resultRow struct {
	QueryID          string  `csv:"query_id"`
	Rank             int     `csv:"rank"`
	PersonID         string  `csv:"person_id"`
	CLR              float64 `csv:"clr"`
	Posterior        float64 `csv:"posterior"`
	ConsistentLoci   int     `csv:"consistent_loci"`
	MutatedLoci      int     `csv:"mutated_loci"`
	InconclusiveLoci int     `csv:"inconclusive_loci"`
}
