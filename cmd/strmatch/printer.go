package main

import (
	"fmt"

	"github.com/carbocation/strmatch/match"
	"github.com/carbocation/strmatch/profile"
)

// printResults emits one row per (query, hit) pair. Ranks are 1-based.
func printResults(queries *profile.Table, results [][]match.Result) {
	// Header
	fmt.Printf("query_id\trank\tperson_id\tclr\tposterior\tconsistent_loci\tmutated_loci\tinconclusive_loci\n")

	for i, hits := range results {
		queryID := queries.Records[i].SampleID

		for rank, hit := range hits {
			fmt.Fprintf(STDOUT, "%s\t%d\t%s\t%.6f\t%.6f\t%d\t%d\t%d\n",
				queryID, rank+1, hit.SampleID, hit.CLR, hit.Posterior,
				hit.ConsistentLoci, hit.MutatedLoci, hit.InconclusiveLoci)
		}
	}
}
