package match

import (
	"strings"
	"sync"

	"github.com/carbocation/strmatch/profile"
)

// TopK is the number of best-ranked candidates reported for each query.
const TopK = 10

// better reports whether a outranks b. Ties on score fall back to table
// order, so results are fully deterministic.
func better(a, b Result) bool {
	if a.CLR != b.CLR {
		return a.CLR > b.CLR
	}

	return a.Row < b.Row
}

// topList keeps the k best results seen so far, in rank order.
type topList struct {
	k       int
	results []Result
}

func newTopList(k int) *topList {
	// Non-nil so an empty list serializes as [] rather than null
	return &topList{k: k, results: make([]Result, 0, k)}
}

func (tl *topList) add(r Result) {
	if len(tl.results) == tl.k {
		if !better(r, tl.results[len(tl.results)-1]) {
			return
		}
		tl.results[len(tl.results)-1] = r
	} else {
		tl.results = append(tl.results, r)
	}

	for i := len(tl.results) - 1; i > 0 && better(tl.results[i], tl.results[i-1]); i-- {
		tl.results[i], tl.results[i-1] = tl.results[i-1], tl.results[i]
	}
}

// Rank scores every record in the table against the query and returns the
// TopK best candidates in rank order. The query's own record and records
// without an identifier are never candidates. With workers > 1 the table is
// scanned in contiguous shards; the merged outcome is identical to a serial
// scan.
func Rank(table *profile.Table, query profile.Profile, workers int) ([]Result, error) {
	if strings.TrimSpace(query.SampleID) == "" {
		return nil, profile.SchemaError{Reason: "query has no sample identifier"}
	}

	aligned := table.Align(query)

	scanRange := func(tl *topList, lo, hi int) {
		for row := lo; row < hi; row++ {
			rec := table.Records[row]
			if rec.SampleID == "" || rec.SampleID == query.SampleID {
				continue
			}
			tl.add(ScoreAgainst(aligned, rec, row))
		}
	}

	n := len(table.Records)
	if workers < 2 || n < 2 {
		tl := newTopList(TopK)
		scanRange(tl, 0, n)
		return tl.results, nil
	}

	if workers > n {
		workers = n
	}

	shards := make([]*topList, workers)
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		w := w

		wg.Add(1)
		go func() {
			defer wg.Done()

			lo := w * chunk
			hi := lo + chunk
			if hi > n {
				hi = n
			}

			tl := newTopList(TopK)
			scanRange(tl, lo, hi)
			shards[w] = tl
		}()
	}
	wg.Wait()

	// better() is a strict total order (rows are unique), so merging shard
	// winners reproduces the serial outcome exactly.
	merged := newTopList(TopK)
	for _, shard := range shards {
		for _, r := range shard.results {
			merged.add(r)
		}
	}

	return merged.results, nil
}
