package main

import (
	"context"
	"log"

	"github.com/carbocation/strmatch/match"
	"github.com/carbocation/strmatch/profile"
	"golang.org/x/sync/errgroup"
)

// runAllQueries ranks every query against the database. Results are indexed
// by query row, so the output order never depends on goroutine scheduling.
func runAllQueries(database, queries *profile.Table, workers int) ([][]match.Result, error) {
	results := make([][]match.Result, len(queries.Records))

	limit := workers
	if len(queries.Records) < limit {
		limit = len(queries.Records)
	}
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(context.Background())
	g.SetLimit(limit)

	for i := range queries.Records {
		i := i

		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			res, err := match.Rank(database, queries.ProfileOf(i), 1)
			if err != nil {
				return err
			}
			results[i] = res

			if (i+1)%1000 == 0 {
				log.Println("Ranked", i+1, "queries")
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
