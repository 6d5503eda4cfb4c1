// matchsummary digests tab-delimited strmatch output: summary statistics and
// a terminal histogram of the score distribution, plus an optional PNG of
// the ranked best-hit curve.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/aybabtme/uniplot/histogram"
	_ "github.com/carbocation/strmatch/compileinfoprint"
	"github.com/gocarina/gocsv"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

func main() {
	var (
		resultsPath string
		plotPath    string
	)
	flag.StringVar(&resultsPath, "results", "", "Path to tab-delimited strmatch output")
	flag.StringVar(&plotPath, "plot", "", "Optional path for a PNG of the ranked best-hit CLR curve")
	flag.Parse()

	if resultsPath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --results")
	}

	fileBytes, err := os.ReadFile(resultsPath)
	if err != nil {
		log.Fatalln(err)
	}

	// Tell gocsv to use tab as the delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = '\t'
		r.LazyQuotes = true
		return r
	})

	rows := []*resultRow{}
	if err := gocsv.UnmarshalBytes(fileBytes, &rows); err != nil {
		log.Fatalln(err)
	}

	if len(rows) == 0 {
		log.Fatalln("No result rows found in", resultsPath)
	}

	clrs := make([]float64, 0, len(rows))
	posteriors := make([]float64, 0, len(rows))
	best := make([]float64, 0, len(rows))
	for _, row := range rows {
		clrs = append(clrs, row.CLR)
		posteriors = append(posteriors, row.Posterior)
		if row.Rank == 1 {
			best = append(best, row.CLR)
		}
	}

	describe("All hits, CLR", clrs)
	describe("All hits, posterior", posteriors)
	describe("Best hits, CLR", best)

	// Quantiles want sorted input
	sort.Float64Slice(clrs).Sort()
	fmt.Printf("CLR quantiles: 50%% %.4f, 90%% %.4f, 99%% %.4f\n",
		stat.Quantile(0.5, stat.LinInterp, clrs, nil),
		stat.Quantile(0.9, stat.LinInterp, clrs, nil),
		stat.Quantile(0.99, stat.LinInterp, clrs, nil))

	fmt.Println("CLR distribution across all hits:")
	hist := histogram.Hist(25, clrs)
	if err := histogram.Fprint(os.Stdout, hist, histogram.Linear(40)); err != nil {
		log.Fatalln(err)
	}

	if plotPath != "" {
		if len(best) < 2 {
			log.Println("Not enough best-hit rows to plot; skipping", plotPath)
			return
		}

		sort.Float64Slice(best).Sort()
		if err := PlotRankedCLR(plotPath, best); err != nil {
			log.Fatalln(err)
		}
		log.Println("Wrote", plotPath)
	}
}

func describe(label string, values []float64) {
	data := stats.LoadRawData(values)
	if data.Len() < 1 {
		fmt.Printf("%s: N/A\n", label)
		return
	}

	mean, err := data.Mean()
	if err != nil {
		log.Fatalln(err)
	}

	sd, err := data.StandardDeviation()
	if err != nil {
		log.Fatalln(err)
	}

	fmt.Printf("%s: n %d, mean %.4f, SD %.4f\n", label, data.Len(), mean, sd)
}
