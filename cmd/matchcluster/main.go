// matchcluster reads strmatch output and groups samples into clusters of
// likely relatives: any hit at or above --min-clr links its query and its
// candidate into the same cluster.
package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	_ "github.com/carbocation/strmatch/compileinfoprint"
	"github.com/gocarina/gocsv"
	"github.com/theodesp/unionfind"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

// resultRow mirrors one line of strmatch output.
type resultRow struct {
	QueryID   string  `csv:"query_id"`
	Rank      int     `csv:"rank"`
	PersonID  string  `csv:"person_id"`
	CLR       float64 `csv:"clr"`
	Posterior float64 `csv:"posterior"`
}

func main() {
	defer STDOUT.Flush()

	var (
		resultsPath string
		minCLR      float64
	)
	flag.StringVar(&resultsPath, "results", "", "Path to tab-delimited strmatch output")
	flag.Float64Var(&minCLR, "min-clr", 2.0, "Hits at or above this CLR link their query and candidate into one cluster")
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

	// First pass: intern every sample that participates in a qualifying
	// link, so the union-find can be sized before any Union call.
	fs := NewFastSlice()
	links := 0
	for _, row := range rows {
		if row.CLR < minCLR {
			continue
		}

		fs.Add(row.QueryID)
		fs.Add(row.PersonID)
		links++
	}

	samples := fs.Slice()
	if len(samples) == 0 {
		log.Fatalf("No hits at CLR >= %g; nothing to cluster\n", minCLR)
	}
	log.Println("Clustering", len(samples), "samples joined by", links, "links")

	uf := unionfind.NewThreadSafeUnionFind(len(samples))
	for _, row := range rows {
		if row.CLR < minCLR {
			continue
		}

		uf.Union(fs.Add(row.QueryID), fs.Add(row.PersonID))
	}

	// Resolve each sample to its cluster representative.
	clusterOf := make([]int, len(samples))
	size := make(map[int]int)
	for i := range samples {
		root := uf.Root(i)
		if root < 0 {
			// Samples with no surviving link stand alone
			root = i
		}

		clusterOf[i] = root
		size[root]++
	}

	// Header
	fmt.Printf("sample_id\tcluster\tcluster_size\n")

	for i, sample := range samples {
		fmt.Fprintf(STDOUT, "%s\t%s\t%d\n", sample, samples[clusterOf[i]], size[clusterOf[i]])
	}
}
