// strmatch ranks query STR profiles against a database of candidate
// profiles and emits the top hits for each query as tab-delimited text.
package main

import (
	"bufio"
	"context"
	"flag"
	"log"
	"math"
	"os"
	"runtime"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/runningvariance"
	_ "github.com/carbocation/strmatch/compileinfoprint"
	"github.com/carbocation/strmatch/profile"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

type Stat struct {
	runningvariance.RunningStat
	Min float64
	Max float64
}

func NewStat() *Stat {
	return &Stat{
		*runningvariance.NewRunningStat(),
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
	}
}

func (s *Stat) Push(x float64) {
	s.RunningStat.Push(x)
	if x > s.Max {
		s.Max = x
	}
	if x < s.Min {
		s.Min = x
	}
}

func main() {
	defer STDOUT.Flush()

	var (
		databasePath string
		queriesPath  string
		workers      int
		bqProject    string
		bqDataset    string
		bqTable      string
	)
	flag.StringVar(&databasePath, "database", "", "Path to the candidate profile table. May be local or gs://, and may be gzip/xz/bzip2/zip compressed. .xls and .xml files are also understood.")
	flag.StringVar(&queriesPath, "queries", "", "Optional path to a table of query profiles. If empty, every database profile is queried against the rest of the database.")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "Number of queries to rank concurrently")
	flag.StringVar(&bqProject, "bq-project", "", "If set, load the database from BigQuery in this project instead of from --database")
	flag.StringVar(&bqDataset, "bq-dataset", "", "BigQuery dataset that holds the profile table")
	flag.StringVar(&bqTable, "bq-table", "", "BigQuery table that holds the profiles")
	flag.Parse()

	if databasePath == "" && bqProject == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --database (or --bq-project)")
	}

	if bqProject != "" && (bqDataset == "" || bqTable == "") {
		flag.PrintDefaults()
		log.Fatalln("Please provide --bq-dataset and --bq-table along with --bq-project")
	}

	// Initialize the Google Storage client only if we're pointing to a
	// Google Storage path.
	var client *storage.Client
	if strings.HasPrefix(databasePath, "gs://") || strings.HasPrefix(queriesPath, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	var database *profile.Table
	var err error
	if bqProject != "" {
		wbq, bqErr := profile.ConnectBigQuery(bqProject, bqDataset)
		if bqErr != nil {
			log.Fatalln(bqErr)
		}
		database, err = profile.ReadBigQueryTable(wbq, bqTable)
	} else {
		database, err = profile.OpenTable(databasePath, client)
	}
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("There are", len(database.Records), "profiles in the database across", len(database.Loci), "loci")

	queries := database
	if queriesPath != "" {
		queries, err = profile.OpenTable(queriesPath, client)
		if err != nil {
			log.Fatalln(err)
		}
		log.Println("There are", len(queries.Records), "query profiles")
	} else {
		log.Println("No --queries given; ranking every database profile against the rest of the database")
	}

	results, err := runAllQueries(database, queries, workers)
	if err != nil {
		log.Fatalln(err)
	}

	printResults(queries, results)

	// Summarize the best hit per query so the operator can eyeball whether
	// the run produced plausible scores.
	stats := NewStat()
	for _, hits := range results {
		if len(hits) > 0 {
			stats.Push(hits[0].CLR)
		}
	}
	if stats.N > 0 {
		log.Printf("Best-hit CLR over %d queries: mean %.4f, SD %.4f, min %.4f, max %.4f\n",
			stats.N, stats.Mean(), stats.StandardDeviation(), stats.Min, stats.Max)
	}
}
