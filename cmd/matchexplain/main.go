// matchexplain prints a locus-by-locus comparison of two database profiles
// so an analyst can see where a reported score came from.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	_ "github.com/carbocation/strmatch/compileinfoprint"
	"github.com/carbocation/strmatch/match"
	"github.com/carbocation/strmatch/profile"
)

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	var (
		databasePath string
		queryID      string
		candidateID  string
	)
	flag.StringVar(&databasePath, "database", "", "Path to the candidate profile table. May be local or gs://, and may be compressed.")
	flag.StringVar(&queryID, "query", "", "Sample identifier of the query profile")
	flag.StringVar(&candidateID, "candidate", "", "Sample identifier of the candidate profile")
	flag.Parse()

	if databasePath == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --database")
	}
	if queryID == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --query")
	}
	if candidateID == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --candidate")
	}

	var client *storage.Client
	if strings.HasPrefix(databasePath, "gs://") {
		var err error
		client, err = storage.NewClient(context.Background())
		if err != nil {
			log.Fatalln(err)
		}
	}

	table, err := profile.OpenTable(databasePath, client)
	if err != nil {
		log.Fatalln(err)
	}

	queryRow := table.Lookup(queryID)
	if queryRow < 0 {
		log.Fatalf("Sample %q is not in the database\n", queryID)
	}
	candidateRow := table.Lookup(candidateID)
	if candidateRow < 0 {
		log.Fatalf("Sample %q is not in the database\n", candidateID)
	}

	queryRec := table.Records[queryRow]
	candidateRec := table.Records[candidateRow]

	// Header
	fmt.Printf("locus\tquery_alleles\tcandidate_alleles\tverdict\tpenalty\n")

	for i, locus := range table.Loci {
		verdict := match.EvaluateLocus(queryRec.Alleles[i], candidateRec.Alleles[i])

		fmt.Fprintf(STDOUT, "%s\t%s\t%s\t%s\t%.1f\n",
			locus,
			NullStringFormatter(nullAlleles(queryRec.Alleles[i])),
			NullStringFormatter(nullAlleles(candidateRec.Alleles[i])),
			verdict,
			verdict.Penalty(),
		)
	}

	res := match.ScoreAgainst(queryRec.Alleles, candidateRec, candidateRow)
	log.Printf("%s vs %s: CLR %.6f, posterior %.6f (%d consistent, %d mutated, %d inconclusive)\n",
		queryID, candidateID, res.CLR, res.Posterior,
		res.ConsistentLoci, res.MutatedLoci, res.InconclusiveLoci)
}
