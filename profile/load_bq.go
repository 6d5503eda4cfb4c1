package profile

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"cloud.google.com/go/bigquery"
	"github.com/carbocation/pfx"
	"google.golang.org/api/iterator"
)

// WrappedBigQuery bundles a BigQuery client with the project and dataset it
// points at.
type WrappedBigQuery struct {
	Context  context.Context
	Client   *bigquery.Client
	Project  string
	Database string
}

// ConnectBigQuery opens a client against the given project and dataset.
func ConnectBigQuery(project, database string) (*WrappedBigQuery, error) {
	wbq := &WrappedBigQuery{
		Context:  context.Background(),
		Project:  project,
		Database: database,
	}

	var err error
	wbq.Client, err = bigquery.NewClient(wbq.Context, wbq.Project)
	if err != nil {
		return nil, fmt.Errorf("connecting to BigQuery: %v", err)
	}

	return wbq, nil
}

// ReadBigQueryTable loads a profile table from a BigQuery table whose columns
// mirror a delimited profile file: one identifier column plus one column per
// locus. Numeric columns are formatted back to text and run through the same
// allele parser as file input.
func ReadBigQueryTable(wbq *WrappedBigQuery, table string) (*Table, error) {
	query := wbq.Client.Query(fmt.Sprintf(`SELECT * FROM %s.%s`, wbq.Database, table))
	itr, err := query.Read(wbq.Context)
	if err != nil {
		return nil, pfx.Err(err)
	}

	var t *Table
	idCol := -1

	var skippedBlankID int
	for sampleNum := 1; ; sampleNum++ {
		if sampleNum%10000 == 0 {
			log.Println("Saw sample", sampleNum)
		}

		var values []bigquery.Value
		err := itr.Next(&values)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}

		if t == nil {
			// The schema becomes available after the first Next call
			head := make([]string, 0, len(itr.Schema))
			for _, field := range itr.Schema {
				head = append(head, field.Name)
			}

			var loci []string
			idCol, loci, err = parseHeader(head)
			if err != nil {
				return nil, err
			}

			t = &Table{Loci: loci, Records: make([]Record, 0, 1024)}
		}

		row := make([]string, len(values))
		for i, v := range values {
			row[i] = bigqueryValueString(v)
		}

		rec, ok := recordFromRow(row, idCol)
		if !ok {
			skippedBlankID++
			continue
		}

		t.Records = append(t.Records, rec)
	}

	if skippedBlankID > 0 {
		log.Println("Skipped", skippedBlankID, "records with a blank sample identifier")
	}

	if t == nil {
		// Zero rows means there was never a schema to read.
		return &Table{}, nil
	}

	return t, nil
}

func bigqueryValueString(v bigquery.Value) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(x, 10)
	default:
		return fmt.Sprintf("%v", x)
	}
}
