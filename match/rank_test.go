package match

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/carbocation/strmatch/profile"
)

func TestRankExcludesSelfAndBlank(t *testing.T) {
	table := &profile.Table{
		Loci: []string{"D3S1358", "TH01"},
		Records: []profile.Record{
			{SampleID: "Q", Alleles: []profile.AlleleSet{{15}, {9.3}}},
			{SampleID: "", Alleles: []profile.AlleleSet{{15}, {9.3}}},
			{SampleID: "C-1", Alleles: []profile.AlleleSet{{15}, {8}}},
		},
	}

	got, err := Rank(table, table.ProfileOf(0), 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != 1 {
		t.Fatalf("expected exactly one candidate, got %d: %+v", len(got), got)
	}
	if got[0].SampleID != "C-1" {
		t.Fatalf("expected C-1, got %q", got[0].SampleID)
	}
}

func TestRankOrdersAndTruncates(t *testing.T) {
	const nLoci = 30

	loci := make([]string, nLoci)
	queryAlleles := make(map[string]profile.AlleleSet)
	for i := range loci {
		loci[i] = fmt.Sprintf("L%02d", i)
		queryAlleles[loci[i]] = profile.AlleleSet{float64(10 + i)}
	}

	// Candidate i is consistent at the first 30-i loci and silent elsewhere,
	// so scores fall strictly with i.
	table := &profile.Table{Loci: loci}
	for i := 0; i < 25; i++ {
		alleles := make([]profile.AlleleSet, nLoci)
		for j := 0; j < nLoci-i; j++ {
			alleles[j] = profile.AlleleSet{float64(10 + j)}
		}
		table.Records = append(table.Records, profile.Record{
			SampleID: fmt.Sprintf("R-%02d", i),
			Alleles:  alleles,
		})
	}

	got, err := Rank(table, profile.Profile{SampleID: "Q", Alleles: queryAlleles}, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != TopK {
		t.Fatalf("expected %d results, got %d", TopK, len(got))
	}
	for i, r := range got {
		if want := fmt.Sprintf("R-%02d", i); r.SampleID != want {
			t.Fatalf("rank %d: expected %q, got %q", i+1, want, r.SampleID)
		}
		if i > 0 && got[i-1].CLR <= r.CLR {
			t.Fatalf("results are not strictly descending at rank %d", i+1)
		}
	}
}

func TestRankTieBreaksOnRow(t *testing.T) {
	table := &profile.Table{Loci: []string{"D3S1358", "TH01"}}
	for i := 0; i < 15; i++ {
		table.Records = append(table.Records, profile.Record{
			SampleID: fmt.Sprintf("T-%02d", i),
			Alleles:  []profile.AlleleSet{{15}, {9.3}},
		})
	}

	query := profile.Profile{
		SampleID: "Q",
		Alleles:  map[string]profile.AlleleSet{"D3S1358": {15}, "TH01": {9.3}},
	}

	got, err := Rank(table, query, 1)
	if err != nil {
		t.Fatal(err)
	}

	if len(got) != TopK {
		t.Fatalf("expected %d results, got %d", TopK, len(got))
	}
	for i, r := range got {
		if r.Row != i {
			t.Fatalf("equal scores should rank by table order; rank %d has row %d", i+1, r.Row)
		}
	}
}

func TestRankParallelMatchesSerial(t *testing.T) {
	const (
		nRecords = 200
		nLoci    = 8
	)

	loci := make([]string, nLoci)
	for j := range loci {
		loci[j] = fmt.Sprintf("L%d", j)
	}

	table := &profile.Table{Loci: loci}
	for i := 0; i < nRecords; i++ {
		alleles := make([]profile.AlleleSet, nLoci)
		for j := 0; j < nLoci; j++ {
			if (i+j)%7 == 0 {
				continue // leave this locus absent
			}
			alleles[j] = profile.AlleleSet{float64(8 + (i*5+j*3)%13)}
		}
		table.Records = append(table.Records, profile.Record{
			SampleID: fmt.Sprintf("P-%03d", i),
			Alleles:  alleles,
		})
	}

	queryAlleles := make(map[string]profile.AlleleSet)
	for j := 0; j < nLoci; j++ {
		if j%5 == 4 {
			continue
		}
		queryAlleles[loci[j]] = profile.AlleleSet{float64(8 + j%13)}
	}
	query := profile.Profile{SampleID: "Q", Alleles: queryAlleles}

	serial, err := Rank(table, query, 1)
	if err != nil {
		t.Fatal(err)
	}

	for _, workers := range []int{2, 3, 4, 7, 16, 500} {
		parallel, err := Rank(table, query, workers)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(serial, parallel) {
			t.Fatalf("\nWith %d workers:\nGot: %+v\nExpected: %+v\n", workers, parallel, serial)
		}
	}
}

func TestRankEmptyTable(t *testing.T) {
	got, err := Rank(&profile.Table{}, profile.Profile{SampleID: "Q"}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected an empty, non-nil result list, got %#v", got)
	}
}

func TestRankBlankQueryID(t *testing.T) {
	_, err := Rank(&profile.Table{}, profile.Profile{SampleID: "   "}, 1)
	if err == nil {
		t.Fatal("expected an error for a blank query identifier")
	}

	var schemaErr profile.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("expected a SchemaError, got: %v", err)
	}
}
