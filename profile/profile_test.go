package profile

import (
	"reflect"
	"testing"
)

func testTable() *Table {
	return &Table{
		Loci: []string{"D3S1358", "vWA", "TH01"},
		Records: []Record{
			{SampleID: "S-1", Alleles: []AlleleSet{{15, 16}, {17}, nil}},
			{SampleID: "S-2", Alleles: []AlleleSet{{14}, nil, {6, 9.3}}},
		},
	}
}

func TestAlleleSetString(t *testing.T) {
	type expectations struct {
		Set  AlleleSet
		Want string
	}

	for _, v := range []expectations{
		{Set: nil, Want: "-"},
		{Set: AlleleSet{15}, Want: "15"},
		{Set: AlleleSet{15, 16}, Want: "15,16"},
		{Set: AlleleSet{9.3}, Want: "9.3"},
	} {
		if got := v.Set.String(); got != v.Want {
			t.Fatalf("\nError with input: %+v\nGot: %q\nExpected: %q\n", v, got, v.Want)
		}
	}
}

func TestAlleleSetContains(t *testing.T) {
	set := AlleleSet{6, 9.3}
	if !set.Contains(9.3) {
		t.Fatal("expected set to contain 9.3")
	}
	if set.Contains(9) {
		t.Fatal("did not expect set to contain 9")
	}
	if AlleleSet(nil).Contains(9) {
		t.Fatal("absent set cannot contain anything")
	}
}

func TestAlign(t *testing.T) {
	table := testTable()

	query := Profile{
		SampleID: "Q-1",
		Alleles: map[string]AlleleSet{
			"TH01":    {9.3},
			"D3S1358": {15},
			"D21S11":  {29}, // not part of the table schema
		},
	}

	got := table.Align(query)
	want := []AlleleSet{{15}, nil, {9.3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("\nGot: %v\nExpected: %v\n", got, want)
	}
}

func TestProfileOf(t *testing.T) {
	table := testTable()

	got := table.ProfileOf(0)
	if got.SampleID != "S-1" {
		t.Fatalf("expected sample S-1, got %q", got.SampleID)
	}
	if _, present := got.Alleles["TH01"]; present {
		t.Fatal("absent loci should not appear in the profile map")
	}
	if !reflect.DeepEqual(got.Alleles["D3S1358"], AlleleSet{15, 16}) {
		t.Fatalf("unexpected alleles: %v", got.Alleles["D3S1358"])
	}

	// A profile round-trips through Align back onto the table schema.
	aligned := table.Align(got)
	if !reflect.DeepEqual(aligned, table.Records[0].Alleles) {
		t.Fatalf("\nGot: %v\nExpected: %v\n", aligned, table.Records[0].Alleles)
	}
}

func TestLookup(t *testing.T) {
	table := testTable()

	if row := table.Lookup("S-2"); row != 1 {
		t.Fatalf("expected row 1, got %d", row)
	}
	if row := table.Lookup("S-404"); row != -1 {
		t.Fatalf("expected -1 for an unknown sample, got %d", row)
	}
}

func TestSchemaErrorMessage(t *testing.T) {
	err := SchemaError{Reason: "no column names a sample identifier"}
	want := "profile schema: no column names a sample identifier"
	if err.Error() != want {
		t.Fatalf("\nGot: %q\nExpected: %q\n", err.Error(), want)
	}
}
