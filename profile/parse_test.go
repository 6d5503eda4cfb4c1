package profile

import (
	"reflect"
	"testing"
)

func TestParseAlleles(t *testing.T) {
	type expectations struct {
		Raw  string
		Want AlleleSet
	}

	for _, v := range []expectations{
		// Missing-data markers parse as absent, not as errors
		{Raw: "", Want: nil},
		{Raw: "   ", Want: nil},
		{Raw: "-", Want: nil},
		{Raw: "NA", Want: nil},
		{Raw: "na", Want: nil},
		{Raw: "N/A", Want: nil},
		{Raw: "NaN", Want: nil},
		{Raw: "null", Want: nil},
		{Raw: "NULL", Want: nil},

		// Well formed calls
		{Raw: "15", Want: AlleleSet{15}},
		{Raw: "15,16", Want: AlleleSet{15, 16}},
		{Raw: " 15 , 16 ", Want: AlleleSet{15, 16}},
		{Raw: "9.3", Want: AlleleSet{9.3}},
		{Raw: "9,9.3", Want: AlleleSet{9, 9.3}},

		// Output is sorted and deduplicated
		{Raw: "16,15", Want: AlleleSet{15, 16}},
		{Raw: "15,15", Want: AlleleSet{15}},

		// Unparseable or non-finite tokens drop out individually
		{Raw: "9,,9.3", Want: AlleleSet{9, 9.3}},
		{Raw: "8,x", Want: AlleleSet{8}},
		{Raw: "8,-", Want: AlleleSet{8}},
		{Raw: "inf,8", Want: AlleleSet{8}},
		{Raw: "8,nan", Want: AlleleSet{8}},
		{Raw: "x", Want: nil},
		{Raw: ",", Want: nil},
	} {
		got := ParseAlleles(v.Raw)
		if !reflect.DeepEqual(got, v.Want) {
			t.Fatalf("\nError with input: %+v\nGot: %v\nExpected: %v\n", v, got, v.Want)
		}
	}
}

func TestParseAllelesRoundTrip(t *testing.T) {
	// Formatting an allele set and reparsing it must reproduce the set.
	for _, raw := range []string{"", "-", "15", "15,16", "9,9.3", "29.2", "16,15,15"} {
		first := ParseAlleles(raw)
		second := ParseAlleles(first.String())
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("\nError with input: %q\nFirst parse: %v\nReparsed: %v\n", raw, first, second)
		}
	}
}

func TestParseAllelesCached(t *testing.T) {
	for _, raw := range []string{"", "NA", "15,16", "9.3", "16,15"} {
		cached := parseAllelesCached(raw)
		direct := ParseAlleles(raw)
		if !reflect.DeepEqual(cached, direct) {
			t.Fatalf("\nError with input: %q\nCached: %v\nDirect: %v\n", raw, cached, direct)
		}
	}
}
