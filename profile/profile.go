// Package profile represents STR genotype profiles: a sample identifier plus
// the set of allele repeat counts observed at each typed locus. Tables of
// profiles can be loaded from delimited text, XLS workbooks, XML batches, or
// BigQuery, and are immutable once loaded, so they may be shared freely
// across concurrent scans.
package profile

import (
	"strconv"
	"strings"
)

// AlleleSet holds the distinct allele repeat counts observed at one locus,
// sorted ascending. A nil AlleleSet means the locus was not typed (or no
// usable value survived parsing); a non-nil AlleleSet is never empty and
// contains only finite values.
type AlleleSet []float64

// Absent reports whether no usable allele was observed at this locus.
func (a AlleleSet) Absent() bool {
	return len(a) == 0
}

// Contains reports whether v is one of the observed alleles. Exact equality
// is intended: allele repeat counts are small decimal values that are either
// carried verbatim from the source field or not at all.
func (a AlleleSet) Contains(v float64) bool {
	for _, have := range a {
		if have == v {
			return true
		}
	}

	return false
}

// String renders the set in the same comma-separated form the parser accepts,
// with "-" for an absent locus, so formatting and re-parsing round-trip.
func (a AlleleSet) String() string {
	if a.Absent() {
		return "-"
	}

	parts := make([]string, 0, len(a))
	for _, v := range a {
		parts = append(parts, strconv.FormatFloat(v, 'g', -1, 64))
	}

	return strings.Join(parts, ",")
}

// Record is one profile within a Table: its sample identifier and one
// AlleleSet per locus, parallel to the Table's Loci.
type Record struct {
	SampleID string
	Alleles  []AlleleSet
}

// Table is a fully parsed profile database. Loci preserves the column order
// of the source, with the identifier column excluded. Tables are not mutated
// after loading.
type Table struct {
	Loci    []string
	Records []Record
}

// Profile is the schema-independent form of a single profile, keyed by locus
// name. Queries arrive in this form so that their loci need not match the
// database schema; loci outside the schema are simply never consulted.
type Profile struct {
	SampleID string               `json:"sample_id"`
	Alleles  map[string]AlleleSet `json:"alleles"`
}

// Align projects p onto the table schema: one AlleleSet per table locus, nil
// where p does not type that locus.
func (t *Table) Align(p Profile) []AlleleSet {
	out := make([]AlleleSet, len(t.Loci))
	for i, locus := range t.Loci {
		out[i] = p.Alleles[locus]
	}

	return out
}

// ProfileOf converts the record at the given row into its schema-independent
// form. Absent loci are left out of the map; Align restores them as nil.
func (t *Table) ProfileOf(row int) Profile {
	rec := t.Records[row]

	alleles := make(map[string]AlleleSet, len(t.Loci))
	for i, locus := range t.Loci {
		if rec.Alleles[i].Absent() {
			continue
		}
		alleles[locus] = rec.Alleles[i]
	}

	return Profile{SampleID: rec.SampleID, Alleles: alleles}
}

// Lookup scans for the first record carrying the given sample identifier and
// returns its row, or -1 when no record matches.
func (t *Table) Lookup(sampleID string) int {
	for i := range t.Records {
		if t.Records[i].SampleID == sampleID {
			return i
		}
	}

	return -1
}
