package main

import (
	"gopkg.in/guregu/null.v3"

	"github.com/carbocation/strmatch/profile"
)

// nullAlleles lifts an allele set into a nullable string, with absent loci
// invalid rather than empty.
func nullAlleles(a profile.AlleleSet) null.String {
	if a.Absent() {
		return null.NewString("", false)
	}

	return null.NewString(a.String(), true)
}

// NullStringFormatter renders absent loci with the same "-" marker the
// loaders accept.
func NullStringFormatter(n null.String) string {
	if !n.Valid {
		return "-"
	}

	return n.String
}
