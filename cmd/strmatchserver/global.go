package main

import (
	"github.com/carbocation/strmatch/profile"
)

type Global struct {
	log logger

	DatabasePath string
	Workers      int

	// The table is loaded once at startup and never mutated, so handlers
	// read it without locking.
	table *profile.Table
	byID  map[string]int
}

func (g *Global) Table() *profile.Table {
	return g.table
}

// RowOf resolves a sample identifier to its table row. When an identifier
// appears more than once in the source, the first row wins.
func (g *Global) RowOf(sampleID string) (int, bool) {
	row, ok := g.byID[sampleID]

	return row, ok
}

type logger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}
