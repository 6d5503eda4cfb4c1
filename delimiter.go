package strmatch

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetermineDelimiter returns the most likely rune that delimits the values in
// the reader, assuming a CSV-like file. Profile tables are usually
// tab-delimited, so when the detector considers a tab to be among the
// plausible candidates, the tab wins.
func DetermineDelimiter(r io.Reader) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	for _, candidate := range delimiters {
		if rune(candidate[0]) == '\t' {
			return '\t'
		}
	}

	if len(delimiters) > 0 {
		return rune(delimiters[0][0])
	}

	return ','
}
