package profile

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/BenLubar/memoize"
)

// Field values that mean "not typed" rather than "typed with zero alleles".
// Checked case-insensitively against the whole trimmed field.
var missingMarkers = map[string]struct{}{
	"":     {},
	"-":    {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
}

var memoizedParseAlleles = memoize.Memoize(ParseAlleles)

// ParseAlleles converts one raw locus field into an AlleleSet. Missing
// markers yield nil. Otherwise the field is split on commas and each trimmed
// token is kept if it parses as a finite float; empty, unparseable, and
// non-finite tokens are silently dropped, and duplicates collapse. When
// nothing survives, the locus is treated as untyped and nil is returned.
// ParseAlleles never returns an error: a garbled field is missing data, not a
// reason to reject the record carrying it.
func ParseAlleles(raw string) AlleleSet {
	raw = strings.TrimSpace(raw)
	if _, missing := missingMarkers[strings.ToLower(raw)]; missing {
		return nil
	}

	var out AlleleSet
	for _, token := range strings.Split(raw, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		v, err := strconv.ParseFloat(token, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}

		if out.Contains(v) {
			continue
		}
		out = append(out, v)
	}

	if len(out) == 0 {
		return nil
	}
	sort.Float64s(out)

	return out
}

// parseAllelesCached memoizes ParseAlleles. Raw allele fields repeat heavily
// across the rows of a large table, so the loaders parse each distinct field
// once. Records built this way may share AlleleSet storage, which is safe
// because Tables are never mutated after loading.
func parseAllelesCached(raw string) AlleleSet {
	return memoizedParseAlleles.(func(string) AlleleSet)(raw)
}
