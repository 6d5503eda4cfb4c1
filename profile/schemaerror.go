package profile

// SchemaError marks input whose structure is unusable: a table without an
// identifier column, a duplicated locus column, a query with a blank sample
// identifier. Malformed allele values are never a SchemaError; they parse as
// absent instead.
type SchemaError struct {
	Reason string
}

func (e SchemaError) Error() string {
	return "profile schema: " + e.Reason
}
