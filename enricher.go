package beer

// Enrichment holds the fields a secondary source can contribute to a
// primary record.
type Enrichment struct {
	Style string
	ABV   *float64
}

// Enricher fills fields left unset by the primary extraction pass from a
// secondary document with its own structure. Populated fields are never
// overwritten.
type Enricher interface {
	// BuildLookup parses the secondary document into a map keyed by
	// NormalizeKey(name).
	BuildLookup(html string) (map[string]Enrichment, error)

	// Apply fills missing style/ABV fields in place and returns the number
	// of records touched.
	Apply(records []*Record, lookup map[string]Enrichment) int
}
