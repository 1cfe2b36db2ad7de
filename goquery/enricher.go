package goquery

import (
	"regexp"
	"strconv"

	beer "github.com/lfe011969/local-beer-app"
)

// Ensure Enricher implements beer.Enricher at compile time.
var _ beer.Enricher = (*Enricher)(nil)

// Enricher builds a name → {style, abv} lookup from a venue's secondary
// document and fills fields the primary extraction left unset. The
// secondary page has its own structure: beverages appear as a triplet of
// consecutive lines — name, style, percentage.
type Enricher struct{}

// NewEnricher creates a new Enricher.
func NewEnricher() *Enricher {
	return &Enricher{}
}

// A line that is nothing but a percentage, e.g. "6.5%".
var percentLineRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*%$`)

// BuildLookup scans the document's normalized lines for name/style/percent
// triplets, keyed by the normalized beverage name.
func (e *Enricher) BuildLookup(html string) (map[string]beer.Enrichment, error) {
	lines, err := DocumentLines(html)
	if err != nil {
		return nil, err
	}

	lookup := make(map[string]beer.Enrichment)

	for i := 0; i+2 < len(lines); i++ {
		name, style, percent := lines[i], lines[i+1], lines[i+2]

		m := percentLineRe.FindStringSubmatch(percent)
		if m == nil {
			continue
		}
		if beer.HasStatMarker(name) || beer.HasStatMarker(style) {
			continue
		}
		key := beer.NormalizeKey(name)
		if key == "" {
			continue
		}

		abv, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}

		// First occurrence wins, same as the dedup policy.
		if _, ok := lookup[key]; !ok {
			lookup[key] = beer.Enrichment{Style: style, ABV: &abv}
		}
		i += 2
	}

	return lookup, nil
}

// Apply fills missing style/ABV fields in place from the lookup. Populated
// fields are never overwritten. Returns the number of records touched.
func (e *Enricher) Apply(records []*beer.Record, lookup map[string]beer.Enrichment) int {
	touched := 0
	for _, rec := range records {
		if rec.Style != nil && rec.ABV != nil {
			continue
		}
		enr, ok := lookup[beer.NormalizeKey(rec.Name)]
		if !ok {
			continue
		}

		filled := false
		if rec.Style == nil && enr.Style != "" {
			style := enr.Style
			rec.Style = &style
			filled = true
		}
		if rec.ABV == nil && enr.ABV != nil {
			abv := *enr.ABV
			rec.ABV = &abv
			filled = true
		}
		if filled {
			touched++
		}
	}
	return touched
}
