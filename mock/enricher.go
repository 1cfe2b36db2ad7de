package mock

import (
	beer "github.com/lfe011969/local-beer-app"
)

var _ beer.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of beer.Enricher.
type Enricher struct {
	BuildLookupFn func(html string) (map[string]beer.Enrichment, error)
	ApplyFn       func(records []*beer.Record, lookup map[string]beer.Enrichment) int
}

func (e *Enricher) BuildLookup(html string) (map[string]beer.Enrichment, error) {
	return e.BuildLookupFn(html)
}

func (e *Enricher) Apply(records []*beer.Record, lookup map[string]beer.Enrichment) int {
	return e.ApplyFn(records, lookup)
}
