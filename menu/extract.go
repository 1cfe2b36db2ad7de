package menu

import (
	"time"

	beer "github.com/lfe011969/local-beer-app"
)

// Ensure Extractor implements beer.MenuExtractor at compile time.
var _ beer.MenuExtractor = (*Extractor)(nil)

// Extractor is the generic extraction engine: one implementation
// interpreting per-venue profiles rather than one bespoke procedure per
// venue. It tokenizes the document once, runs the scan state machine over
// the stream, resolves fields, stamps identity fields, and deduplicates.
type Extractor struct {
	tokenizers beer.TokenizerRegistry
}

// NewExtractor creates an Extractor backed by the given tokenizer registry.
func NewExtractor(tokenizers beer.TokenizerRegistry) *Extractor {
	return &Extractor{tokenizers: tokenizers}
}

// ExtractMenu extracts the venue's records from one rendered document.
// Records preserve source document order; duplicates by ID collapse to the
// first-seen record. A document without recognizable structure yields zero
// records and no error.
func (e *Extractor) ExtractMenu(venue *beer.Venue, html string, scrapedAt time.Time) (*beer.Extraction, error) {
	if err := venue.Validate(); err != nil {
		return nil, err
	}

	tokenizer := e.tokenizers.GetForVenue(venue)
	tokens, err := tokenizer.Tokenize(html, venue)
	if err != nil {
		return nil, err
	}

	scanned := scan(tokens, venue)
	stamp := beer.Timestamp(scrapedAt)

	records := make([]*beer.Record, 0, len(scanned.entries))
	dropped := scanned.dropped

	for i := range scanned.entries {
		rec, ok := resolve(&scanned.entries[i], venue)
		if !ok {
			dropped++
			continue
		}

		rec.ID = beer.RecordID(venue.Name, rec.Name)
		rec.BreweryName = venue.Name
		rec.BreweryCity = venue.City
		rec.SourceURL = venue.SourceURL
		rec.LastScraped = stamp

		if err := rec.Validate(); err != nil {
			dropped++
			continue
		}
		records = append(records, rec)
	}

	return &beer.Extraction{
		Records: beer.Dedupe(records),
		Dropped: dropped,
	}, nil
}
