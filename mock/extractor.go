package mock

import (
	"time"

	beer "github.com/lfe011969/local-beer-app"
)

var _ beer.MenuExtractor = (*MenuExtractor)(nil)

// MenuExtractor is a mock implementation of beer.MenuExtractor.
type MenuExtractor struct {
	ExtractMenuFn func(venue *beer.Venue, html string, scrapedAt time.Time) (*beer.Extraction, error)
}

func (e *MenuExtractor) ExtractMenu(venue *beer.Venue, html string, scrapedAt time.Time) (*beer.Extraction, error) {
	return e.ExtractMenuFn(venue, html, scrapedAt)
}
