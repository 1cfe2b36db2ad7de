package main

import (
	"fmt"

	beer "github.com/lfe011969/local-beer-app"
	"github.com/lfe011969/local-beer-app/fs"
	"github.com/lfe011969/local-beer-app/goquery"
	beerhttp "github.com/lfe011969/local-beer-app/http"
	"github.com/lfe011969/local-beer-app/rod"
	"github.com/lfe011969/local-beer-app/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	venues, err := selectVenues(deps.Venues, c.Venue)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", beer.ErrorMessage(err))
		return err
	}

	scraper, cleanup, err := newScraper(deps, c.Browser, c.Concurrency)
	if err != nil {
		return err
	}
	defer cleanup()
	scraper.Writer = fs.NewWriter(c.Out)

	results, err := scraper.Run(deps.Ctx, venues)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "%s: %s\n", r.Venue.Name, beer.ErrorMessage(r.Err))
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s: %d records (%d dropped, %d enriched)\n",
			r.Venue.Name, len(r.Records), r.Dropped, r.Enriched)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d venues failed", failed, len(results))
	}
	return nil
}

// selectVenues narrows the configured set to the requested names.
// An empty request selects every venue.
func selectVenues(venues []*beer.Venue, names []string) ([]*beer.Venue, error) {
	if len(names) == 0 {
		return venues, nil
	}

	selected := make([]*beer.Venue, 0, len(names))
	for _, name := range names {
		v, err := beer.FindVenue(venues, name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, v)
	}
	return selected, nil
}

// newScraper wires the fetchers, limiter, and enricher for a run.
// The returned cleanup func releases fetcher resources.
func newScraper(deps *Dependencies, browser bool, concurrency int) (*scrape.Scraper, func(), error) {
	fetcher := beerhttp.NewFetcher()

	scraper := &scrape.Scraper{
		Fetcher:     fetcher,
		Extractor:   deps.Extractor,
		Enricher:    goquery.NewEnricher(),
		Limiter:     scrape.NewDomainLimiter(1.0),
		Logger:      deps.Logger,
		Concurrency: concurrency,
	}
	cleanup := func() { _ = fetcher.Close() }

	if browser {
		jsFetcher, err := rod.NewFetcher()
		if err != nil {
			fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed for --browser")
			return nil, nil, fmt.Errorf("failed to start browser: %w", err)
		}
		scraper.JSFetcher = jsFetcher
		cleanup = func() {
			_ = jsFetcher.Close()
			_ = fetcher.Close()
		}
	}

	return scraper, cleanup, nil
}
