package main

import (
	"fmt"

	beer "github.com/lfe011969/local-beer-app"
)

// Run executes the preview command: a scrape run with the output boundary
// left unwired, printing records instead.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	venues, err := selectVenues(deps.Venues, c.Venue)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", beer.ErrorMessage(err))
		return err
	}

	scraper, cleanup, err := newScraper(deps, c.Browser, 1)
	if err != nil {
		return err
	}
	defer cleanup()

	results, err := scraper.Run(deps.Ctx, venues)
	if err != nil {
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", r.Venue.Name, beer.ErrorMessage(r.Err))
			continue
		}

		fmt.Fprintf(deps.Stdout, "%s (%d records, %d dropped)\n",
			r.Venue.Name, len(r.Records), r.Dropped)
		for _, rec := range r.Records {
			fmt.Fprintln(deps.Stdout, formatRecord(rec))
		}
	}

	return nil
}

func formatRecord(rec *beer.Record) string {
	line := fmt.Sprintf("  [%s] %s", rec.TapGroup, rec.Name)
	if rec.Style != nil {
		line += ", " + *rec.Style
	}
	if rec.ABV != nil {
		line += fmt.Sprintf("  %.1f%%", *rec.ABV)
	}
	if rec.IBU != nil {
		line += fmt.Sprintf("  %d IBU", *rec.IBU)
	}
	return line + "  by " + rec.ProducerName
}
