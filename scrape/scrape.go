// Package scrape orchestrates menu extraction runs: fetching each venue's
// page, running the extraction engine, applying best-effort enrichment,
// and handing the record set to the output boundary.
package scrape

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	beer "github.com/lfe011969/local-beer-app"
)

// Scraper runs extraction for a set of venues with bounded concurrency.
// Each venue is an independent unit of work: one fetch, one extraction,
// one output file. Venues never share state.
type Scraper struct {
	// Fetcher retrieves static pages. JSFetcher, when set, is used for
	// venues whose pages require JavaScript rendering.
	Fetcher   beer.Fetcher
	JSFetcher beer.Fetcher

	Extractor beer.MenuExtractor
	Enricher  beer.Enricher
	Writer    beer.RecordWriter
	Limiter   beer.DomainLimiter
	Logger    *slog.Logger

	// Concurrency bounds simultaneous venue runs. Defaults to 4.
	Concurrency int

	// RetryDelays configures fetch backoff. Defaults to DefaultRetryDelays.
	RetryDelays []time.Duration
}

// VenueResult holds the per-venue outcome of a run.
type VenueResult struct {
	Venue    *beer.Venue
	Records  []*beer.Record
	Dropped  int
	Enriched int
	Err      error
}

// Run scrapes all venues and returns one result per venue, in input order.
// A fetch failure is fatal for that venue only: its result carries the
// error and nothing is written for it. Run itself fails only on context
// cancellation.
func (s *Scraper) Run(ctx context.Context, venues []*beer.Venue) ([]VenueResult, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	// One timestamp per run: every record of the run carries the same
	// lastScraped value.
	scrapedAt := time.Now().UTC()
	runID := uuid.NewString()

	results := make([]VenueResult, len(venues))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, venue := range venues {
		i, venue := i, venue
		g.Go(func() error {
			results[i] = s.scrapeVenue(gctx, venue, scrapedAt, runID)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// scrapeVenue runs the full pipeline for one venue.
func (s *Scraper) scrapeVenue(ctx context.Context, venue *beer.Venue, scrapedAt time.Time, runID string) VenueResult {
	result := VenueResult{Venue: venue}
	logger := s.logger().With("run", runID, "venue", venue.Name)

	html, err := s.fetch(ctx, venue, venue.SourceURL)
	if err != nil {
		// Fetch failure is the one fatal error class for a venue: the
		// caller must be able to tell it apart from a degraded parse.
		result.Err = beer.Errorf(beer.EUNAVAILABLE, "fetch %s: %v", venue.SourceURL, err)
		return result
	}

	extraction, err := s.Extractor.ExtractMenu(venue, html, scrapedAt)
	if err != nil {
		result.Err = err
		return result
	}
	result.Records = extraction.Records
	result.Dropped = extraction.Dropped

	if len(result.Records) == 0 {
		logger.Warn("no records extracted", "url", venue.SourceURL)
	}

	if venue.EnrichmentURL != "" && s.Enricher != nil {
		result.Enriched = s.enrich(ctx, venue, result.Records, logger)
	}

	if s.Writer != nil {
		if err := s.Writer.WriteRecords(ctx, venue, result.Records); err != nil {
			result.Err = err
			return result
		}
	}

	logger.Info("venue scraped",
		"records", len(result.Records),
		"dropped", result.Dropped,
		"enriched", result.Enriched,
	)
	return result
}

// enrich fetches the venue's secondary document and fills missing fields.
// Enrichment is best-effort: any failure is logged and skipped, never
// escalated.
func (s *Scraper) enrich(ctx context.Context, venue *beer.Venue, records []*beer.Record, logger *slog.Logger) int {
	html, err := s.fetch(ctx, venue, venue.EnrichmentURL)
	if err != nil {
		logger.Warn("enrichment fetch failed, skipping", "url", venue.EnrichmentURL, "error", err)
		return 0
	}

	lookup, err := s.Enricher.BuildLookup(html)
	if err != nil {
		logger.Warn("enrichment parse failed, skipping", "url", venue.EnrichmentURL, "error", err)
		return 0
	}

	return s.Enricher.Apply(records, lookup)
}

// fetch rate-limits, picks the right fetcher for the venue, and retries
// transient failures.
func (s *Scraper) fetch(ctx context.Context, venue *beer.Venue, pageURL string) (string, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, domainOf(pageURL)); err != nil {
			return "", err
		}
	}

	fetcher := s.Fetcher
	if venue.RequiresJS && s.JSFetcher != nil {
		fetcher = s.JSFetcher
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	return fetchWithRetry(ctx, pageURL, fetcher.Fetch, s.logger(), delays)
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Hostname()
}
