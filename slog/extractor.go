// Package slog provides logging decorators for engine interfaces.
package slog

import (
	"log/slog"
	"time"

	beer "github.com/lfe011969/local-beer-app"
)

// Ensure LoggingExtractor implements beer.MenuExtractor.
var _ beer.MenuExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a MenuExtractor with structured logging: record
// and dropped-entry counts per venue, plus a warning when a document
// yields nothing (a redesigned or temporarily empty menu page).
type LoggingExtractor struct {
	next   beer.MenuExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next beer.MenuExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractMenu delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractMenu(venue *beer.Venue, html string, scrapedAt time.Time) (*beer.Extraction, error) {
	begin := time.Now()
	extraction, err := e.next.ExtractMenu(venue, html, scrapedAt)
	if err != nil {
		e.logger.Error("menu extraction failed",
			"venue", venue.Name,
			"error", err,
		)
		return nil, err
	}

	if len(extraction.Records) == 0 {
		e.logger.Warn("menu extraction found no records",
			"venue", venue.Name,
			"url", venue.SourceURL,
		)
	}

	e.logger.Info("menu extracted",
		"venue", venue.Name,
		"records", len(extraction.Records),
		"dropped", extraction.Dropped,
		"duration", time.Since(begin),
	)
	return extraction, nil
}
