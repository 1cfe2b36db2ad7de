package beer

import "time"

// Extraction holds the outcome of extracting one venue's menu document.
type Extraction struct {
	// Records in source document order, deduplicated by ID.
	Records []*Record

	// Dropped counts entries discarded during the scan (no stat line found
	// within the lookahead budget, or an empty resolved name).
	Dropped int
}

// MenuExtractor turns one rendered menu document into normalized records.
// Extraction performs no I/O; degraded pages reduce output cardinality
// rather than failing.
type MenuExtractor interface {
	// ExtractMenu extracts the venue's records from html. scrapedAt is
	// stamped on every record of the run.
	ExtractMenu(venue *Venue, html string, scrapedAt time.Time) (*Extraction, error)
}
