package beer

import (
	"context"
	"time"
)

// Coarse record categories derived from tap-group labels.
const (
	CategoryOnTap      = "on_tap"
	CategoryGuestNA    = "guest_na"
	CategoryComingSoon = "coming_soon"
)

// Record represents one normalized beer listing extracted from a venue menu.
// Optional fields (Style, ABV, IBU) are pointers so that absent values
// serialize as null rather than empty strings or zeroes.
type Record struct {
	ID           string   `json:"id"`
	BreweryName  string   `json:"breweryName"`
	BreweryCity  string   `json:"breweryCity"`
	ProducerName string   `json:"producerName"`
	Name         string   `json:"name"`
	Style        *string  `json:"style"`
	ABV          *float64 `json:"abv"`
	IBU          *int     `json:"ibu"`
	TapGroup     string   `json:"tapGroup"`
	Category     string   `json:"category"`
	SourceURL    string   `json:"sourceUrl"`
	LastScraped  string   `json:"lastScraped"`
}

// Validate returns an error if the record contains invalid fields.
func (r *Record) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "record ID required")
	}
	if r.Name == "" {
		return Errorf(EINVALID, "record name required")
	}
	if r.BreweryName == "" {
		return Errorf(EINVALID, "record brewery name required")
	}
	if r.ABV != nil && *r.ABV < 0 {
		return Errorf(EINVALID, "record ABV cannot be negative")
	}
	return nil
}

// Timestamp formats a scrape time as the UTC ISO-8601 string stored in
// Record.LastScraped. All records of one extraction run share one value.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Dedupe collapses records that share an ID, keeping the first-seen record
// per ID. First-seen wins so that output order follows source document
// order deterministically.
func Dedupe(records []*Record) []*Record {
	if len(records) == 0 {
		return records
	}

	seen := make(map[string]bool, len(records))
	out := make([]*Record, 0, len(records))
	for _, r := range records {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		out = append(out, r)
	}
	return out
}

// RecordWriter persists the extracted record set for a venue.
type RecordWriter interface {
	// WriteRecords writes one venue's records to the output boundary.
	// The record order must be preserved as given.
	WriteRecords(ctx context.Context, venue *Venue, records []*Record) error
}
