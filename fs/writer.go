// Package fs provides file-based output for extracted record sets.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"

	beer "github.com/lfe011969/local-beer-app"
)

// Ensure Writer implements beer.RecordWriter at compile time.
var _ beer.RecordWriter = (*Writer)(nil)

// Writer writes one JSON file per venue into a base directory. Absent
// optional fields serialize as null; record order is preserved. A file
// whose content would be unchanged is not rewritten, keeping file
// modification times meaningful for downstream consumers.
type Writer struct {
	baseDir string
}

// NewWriter creates a Writer that writes into baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Path returns the output file path for a venue.
func (w *Writer) Path(venue *beer.Venue) string {
	return filepath.Join(w.baseDir, venue.Slug()+".json")
}

// WriteRecords writes the venue's records as an indented JSON array.
func (w *Writer) WriteRecords(ctx context.Context, venue *beer.Venue, records []*beer.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := venue.Validate(); err != nil {
		return err
	}

	if records == nil {
		records = []*beer.Record{} // an empty menu is "[]", not "null"
	}

	payload, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	payload = append(payload, '\n')

	path := w.Path(venue)
	if existing, err := os.ReadFile(path); err == nil {
		if xxhash.Sum64(existing) == xxhash.Sum64(payload) {
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0644)
}
