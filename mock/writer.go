package mock

import (
	"context"

	beer "github.com/lfe011969/local-beer-app"
)

var _ beer.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of beer.RecordWriter.
type RecordWriter struct {
	WriteRecordsFn func(ctx context.Context, venue *beer.Venue, records []*beer.Record) error
}

func (w *RecordWriter) WriteRecords(ctx context.Context, venue *beer.Venue, records []*beer.Record) error {
	return w.WriteRecordsFn(ctx, venue, records)
}
