package mock

import (
	"context"

	beer "github.com/lfe011969/local-beer-app"
)

var _ beer.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of beer.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
