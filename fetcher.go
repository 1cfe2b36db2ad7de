package beer

import "context"

// Fetcher retrieves rendered HTML from URLs.
// Implementations may use browser automation for venues whose menus are
// JavaScript-rendered.
type Fetcher interface {
	// Fetch retrieves the page at url and returns its rendered HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter rate-limits outbound fetches per domain so that scraping
// stays polite to the venues' content platforms.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait completes.
	Wait(ctx context.Context, domain string) error
}
