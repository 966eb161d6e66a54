package kbingest

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations must identify themselves with a realistic browser header
// set, since some origins reject unidentified clients.
type Fetcher interface {
	// Fetch performs a GET and returns the response body as text.
	// Non-2xx responses, connection errors and timeouts fail with an
	// EUNAVAILABLE error. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
