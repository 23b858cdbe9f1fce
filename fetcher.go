package bookpdf

import "context"

// DefaultUserAgent identifies the client to book hosts.
const DefaultUserAgent = "Mozilla/5.0 (compatible; bookpdf/1.0; +https://github.com/fwojciec/bookpdf)"

// Fetcher retrieves the HTML of a single URL.
type Fetcher interface {
	// Fetch issues one request and returns the response body as text.
	// The context deadline bounds the request; exceeding it fails with
	// ETIMEOUT. Any other failure is EFETCH. Fetch never retries.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
