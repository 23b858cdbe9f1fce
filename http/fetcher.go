// Package http provides an HTTP-based implementation of bookpdf.Fetcher
// for static GitBook sites.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/bookpdf"
	"golang.org/x/net/html/charset"
)

// Ensure Fetcher implements bookpdf.Fetcher at compile time.
var _ bookpdf.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain GET requests.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	headers http.Header
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets a client-wide timeout for every request.
// Defaults to no timeout; per-attempt bounds are set by the caller's context.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides bookpdf.DefaultUserAgent.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.headers.Set("User-Agent", ua)
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(f *Fetcher) {
		f.headers.Add(key, value)
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		headers: http.Header{},
	}
	f.headers.Set("User-Agent", bookpdf.DefaultUserAgent)
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{Timeout: f.timeout}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// The body is decoded to UTF-8 using the charset declared by the server.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", bookpdf.Errorf(bookpdf.EFETCH, "invalid request for %s: %v", url, err)
	}
	req.Header = f.headers.Clone()

	resp, err := f.client.Do(req)
	if err != nil {
		return "", classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", bookpdf.Errorf(bookpdf.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if errors.Is(err, io.EOF) {
		// Empty body: nothing to sniff.
		return "", nil
	}
	if err != nil {
		return "", bookpdf.Errorf(bookpdf.EFETCH, "decoding %s: %v", url, err)
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return "", classify(url, err)
	}

	return string(b), nil
}

// Close releases idle connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// classify maps transport errors onto bookpdf error codes.
func classify(url string, err error) error {
	if IsTimeout(err) {
		return bookpdf.Errorf(bookpdf.ETIMEOUT, "timed out fetching %s: %v", url, err)
	}
	return bookpdf.Errorf(bookpdf.EFETCH, "fetching %s: %v", url, err)
}

// IsTimeout reports whether err was caused by an expired deadline.
func IsTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
