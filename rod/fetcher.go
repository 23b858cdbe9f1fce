package rod

import (
	"context"
	"errors"

	"github.com/fwojciec/bookpdf"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements bookpdf.Fetcher at compile time.
var _ bookpdf.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines; each Fetch
// opens its own tab.
type Fetcher struct {
	browser *Browser
}

// NewFetcher creates a Fetcher backed by b. The caller owns b.
func NewFetcher(b *Browser) *Fetcher {
	return &Fetcher{browser: b}
}

// Fetch navigates to the URL, waits for the load event and returns the
// rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", classify(ctx, url, err)
	}

	browser, err := f.browser.Get()
	if err != nil {
		if bookpdf.ErrorCode(err) == bookpdf.EINVALID {
			return "", err
		}
		return "", bookpdf.Errorf(bookpdf.EFETCH, "%v", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", bookpdf.Errorf(bookpdf.EFETCH, "opening tab for %s: %v", url, err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", classify(ctx, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", classify(ctx, url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", classify(ctx, url, err)
	}

	return html, nil
}

// Close is a no-op; the Browser is closed by its owner.
func (f *Fetcher) Close() error {
	return nil
}

func classify(ctx context.Context, url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return bookpdf.Errorf(bookpdf.ETIMEOUT, "timed out fetching %s", url)
	}
	return bookpdf.Errorf(bookpdf.EFETCH, "fetching %s: %v", url, err)
}
