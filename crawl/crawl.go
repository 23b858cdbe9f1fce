// Package crawl provides the book crawling pipeline: fetching every chapter
// concurrently, extracting its content and reassembling the fragments in
// table-of-contents order.
package crawl

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/bookpdf"
	"golang.org/x/sync/errgroup"
)

// Ensure Crawler implements bookpdf.Crawler at compile time.
var _ bookpdf.Crawler = (*Crawler)(nil)

// Crawler fetches and extracts the chapters of a book.
type Crawler struct {
	Fetcher   bookpdf.Fetcher
	Extractor bookpdf.Extractor

	// FirstAttemptTimeout bounds the first fetch of each page.
	// Defaults to DefaultFirstAttemptTimeout. Negative disables the bound.
	FirstAttemptTimeout time.Duration

	// Progress, if set, receives page events from all crawl goroutines.
	Progress bookpdf.ProgressFunc
}

func (c *Crawler) firstAttemptTimeout() time.Duration {
	if c.FirstAttemptTimeout == 0 {
		return DefaultFirstAttemptTimeout
	}
	return c.FirstAttemptTimeout
}

func (c *Crawler) notify(ev bookpdf.ProgressEvent) {
	if c.Progress != nil {
		c.Progress(ev)
	}
}

// CrawlOne fetches the page at urls[index], extracts its fragment and stores
// it in slots[index]. It touches no other slot.
func (c *Crawler) CrawlOne(ctx context.Context, index int, url string, slots []bookpdf.Slot) error {
	total := len(slots)
	c.notify(bookpdf.ProgressEvent{Type: bookpdf.ProgressStarted, Index: index, Total: total, URL: url, Attempt: 1})

	fetch := func(ctx context.Context, url string) (string, error) {
		return c.Fetcher.Fetch(ctx, url)
	}
	onRetry := func(err error) {
		c.notify(bookpdf.ProgressEvent{Type: bookpdf.ProgressRetrying, Index: index, Total: total, URL: url, Attempt: 2, Err: err})
	}

	html, err := FetchWithTimeoutRetry(ctx, url, fetch, c.firstAttemptTimeout(), onRetry)
	if err != nil {
		c.notify(bookpdf.ProgressEvent{Type: bookpdf.ProgressFailed, Index: index, Total: total, URL: url, Err: err})
		return err
	}

	fragment, err := c.Extractor.Extract(html)
	if err != nil {
		c.notify(bookpdf.ProgressEvent{Type: bookpdf.ProgressFailed, Index: index, Total: total, URL: url, Err: err})
		return err
	}

	slots[index] = bookpdf.Slot{Fragment: fragment, Filled: true}

	c.notify(bookpdf.ProgressEvent{
		Type:  bookpdf.ProgressDone,
		Index: index,
		Total: total,
		URL:   url,
		Bytes: len(fragment),
		Hash:  ComputeHash(fragment),
	})
	return nil
}

// CrawlAll crawls every URL concurrently, one goroutine per URL, and waits
// for all of them. Pages fail independently: one failure neither cancels
// nor retries another. If any page failed, a *bookpdf.CrawlError listing
// every failure is returned and no slots are returned.
func (c *Crawler) CrawlAll(ctx context.Context, urls []string) ([]bookpdf.Slot, error) {
	slots := make([]bookpdf.Slot, len(urls))
	errs := make([]error, len(urls))

	// Tasks keep their error in errs and return nil so that one failure
	// never cancels its siblings.
	var g errgroup.Group
	for i, url := range urls {
		g.Go(func() error {
			errs[i] = c.CrawlOne(ctx, i, url, slots)
			return nil
		})
	}
	_ = g.Wait()

	var failures []bookpdf.PageFailure
	for i, err := range errs {
		if err != nil {
			failures = append(failures, bookpdf.PageFailure{Index: i, URL: urls[i], Err: err})
		}
	}
	if len(failures) > 0 {
		return nil, &bookpdf.CrawlError{Total: len(urls), Failures: failures}
	}

	return slots, nil
}

// Assemble concatenates slot fragments in index order.
// Every slot must be filled.
func Assemble(slots []bookpdf.Slot) (string, error) {
	n := 0
	for i, s := range slots {
		if !s.Filled {
			return "", bookpdf.Errorf(bookpdf.EINTERNAL, "slot %d is empty", i)
		}
		n += len(s.Fragment)
	}

	var b strings.Builder
	b.Grow(n)
	for _, s := range slots {
		b.WriteString(s.Fragment)
	}
	return b.String(), nil
}
