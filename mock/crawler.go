package mock

import (
	"context"

	"github.com/fwojciec/bookpdf"
)

var _ bookpdf.Crawler = (*Crawler)(nil)

// Crawler is a mock implementation of bookpdf.Crawler.
type Crawler struct {
	CrawlAllFn func(ctx context.Context, urls []string) ([]bookpdf.Slot, error)
}

func (c *Crawler) CrawlAll(ctx context.Context, urls []string) ([]bookpdf.Slot, error) {
	return c.CrawlAllFn(ctx, urls)
}
