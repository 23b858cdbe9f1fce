package mock

import (
	"context"

	"github.com/fwojciec/bookpdf"
)

var _ bookpdf.TOCCollector = (*TOCCollector)(nil)

// TOCCollector is a mock implementation of bookpdf.TOCCollector.
type TOCCollector struct {
	CollectTOCFn func(ctx context.Context, startURL string) (*bookpdf.TOC, error)
}

func (c *TOCCollector) CollectTOC(ctx context.Context, startURL string) (*bookpdf.TOC, error) {
	return c.CollectTOCFn(ctx, startURL)
}
