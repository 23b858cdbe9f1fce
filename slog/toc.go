package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookpdf"
)

// Ensure LoggingTOCCollector implements bookpdf.TOCCollector.
var _ bookpdf.TOCCollector = (*LoggingTOCCollector)(nil)

// LoggingTOCCollector wraps a TOCCollector with logging.
type LoggingTOCCollector struct {
	next   bookpdf.TOCCollector
	logger *slog.Logger
}

// NewLoggingTOCCollector creates a new LoggingTOCCollector.
func NewLoggingTOCCollector(next bookpdf.TOCCollector, logger *slog.Logger) *LoggingTOCCollector {
	return &LoggingTOCCollector{next: next, logger: logger}
}

// CollectTOC delegates to the wrapped collector and logs the result.
func (c *LoggingTOCCollector) CollectTOC(ctx context.Context, startURL string) (toc *bookpdf.TOC, err error) {
	defer func(begin time.Time) {
		if err != nil {
			c.logger.Error("collect toc",
				"url", startURL,
				"duration", time.Since(begin),
				"err", bookpdf.ErrorMessage(err),
			)
			return
		}
		var title string
		var chapters int
		if toc != nil {
			title, chapters = toc.Title, len(toc.URLs)
		}
		c.logger.Info("collect toc",
			"url", startURL,
			"title", title,
			"chapters", chapters,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return c.next.CollectTOC(ctx, startURL)
}
