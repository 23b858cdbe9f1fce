package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookpdf"
)

// Ensure LoggingRenderer implements bookpdf.Renderer.
var _ bookpdf.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with logging.
type LoggingRenderer struct {
	next   bookpdf.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next bookpdf.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// Render delegates to the wrapped renderer and logs input and output sizes.
func (r *LoggingRenderer) Render(ctx context.Context, html, css string) (out []byte, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"html_bytes", len(html),
			"css_bytes", len(css),
			"bytes", len(out),
			"duration", time.Since(begin),
		}
		if err != nil {
			r.logger.Error("render", append(attrs, "err", bookpdf.ErrorMessage(err))...)
			return
		}
		r.logger.Info("render", attrs...)
	}(time.Now())
	return r.next.Render(ctx, html, css)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}
