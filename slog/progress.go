package slog

import (
	"log/slog"

	"github.com/fwojciec/bookpdf"
)

// NewProgressLogger returns a ProgressFunc that logs page crawl events.
// Retries are logged at warn level and failures at error level.
func NewProgressLogger(logger *slog.Logger) bookpdf.ProgressFunc {
	return func(ev bookpdf.ProgressEvent) {
		attrs := []any{
			"index", ev.Index,
			"total", ev.Total,
			"url", ev.URL,
		}
		switch ev.Type {
		case bookpdf.ProgressStarted:
			logger.Debug("crawl started", attrs...)
		case bookpdf.ProgressRetrying:
			logger.Warn("crawl retrying", append(attrs, "attempt", ev.Attempt, "err", bookpdf.ErrorMessage(ev.Err))...)
		case bookpdf.ProgressDone:
			logger.Info("crawl done", append(attrs, "bytes", ev.Bytes, "hash", ev.Hash)...)
		case bookpdf.ProgressFailed:
			logger.Error("crawl failed", append(attrs, "code", bookpdf.ErrorCode(ev.Err), "err", bookpdf.ErrorMessage(ev.Err))...)
		}
	}
}
