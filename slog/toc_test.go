package slog_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/bookpdf"
	"github.com/fwojciec/bookpdf/mock"
	bookslog "github.com/fwojciec/bookpdf/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTOCCollector_CollectTOC(t *testing.T) {
	t.Parallel()

	t.Run("logs title and chapter count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.TOCCollector{
			CollectTOCFn: func(_ context.Context, startURL string) (*bookpdf.TOC, error) {
				return &bookpdf.TOC{Title: "Book", URLs: []string{startURL + "a.html", startURL + "b.html"}}, nil
			},
		}

		toc, err := bookslog.NewLoggingTOCCollector(inner, newDebugLogger(&buf)).
			CollectTOC(context.Background(), "https://example.com/")

		require.NoError(t, err)
		assert.Len(t, toc.URLs, 2)
		output := buf.String()
		assert.Contains(t, output, "collect toc")
		assert.Contains(t, output, "title=Book")
		assert.Contains(t, output, "chapters=2")
	})

	t.Run("logs discovery error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.TOCCollector{
			CollectTOCFn: func(context.Context, string) (*bookpdf.TOC, error) {
				return nil, bookpdf.Errorf(bookpdf.EDISCOVERY, "no summary list")
			},
		}

		_, err := bookslog.NewLoggingTOCCollector(inner, newDebugLogger(&buf)).
			CollectTOC(context.Background(), "https://example.com/")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "err=\"no summary list\"")
	})
}
