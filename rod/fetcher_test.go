//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/fwojciec/bookpdf"
	"github.com/fwojciec/bookpdf/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBrowser honors ROD_BROWSER_BIN so the tests run in containers.
func newBrowser(t *testing.T) *rod.Browser {
	t.Helper()
	var opts []rod.BrowserOption
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		opts = append(opts, rod.WithBin(bin), rod.WithNoSandbox(true))
	}
	b := rod.NewBrowser(opts...)
	t.Cleanup(func() { _ = b.Close() })
	return b
}

func TestFetcher_Fetch_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Test Page</title></head>
<body>
<ul class="summary"></ul>
<script>
document.querySelector('.summary').innerHTML = '<li class="chapter" data-path="a.html"></li>';
</script>
</body>
</html>`))
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher(newBrowser(t))
	defer fetcher.Close()

	html, err := fetcher.Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, html, `data-path="a.html"`)
}

func TestFetcher_Fetch_DeadlineIsTimeout(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		_, _ = w.Write([]byte(`<html><body>delayed</body></html>`))
	}))
	defer srv.Close()

	fetcher := rod.NewFetcher(newBrowser(t))

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	_, err := fetcher.Fetch(ctx, srv.URL)

	require.Error(t, err)
	assert.Equal(t, bookpdf.ETIMEOUT, bookpdf.ErrorCode(err))
}

func TestFetcher_Fetch_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	b := newBrowser(t)
	require.NoError(t, b.Close())

	_, err := rod.NewFetcher(b).Fetch(context.Background(), "http://example.com")

	require.Error(t, err)
	assert.Equal(t, bookpdf.EINVALID, bookpdf.ErrorCode(err))
	assert.Contains(t, bookpdf.ErrorMessage(err), "closed")
}

func TestBrowser_Close_Idempotent(t *testing.T) {
	t.Parallel()

	b := newBrowser(t)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
}
