package crawl

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/fwojciec/bookpdf"
)

// DefaultFirstAttemptTimeout bounds the first request for each page.
const DefaultFirstAttemptTimeout = 10 * time.Second

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryFunc is called before the second attempt with the error that
// caused it.
type RetryFunc func(err error)

// FetchWithTimeoutRetry fetches url with the first attempt bounded by
// timeout. If and only if that attempt fails with ETIMEOUT, the fetch is
// retried exactly once with no bound other than ctx. Any other error is
// returned immediately.
//
// A non-positive timeout disables the first-attempt bound.
func FetchWithTimeoutRetry(ctx context.Context, url string, fetch FetchFunc, timeout time.Duration, onRetry RetryFunc) (string, error) {
	attempt := 0
	return retry.DoWithData(
		func() (string, error) {
			attempt++
			if attempt > 1 || timeout <= 0 {
				return fetch(ctx, url)
			}
			actx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			html, err := fetch(actx, url)
			if err != nil && actx.Err() != nil && ctx.Err() == nil && bookpdf.ErrorCode(err) != bookpdf.ETIMEOUT {
				// The attempt's own deadline fired; treat it as a timeout
				// whatever the fetcher reported.
				err = bookpdf.Errorf(bookpdf.ETIMEOUT, "timed out fetching %s after %s", url, timeout)
			}
			return html, err
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.RetryIf(func(err error) bool {
			return bookpdf.ErrorCode(err) == bookpdf.ETIMEOUT
		}),
		retry.DelayType(retry.FixedDelay),
		retry.Delay(0),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			if n == 0 && onRetry != nil {
				onRetry(err)
			}
		}),
	)
}
