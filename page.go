package bookpdf

import "context"

// Slot holds the fragment of one page. Slots are indexed like the URL list
// they were crawled from and each is written by exactly one task.
type Slot struct {
	Fragment string
	Filled   bool
}

// ProgressType identifies a page crawl event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressRetrying
	ProgressDone
	ProgressFailed
)

// String returns the event name used in logs.
func (t ProgressType) String() string {
	switch t {
	case ProgressStarted:
		return "started"
	case ProgressRetrying:
		return "retrying"
	case ProgressDone:
		return "done"
	case ProgressFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProgressEvent reports the state of a single page crawl.
type ProgressEvent struct {
	Type    ProgressType
	Index   int
	Total   int
	URL     string
	Attempt int
	Bytes   int    // fragment size, set on ProgressDone
	Hash    string // fragment digest, set on ProgressDone
	Err     error
}

// ProgressFunc receives crawl events. Pages are crawled concurrently, so
// implementations must be safe for concurrent use.
type ProgressFunc func(ProgressEvent)

// Crawler fetches the fragments of an ordered URL list.
type Crawler interface {
	// CrawlAll returns one filled slot per URL, in URL order, or an error
	// if any page could not be crawled.
	CrawlAll(ctx context.Context, urls []string) ([]Slot, error)
}
