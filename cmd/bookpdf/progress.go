package main

import (
	"fmt"
	"io"
	"sync"

	"github.com/fwojciec/bookpdf"
	"github.com/fwojciec/bookpdf/crawl"
)

// MultiProgress fans a progress event out to every non-nil fn.
func MultiProgress(fns ...bookpdf.ProgressFunc) bookpdf.ProgressFunc {
	return func(ev bookpdf.ProgressEvent) {
		for _, fn := range fns {
			if fn != nil {
				fn(ev)
			}
		}
	}
}

// NewProgressPrinter returns a ProgressFunc that prints a completion counter
// to w. It is safe for concurrent use.
func NewProgressPrinter(w io.Writer) bookpdf.ProgressFunc {
	var (
		mu        sync.Mutex
		completed int
	)
	return func(ev bookpdf.ProgressEvent) {
		if ev.Type != bookpdf.ProgressDone {
			return
		}
		mu.Lock()
		defer mu.Unlock()
		completed++
		fmt.Fprintf(w, "\r[%d/%d] %s", completed, ev.Total, crawl.TruncateURL(ev.URL, 60))
		if completed == ev.Total {
			// Clear progress line
			fmt.Fprintf(w, "\r%80s\r", "")
		}
	}
}
