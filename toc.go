package bookpdf

import "context"

// TOC is the table of contents of a book.
type TOC struct {
	// Title is the landing page title.
	Title string

	// URLs holds the absolute chapter URLs in reading order.
	URLs []string
}

// TOCCollector discovers the ordered chapter list of a book.
type TOCCollector interface {
	// CollectTOC fetches the landing page at startURL and returns its
	// chapters in navigation order. Returns EDISCOVERY if the navigation
	// list or the page title cannot be located.
	CollectTOC(ctx context.Context, startURL string) (*TOC, error)
}
