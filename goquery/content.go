package goquery

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookpdf"
)

// Ensure ContentExtractor implements bookpdf.Extractor at compile time.
var _ bookpdf.Extractor = (*ContentExtractor)(nil)

// contentSelector matches the GitBook chapter body.
const contentSelector = "section.normal.markdown-section"

// ContentExtractor extracts the chapter body of a GitBook page.
//
// When a page contains several content sections the first one wins.
// The first footer directly inside the section (GitBook's "last modified"
// and plugin footers) is removed before serialization.
type ContentExtractor struct{}

// NewContentExtractor creates a new ContentExtractor.
func NewContentExtractor() *ContentExtractor {
	return &ContentExtractor{}
}

// Extract returns the outer HTML of the content section with entities decoded.
func (e *ContentExtractor) Extract(page string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", bookpdf.Errorf(bookpdf.EEXTRACT, "failed to parse HTML: %v", err)
	}

	section := doc.Find(contentSelector).First()
	if section.Length() == 0 {
		return "", bookpdf.Errorf(bookpdf.EEXTRACT, "no %s element", contentSelector)
	}

	section.ChildrenFiltered("footer").First().Remove()

	out, err := goquery.OuterHtml(section)
	if err != nil {
		return "", bookpdf.Errorf(bookpdf.EEXTRACT, "serializing content: %v", err)
	}

	return html.UnescapeString(out), nil
}
