// Package goquery implements GitBook page parsing with goquery: the
// table-of-contents collector and the chapter content extractor.
package goquery

import (
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/bookpdf"
)

// Ensure TOCCollector implements bookpdf.TOCCollector at compile time.
var _ bookpdf.TOCCollector = (*TOCCollector)(nil)

// Selectors for the GitBook (v3 / HonKit) summary sidebar.
const (
	summarySelector = "ul.summary"
	chapterClass    = "chapter"
	chapterPathAttr = "data-path"
)

// TOCCollector reads the chapter list from a book's summary sidebar.
//
// A GitBook summary looks like:
//
//	<ul class="summary">
//	  <li class="header">Part I</li>
//	  <li class="chapter" data-path="intro.html">…</li>
//	  <li class="divider"></li>
//	</ul>
//
// Only items carrying the "chapter" class are kept; headers and dividers
// are skipped. Nested chapters are returned in document order.
type TOCCollector struct {
	fetcher bookpdf.Fetcher
}

// NewTOCCollector creates a TOCCollector that fetches landing pages with f.
func NewTOCCollector(f bookpdf.Fetcher) *TOCCollector {
	return &TOCCollector{fetcher: f}
}

// CollectTOC fetches startURL and parses its summary list.
func (c *TOCCollector) CollectTOC(ctx context.Context, startURL string) (*bookpdf.TOC, error) {
	html, err := c.fetcher.Fetch(ctx, startURL)
	if err != nil {
		return nil, bookpdf.Errorf(bookpdf.EDISCOVERY, "fetching landing page: %s", bookpdf.ErrorMessage(err))
	}
	return ParseTOC(html, startURL)
}

// ParseTOC extracts the book title and chapter URLs from landing page HTML.
// Relative chapter paths are resolved against baseURL. Title is empty when
// the page has no <title> or only whitespace in it.
func ParseTOC(html string, baseURL string) (*bookpdf.TOC, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, bookpdf.Errorf(bookpdf.EINVALID, "invalid start URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, bookpdf.Errorf(bookpdf.EDISCOVERY, "failed to parse HTML: %v", err)
	}

	summary := doc.Find(summarySelector).First()
	if summary.Length() == 0 {
		return nil, bookpdf.Errorf(bookpdf.EDISCOVERY, "no summary list at %s", baseURL)
	}

	var urls []string
	var resolveErr error
	summary.Find("li").EachWithBreak(func(_ int, li *goquery.Selection) bool {
		if !li.HasClass(chapterClass) {
			return true
		}
		path, ok := li.Attr(chapterPathAttr)
		if !ok {
			return true
		}
		ref, err := url.Parse(strings.TrimSpace(path))
		if err != nil {
			resolveErr = bookpdf.Errorf(bookpdf.EDISCOVERY, "invalid chapter path %q: %v", path, err)
			return false
		}
		urls = append(urls, base.ResolveReference(ref).String())
		return true
	})
	if resolveErr != nil {
		return nil, resolveErr
	}

	if len(urls) == 0 {
		return nil, bookpdf.Errorf(bookpdf.EDISCOVERY, "summary list at %s has no chapters", baseURL)
	}

	return &bookpdf.TOC{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
		URLs:  urls,
	}, nil
}
