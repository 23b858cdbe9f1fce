package bookpdf

import (
	"errors"
	"fmt"
	"strings"
)

// Application error codes.
const (
	EINTERNAL  = "internal"
	EINVALID   = "invalid"
	EDISCOVERY = "discovery"
	ETIMEOUT   = "timeout"
	EFETCH     = "fetch"
	EEXTRACT   = "extract"
	ECRAWL     = "crawl"
	ERENDER    = "render"
)

// Error represents an application-specific error. Application errors can be
// unwrapped by the caller to extract out the code & message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface. Not used by the application otherwise.
func (e *Error) Error() string {
	return fmt.Sprintf("bookpdf error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var crawlErr *CrawlError
	if errors.As(err, &crawlErr) {
		return ECRAWL
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var crawlErr *CrawlError
	if errors.As(err, &crawlErr) {
		return crawlErr.message()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// PageFailure records why the page at Index could not be crawled.
type PageFailure struct {
	Index int
	URL   string
	Err   error
}

// CrawlError is returned when one or more pages of a book fail to crawl.
// Failures are ordered by page index.
type CrawlError struct {
	Total    int
	Failures []PageFailure
}

// Error implements the error interface.
func (e *CrawlError) Error() string {
	return fmt.Sprintf("bookpdf error: code=%s message=%s", ECRAWL, e.message())
}

// URLs returns the URLs of the failed pages in index order.
func (e *CrawlError) URLs() []string {
	urls := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		urls[i] = f.URL
	}
	return urls
}

func (e *CrawlError) message() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d of %d pages failed", len(e.Failures), e.Total)
	for _, f := range e.Failures {
		fmt.Fprintf(&b, "\n  [%d] %s: %s", f.Index, f.URL, ErrorMessage(f.Err))
	}
	return b.String()
}
