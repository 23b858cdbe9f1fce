package rod

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fwojciec/bookpdf"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Renderer implements bookpdf.Renderer at compile time.
var _ bookpdf.Renderer = (*Renderer)(nil)

// A4 page dimensions in inches, used when the stylesheet has no @page size.
const (
	paperWidthInches  = 8.27
	paperHeightInches = 11.69
	marginInches      = 0.6
)

// Renderer prints the assembled book to PDF with headless Chrome.
type Renderer struct {
	browser *Browser
	title   string
}

// NewRenderer creates a Renderer backed by b. The caller owns b.
// The title is written into the document metadata.
func NewRenderer(b *Browser, title string) *Renderer {
	return &Renderer{browser: b, title: title}
}

// Render loads the standalone HTML document from a temp file and prints it.
// Page size and margins declared by the stylesheet take precedence.
func (r *Renderer) Render(ctx context.Context, html, css string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := r.browser.Get()
	if err != nil {
		return nil, bookpdf.Errorf(bookpdf.ERENDER, "%v", err)
	}

	path, cleanup, err := writeTempHTML(bookpdf.StandaloneHTML(r.title, html, css))
	if err != nil {
		return nil, bookpdf.Errorf(bookpdf.ERENDER, "%v", err)
	}
	defer cleanup()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, bookpdf.Errorf(bookpdf.ERENDER, "opening tab: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate("file://" + filepath.ToSlash(path)); err != nil {
		return nil, bookpdf.Errorf(bookpdf.ERENDER, "loading document: %v", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, bookpdf.Errorf(bookpdf.ERENDER, "loading document: %v", err)
	}

	reader, err := page.PDF(&proto.PagePrintToPDF{
		PaperWidth:        floatPtr(paperWidthInches),
		PaperHeight:       floatPtr(paperHeightInches),
		MarginTop:         floatPtr(marginInches),
		MarginBottom:      floatPtr(marginInches),
		MarginLeft:        floatPtr(marginInches),
		MarginRight:       floatPtr(marginInches),
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return nil, bookpdf.Errorf(bookpdf.ERENDER, "printing PDF: %v", err)
	}

	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, bookpdf.Errorf(bookpdf.ERENDER, "reading PDF stream: %v", err)
	}

	return pdf, nil
}

// Close is a no-op; the Browser is closed by its owner.
func (r *Renderer) Close() error {
	return nil
}

// writeTempHTML writes content to a temp file and returns its absolute path
// with a cleanup function.
func writeTempHTML(content string) (string, func(), error) {
	f, err := os.CreateTemp("", "bookpdf-*.html")
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}
	path := f.Name()
	cleanup := func() { _ = os.Remove(path) }

	if _, err := f.WriteString(content); err != nil {
		_ = f.Close()
		cleanup()
		return "", nil, fmt.Errorf("writing temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		cleanup()
		return "", nil, err
	}
	return abs, cleanup, nil
}

func floatPtr(v float64) *float64 {
	return &v
}
