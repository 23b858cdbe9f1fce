// Package htmltomarkdown renders assembled books as Markdown using
// html-to-markdown.
package htmltomarkdown

import (
	"context"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/bookpdf"
)

// Ensure Renderer implements bookpdf.Renderer at compile time.
var _ bookpdf.Renderer = (*Renderer)(nil)

// Renderer converts the assembled book HTML into a Markdown document.
// The stylesheet has no Markdown equivalent and is ignored.
type Renderer struct {
	conv  *converter.Converter
	title string
}

// NewRenderer creates a new Renderer. A non-empty title is written as the
// top-level heading.
func NewRenderer(title string) *Renderer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Renderer{conv: conv, title: title}
}

// Render transforms the book HTML into Markdown.
func (r *Renderer) Render(ctx context.Context, html, _ string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(html) == "" {
		return nil, bookpdf.Errorf(bookpdf.ERENDER, "empty HTML input")
	}

	md, err := r.conv.ConvertString(html)
	if err != nil {
		return nil, bookpdf.Errorf(bookpdf.ERENDER, "converting to markdown: %v", err)
	}

	var b strings.Builder
	if title := strings.Join(strings.Fields(r.title), " "); title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	b.WriteString(strings.TrimSpace(md))
	b.WriteString("\n")
	return []byte(b.String()), nil
}

// Close is a no-op.
func (r *Renderer) Close() error {
	return nil
}
