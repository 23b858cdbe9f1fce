package bookpdf

import (
	"context"
	"strings"
)

// Format identifies an output document format.
type Format string

// Supported output formats.
const (
	FormatPDF      Format = "pdf"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "md"
)

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Renderer converts the assembled book HTML into the final document.
type Renderer interface {
	// Render applies css to html and returns the document bytes.
	// Returns ERENDER if the conversion fails.
	Render(ctx context.Context, html, css string) ([]byte, error)

	// Close releases resources held by the renderer.
	Close() error
}

// StandaloneHTML wraps a body fragment and a stylesheet into a complete
// UTF-8 HTML document.
func StandaloneHTML(title, body, css string) string {
	var b strings.Builder
	b.Grow(len(body) + len(css) + 256)
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	if title != "" {
		b.WriteString("<title>")
		b.WriteString(escapeText(title))
		b.WriteString("</title>\n")
	}
	if css != "" {
		b.WriteString("<style>\n")
		b.WriteString(css)
		b.WriteString("\n</style>\n")
	}
	b.WriteString("</head>\n<body>\n")
	b.WriteString(body)
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

// Ensure HTMLRenderer implements Renderer at compile time.
var _ Renderer = (*HTMLRenderer)(nil)

// HTMLRenderer renders the book as a single standalone HTML file.
type HTMLRenderer struct {
	Title string
}

// Render returns the standalone document.
func (r *HTMLRenderer) Render(ctx context.Context, html, css string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(StandaloneHTML(r.Title, html, css)), nil
}

// Close is a no-op.
func (r *HTMLRenderer) Close() error {
	return nil
}
