package main

import (
	"fmt"

	"github.com/fwojciec/bookpdf"
	"github.com/fwojciec/bookpdf/assets"
	"github.com/fwojciec/bookpdf/crawl"
)

// Run executes the convert command.
func (c *ConvertCmd) Run(deps *Dependencies) error {
	toc, err := deps.TOC.CollectTOC(deps.Ctx, c.URL)
	if err != nil {
		return c.fail(deps, err)
	}

	// Preview mode: show chapter URLs without fetching them
	if c.Preview {
		return c.runPreview(deps, toc)
	}

	return c.runConvert(deps, toc)
}

func (c *ConvertCmd) runPreview(deps *Dependencies, toc *bookpdf.TOC) error {
	fmt.Fprintf(deps.Stdout, "%s (%d chapters)\n", toc.Title, len(toc.URLs))
	for _, u := range toc.URLs {
		fmt.Fprintln(deps.Stdout, u)
	}
	return nil
}

func (c *ConvertCmd) runConvert(deps *Dependencies, toc *bookpdf.TOC) error {
	format := c.Format
	if format == "" {
		format = bookpdf.FormatPDF
	}

	name := c.Name
	if name == "" {
		if toc.Title == "" {
			return c.fail(deps, bookpdf.Errorf(bookpdf.EDISCOVERY, "no title at %s; pass an output name", c.URL))
		}
		name = toc.Title
	}
	name = bookpdf.OutputName(name, format.Ext())

	css, err := assets.LoadStylesheet(c.Stylesheet)
	if err != nil {
		return c.fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Found %d chapters in %q\n", len(toc.URLs), toc.Title)

	slots, err := deps.Crawler.CrawlAll(deps.Ctx, toc.URLs)
	if err != nil {
		return c.fail(deps, err)
	}

	html, err := crawl.Assemble(slots)
	if err != nil {
		return c.fail(deps, err)
	}

	renderer := deps.NewRenderer(toc.Title)
	defer renderer.Close()

	data, err := renderer.Render(deps.Ctx, html, css)
	if err != nil {
		return c.fail(deps, err)
	}

	summary := fmt.Sprintf("%d chapters, %s", len(toc.URLs), crawl.FormatBytes(len(data)))
	if format == bookpdf.FormatPDF && deps.Inspector != nil {
		pages, err := deps.Inspector.PageCount(data)
		if err != nil {
			return c.fail(deps, err)
		}
		summary = fmt.Sprintf("%d chapters, %d pages, %s", len(toc.URLs), pages, crawl.FormatBytes(len(data)))
	}

	if err := deps.Store.Save(deps.Ctx, name, data); err != nil {
		return c.fail(deps, err)
	}

	fmt.Fprintf(deps.Stdout, "Wrote %s (%s)\n", name, summary)
	return nil
}

func (c *ConvertCmd) fail(deps *Dependencies, err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", bookpdf.ErrorMessage(err))
	return err
}
