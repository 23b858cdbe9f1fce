package main

import (
	"context"
	"io"

	"github.com/fwojciec/bookpdf"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	TOC     bookpdf.TOCCollector
	Crawler bookpdf.Crawler

	// NewRenderer builds the renderer once the book title is known.
	NewRenderer func(title string) bookpdf.Renderer

	// Inspector, if set, validates rendered PDFs.
	Inspector PageCounter

	Store bookpdf.Store
}

// PageCounter reports the number of pages in a rendered PDF.
type PageCounter interface {
	PageCount(pdf []byte) (int, error)
}

// ConvertCmd handles the book conversion.
type ConvertCmd struct {
	URL        string
	Name       string
	Format     bookpdf.Format
	Stylesheet string
	Preview    bool
}
