// Package bookpdf converts a GitBook-style documentation book into a single
// offline document. It reads the book's table of contents, fetches every
// chapter concurrently, reassembles the chapter bodies in reading order and
// renders the result with a fixed stylesheet.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, pdfcpu/).
package bookpdf
