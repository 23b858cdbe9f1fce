package bookpdf

// Extractor pulls the chapter body out of a fetched page.
type Extractor interface {
	// Extract returns the serialized content region of the page with its
	// footer removed and HTML entities decoded.
	// Returns EEXTRACT if the page has no content region.
	Extract(html string) (fragment string, err error)
}
