package mock

import "github.com/fwojciec/bookpdf"

var _ bookpdf.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of bookpdf.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
