// Package pdfcpu inspects rendered PDF documents with pdfcpu.
package pdfcpu

import (
	"bytes"

	"github.com/fwojciec/bookpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Inspector reads structural information from PDF bytes.
type Inspector struct {
	conf *model.Configuration
}

// NewInspector creates an Inspector with relaxed validation, matching the
// output Chrome produces.
func NewInspector() *Inspector {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &Inspector{conf: conf}
}

// PageCount returns the number of pages in pdf.
// Returns ERENDER if pdf cannot be parsed.
func (i *Inspector) PageCount(pdf []byte) (int, error) {
	if len(pdf) == 0 {
		return 0, bookpdf.Errorf(bookpdf.ERENDER, "empty PDF")
	}
	n, err := api.PageCount(bytes.NewReader(pdf), i.conf)
	if err != nil {
		return 0, bookpdf.Errorf(bookpdf.ERENDER, "invalid PDF: %v", err)
	}
	if n == 0 {
		return 0, bookpdf.Errorf(bookpdf.ERENDER, "PDF has no pages")
	}
	return n, nil
}
