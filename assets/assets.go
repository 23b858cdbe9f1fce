// Package assets provides the stylesheet applied to rendered books.
package assets

import (
	"embed"
	"fmt"
	"os"

	"github.com/fwojciec/bookpdf"
)

//go:embed styles/*
var styles embed.FS

// DefaultStylesheet is the name of the built-in stylesheet.
const DefaultStylesheet = "gitbook.css"

// Stylesheet returns the built-in stylesheet.
func Stylesheet() string {
	data, err := styles.ReadFile("styles/" + DefaultStylesheet)
	if err != nil {
		// The stylesheet is compiled in; a missing file is a build defect.
		panic(fmt.Sprintf("assets: embedded stylesheet missing: %v", err))
	}
	return string(data)
}

// LoadStylesheet returns the stylesheet at path, or the built-in one when
// path is empty.
func LoadStylesheet(path string) (string, error) {
	if path == "" {
		return Stylesheet(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", bookpdf.Errorf(bookpdf.EINVALID, "reading stylesheet: %v", err)
	}
	return string(data), nil
}
