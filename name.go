package bookpdf

import (
	"path/filepath"
	"strings"
	"unicode"
)

// DefaultName is used when a book has no usable title.
const DefaultName = "book"

// OutputName derives a file name from a book title. Path separators and
// control characters are replaced, surrounding whitespace and dots are
// trimmed, and ext is appended unless the name already ends with it.
func OutputName(title string, ext string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':':
			return '-'
		case unicode.IsControl(r):
			return -1
		}
		return r
	}, title)
	name = strings.Join(strings.Fields(name), " ")
	name = strings.Trim(name, ". ")
	if name == "" {
		name = DefaultName
	}
	if ext != "" && !strings.EqualFold(filepath.Ext(name), ext) {
		name += ext
	}
	return name
}
