package bookpdf

import "context"

// Store persists the rendered document.
// Implementations write atomically: after Save returns, the named artifact
// either exists in full or does not exist at all.
type Store interface {
	Save(ctx context.Context, name string, data []byte) error
}
