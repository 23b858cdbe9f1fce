package mock

import (
	"context"

	"github.com/fwojciec/bookpdf"
)

// Compile-time interface verification.
var (
	_ bookpdf.Renderer = (*Renderer)(nil)
	_ bookpdf.Store    = (*Store)(nil)
)

// Renderer is a mock implementation of bookpdf.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, html, css string) ([]byte, error)
	CloseFn  func() error
}

func (r *Renderer) Render(ctx context.Context, html, css string) ([]byte, error) {
	return r.RenderFn(ctx, html, css)
}

func (r *Renderer) Close() error {
	return r.CloseFn()
}

// Store is a mock implementation of bookpdf.Store.
type Store struct {
	SaveFn func(ctx context.Context, name string, data []byte) error
}

func (s *Store) Save(ctx context.Context, name string, data []byte) error {
	return s.SaveFn(ctx, name, data)
}
