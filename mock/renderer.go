package mock

import "github.com/fwojciec/noble"

// Compile-time interface verification.
var _ noble.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of noble.Renderer.
type Renderer struct {
	RenderFn func(tokens []noble.Token) string
}

func (r *Renderer) Render(tokens []noble.Token) string {
	return r.RenderFn(tokens)
}
