package mock

import "github.com/fwojciec/noble"

// Compile-time interface verification.
var _ noble.Highlighter = (*Highlighter)(nil)

// Highlighter is a mock implementation of noble.Highlighter.
type Highlighter struct {
	HighlightFn func(language, source string) []noble.Span
}

func (h *Highlighter) Highlight(language, source string) []noble.Span {
	return h.HighlightFn(language, source)
}
