package chroma

import (
	"path/filepath"

	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/noble"
)

// Compile-time interface verification.
var _ noble.LanguageDetector = (*Detector)(nil)

// Detector names the language of a file from its name using chroma's lexer
// registry, which includes the noble lexer for *.noble.
type Detector struct {
	fallback string
}

// DetectorOption configures a Detector.
type DetectorOption func(*Detector)

// WithFallback sets the language reported for names no lexer claims,
// such as an unnamed buffer.
func WithFallback(language string) DetectorOption {
	return func(d *Detector) {
		d.fallback = language
	}
}

// NewDetector creates a new chroma-based language detector.
func NewDetector(opts ...DetectorOption) *Detector {
	d := &Detector{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromPath returns the chroma name of the language for path, matched
// on the base name so globs like *.noble and Makefile apply. Returns the
// fallback (empty by default) when nothing matches.
func (d *Detector) DetectFromPath(path string) string {
	if path == "" {
		return d.fallback
	}
	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		return lexer.Config().Name
	}
	return d.fallback
}
