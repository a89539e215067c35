package chroma

import (
	"errors"
	"fmt"
	"io"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ErrUnsupportedLanguage is returned when chroma has no lexer for a language.
var ErrUnsupportedLanguage = errors.New("chroma: unsupported language")

// HTMLOption configures HTML output.
type HTMLOption func(*htmlConfig)

type htmlConfig struct {
	style       string
	lineNumbers bool
	standalone  bool
}

// WithStyle selects a chroma style by name. Unknown names fall back to
// chroma's default style.
func WithStyle(name string) HTMLOption {
	return func(c *htmlConfig) {
		c.style = name
	}
}

// WithLineNumbers prefixes each line with its number.
func WithLineNumbers() HTMLOption {
	return func(c *htmlConfig) {
		c.lineNumbers = true
	}
}

// WithStandalone wraps the output in a complete HTML document with inline CSS.
func WithStandalone() HTMLOption {
	return func(c *htmlConfig) {
		c.standalone = true
	}
}

// WriteHTML writes source as HTML markup, wrapping each token in a span whose
// class names its token type. Use WriteCSS for the matching stylesheet.
func WriteHTML(w io.Writer, language, source string, opts ...HTMLOption) error {
	cfg := htmlConfig{style: "monokai"}
	for _, opt := range opts {
		opt(&cfg)
	}

	lexer := lexers.Get(language)
	if lexer == nil {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, language)
	}

	iterator, err := chromalib.Coalesce(lexer).Tokenise(nil, source)
	if err != nil {
		return fmt.Errorf("chroma: tokenise: %w", err)
	}

	formatter := html.New(
		html.WithClasses(!cfg.standalone),
		html.WithLineNumbers(cfg.lineNumbers),
		html.Standalone(cfg.standalone),
	)
	if err := formatter.Format(w, styles.Get(cfg.style), iterator); err != nil {
		return fmt.Errorf("chroma: format html: %w", err)
	}
	return nil
}

// WriteCSS writes the stylesheet for the classes WriteHTML emits.
func WriteCSS(w io.Writer, styleName string) error {
	formatter := html.New(html.WithClasses(true))
	if err := formatter.WriteCSS(w, styles.Get(styleName)); err != nil {
		return fmt.Errorf("chroma: write css: %w", err)
	}
	return nil
}
