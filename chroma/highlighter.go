package chroma

import (
	"errors"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/noble"
)

// Compile-time interface verification.
var _ noble.Highlighter = (*Highlighter)(nil)

// StyleFunc maps chroma token types to noble styles.
type StyleFunc func(chromalib.TokenType) noble.Style

// Highlighter extracts styled spans using chroma.
// It handles noble and every language chroma ships a lexer for.
type Highlighter struct {
	styleFunc StyleFunc
}

// NewHighlighter creates a new chroma-based highlighter with the given style function.
// Use StyleFromPalette to create a style function from a noble.Palette.
func NewHighlighter(styleFunc StyleFunc) (*Highlighter, error) {
	if styleFunc == nil {
		return nil, errors.New("chroma: styleFunc cannot be nil")
	}
	return &Highlighter{styleFunc: styleFunc}, nil
}

// Highlight splits source code into styled spans for the given language.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source (valid input, no spans).
func (h *Highlighter) Highlight(language, source string) []noble.Span {
	if source == "" {
		return []noble.Span{}
	}
	return h.spans(language, source)
}

// HighlightLines highlights source code with full context, then splits spans by line.
// This correctly handles constructs that span lines, such as generic types
// broken across lines.
// Returns nil if the language is not supported or an error occurs.
// Returns an empty slice for empty source.
func (h *Highlighter) HighlightLines(language, source string) [][]noble.Span {
	if source == "" {
		return [][]noble.Span{}
	}

	spans := h.spans(language, source)
	if spans == nil {
		return nil
	}
	return noble.SplitSpanLines(spans)
}

func (h *Highlighter) spans(language, source string) []noble.Span {
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil
	}

	// Coalesce merges runs of single-character text tokens
	lexer = chromalib.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return nil
	}

	var spans []noble.Span
	for token := iterator(); token != chromalib.EOF; token = iterator() {
		spans = append(spans, noble.Span{
			Text:  token.Value,
			Style: h.styleFunc(token.Type),
		})
	}
	return spans
}
