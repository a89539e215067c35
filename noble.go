// Package noble provides domain types for tokenizing and highlighting
// source code written in the noble language.
package noble

import (
	"context"
	"strings"
)

// LanguageName is the name noble source is registered under with
// highlighters and language detectors.
const LanguageName = "Noble"

// Category classifies a token by the grammar rule that matched it.
type Category string

// Token categories, in the order the grammar evaluates them.
const (
	CategoryComment     Category = "comment"
	CategoryString      Category = "string"
	CategoryNumber      Category = "number"
	CategoryKeyword     Category = "keyword"
	CategoryConstant    Category = "constant"
	CategoryType        Category = "type"
	CategoryFunction    Category = "function"
	CategoryOperator    Category = "operator"
	CategoryIdentifier  Category = "identifier"
	CategoryPunctuation Category = "punctuation"

	// CategoryText marks input no rule matched.
	CategoryText Category = "text"
)

// Display aliases attached by the grammar.
const (
	AliasKeyword  = "keyword"
	AliasFunction = "function"
	AliasVariable = "variable"
	AliasProperty = "property"
)

// Token is a classified, positioned substring of source text.
type Token struct {
	Category Category `json:"category"`
	Alias    string   `json:"alias,omitempty"` // Display label, empty if the rule has none
	Text     string   `json:"text"`            // Exact matched text
	Start    int      `json:"start"`           // Byte offset of the first byte in the source
	End      int      `json:"end"`             // Byte offset one past the last byte in the source

	// Nested holds the breakdown of a generic type such as Foo<Bar>.
	// Offsets are absolute and the texts concatenate to Text.
	Nested []Token `json:"nested,omitempty"`
}

// Class returns the label a consumer should style the token by:
// the alias when present, the category otherwise.
func (t Token) Class() string {
	if t.Alias != "" {
		return t.Alias
	}
	return string(t.Category)
}

// Join concatenates the text of every token in order.
// For any tokenizer output this reproduces the scanned source.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// Tokenizer splits noble source into classified tokens.
type Tokenizer interface {
	// Tokenize scans source from the start and returns every token in order.
	// Returns an empty slice for empty source.
	Tokenize(source string) []Token
}

// Renderer turns tokens into styled text for display.
type Renderer interface {
	// Render styles each token and concatenates the results.
	// Line breaks inside token text are preserved.
	Render(tokens []Token) string
}

// Viewer displays highlighted source to the user.
type Viewer interface {
	// View displays source and blocks until the user exits.
	View(ctx context.Context, name, source string) error
}
