// Package chroma provides syntax highlighting using the chroma library.
// Importing it registers a noble lexer with chroma's global registry.
package chroma

import (
	"strings"
	"unicode"

	chromalib "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/fwojciec/noble"
	"github.com/fwojciec/noble/regexp2"
)

// Compile-time interface verification.
var _ chromalib.Lexer = (*Lexer)(nil)

// Noble is the noble lexer registered with chroma under the name "noble".
var Noble = lexers.Register(NewLexer(regexp2.NewTokenizer()))

// Lexer adapts a noble.Tokenizer to chroma's Lexer interface.
type Lexer struct {
	tokenizer noble.Tokenizer
	config    *chromalib.Config
	registry  *chromalib.LexerRegistry
	analyser  func(text string) float32
}

// NewLexer creates a chroma lexer backed by tokenizer.
func NewLexer(tokenizer noble.Tokenizer) *Lexer {
	return &Lexer{
		tokenizer: tokenizer,
		config: &chromalib.Config{
			Name:      noble.LanguageName,
			Aliases:   []string{"noble"},
			Filenames: []string{"*.noble"},
			MimeTypes: []string{"text/x-noble"},
		},
	}
}

// Config describes the lexer to chroma.
func (l *Lexer) Config() *chromalib.Config {
	return l.config
}

// Tokenise returns an iterator over the chroma tokens of text.
// Nested tokens of generic types are flattened in order.
func (l *Lexer) Tokenise(options *chromalib.TokeniseOptions, text string) (chromalib.Iterator, error) {
	if options != nil && options.EnsureLF {
		text = ensureLF(text)
	}

	var out []chromalib.Token
	for _, tok := range l.tokenizer.Tokenize(text) {
		out = appendToken(out, tok)
	}
	return chromalib.Literator(out...), nil
}

// SetRegistry records the registry the lexer is registered with.
func (l *Lexer) SetRegistry(registry *chromalib.LexerRegistry) chromalib.Lexer {
	l.registry = registry
	return l
}

// SetAnalyser sets the function used by AnalyseText.
func (l *Lexer) SetAnalyser(analyser func(text string) float32) chromalib.Lexer {
	l.analyser = analyser
	return l
}

// AnalyseText scores how likely text is noble source.
// Returns 0 unless an analyser was set.
func (l *Lexer) AnalyseText(text string) float32 {
	if l.analyser == nil {
		return 0
	}
	return l.analyser(text)
}

func appendToken(out []chromalib.Token, tok noble.Token) []chromalib.Token {
	if len(tok.Nested) > 0 {
		for _, n := range tok.Nested {
			out = appendToken(out, n)
		}
		return out
	}
	return append(out, chromalib.Token{Type: TokenType(tok), Value: tok.Text})
}

// TokenType maps a noble token to the chroma token type used to style it.
func TokenType(tok noble.Token) chromalib.TokenType {
	switch tok.Category {
	case noble.CategoryComment:
		return chromalib.CommentSingle
	case noble.CategoryString:
		return chromalib.StringDouble
	case noble.CategoryNumber:
		if strings.Contains(tok.Text, ".") {
			return chromalib.NumberFloat
		}
		return chromalib.NumberInteger
	case noble.CategoryKeyword:
		return chromalib.Keyword
	case noble.CategoryConstant:
		return chromalib.KeywordConstant
	case noble.CategoryType:
		return chromalib.KeywordType
	case noble.CategoryFunction:
		return chromalib.NameFunction
	case noble.CategoryOperator:
		if isWord(tok.Text) {
			return chromalib.OperatorWord
		}
		return chromalib.Operator
	case noble.CategoryIdentifier:
		return chromalib.NameVariable
	case noble.CategoryPunctuation:
		return chromalib.Punctuation
	default:
		if strings.TrimSpace(tok.Text) == "" {
			return chromalib.TextWhitespace
		}
		return chromalib.Text
	}
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func ensureLF(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
