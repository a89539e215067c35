package regexp2

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"runtime"
	"slices"
	"unicode/utf8"

	"github.com/fwojciec/noble"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ noble.Tokenizer = (*Tokenizer)(nil)

// Tokenizer scans noble source into tokens. It is safe for concurrent use.
type Tokenizer struct {
	grammar     *Grammar
	concurrency int
	logger      *slog.Logger
}

// Option configures a Tokenizer.
type Option func(*Tokenizer)

// WithGrammar replaces the noble grammar. A nil grammar is ignored.
func WithGrammar(g *Grammar) Option {
	return func(t *Tokenizer) {
		if g != nil {
			t.grammar = g
		}
	}
}

// WithConcurrency sets how many sources TokenizeAll scans at once.
func WithConcurrency(n int) Option {
	return func(t *Tokenizer) {
		if n > 0 {
			t.concurrency = n
		}
	}
}

// WithLogger sets the logger used for batch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tokenizer) {
		if l != nil {
			t.logger = l
		}
	}
}

// NewTokenizer creates a Tokenizer for the noble grammar.
func NewTokenizer(opts ...Option) *Tokenizer {
	t := &Tokenizer{
		grammar:     Noble(),
		concurrency: runtime.GOMAXPROCS(0),
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// All returns the tokens of source as a lazy sequence. Every range over the
// sequence scans again from the start of source.
func (t *Tokenizer) All(source string) iter.Seq[noble.Token] {
	return t.grammar.tokens(source, 0)
}

// Tokenize returns every token of source in order.
// Returns an empty slice for empty source.
func (t *Tokenizer) Tokenize(source string) []noble.Token {
	tokens := []noble.Token{}
	for tok := range t.All(source) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// TokenizeContext is like Tokenize but stops between tokens once ctx is done,
// returning the context's error.
func (t *Tokenizer) TokenizeContext(ctx context.Context, source string) ([]noble.Token, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tokens := []noble.Token{}
	for tok := range t.All(source) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// TokenizeAll tokenizes each source concurrently.
// Results are indexed like sources.
func (t *Tokenizer) TokenizeAll(ctx context.Context, sources []string) ([][]noble.Token, error) {
	results := make([][]noble.Token, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.concurrency)

	for i := range sources {
		source := sources[i]

		g.Go(func() error {
			tokens, err := t.TokenizeContext(ctx, source)
			if err != nil {
				return fmt.Errorf("regexp2: source %d: %w", i, err)
			}
			results[i] = tokens
			t.logger.Debug("tokenized source", "index", i, "bytes", len(source), "tokens", len(tokens))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// scanner holds the rune view of one source. regexp2 matches runes, tokens
// report byte offsets.
type scanner struct {
	source  string
	runes   []rune
	offsets []int // offsets[i] is the byte offset of runes[i]; the last entry is len(source)
}

func newScanner(source string) *scanner {
	sc := &scanner{
		source:  source,
		runes:   make([]rune, 0, len(source)),
		offsets: make([]int, 0, len(source)+1),
	}
	// Invalid bytes decode to one RuneError each and keep their own offset,
	// so token texts always slice the original bytes.
	for i := 0; i < len(source); {
		r, size := utf8.DecodeRuneInString(source[i:])
		sc.runes = append(sc.runes, r)
		sc.offsets = append(sc.offsets, i)
		i += size
	}
	sc.offsets = append(sc.offsets, len(source))
	return sc
}

// tokens scans source with g. base is added to every offset.
func (g *Grammar) tokens(source string, base int) iter.Seq[noble.Token] {
	return func(yield func(noble.Token) bool) {
		if source == "" {
			return
		}
		sc := newScanner(source)
		for pos := 0; pos < len(sc.runes); {
			tok, next := g.match(sc, pos, base)
			if !yield(tok) {
				return
			}
			pos = next
		}
	}
}

// match returns the token at rune position pos and the position after it.
// The first rule matching exactly at pos wins; when none does, one rune is
// emitted as text.
func (g *Grammar) match(sc *scanner, pos, base int) (noble.Token, int) {
	for _, r := range g.rules {
		m, err := r.re.FindRunesMatchStartingAt(sc.runes, pos)
		// Empty matches would stall the cursor.
		if err != nil || m == nil || m.Index != pos || m.Length == 0 {
			continue
		}
		end := pos + m.Length
		tok := noble.Token{
			Category: r.category,
			Alias:    r.alias,
			Text:     sc.source[sc.offsets[pos]:sc.offsets[end]],
			Start:    base + sc.offsets[pos],
			End:      base + sc.offsets[end],
		}
		if r.inside != nil {
			tok.Nested = slices.Collect(r.inside.tokens(tok.Text, tok.Start))
		}
		return tok, end
	}

	return noble.Token{
		Category: noble.CategoryText,
		Text:     sc.source[sc.offsets[pos]:sc.offsets[pos+1]],
		Start:    base + sc.offsets[pos],
		End:      base + sc.offsets[pos+1],
	}, pos + 1
}
