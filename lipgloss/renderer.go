package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/noble"
)

// Compile-time interface verification.
var _ noble.Renderer = (*Renderer)(nil)

// Renderer renders tokens as ANSI-styled text, coloring each token by its
// class (alias or category).
type Renderer struct {
	palette  noble.Palette
	renderer *lipgloss.Renderer
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRenderer sets the lipgloss renderer, which decides the color profile.
// If not set, the default lipgloss renderer is used.
func WithRenderer(r *lipgloss.Renderer) RendererOption {
	return func(rd *Renderer) {
		rd.renderer = r
	}
}

// NewRenderer creates a Renderer using the theme's palette.
func NewRenderer(theme noble.Theme, opts ...RendererOption) *Renderer {
	r := &Renderer{palette: theme.Palette()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render styles each token and concatenates the results.
// Generic types are rendered piecewise from their nested tokens.
func (r *Renderer) Render(tokens []noble.Token) string {
	var sb strings.Builder
	r.render(&sb, tokens)
	return sb.String()
}

func (r *Renderer) render(sb *strings.Builder, tokens []noble.Token) {
	for _, tok := range tokens {
		if len(tok.Nested) > 0 {
			r.render(sb, tok.Nested)
			continue
		}
		renderText(sb, r.styleFor(tok), tok.Text)
	}
}

// styleFor returns the lipgloss style for a token.
// Plain text is left unstyled.
func (r *Renderer) styleFor(tok noble.Token) lipgloss.Style {
	style := r.newStyle().TabWidth(lipgloss.NoTabConversion)
	if tok.Category == noble.CategoryText {
		return style
	}
	if c := r.palette.ForClass(tok.Class()); c != "" {
		style = style.Foreground(lipgloss.Color(c))
	}
	if tok.Class() == noble.AliasKeyword {
		style = style.Bold(true)
	}
	return style
}

func (r *Renderer) newStyle() lipgloss.Style {
	if r.renderer != nil {
		return r.renderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// renderText renders text line by line so lipgloss does not pad lines of a
// multi-line token to a common width.
func renderText(sb *strings.Builder, style lipgloss.Style, text string) {
	for i, part := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteString("\n")
		}
		if part != "" {
			sb.WriteString(style.Render(part))
		}
	}
}
