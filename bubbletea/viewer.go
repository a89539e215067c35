// Package bubbletea provides a terminal UI viewer for noble source using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/noble"
	"github.com/fwojciec/noble/chroma"
	nlipgloss "github.com/fwojciec/noble/lipgloss"
	"github.com/fwojciec/noble/regexp2"
)

// statusBarHeight is the number of rows below the viewport.
const statusBarHeight = 1

// Model is the Bubble Tea model for viewing highlighted source.
type Model struct {
	name        string
	language    string
	lines       []string // Rendered line bodies, without gutter
	palette     noble.Palette
	lgRenderer  *lipgloss.Renderer
	keymap      KeyMap
	lineNumbers bool

	viewport   viewport.Model
	ready      bool
	width      int
	pendingKey string
}

// ModelOption configures a Model.
type ModelOption func(*modelConfig)

type modelConfig struct {
	tokenizer   noble.Tokenizer
	renderer    noble.Renderer
	detector    noble.LanguageDetector
	highlighter noble.Highlighter
	theme       noble.Theme
	lgRenderer  *lipgloss.Renderer
	keymap      KeyMap
	lineNumbers bool
}

// WithTokenizer sets the tokenizer used to split the source.
// Without one the source is shown as plain text.
func WithTokenizer(t noble.Tokenizer) ModelOption {
	return func(c *modelConfig) {
		c.tokenizer = t
	}
}

// WithTokenRenderer sets how each line of tokens is styled.
// Without one token text is shown unstyled.
func WithTokenRenderer(r noble.Renderer) ModelOption {
	return func(c *modelConfig) {
		c.renderer = r
	}
}

// WithLanguageDetector sets how the language is chosen from the name.
// Without one the source is treated as noble.
func WithLanguageDetector(d noble.LanguageDetector) ModelOption {
	return func(c *modelConfig) {
		c.detector = d
	}
}

// WithHighlighter sets the highlighter used for languages other than noble.
func WithHighlighter(h noble.Highlighter) ModelOption {
	return func(c *modelConfig) {
		c.highlighter = h
	}
}

// WithTheme sets the colors of the gutter and status bar.
func WithTheme(t noble.Theme) ModelOption {
	return func(c *modelConfig) {
		c.theme = t
	}
}

// WithRenderer sets the lipgloss renderer for the gutter and status bar.
// If not set, the default lipgloss renderer is used.
func WithRenderer(r *lipgloss.Renderer) ModelOption {
	return func(c *modelConfig) {
		c.lgRenderer = r
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) ModelOption {
	return func(c *modelConfig) {
		c.keymap = k
	}
}

// WithoutLineNumbers hides the line number gutter.
func WithoutLineNumbers() ModelOption {
	return func(c *modelConfig) {
		c.lineNumbers = false
	}
}

// NewModel creates a new Model showing source under the given name.
// Noble source goes through the tokenizer; other languages the detector
// recognizes go through the highlighter. Anything else is plain text.
func NewModel(name, source string, opts ...ModelOption) Model {
	cfg := modelConfig{
		keymap:      DefaultKeyMap(),
		lineNumbers: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	m := Model{
		name:        name,
		lgRenderer:  cfg.lgRenderer,
		keymap:      cfg.keymap,
		lineNumbers: cfg.lineNumbers,
	}
	if cfg.theme != nil {
		m.palette = cfg.theme.Palette()
	}

	m.language = noble.LanguageName
	if cfg.detector != nil {
		m.language = cfg.detector.DetectFromPath(name)
	}

	switch {
	case m.language == noble.LanguageName && cfg.tokenizer != nil:
		m.lines = renderTokenLines(noble.SplitLines(cfg.tokenizer.Tokenize(source)), cfg.renderer)
	case m.language != "" && m.language != noble.LanguageName && cfg.highlighter != nil:
		if spans := cfg.highlighter.Highlight(m.language, source); spans != nil {
			m.lines = m.renderSpanLines(noble.SplitSpanLines(spans))
			break
		}
		m.lines = renderPlainLines(source)
	default:
		m.lines = renderPlainLines(source)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Handle multi-key sequences (gg for go to top)
		if m.pendingKey == "g" && key.Matches(msg, m.keymap.GotoTop) {
			m.viewport.GotoTop()
			m.pendingKey = ""
			return m, nil
		}

		if key.Matches(msg, m.keymap.GotoTop) {
			m.pendingKey = "g"
			return m, nil
		}

		m.pendingKey = ""

		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.GotoBottom):
			m.viewport.GotoBottom()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageUp):
			m.viewport.HalfPageUp()
			return m, nil
		case key.Matches(msg, m.keymap.HalfPageDown):
			m.viewport.HalfPageDown()
			return m, nil
		case key.Matches(msg, m.keymap.Up):
			m.viewport.ScrollUp(1)
			return m, nil
		case key.Matches(msg, m.keymap.Down):
			m.viewport.ScrollDown(1)
			return m, nil
		case key.Matches(msg, m.keymap.ToggleLineNumbers):
			m.lineNumbers = !m.lineNumbers
			if m.ready {
				m.viewport.SetContent(m.renderContent())
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		height := max(msg.Height-statusBarHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.viewport.SetContent(m.renderContent())
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.statusBarView())
}

// statusBarView renders the file name, scroll position and key help.
func (m Model) statusBarView() string {
	barStyle := m.newStyle()
	dimStyle := m.newStyle()
	if m.palette.UIBackground != "" {
		barStyle = barStyle.Background(lipgloss.Color(m.palette.UIBackground))
		dimStyle = dimStyle.Background(lipgloss.Color(m.palette.UIBackground))
	}
	if m.palette.Foreground != "" {
		barStyle = barStyle.Foreground(lipgloss.Color(m.palette.Foreground))
	}
	if m.palette.UIForeground != "" {
		dimStyle = dimStyle.Foreground(lipgloss.Color(m.palette.UIForeground))
	}

	sep := dimStyle.Render(" │ ")
	content := barStyle.Render(" "+m.name) + sep
	if m.language != "" {
		content += barStyle.Render(m.language) + sep
	}
	content += barStyle.Render(fmt.Sprintf("%d lines", len(m.lines))) + sep +
		barStyle.Render(m.scrollPosition()) + sep +
		dimStyle.Render("j/k:scroll  l:line numbers  q:quit")

	// Fill the rest of the row with the bar background
	if w := lipgloss.Width(content); m.width > w {
		content += barStyle.Render(strings.Repeat(" ", m.width-w))
	}
	return content
}

// scrollPosition returns a string indicating the scroll position.
func (m Model) scrollPosition() string {
	switch {
	case m.viewport.AtTop():
		return "Top"
	case m.viewport.AtBottom():
		return "Bot"
	default:
		return fmt.Sprintf("%d%%", int(m.viewport.ScrollPercent()*100))
	}
}

func (m Model) newStyle() lipgloss.Style {
	if m.lgRenderer != nil {
		return m.lgRenderer.NewStyle()
	}
	return lipgloss.NewStyle()
}

// Viewer implements noble.Viewer using a Bubble Tea TUI.
type Viewer struct {
	opts []ModelOption
}

// Compile-time interface verification.
var _ noble.Viewer = (*Viewer)(nil)

// NewViewer creates a Viewer that highlights noble source with the noble
// tokenizer and any other language chroma knows with chroma, in the default
// theme. Options are applied after these defaults and apply to every model
// it shows.
func NewViewer(opts ...ModelOption) *Viewer {
	theme := nlipgloss.DefaultTheme()
	defaults := []ModelOption{
		WithTheme(theme),
		WithTokenizer(regexp2.NewTokenizer()),
		WithTokenRenderer(nlipgloss.NewRenderer(theme)),
		WithLanguageDetector(chroma.NewDetector(chroma.WithFallback(noble.LanguageName))),
	}
	if h, err := chroma.NewHighlighter(chroma.StyleFromPalette(theme.Palette())); err == nil {
		defaults = append(defaults, WithHighlighter(h))
	}
	return &Viewer{opts: append(defaults, opts...)}
}

// View displays source and blocks until the user exits or ctx is done.
func (v *Viewer) View(ctx context.Context, name, source string) error {
	m := NewModel(name, source, v.opts...)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
