package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/noble"
)

// renderContent renders every line with its gutter.
func (m Model) renderContent() string {
	gutterWidth := digitWidth(len(m.lines))

	gutterStyle := m.newStyle()
	if m.palette.LineNumber != "" {
		gutterStyle = gutterStyle.Foreground(lipgloss.Color(m.palette.LineNumber))
	}

	var sb strings.Builder
	for i, line := range m.lines {
		if i > 0 {
			sb.WriteString("\n")
		}
		if m.lineNumbers {
			sb.WriteString(gutterStyle.Render(fmt.Sprintf("%*d ", gutterWidth, i+1)))
		}
		sb.WriteString(line)
	}
	return sb.String()
}

// renderTokenLines expands tabs and styles each line of tokens with r.
// A nil renderer leaves the text unstyled.
func renderTokenLines(lines [][]noble.Token, r noble.Renderer) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		line, _ = expandLineTabs(line, 0)
		if r != nil {
			out[i] = r.Render(line)
		} else {
			out[i] = noble.Join(line)
		}
	}
	return out
}

// renderPlainLines splits source into lines without highlighting.
func renderPlainLines(source string) []string {
	if source == "" {
		return []string{}
	}
	tok := noble.Token{Category: noble.CategoryText, Text: source, End: len(source)}
	return renderTokenLines(noble.SplitLines([]noble.Token{tok}), nil)
}

// renderSpanLines expands tabs and applies each span's style.
func (m Model) renderSpanLines(lines [][]noble.Span) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		var sb strings.Builder
		col := 0
		for _, span := range line {
			text := ExpandTabs(span.Text, col)
			col += lipgloss.Width(text)
			if span.Style == (noble.Style{}) {
				sb.WriteString(text)
				continue
			}
			style := m.newStyle().Bold(span.Style.Bold)
			if span.Style.Foreground != "" {
				style = style.Foreground(lipgloss.Color(span.Style.Foreground))
			}
			sb.WriteString(style.Render(text))
		}
		out[i] = sb.String()
	}
	return out
}

// expandLineTabs expands tabs in the text of each token, tracking the display
// column across tokens so tab stops line up. Returns the column after the line.
func expandLineTabs(tokens []noble.Token, col int) ([]noble.Token, int) {
	out := make([]noble.Token, len(tokens))
	for i, tok := range tokens {
		if len(tok.Nested) > 0 {
			tok.Nested, col = expandLineTabs(tok.Nested, col)
			tok.Text = noble.Join(tok.Nested)
		} else {
			tok.Text = ExpandTabs(tok.Text, col)
			col += lipgloss.Width(tok.Text)
		}
		out[i] = tok
	}
	return out, col
}

// digitWidth returns the number of decimal digits in n.
func digitWidth(n int) int {
	if n <= 0 {
		return 1
	}
	width := 0
	for n > 0 {
		width++
		n /= 10
	}
	return width
}
