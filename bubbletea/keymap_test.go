package bubbletea_test

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/noble/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap_HasExpectedBindings(t *testing.T) {
	t.Parallel()

	km := bubbletea.DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"k scrolls up", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, km.Up},
		{"arrow up scrolls up", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"j scrolls down", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, km.Down},
		{"arrow down scrolls down", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"ctrl+u half page up", tea.KeyMsg{Type: tea.KeyCtrlU}, km.HalfPageUp},
		{"ctrl+d half page down", tea.KeyMsg{Type: tea.KeyCtrlD}, km.HalfPageDown},
		{"g goes to top", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}, km.GotoTop},
		{"G goes to bottom", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, km.GotoBottom},
		{"l toggles line numbers", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, km.ToggleLineNumbers},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, km.Quit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}
