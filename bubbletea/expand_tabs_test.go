package bubbletea_test

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/noble/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestExpandTabs(t *testing.T) {
	t.Parallel()

	spaces := func(n int) string { return strings.Repeat(" ", n) }

	tests := []struct {
		name string
		in   string
		col  int
		want string
	}{
		{"leaves text without tabs alone", "var x = 1;", 0, "var x = 1;"},
		{"empty", "", 5, ""},
		{"indents a block body", "\treturn x;", 0, spaces(8) + "return x;"},
		{"indents a nested block", "\t\tprint(x);", 0, spaces(16) + "print(x);"},
		{"aligns a trailing comment", "x = 1;\t# one", 0, "x = 1;" + spaces(2) + "# one"},
		{"fills to the next stop from mid-line", "ab\tc", 0, "ab" + spaces(6) + "c"},
		{"moves a full stop when on a boundary", "12345678\t|", 0, "12345678" + spaces(8) + "|"},
		{"one space before the stop", "1234567\t|", 0, "1234567 |"},
		{"continues from the start column", "\tx", 5, spaces(3) + "x"},
		{"start column on a stop", "\tx", 16, spaces(8) + "x"},
		{"counts wide runes as two columns", "名\t=", 0, "名" + spaces(6) + "="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, bubbletea.ExpandTabs(tt.in, tt.col))
		})
	}
}

func TestExpandTabs_EndsOnStop(t *testing.T) {
	t.Parallel()

	for col := range 20 {
		got := bubbletea.ExpandTabs("\t", col)
		assert.Zero(t, (col+lipgloss.Width(got))%8, "start column %d", col)
		assert.NotEmpty(t, got, "start column %d", col)
	}
}
