package noble_test

import (
	"testing"

	"github.com/fwojciec/noble"
	"github.com/stretchr/testify/assert"
)

func testPalette() noble.Palette {
	return noble.Palette{
		Foreground:  "#ffffff",
		Keyword:     "#ff00ff",
		String:      "#00ff00",
		Number:      "#ff8800",
		Comment:     "#888888",
		Operator:    "#00ffff",
		Function:    "#0000ff",
		Type:        "#ffff00",
		Property:    "#eeee00",
		Variable:    "#dddddd",
		Constant:    "#ff8801",
		Punctuation: "#aaaaaa",
	}
}

func TestPalette_ForClass(t *testing.T) {
	t.Parallel()

	p := testPalette()

	tests := []struct {
		class string
		want  noble.Color
	}{
		{"keyword", "#ff00ff"},
		{"string", "#00ff00"},
		{"number", "#ff8800"},
		{"comment", "#888888"},
		{"operator", "#00ffff"},
		{"function", "#0000ff"},
		{"type", "#ffff00"},
		{"property", "#eeee00"},
		{"variable", "#dddddd"},
		{"identifier", "#dddddd"},
		{"constant", "#ff8801"},
		{"punctuation", "#aaaaaa"},
		{"text", "#ffffff"},
		{"unknown", "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, p.ForClass(tt.class))
		})
	}
}

func TestPalette_ForClassOfTokens(t *testing.T) {
	t.Parallel()

	p := testPalette()

	t.Run("keyword category and keyword alias share a color", func(t *testing.T) {
		t.Parallel()

		kw := noble.Token{Category: noble.CategoryKeyword, Text: "if"}
		op := noble.Token{Category: noble.CategoryOperator, Alias: noble.AliasKeyword, Text: "and"}

		assert.Equal(t, p.Keyword, p.ForClass(kw.Class()))
		assert.Equal(t, p.Keyword, p.ForClass(op.Class()))
	})

	t.Run("function alias uses the function color", func(t *testing.T) {
		t.Parallel()

		fn := noble.Token{Category: noble.CategoryFunction, Alias: noble.AliasFunction, Text: "print"}

		assert.Equal(t, p.Function, p.ForClass(fn.Class()))
	})
}
