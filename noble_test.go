package noble_test

import (
	"testing"

	"github.com/fwojciec/noble"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken_Class(t *testing.T) {
	t.Parallel()

	t.Run("prefers alias", func(t *testing.T) {
		t.Parallel()

		tok := noble.Token{Category: noble.CategoryOperator, Alias: noble.AliasKeyword, Text: "and"}
		assert.Equal(t, "keyword", tok.Class())
	})

	t.Run("falls back to category", func(t *testing.T) {
		t.Parallel()

		tok := noble.Token{Category: noble.CategoryPunctuation, Text: ";"}
		assert.Equal(t, "punctuation", tok.Class())
	})
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tokens := []noble.Token{
		{Category: noble.CategoryKeyword, Text: "var", Start: 0, End: 3},
		{Category: noble.CategoryText, Text: " ", Start: 3, End: 4},
		{Category: noble.CategoryIdentifier, Text: "x", Start: 4, End: 5},
	}

	assert.Equal(t, "var x", noble.Join(tokens))
	assert.Empty(t, noble.Join(nil))
}

func TestSplitLines(t *testing.T) {
	t.Parallel()

	t.Run("returns empty for no tokens", func(t *testing.T) {
		t.Parallel()

		lines := noble.SplitLines(nil)
		assert.NotNil(t, lines)
		assert.Empty(t, lines)
	})

	t.Run("splits at newline tokens", func(t *testing.T) {
		t.Parallel()

		tokens := []noble.Token{
			{Category: noble.CategoryIdentifier, Text: "a", Start: 0, End: 1},
			{Category: noble.CategoryText, Text: "\n", Start: 1, End: 2},
			{Category: noble.CategoryIdentifier, Text: "b", Start: 2, End: 3},
		}

		lines := noble.SplitLines(tokens)

		require.Len(t, lines, 2)
		assert.Equal(t, "a", noble.Join(lines[0]))
		assert.Equal(t, "b", noble.Join(lines[1]))
		assert.Equal(t, 2, lines[1][0].Start)
	})

	t.Run("keeps blank lines", func(t *testing.T) {
		t.Parallel()

		tokens := []noble.Token{
			{Category: noble.CategoryIdentifier, Text: "a", Start: 0, End: 1},
			{Category: noble.CategoryText, Text: "\n", Start: 1, End: 2},
			{Category: noble.CategoryText, Text: "\n", Start: 2, End: 3},
			{Category: noble.CategoryIdentifier, Text: "b", Start: 3, End: 4},
		}

		lines := noble.SplitLines(tokens)

		require.Len(t, lines, 3)
		assert.Empty(t, lines[1])
	})

	t.Run("cuts multi-line tokens and their nested tokens", func(t *testing.T) {
		t.Parallel()

		// Foo<\nBar>
		tok := noble.Token{
			Category: noble.CategoryType,
			Alias:    noble.AliasProperty,
			Text:     "Foo<\nBar>",
			Start:    0,
			End:      9,
			Nested: []noble.Token{
				{Category: noble.CategoryType, Text: "Foo", Start: 0, End: 3},
				{Category: noble.CategoryPunctuation, Text: "<", Start: 3, End: 4},
				{Category: noble.CategoryText, Text: "\n", Start: 4, End: 5},
				{Category: noble.CategoryType, Text: "Bar", Start: 5, End: 8},
				{Category: noble.CategoryPunctuation, Text: ">", Start: 8, End: 9},
			},
		}

		lines := noble.SplitLines([]noble.Token{tok})

		require.Len(t, lines, 2)
		require.Len(t, lines[0], 1)
		require.Len(t, lines[1], 1)

		first, second := lines[0][0], lines[1][0]
		assert.Equal(t, "Foo<", first.Text)
		assert.Equal(t, noble.CategoryType, first.Category)
		assert.Equal(t, "Foo<", noble.Join(first.Nested))
		assert.Equal(t, "Bar>", second.Text)
		assert.Equal(t, 5, second.Start)
		assert.Equal(t, 9, second.End)
		assert.Equal(t, "Bar>", noble.Join(second.Nested))
	})
}

func TestSplitSpanLines(t *testing.T) {
	t.Parallel()

	red := noble.Style{Foreground: "#ff0000"}

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, [][]noble.Span{}, noble.SplitSpanLines(nil))
	})

	t.Run("cuts spans at newlines and keeps their style", func(t *testing.T) {
		t.Parallel()

		lines := noble.SplitSpanLines([]noble.Span{
			{Text: "/* a\nb */", Style: red},
			{Text: " x\n"},
			{Text: "y"},
		})

		require.Len(t, lines, 3)
		assert.Equal(t, []noble.Span{{Text: "/* a", Style: red}}, lines[0])
		assert.Equal(t, []noble.Span{{Text: "b */", Style: red}, {Text: " x"}}, lines[1])
		assert.Equal(t, []noble.Span{{Text: "y"}}, lines[2])
	})

	t.Run("keeps blank lines", func(t *testing.T) {
		t.Parallel()

		lines := noble.SplitSpanLines([]noble.Span{{Text: "a\n\nb"}})

		require.Len(t, lines, 3)
		assert.Empty(t, lines[1])
		assert.Equal(t, "b", lines[2][0].Text)
	})
}
