package noble

// Color is a hex color string in "#RRGGBB" format.
// The empty string means no override (use terminal default).
type Color string

// Palette holds the semantic colors used to highlight noble source.
type Palette struct {
	// Base colors
	Background Color
	Foreground Color

	// Syntax highlighting colors, one per token class
	Keyword     Color
	String      Color
	Number      Color
	Comment     Color
	Operator    Color
	Function    Color
	Type        Color
	Property    Color
	Variable    Color
	Constant    Color
	Punctuation Color

	// UI colors
	LineNumber   Color
	UIBackground Color
	UIForeground Color
}

// ForClass returns the palette color for a token class as reported by
// Token.Class. Unknown classes, including plain text, get the foreground.
func (p Palette) ForClass(class string) Color {
	switch class {
	case AliasKeyword:
		return p.Keyword
	case string(CategoryString):
		return p.String
	case string(CategoryNumber):
		return p.Number
	case string(CategoryComment):
		return p.Comment
	case string(CategoryOperator):
		return p.Operator
	case AliasFunction:
		return p.Function
	case string(CategoryType):
		return p.Type
	case AliasProperty:
		return p.Property
	case AliasVariable, string(CategoryIdentifier):
		return p.Variable
	case string(CategoryConstant):
		return p.Constant
	case string(CategoryPunctuation):
		return p.Punctuation
	default:
		return p.Foreground
	}
}

// Theme provides colors for rendering highlighted source.
// Different implementations can provide light/dark variants.
type Theme interface {
	Palette() Palette
}
