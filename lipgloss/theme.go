// Package lipgloss provides themes and a token renderer using the Lipgloss styling library.
package lipgloss

import "github.com/fwojciec/noble"

// Compile-time interface verification.
var _ noble.Theme = (*Theme)(nil)

// Theme implements noble.Theme with Lipgloss-compatible colors.
type Theme struct {
	palette noble.Palette
}

// NewTheme returns a theme with the given palette.
func NewTheme(p noble.Palette) *Theme {
	return &Theme{palette: p}
}

// Palette returns the semantic color palette for this theme.
func (t *Theme) Palette() noble.Palette {
	return t.palette
}

// DefaultTheme returns the default theme (dark background optimized).
func DefaultTheme() *Theme {
	return DarkTheme()
}

// DarkTheme returns a theme optimized for dark terminal backgrounds.
func DarkTheme() *Theme {
	return &Theme{
		palette: noble.Palette{
			// Base colors (Catppuccin Mocha)
			Background: "#1e1e2e",
			Foreground: "#cdd6f4",

			// Syntax highlighting colors
			Keyword:     "#cba6f7",
			String:      "#a6e3a1",
			Number:      "#fab387",
			Comment:     "#6c7086",
			Operator:    "#89dceb",
			Function:    "#89b4fa",
			Type:        "#f9e2af",
			Property:    "#f9e2af",
			Variable:    "#cdd6f4",
			Constant:    "#fab387",
			Punctuation: "#9399b2",

			// UI colors
			LineNumber:   "#6c7086",
			UIBackground: "#313244",
			UIForeground: "#a6adc8",
		},
	}
}

// LightTheme returns a theme optimized for light terminal backgrounds.
func LightTheme() *Theme {
	return &Theme{
		palette: noble.Palette{
			// Base colors (Catppuccin Latte)
			Background: "#eff1f5",
			Foreground: "#4c4f69",

			// Syntax highlighting colors
			Keyword:     "#8839ef",
			String:      "#40a02b",
			Number:      "#fe640b",
			Comment:     "#9ca0b0",
			Operator:    "#04a5e5",
			Function:    "#1e66f5",
			Type:        "#df8e1d",
			Property:    "#df8e1d",
			Variable:    "#4c4f69",
			Constant:    "#fe640b",
			Punctuation: "#6c6f85",

			// UI colors
			LineNumber:   "#9ca0b0",
			UIBackground: "#e6e9ef",
			UIForeground: "#6c6f85",
		},
	}
}
