package noble

// Span represents a styled segment of code.
type Span struct {
	Text  string // The text content of this span
	Style Style  // Visual style to apply (colors, bold, etc.)
}

// Style represents the visual styling for a span.
type Style struct {
	Foreground string // Hex color code (e.g., "#ff0000") or empty for default
	Bold       bool   // Whether the text should be bold
}

// Highlighter extracts styled spans from source code.
type Highlighter interface {
	// Highlight splits source code into styled spans for the given language.
	// Returns nil if the language is not supported.
	Highlight(language, source string) []Span
}

// LanguageDetector determines the programming language from a file path.
type LanguageDetector interface {
	// DetectFromPath returns the language name for the given path,
	// or an empty string if the language cannot be determined.
	// Noble files are reported as LanguageName.
	DetectFromPath(path string) string
}
