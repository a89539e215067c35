package mock

import "github.com/fwojciec/noble"

// Compile-time interface verification.
var _ noble.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of noble.LanguageDetector.
type LanguageDetector struct {
	DetectFromPathFn func(path string) string
}

func (d *LanguageDetector) DetectFromPath(path string) string {
	return d.DetectFromPathFn(path)
}
