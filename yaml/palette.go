// Package yaml loads color palettes from YAML documents.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/noble"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// paletteFile is the on-disk shape of a palette.
type paletteFile struct {
	Background   string `yaml:"background"`
	Foreground   string `yaml:"foreground"`
	Keyword      string `yaml:"keyword"`
	String       string `yaml:"string"`
	Number       string `yaml:"number"`
	Comment      string `yaml:"comment"`
	Operator     string `yaml:"operator"`
	Function     string `yaml:"function"`
	Type         string `yaml:"type"`
	Property     string `yaml:"property"`
	Variable     string `yaml:"variable"`
	Constant     string `yaml:"constant"`
	Punctuation  string `yaml:"punctuation"`
	LineNumber   string `yaml:"line_number"`
	UIBackground string `yaml:"ui_background"`
	UIForeground string `yaml:"ui_foreground"`
}

// LoadPalette reads a palette from r. Keys missing from the document keep
// the value from base, so a file only needs the colors it overrides.
// Unknown keys and colors not in "#RRGGBB" form are rejected.
func LoadPalette(r io.Reader, base noble.Palette) (noble.Palette, error) {
	f := fromPalette(base)

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return noble.Palette{}, fmt.Errorf("yaml: decode palette: %w", err)
	}

	p := f.toPalette()
	if err := validate(p); err != nil {
		return noble.Palette{}, err
	}
	return p, nil
}

func fromPalette(p noble.Palette) paletteFile {
	return paletteFile{
		Background:   string(p.Background),
		Foreground:   string(p.Foreground),
		Keyword:      string(p.Keyword),
		String:       string(p.String),
		Number:       string(p.Number),
		Comment:      string(p.Comment),
		Operator:     string(p.Operator),
		Function:     string(p.Function),
		Type:         string(p.Type),
		Property:     string(p.Property),
		Variable:     string(p.Variable),
		Constant:     string(p.Constant),
		Punctuation:  string(p.Punctuation),
		LineNumber:   string(p.LineNumber),
		UIBackground: string(p.UIBackground),
		UIForeground: string(p.UIForeground),
	}
}

func (f paletteFile) toPalette() noble.Palette {
	return noble.Palette{
		Background:   noble.Color(f.Background),
		Foreground:   noble.Color(f.Foreground),
		Keyword:      noble.Color(f.Keyword),
		String:       noble.Color(f.String),
		Number:       noble.Color(f.Number),
		Comment:      noble.Color(f.Comment),
		Operator:     noble.Color(f.Operator),
		Function:     noble.Color(f.Function),
		Type:         noble.Color(f.Type),
		Property:     noble.Color(f.Property),
		Variable:     noble.Color(f.Variable),
		Constant:     noble.Color(f.Constant),
		Punctuation:  noble.Color(f.Punctuation),
		LineNumber:   noble.Color(f.LineNumber),
		UIBackground: noble.Color(f.UIBackground),
		UIForeground: noble.Color(f.UIForeground),
	}
}

func validate(p noble.Palette) error {
	colors := map[string]noble.Color{
		"background":    p.Background,
		"foreground":    p.Foreground,
		"keyword":       p.Keyword,
		"string":        p.String,
		"number":        p.Number,
		"comment":       p.Comment,
		"operator":      p.Operator,
		"function":      p.Function,
		"type":          p.Type,
		"property":      p.Property,
		"variable":      p.Variable,
		"constant":      p.Constant,
		"punctuation":   p.Punctuation,
		"line_number":   p.LineNumber,
		"ui_background": p.UIBackground,
		"ui_foreground": p.UIForeground,
	}
	for key, c := range colors {
		if !isHexColor(c) {
			return fmt.Errorf("yaml: %s: invalid color %q, want #RRGGBB", key, c)
		}
	}
	return nil
}

// isHexColor reports whether c is empty or has the form #RRGGBB.
// colorful.Hex also takes #RGB and stops at the first non-hex digit, so the
// parsed color must print back as c.
func isHexColor(c noble.Color) bool {
	if c == "" {
		return true
	}
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return false
	}
	return strings.EqualFold(parsed.Hex(), string(c))
}
