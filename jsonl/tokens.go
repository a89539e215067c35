// Package jsonl provides JSONL encoding of token streams, one token per line.
package jsonl

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/noble"
)

// ErrInvalidUTF8 is returned when a token's text cannot survive a JSON round trip.
var ErrInvalidUTF8 = errors.New("jsonl: token text is not valid UTF-8")

// maxLineSize is the maximum size for a single JSONL line (4MB).
// A comment or string token spans at most one source line, so this is
// generous for hand-written source.
const maxLineSize = 4 * 1024 * 1024

// Writer writes tokens as JSONL records.
type Writer struct {
	w io.Writer
}

// NewWriter creates a new Writer on w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write encodes each top-level token as one line. Nested tokens are kept
// inside their parent's record.
func (w *Writer) Write(tokens []noble.Token) error {
	for i, tok := range tokens {
		if !validText(tok) {
			return fmt.Errorf("token %d: %w", i, ErrInvalidUTF8)
		}
		data, err := json.Marshal(tok)
		if err != nil {
			return err
		}
		data = append(data, '\n')
		if _, err := w.w.Write(data); err != nil {
			return err
		}
	}
	return nil
}

func validText(tok noble.Token) bool {
	if !utf8.ValidString(tok.Text) {
		return false
	}
	for _, n := range tok.Nested {
		if !validText(n) {
			return false
		}
	}
	return true
}

// Read decodes JSONL token records from r, skipping blank lines.
// Each record's offsets must agree with the length of its text.
func Read(r io.Reader) ([]noble.Token, error) {
	tokens := []noble.Token{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var tok noble.Token
		if err := json.Unmarshal([]byte(line), &tok); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if err := checkOffsets(tok); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		tokens = append(tokens, tok)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

func checkOffsets(tok noble.Token) error {
	if tok.Start < 0 || tok.End-tok.Start != len(tok.Text) {
		return fmt.Errorf("token %q spans [%d,%d)", tok.Text, tok.Start, tok.End)
	}
	for _, n := range tok.Nested {
		if err := checkOffsets(n); err != nil {
			return err
		}
	}
	return nil
}
