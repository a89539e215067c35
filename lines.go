package noble

import "strings"

// SplitLines splits a flat list of tokens into per-line token slices.
// Tokens that span multiple lines (comments never do, but generic types and
// plain text can) are cut at newline boundaries; the newlines themselves are
// dropped. Offsets of the pieces still point into the original source.
func SplitLines(tokens []Token) [][]Token {
	if len(tokens) == 0 {
		return [][]Token{}
	}

	var result [][]Token
	var currentLine []Token

	for _, tok := range tokens {
		if !strings.Contains(tok.Text, "\n") {
			currentLine = append(currentLine, tok)
			continue
		}

		offset := tok.Start
		parts := strings.Split(tok.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, tok.slice(offset, offset+len(part)))
			}
			offset += len(part) + 1
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}

	return result
}

// SplitSpanLines splits a flat list of styled spans into per-line slices,
// cutting spans that cover several lines. Newlines are dropped.
func SplitSpanLines(spans []Span) [][]Span {
	if len(spans) == 0 {
		return [][]Span{}
	}

	var result [][]Span
	var currentLine []Span

	for _, span := range spans {
		parts := strings.Split(span.Text, "\n")
		for i, part := range parts {
			if part != "" {
				currentLine = append(currentLine, Span{Text: part, Style: span.Style})
			}
			if i < len(parts)-1 {
				result = append(result, currentLine)
				currentLine = nil
			}
		}
	}

	if len(currentLine) > 0 {
		result = append(result, currentLine)
	}

	return result
}

// slice returns the part of t covering source bytes [start, end),
// clipping nested tokens to the same range.
func (t Token) slice(start, end int) Token {
	out := t
	out.Start, out.End = start, end
	out.Text = t.Text[start-t.Start : end-t.Start]
	out.Nested = nil
	for _, n := range t.Nested {
		lo, hi := max(n.Start, start), min(n.End, end)
		if lo < hi {
			out.Nested = append(out.Nested, n.slice(lo, hi))
		}
	}
	return out
}
