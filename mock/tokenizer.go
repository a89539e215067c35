// Package mock provides test doubles for noble interfaces.
package mock

import "github.com/fwojciec/noble"

// Compile-time interface verification.
var _ noble.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of noble.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(source string) []noble.Token
}

func (t *Tokenizer) Tokenize(source string) []noble.Token {
	return t.TokenizeFn(source)
}
