// Package regexp2 provides the noble grammar and a tokenizer that applies it
// using the regexp2 engine, which supports the lookbehind and lookahead
// assertions the grammar is written with.
package regexp2

import (
	"errors"
	"fmt"

	regexp2lib "github.com/dlclark/regexp2"
	"github.com/fwojciec/noble"
)

// Rule maps a token category to the pattern that matches it.
type Rule struct {
	Category noble.Category
	Alias    string // Optional display label
	Pattern  string // regexp2 syntax, implicitly anchored at the cursor
	Inside   []Rule // Optional rules applied to the matched text
}

// Grammar is a compiled, ordered rule set. Earlier rules win when more than
// one rule matches at the same position. A Grammar is immutable and safe for
// concurrent use.
type Grammar struct {
	rules []compiledRule
}

type compiledRule struct {
	category noble.Category
	alias    string
	re       *regexp2lib.Regexp
	inside   *Grammar
}

// Compile compiles rules into a Grammar, preserving their order.
func Compile(rules []Rule) (*Grammar, error) {
	if len(rules) == 0 {
		return nil, errors.New("regexp2: grammar has no rules")
	}

	g := &Grammar{rules: make([]compiledRule, 0, len(rules))}
	for i, r := range rules {
		if r.Category == "" {
			return nil, fmt.Errorf("regexp2: rule %d has no category", i)
		}

		// \G pins the match to the position the scan starts at.
		re, err := regexp2lib.Compile(`\G(?:`+r.Pattern+`)`, regexp2lib.None)
		if err != nil {
			return nil, fmt.Errorf("regexp2: rule %d (%s): %w", i, r.Category, err)
		}

		cr := compiledRule{category: r.Category, alias: r.Alias, re: re}
		if len(r.Inside) > 0 {
			inside, err := Compile(r.Inside)
			if err != nil {
				return nil, fmt.Errorf("regexp2: rule %d (%s) inside: %w", i, r.Category, err)
			}
			cr.inside = inside
		}
		g.rules = append(g.rules, cr)
	}
	return g, nil
}

// MustCompile is like Compile but panics if the rules cannot be compiled.
func MustCompile(rules []Rule) *Grammar {
	g, err := Compile(rules)
	if err != nil {
		panic(err)
	}
	return g
}

// Len returns the number of top-level rules.
func (g *Grammar) Len() int {
	return len(g.rules)
}

const (
	ident = `[a-zA-Z_][a-zA-Z_0-9]*`

	// wb is an ASCII word boundary. regexp2's \b counts every Unicode letter
	// as a word character, so "éif" would hide the keyword.
	wb = `(?:(?<=[a-zA-Z0-9_])(?![a-zA-Z0-9_])|(?<![a-zA-Z0-9_])(?=[a-zA-Z0-9_]))`
)

// genericRules classify the inside of a generic type such as Foo<Bar, Baz>.
var genericRules = []Rule{
	{Category: noble.CategoryPunctuation, Pattern: `[<>(),]`},
	{Category: noble.CategoryType, Pattern: wb + ident + wb},
}

var nobleRules = []Rule{
	{Category: noble.CategoryComment, Pattern: `#[^\r\n\u2028\u2029]*`},
	{Category: noble.CategoryString, Pattern: `"(?:\\[\s\S]|[^"\\\n])*"`},
	{Category: noble.CategoryNumber, Pattern: wb + `[0-9]*\.[0-9]+|` + wb + `[0-9]+\.[0-9]*|` + wb + `[0-9]+` + wb},
	{
		Category: noble.CategoryKeyword,
		Pattern: wb + `(?:module|import|class|interface|enum|implements|function|var|const|throw|` +
			`if|else|return|public|private|static|new|this|while|for|in|try|catch)` + wb,
	},
	{Category: noble.CategoryConstant, Pattern: wb + `(?:true|false|null)` + wb},

	// Built-in types
	{Category: noble.CategoryType, Alias: noble.AliasProperty, Pattern: wb + `(?:int|long|float|bool|string|type)` + wb},
	// Type annotation (a: Foo); the token starts right after the colon
	{Category: noble.CategoryType, Alias: noble.AliasProperty, Pattern: `(?<=:)\s*` + ident},
	// Receiver of a constructor call (Foo.new)
	{Category: noble.CategoryType, Alias: noble.AliasProperty, Pattern: wb + ident + wb + `(?=\.new)`},
	// Generic types (Foo<Bar, Baz>)
	{Category: noble.CategoryType, Alias: noble.AliasProperty, Pattern: wb + ident + `\s*<[^>]+>`, Inside: genericRules},

	{Category: noble.CategoryFunction, Alias: noble.AliasFunction, Pattern: wb + `[a-zA-Z_][a-zA-Z_0-9!?]*\s*(?=\()`},
	{Category: noble.CategoryOperator, Alias: noble.AliasKeyword, Pattern: wb + `(?:not|or|and|ifnot)` + wb + `|[-+*/=<>:?]`},
	{Category: noble.CategoryIdentifier, Alias: noble.AliasVariable, Pattern: wb + `[a-zA-Z_][a-zA-Z_0-9!?]*` + wb},
	{Category: noble.CategoryPunctuation, Pattern: `[{}\[\];(),.:]`},
}

var nobleGrammar = MustCompile(nobleRules)

// Noble returns the compiled noble grammar.
func Noble() *Grammar {
	return nobleGrammar
}

// NobleRules returns a copy of the rules the noble grammar is compiled from,
// for callers that want to extend or reorder them.
func NobleRules() []Rule {
	return cloneRules(nobleRules)
}

func cloneRules(rules []Rule) []Rule {
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = r
		if r.Inside != nil {
			out[i].Inside = cloneRules(r.Inside)
		}
	}
	return out
}
