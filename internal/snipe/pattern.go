package snipe

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/dshills/keysnipe/internal/alias"
	"github.com/dshills/keysnipe/internal/key"
)

// resolveKeys maps collected characters through the alias resolver,
// producing one pattern fragment per key.
func (e *Engine) resolveKeys(keys []rune) []alias.Pattern {
	pats := make([]alias.Pattern, 0, len(keys))
	for _, r := range keys {
		pats = append(pats, alias.Resolve(e.aliases, r))
	}
	return pats
}

// compilePatterns concatenates the fragments into the effective search
// expression. Under smart case the search is case-insensitive unless any
// typed literal contains an uppercase rune.
func compilePatterns(pats []alias.Pattern, caseMode string) (*regexp.Regexp, error) {
	var b strings.Builder
	sensitive := caseMode == "sensitive"
	for _, p := range pats {
		b.WriteString(p.Expr)
		if !sensitive && hasUpper(p.Literal) {
			sensitive = true
		}
	}

	expr := b.String()
	if !sensitive {
		expr = "(?i)" + expr
	}
	return regexp.Compile(expr)
}

func hasUpper(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return true
		}
	}
	return false
}

// literalText returns the raw typed text of the pattern sequence.
func literalText(pats []alias.Pattern) string {
	var b strings.Builder
	for _, p := range pats {
		b.WriteString(p.Literal)
	}
	return b.String()
}

// displayText renders the typed text readably for prompts and errors:
// control characters become named tokens instead of invisible characters.
func displayText(pats []alias.Pattern) string {
	var b strings.Builder
	for _, p := range pats {
		for _, r := range p.Literal {
			b.WriteString(key.RuneDisplay(r))
		}
	}
	return b.String()
}

// isAllWhitespace reports whether the typed text is spaces and tabs only,
// which triggers the leading-whitespace skip heuristic.
func isAllWhitespace(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}
