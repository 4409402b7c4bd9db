package alias

import "regexp"

// Pattern is the result of resolving one typed character.
type Pattern struct {
	// Literal is the character as typed, used for display and case rules.
	Literal string

	// Expr is the regular-expression fragment to match. For unaliased
	// characters this is the escaped literal.
	Expr string
}

// Resolver looks up an alias pattern for a character.
// Returning ok=false means the character has no alias and matches itself.
type Resolver interface {
	Lookup(r rune) (expr string, ok bool)
}

// Resolve maps a character through the resolver, falling back to a literal
// match. Absence of an alias is the default path, not an error.
func Resolve(res Resolver, r rune) Pattern {
	lit := string(r)
	if res != nil {
		if expr, ok := res.Lookup(r); ok {
			return Pattern{Literal: lit, Expr: expr}
		}
	}
	return Pattern{Literal: lit, Expr: regexp.QuoteMeta(lit)}
}

// Map is a static alias table.
type Map map[rune]string

// Lookup implements Resolver.
func (m Map) Lookup(r rune) (string, bool) {
	expr, ok := m[r]
	return expr, ok
}

// Chain consults resolvers in order and returns the first hit.
// Earlier entries override later ones, so context-local tables should be
// placed before global ones.
type Chain []Resolver

// Lookup implements Resolver.
func (c Chain) Lookup(r rune) (string, bool) {
	for _, res := range c {
		if res == nil {
			continue
		}
		if expr, ok := res.Lookup(r); ok {
			return expr, true
		}
	}
	return "", false
}
