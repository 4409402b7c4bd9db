// Package alias maps typed characters to search pattern fragments.
//
// By default a typed character matches itself literally. An alias replaces
// that with a richer regular-expression fragment, so a single key can stand
// for a character class (for example '[' matching any opening bracket).
// Resolvers compose by priority: context-specific overrides are consulted
// before global tables, and an optional Lua script can compute aliases
// dynamically.
package alias
