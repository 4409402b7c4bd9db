// Package scope computes the document range eligible for a snipe search.
//
// A scope mode names how far a search may look: the current line, the
// visible window, or the whole buffer. The "whole" variants span both
// sides of the cursor regardless of search direction and exist mainly so
// highlighting can mark matches behind the cursor too. Three independent
// settings compose a Resolver: the primary scope, an optional repeat
// scope used by repeat commands, and an optional spillover scope used as
// a wider fallback.
package scope
