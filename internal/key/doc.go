// Package key defines the key events the snipe engine consumes.
//
// The engine only distinguishes literal characters from a handful of named
// keys (confirm, cancel, erase-last, grow). Event carries enough structure
// for that and for rendering typed keys back to the user; translation from
// a concrete terminal library lives with the host, not here.
package key
