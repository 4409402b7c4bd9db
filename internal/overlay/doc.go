// Package overlay manages the highlight regions the snipe engine shows
// while collecting keys and after a jump.
//
// Regions are purely visual: they never affect search bounds or cursor
// arithmetic. All regions share one category so the whole set can be
// cleared as a unit, and a one-shot Cleanup token models the
// clear-on-next-user-action lifecycle: whoever observes the next user
// event fires the token, and firing twice is harmless.
package overlay
