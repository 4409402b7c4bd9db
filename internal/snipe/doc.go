// Package snipe implements incremental multi-character search motions.
//
// A snipe motion collects a fixed number of characters interactively and
// jumps the cursor to the next (or previous) literal occurrence of the
// typed sequence within a configurable scope, highlighting candidate
// matches live as keys are typed.
//
// # Motion families
//
// Eight motions are exposed, mirroring the Vim f/t family extended to two
// characters:
//
//   - Snipe / SnipeReverse: two characters, inclusive (s / S)
//   - SnipeTill / SnipeTillReverse: two characters, exclusive (x / X)
//   - Find / FindReverse: one character, inclusive (f / F)
//   - Till / TillReverse: one character, exclusive (t / T)
//
// plus RepeatLast and RepeatLastReverse for the ;/, repeat commands.
//
// # State machine
//
// An invocation moves through:
//
//	Idle -> CollectingKeys -> Searching -> Success
//	                       |            -> SpilloverRetry -> Searching
//	                       |            -> NotFound (cursor restored)
//	                       -> Abort (user cancelled, no motion)
//
// The engine runs synchronously inside the host's input-handling turn;
// the key collector is the only suspension point. The engine never edits
// text; it reads the document and repositions a cursor.
package snipe
