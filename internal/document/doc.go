// Package document provides a read-only view of a text buffer for motion
// computation.
//
// The snipe engine never edits text; it only reads it and repositions a
// cursor. Document therefore exposes just the query surface motions need:
// byte offsets, line boundaries, indentation, and offset/point conversion.
// A Document is immutable once created, so it is safe to share between the
// engine and a renderer without locking.
package document
