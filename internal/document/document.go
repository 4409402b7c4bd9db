package document

import "fmt"

// Offset represents a byte position in the document.
// This is the fundamental position type, directly indexing into the text.
type Offset = int64

// Point represents a line and column position.
// Both Line and Column are 0-indexed. Column is measured in bytes from the
// start of the line.
type Point struct {
	Line   uint32
	Column uint32
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Document is an immutable text snapshot with a precomputed line index.
type Document struct {
	text string

	// lineStarts[i] is the byte offset of the first character of line i.
	// lineStarts[0] is always 0.
	lineStarts []Offset
}

// New creates a document from the given text.
func New(text string) *Document {
	starts := []Offset{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, Offset(i+1))
		}
	}
	return &Document{text: text, lineStarts: starts}
}

// Text returns the full document text.
func (d *Document) Text() string {
	return d.text
}

// Len returns the document length in bytes.
func (d *Document) Len() Offset {
	return Offset(len(d.text))
}

// LineCount returns the number of lines. An empty document has one line.
func (d *Document) LineCount() uint32 {
	return uint32(len(d.lineStarts))
}

// LineAt returns the line containing the given offset.
// Offsets past the end of the document map to the last line.
func (d *Document) LineAt(offset Offset) uint32 {
	if offset <= 0 {
		return 0
	}
	// Binary search for the last line start <= offset.
	lo, hi := 0, len(d.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if d.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return uint32(lo)
}

// LineStartOffset returns the offset of the first character of the line.
func (d *Document) LineStartOffset(line uint32) Offset {
	if int(line) >= len(d.lineStarts) {
		return d.Len()
	}
	return d.lineStarts[line]
}

// LineEndOffset returns the offset of the line's terminating newline, or
// the document end for the last line.
func (d *Document) LineEndOffset(line uint32) Offset {
	if int(line)+1 < len(d.lineStarts) {
		return d.lineStarts[line+1] - 1
	}
	return d.Len()
}

// LineText returns the text of the line without its newline.
func (d *Document) LineText(line uint32) string {
	return d.text[d.LineStartOffset(line):d.LineEndOffset(line)]
}

// TextRange returns the text in [start, end), clamped to the document.
func (d *Document) TextRange(start, end Offset) string {
	if start < 0 {
		start = 0
	}
	if end > d.Len() {
		end = d.Len()
	}
	if start >= end {
		return ""
	}
	return d.text[start:end]
}

// IndentEndOffset returns the offset of the first non-blank character of
// the line (the indentation boundary). If the line is entirely blank it
// returns the line end.
func (d *Document) IndentEndOffset(line uint32) Offset {
	start := d.LineStartOffset(line)
	end := d.LineEndOffset(line)
	for off := start; off < end; off++ {
		c := d.text[off]
		if c != ' ' && c != '\t' {
			return off
		}
	}
	return end
}

// OffsetToPoint converts a byte offset to a line/column point.
func (d *Document) OffsetToPoint(offset Offset) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > d.Len() {
		offset = d.Len()
	}
	line := d.LineAt(offset)
	return Point{Line: line, Column: uint32(offset - d.LineStartOffset(line))}
}

// PointToOffset converts a line/column point to a byte offset.
// Columns past the line end clamp to the line end.
func (d *Document) PointToOffset(p Point) Offset {
	start := d.LineStartOffset(p.Line)
	end := d.LineEndOffset(p.Line)
	off := start + Offset(p.Column)
	if off > end {
		off = end
	}
	return off
}

// Clamp restricts an offset to [0, Len].
func (d *Document) Clamp(offset Offset) Offset {
	if offset < 0 {
		return 0
	}
	if offset > d.Len() {
		return d.Len()
	}
	return offset
}
