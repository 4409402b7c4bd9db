package snipe

import (
	"fmt"
	"regexp"

	"github.com/dshills/keysnipe/internal/alias"
	"github.com/dshills/keysnipe/internal/document"
	"github.com/dshills/keysnipe/internal/scope"
)

// span is a matched [start, end) region in document offsets.
type span struct {
	start document.Offset
	end   document.Offset
}

func (s span) len() document.Offset { return s.end - s.start }

// seek performs the directional search and moves the cursor on success.
// count is signed: positive seeks forward, negative backward; its
// magnitude selects the Nth occurrence. repeating selects the repeat
// scope. On failure the cursor is untouched and the error carries the
// searched text.
func (e *Engine) seek(count int, pats []alias.Pattern, consume bool, repeating bool) (document.Offset, error) {
	if len(pats) == 0 {
		return 0, ErrEmptyKeys
	}

	forward := count > 0
	magnitude := count
	if magnitude < 0 {
		magnitude = -magnitude
	}
	if magnitude == 0 {
		magnitude = 1
	}

	re, err := compilePatterns(pats, e.cfg.Case)
	if err != nil {
		return 0, fmt.Errorf("snipe: compiling pattern: %w", err)
	}
	literal := literalText(pats)

	origin := e.host.Cursor()
	origin = e.skipLeadingWhitespace(origin, literal, forward)

	// Spillover widens the scope at most once; the explicit retry budget
	// keeps termination obvious.
	mode := e.scopes.Select(magnitude, repeating)
	retried := false
	for {
		bounds := e.searchBounds(mode, origin, forward, consume)
		match, ok := nthMatch(re, e.doc, bounds, forward, magnitude)
		if ok {
			pos := e.place(match, forward, consume)
			pos = e.skipTrailingWhitespace(pos, match, forward)
			e.host.SetCursor(pos)
			if e.cfg.FollowViewport {
				e.follow.Follow(e.doc.LineAt(pos))
			}
			if e.cfg.HighlightAfterJump {
				e.highlightMatches(re, bounds, match)
			}
			return pos, nil
		}

		if !retried {
			if spill, ok := e.scopes.Spillover(); ok && spill != mode {
				mode = spill
				retried = true
				continue
			}
		}
		return 0, &NotFoundError{Query: displayText(pats)}
	}
}

// searchBounds computes the eligible range for the search. The scope's
// directional bounds already exclude the origin position; exclusive
// consumption starts one character further out so a motion that stopped
// short of a match does not immediately re-find it.
func (e *Engine) searchBounds(mode scope.Mode, origin document.Offset, forward, consume bool) scope.Bounds {
	b := mode.Bounds(e.scopeContext(origin), forward)
	if !consume {
		if forward {
			b.Start++
		} else {
			b.End--
		}
		if b.Start > b.End {
			b.Start = b.End
		}
	}
	return b
}

// skipLeadingWhitespace adjusts the search origin for all-whitespace
// patterns so the snipe jumps past leading indentation instead of
// matching inside it.
func (e *Engine) skipLeadingWhitespace(origin document.Offset, literal string, forward bool) document.Offset {
	if !e.cfg.SkipLeadingWhitespace || !isAllWhitespace(literal) {
		return origin
	}

	line := e.doc.LineAt(origin)
	boundary := e.doc.IndentEndOffset(line)
	if forward {
		if origin < boundary {
			return boundary - 1
		}
	} else {
		if origin <= boundary {
			return e.doc.LineStartOffset(line)
		}
	}
	return origin
}

// skipTrailingWhitespace advances a forward landing past a whitespace run
// of two or more characters, minus the match length, so whitespace snipes
// settle at the end of the run.
func (e *Engine) skipTrailingWhitespace(pos document.Offset, match span, forward bool) document.Offset {
	if !forward || !e.cfg.SkipLeadingWhitespace {
		return pos
	}

	text := e.doc.Text()
	run := document.Offset(0)
	for off := pos; off < e.doc.Len(); off++ {
		c := text[off]
		if c != ' ' && c != '\t' {
			break
		}
		run++
	}
	if run >= 2 && run > match.len() {
		return pos + run - match.len()
	}
	return pos
}

// place applies the cursor-placement rule for the current modal state.
//
// The rules are direction-aware so operators and visual selections
// include or exclude the match from either side. The plain exclusive
// forward case carries the overshoot correction: step back by the match
// length, then forward one position when the match is longer than one
// character.
func (e *Engine) place(match span, forward, consume bool) document.Offset {
	switch e.host.State() {
	case StateVisual:
		if consume {
			if forward {
				return match.end - 1
			}
			return match.start
		}
		if forward {
			return match.start
		}
		return match.end

	case StateOperator:
		if consume {
			if forward {
				return match.end
			}
			return match.start
		}
		if forward {
			return match.start
		}
		return match.end

	default:
		if consume {
			return match.start
		}
		if forward {
			pos := match.start - match.len()
			if match.len() > 1 {
				pos++
			}
			if pos < 0 {
				pos = 0
			}
			return pos
		}
		return match.end
	}
}

// nthMatch finds the Nth occurrence of the pattern within bounds in the
// given direction. Matches are constrained to lie entirely inside bounds.
func nthMatch(re *regexp.Regexp, doc *document.Document, b scope.Bounds, forward bool, n int) (span, bool) {
	if b.Empty() || n < 1 {
		return span{}, false
	}

	locs := re.FindAllStringIndex(doc.TextRange(b.Start, b.End), -1)
	if len(locs) < n {
		return span{}, false
	}

	var loc []int
	if forward {
		loc = locs[n-1]
	} else {
		loc = locs[len(locs)-n]
	}
	return span{
		start: b.Start + document.Offset(loc[0]),
		end:   b.Start + document.Offset(loc[1]),
	}, true
}

// highlightMatches marks the landing match primary and every other match
// in scope secondary, then arms the clear-on-next-action cleanup.
func (e *Engine) highlightMatches(re *regexp.Regexp, b scope.Bounds, landing span) {
	e.marks.Clear()
	for _, loc := range re.FindAllStringIndex(e.doc.TextRange(b.Start, b.End), -1) {
		start := b.Start + document.Offset(loc[0])
		end := b.Start + document.Offset(loc[1])
		if start == landing.start && end == landing.end {
			continue
		}
		e.marks.MarkSecondary(start, end)
	}
	e.marks.MarkFirst(landing.start, landing.end)
	e.armCleanup()
}
