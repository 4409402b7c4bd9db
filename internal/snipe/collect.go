package snipe

import (
	"fmt"
	"strings"

	"github.com/dshills/keysnipe/internal/key"
)

// collectStatus is the outcome of an interactive collection session.
type collectStatus uint8

const (
	// collectDone means the key sequence is complete.
	collectDone collectStatus = iota

	// collectRepeat means confirm was pressed before any key: repeat the
	// last search instead.
	collectRepeat

	// collectAbort means the user cancelled; no motion happens.
	collectAbort
)

// collect runs the interactive key-collection loop. remaining starts at
// the request's key count; growth and erasure adjust it. forward and
// magnitude shape the live-highlight scope.
func (e *Engine) collect(keyCount int, forward bool, magnitude int) ([]rune, collectStatus) {
	remaining := keyCount
	var buffer []rune

	for remaining > 0 {
		e.prompt(remaining, buffer)

		ev := e.keys.NextKey()
		switch {
		case ev.IsTab() && e.cfg.AllowKeyGrowth:
			// Grow: one more character will be collected.
			remaining++
			continue

		case ev.IsEnter():
			if len(buffer) == 0 {
				return nil, collectRepeat
			}
			return buffer, collectDone

		case ev.IsEscape():
			e.marks.Clear()
			return nil, collectAbort

		case ev.IsBackspace():
			remaining++
			if len(buffer) < 2 {
				// Erasing the sole character aborts.
				e.marks.Clear()
				return nil, collectAbort
			}
			buffer = buffer[:len(buffer)-1]

		case ev.IsTab():
			// Growth disabled: Tab is a literal tab character.
			buffer = append(buffer, '\t')
			remaining--

		case ev.IsRune():
			buffer = append(buffer, ev.Rune)
			remaining--

		default:
			// Any other named key cancels the collection.
			e.marks.Clear()
			return nil, collectAbort
		}

		if e.cfg.HighlightIncrementally {
			e.previewHighlight(buffer, forward, magnitude)
		}
	}

	return buffer, collectDone
}

// previewHighlight shows every match of the in-progress sequence in
// scope. Prior highlights are cleared first and the new set is armed for
// clear-on-next-action, so stale feedback never outlives the keystroke.
func (e *Engine) previewHighlight(buffer []rune, forward bool, magnitude int) {
	e.marks.Clear()
	if len(buffer) == 0 {
		return
	}

	pats := e.resolveKeys(buffer)
	re, err := compilePatterns(pats, e.cfg.Case)
	if err != nil {
		return
	}

	origin := e.host.Cursor()
	bounds := e.scopes.Select(magnitude, false).Bounds(e.scopeContext(origin), forward)
	locs := re.FindAllStringIndex(e.doc.TextRange(bounds.Start, bounds.End), -1)
	if !forward {
		// The landing candidate is the nearest match behind the cursor.
		reverse(locs)
	}
	for i, loc := range locs {
		start := bounds.Start + int64(loc[0])
		end := bounds.Start + int64(loc[1])
		if i == 0 {
			e.marks.MarkFirst(start, end)
		} else {
			e.marks.MarkSecondary(start, end)
		}
	}
	e.armCleanup()
}

// prompt shows the remaining count and buffered keys.
func (e *Engine) prompt(remaining int, buffer []rune) {
	if !e.cfg.ShowPrompt || e.msg == nil {
		return
	}
	var b strings.Builder
	for _, r := range buffer {
		b.WriteString(key.RuneDisplay(r))
	}
	e.say(fmt.Sprintf("snipe (%d): %s", remaining, b.String()))
}

func reverse(locs [][]int) {
	for i, j := 0, len(locs)-1; i < j; i, j = i+1, j-1 {
		locs[i], locs[j] = locs[j], locs[i]
	}
}
