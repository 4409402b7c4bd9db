package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keysnipe/internal/document"
	"github.com/dshills/keysnipe/internal/key"
	"github.com/dshills/keysnipe/internal/overlay"
	"github.com/dshills/keysnipe/internal/snipe"
)

// tabWidth is the display width of a tab stop.
const tabWidth = 4

var (
	styleDefault   = tcell.StyleDefault
	stylePrimary   = tcell.StyleDefault.Background(tcell.ColorYellow).Foreground(tcell.ColorBlack).Bold(true)
	styleSecondary = tcell.StyleDefault.Foreground(tcell.ColorYellow).Underline(true)
	styleStatus    = tcell.StyleDefault.Reverse(true)
)

// Viewer renders a read-only document on a tcell screen and feeds
// terminal input to the snipe engine. It implements the engine's Host,
// KeySource, and Messenger along with the viewport View.
type Viewer struct {
	screen tcell.Screen
	doc    *document.Document
	marks  *overlay.Manager

	cursor document.Offset
	top    uint32
	state  snipe.State
	status string

	// onInterrupt receives data posted from other goroutines, such as
	// config reload results.
	onInterrupt func(data interface{})
}

// NewViewer creates a viewer over the document.
func NewViewer(screen tcell.Screen, doc *document.Document) *Viewer {
	return &Viewer{screen: screen, doc: doc}
}

// SetHighlights attaches the highlight manager to render.
func (v *Viewer) SetHighlights(m *overlay.Manager) {
	v.marks = m
}

// Cursor implements snipe.Host.
func (v *Viewer) Cursor() document.Offset {
	return v.cursor
}

// SetCursor implements snipe.Host.
func (v *Viewer) SetCursor(off document.Offset) {
	v.cursor = v.doc.Clamp(off)
}

// State implements snipe.Host.
func (v *Viewer) State() snipe.State {
	return v.state
}

// CycleState advances normal -> visual -> operator -> normal, so the
// placement rules of each modal state can be tried interactively.
func (v *Viewer) CycleState() {
	switch v.state {
	case snipe.StateNormal:
		v.state = snipe.StateVisual
	case snipe.StateVisual:
		v.state = snipe.StateOperator
	default:
		v.state = snipe.StateNormal
	}
}

// VisibleRange implements snipe.Host.
func (v *Viewer) VisibleRange() (document.Offset, document.Offset) {
	top, bottom := v.VisibleLines()
	start := v.doc.LineStartOffset(top)
	end := v.doc.Clamp(v.doc.LineEndOffset(bottom) + 1)
	if bottom+1 >= v.doc.LineCount() {
		end = v.doc.Len()
	}
	return start, end
}

// VisibleLines implements viewport.View. The last screen row is the
// status line.
func (v *Viewer) VisibleLines() (uint32, uint32) {
	top := v.top
	bottom := top + v.textHeight() - 1
	if last := v.doc.LineCount() - 1; bottom > last {
		bottom = last
	}
	return top, bottom
}

// ScrollTo implements viewport.View.
func (v *Viewer) ScrollTo(top uint32) {
	if last := v.doc.LineCount() - 1; top > last {
		top = last
	}
	v.top = top
}

// CenterOn implements viewport.View.
func (v *Viewer) CenterOn(line uint32) {
	half := v.textHeight() / 2
	if line > half {
		v.ScrollTo(line - half)
	} else {
		v.ScrollTo(0)
	}
}

// Message implements snipe.Messenger. The message shows on the status
// line immediately so collection prompts appear while the engine blocks
// for the next key.
func (v *Viewer) Message(msg string) {
	v.status = msg
	v.Render()
}

// NextKey implements snipe.KeySource. Resize and interrupt events are
// handled here so they work both in the main loop and while the engine
// is collecting keys.
func (v *Viewer) NextKey() key.Event {
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventKey:
			return translateKey(ev)
		case *tcell.EventResize:
			v.screen.Sync()
			v.Render()
		case *tcell.EventInterrupt:
			if v.onInterrupt != nil {
				v.onInterrupt(ev.Data())
			}
			v.Render()
		case nil:
			// Screen finalized.
			return key.NewSpecialEvent(key.KeyEscape)
		}
	}
}

// MoveHorizontal moves the cursor by delta positions within the document.
func (v *Viewer) MoveHorizontal(delta int) {
	v.SetCursor(v.cursor + document.Offset(delta))
	v.scrollIntoView()
}

// MoveVertical moves the cursor by delta lines, keeping the column where
// the line allows.
func (v *Viewer) MoveVertical(delta int) {
	p := v.doc.OffsetToPoint(v.cursor)
	line := int64(p.Line) + int64(delta)
	if line < 0 {
		line = 0
	}
	if last := int64(v.doc.LineCount()) - 1; line > last {
		line = last
	}
	p.Line = uint32(line)
	v.SetCursor(v.doc.PointToOffset(p))
	v.scrollIntoView()
}

// JumpTop moves to the first line.
func (v *Viewer) JumpTop() {
	v.SetCursor(0)
	v.scrollIntoView()
}

// JumpBottom moves to the start of the last line.
func (v *Viewer) JumpBottom() {
	v.SetCursor(v.doc.LineStartOffset(v.doc.LineCount() - 1))
	v.scrollIntoView()
}

// scrollIntoView keeps the cursor line on screen after manual movement.
func (v *Viewer) scrollIntoView() {
	line := v.doc.LineAt(v.cursor)
	top, bottom := v.VisibleLines()
	if line < top {
		v.ScrollTo(line)
	} else if line > bottom {
		v.ScrollTo(line - (bottom - top))
	}
}

// Render draws the visible document, highlights, cursor, and status line.
func (v *Viewer) Render() {
	v.screen.Clear()

	width, height := v.screen.Size()
	if height < 2 {
		v.screen.Show()
		return
	}

	var regions []overlay.Region
	if v.marks != nil {
		regions = v.marks.Regions()
	}

	top, bottom := v.VisibleLines()
	for line := top; line <= bottom; line++ {
		row := int(line - top)
		lineStart := v.doc.LineStartOffset(line)
		x := 0
		for i, r := range v.doc.LineText(line) {
			if x >= width {
				break
			}
			off := lineStart + document.Offset(i)
			style := styleAt(regions, off)
			if r == '\t' {
				next := (x/tabWidth + 1) * tabWidth
				for ; x < next && x < width; x++ {
					v.screen.SetContent(x, row, ' ', nil, style)
				}
				continue
			}
			v.screen.SetContent(x, row, r, nil, style)
			x++
		}
	}

	v.renderStatus(width, height-1)
	v.renderCursor()
	v.screen.Show()
}

func (v *Viewer) renderStatus(width, row int) {
	p := v.doc.OffsetToPoint(v.cursor)
	right := fmt.Sprintf(" %d:%d [%s] ", p.Line+1, p.Column+1, v.state)

	x := 0
	for _, r := range v.status {
		if x >= width-len(right) {
			break
		}
		v.screen.SetContent(x, row, r, nil, styleStatus)
		x++
	}
	for ; x < width-len(right); x++ {
		v.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	for _, r := range right {
		if x >= width {
			break
		}
		v.screen.SetContent(x, row, r, nil, styleStatus)
		x++
	}
}

func (v *Viewer) renderCursor() {
	line := v.doc.LineAt(v.cursor)
	top, bottom := v.VisibleLines()
	if line < top || line > bottom {
		v.screen.HideCursor()
		return
	}

	x := 0
	lineStart := v.doc.LineStartOffset(line)
	for i, r := range v.doc.LineText(line) {
		if lineStart+document.Offset(i) >= v.cursor {
			break
		}
		if r == '\t' {
			x = (x/tabWidth + 1) * tabWidth
		} else {
			x++
		}
	}
	v.screen.ShowCursor(x, int(line-top))
}

func (v *Viewer) textHeight() uint32 {
	_, height := v.screen.Size()
	if height < 2 {
		return 1
	}
	return uint32(height - 1)
}

// styleAt returns the render style for a document offset given the
// current highlight regions.
func styleAt(regions []overlay.Region, off document.Offset) tcell.Style {
	for _, r := range regions {
		if off >= r.Start && off < r.End {
			if r.Kind == overlay.KindPrimary {
				return stylePrimary
			}
			return styleSecondary
		}
	}
	return styleDefault
}
