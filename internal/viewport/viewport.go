// Package viewport implements the follow-viewport policy for snipe jumps:
// keep the landing line visible, preferring a minimal scroll when the
// target is near the current window and recentering for far jumps.
package viewport

// View abstracts the host's scrollable window over the document.
type View interface {
	// VisibleLines returns the first and last fully visible line.
	VisibleLines() (top, bottom uint32)

	// ScrollTo makes the given line the top of the view.
	ScrollTo(top uint32)

	// CenterOn centers the view on the given line.
	CenterOn(line uint32)
}

// DefaultNearMargin is how many lines outside the window still count as
// "near" for the minimal-scroll preference.
const DefaultNearMargin = 5

// Follower applies the follow policy to a View.
type Follower struct {
	view   View
	margin uint32
}

// NewFollower creates a follower with the default near margin.
func NewFollower(view View) *Follower {
	return &Follower{view: view, margin: DefaultNearMargin}
}

// WithMargin overrides the near margin.
func (f *Follower) WithMargin(margin uint32) *Follower {
	f.margin = margin
	return f
}

// Follow ensures the line is visible. Returns true if the view moved.
func (f *Follower) Follow(line uint32) bool {
	if f == nil || f.view == nil {
		return false
	}

	top, bottom := f.view.VisibleLines()
	if line >= top && line <= bottom {
		return false
	}

	// Near misses scroll just far enough; far jumps recenter.
	if line < top {
		if top-line <= f.margin {
			f.view.ScrollTo(line)
		} else {
			f.view.CenterOn(line)
		}
		return true
	}

	if line-bottom <= f.margin {
		height := bottom - top
		f.view.ScrollTo(line - height)
	} else {
		f.view.CenterOn(line)
	}
	return true
}
