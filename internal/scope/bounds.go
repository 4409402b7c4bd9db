package scope

import (
	"fmt"

	"github.com/dshills/keysnipe/internal/document"
)

// Bounds is a half-open [Start, End) document range.
// Start <= End always holds; the degenerate-range guard collapses an
// inverted range to (End, End), an empty always-failing range.
type Bounds struct {
	Start document.Offset
	End   document.Offset
}

// Empty returns true if the range contains no positions.
func (b Bounds) Empty() bool {
	return b.Start >= b.End
}

// Contains returns true if the offset lies within the range.
func (b Bounds) Contains(off document.Offset) bool {
	return off >= b.Start && off < b.End
}

// String returns a human-readable representation.
func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d)", b.Start, b.End)
}

// Context carries the position queries bounds computation needs.
// All offsets come from the host at the moment of the search.
type Context struct {
	Cursor      document.Offset
	LineStart   document.Offset
	LineEnd     document.Offset
	WindowStart document.Offset
	WindowEnd   document.Offset
	DocStart    document.Offset
	DocEnd      document.Offset
}

// Bounds computes the eligible range for the mode.
func (m Mode) Bounds(ctx Context, forward bool) Bounds {
	var b Bounds
	switch m {
	case ModeLine:
		if forward {
			b = Bounds{ctx.Cursor + 1, ctx.LineEnd}
		} else {
			b = Bounds{ctx.LineStart, ctx.Cursor}
		}
	case ModeVisible:
		if forward {
			b = Bounds{ctx.Cursor + 1, ctx.WindowEnd - 1}
		} else {
			b = Bounds{ctx.WindowStart, ctx.Cursor}
		}
	case ModeBuffer:
		if forward {
			b = Bounds{ctx.Cursor + 1, ctx.DocEnd}
		} else {
			b = Bounds{ctx.DocStart, ctx.Cursor}
		}
	case ModeWholeLine:
		b = Bounds{ctx.LineStart, ctx.LineEnd}
	case ModeWholeVisible:
		b = Bounds{ctx.WindowStart, ctx.WindowEnd}
	case ModeWholeBuffer:
		b = Bounds{ctx.DocStart, ctx.DocEnd}
	}
	if b.Start > b.End {
		b.Start = b.End
	}
	return b
}

// Resolver selects between the primary, repeat, and spillover scopes.
type Resolver struct {
	primary Mode

	repeat    Mode
	hasRepeat bool

	spillover    Mode
	hasSpillover bool
}

// NewResolver creates a resolver with only a primary scope.
func NewResolver(primary Mode) *Resolver {
	return &Resolver{primary: primary}
}

// WithRepeat sets the scope used by repeat commands.
func (r *Resolver) WithRepeat(m Mode) *Resolver {
	r.repeat = m
	r.hasRepeat = true
	return r
}

// WithSpillover sets the wider fallback scope.
func (r *Resolver) WithSpillover(m Mode) *Resolver {
	r.spillover = m
	r.hasSpillover = true
	return r
}

// Primary returns the primary scope mode.
func (r *Resolver) Primary() Mode {
	return r.primary
}

// HasSpillover returns true if a spillover scope is configured.
func (r *Resolver) HasSpillover() bool {
	return r.hasSpillover
}

// Spillover returns the spillover mode and whether one is configured.
func (r *Resolver) Spillover() (Mode, bool) {
	return r.spillover, r.hasSpillover
}

// Select returns the scope mode for a search. Repeat invocations use the
// repeat scope when one is set. A magnitude above one selects the
// spillover scope outright when configured: repeating many times across
// only the near scope is rarely useful, so large counts go wide
// immediately rather than waiting for a failure.
func (r *Resolver) Select(magnitude int, repeating bool) Mode {
	if magnitude > 1 && r.hasSpillover {
		return r.spillover
	}
	if repeating && r.hasRepeat {
		return r.repeat
	}
	return r.primary
}

// BoundsFor computes the bounds for a search using Select.
func (r *Resolver) BoundsFor(ctx Context, forward bool, magnitude int, repeating bool) Bounds {
	return r.Select(magnitude, repeating).Bounds(ctx, forward)
}
