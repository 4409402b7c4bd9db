package scope

import (
	"errors"
	"fmt"
)

// ErrInvalidMode indicates an unrecognized scope mode name.
// This is a configuration error, not a runtime condition.
var ErrInvalidMode = errors.New("scope: invalid scope mode")

// Mode names the document range eligible for matching.
type Mode uint8

const (
	// ModeLine searches the rest of the current line in the search
	// direction.
	ModeLine Mode = iota

	// ModeVisible searches the rest of the visible window in the search
	// direction.
	ModeVisible

	// ModeBuffer searches the rest of the buffer in the search direction.
	ModeBuffer

	// ModeWholeLine spans the entire current line regardless of direction.
	ModeWholeLine

	// ModeWholeVisible spans the entire visible window regardless of
	// direction.
	ModeWholeVisible

	// ModeWholeBuffer spans the entire buffer regardless of direction.
	ModeWholeBuffer
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeLine:
		return "line"
	case ModeVisible:
		return "visible"
	case ModeBuffer:
		return "buffer"
	case ModeWholeLine:
		return "whole-line"
	case ModeWholeVisible:
		return "whole-visible"
	case ModeWholeBuffer:
		return "whole-buffer"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// ParseMode parses a configuration name into a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "line":
		return ModeLine, nil
	case "visible":
		return ModeVisible, nil
	case "buffer":
		return ModeBuffer, nil
	case "whole-line":
		return ModeWholeLine, nil
	case "whole-visible":
		return ModeWholeVisible, nil
	case "whole-buffer":
		return ModeWholeBuffer, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, name)
	}
}

// Whole returns the whole-* variant of the mode. Whole variants map to
// themselves.
func (m Mode) Whole() Mode {
	switch m {
	case ModeLine:
		return ModeWholeLine
	case ModeVisible:
		return ModeWholeVisible
	case ModeBuffer:
		return ModeWholeBuffer
	default:
		return m
	}
}
