package key

// Key identifies a pressed key.
type Key uint8

const (
	// KeyRune is a literal character key. The character is in Event.Rune.
	KeyRune Key = iota

	// KeyEscape is the Escape key.
	KeyEscape

	// KeyEnter is the Enter/Return key.
	KeyEnter

	// KeyTab is the Tab key.
	KeyTab

	// KeyBackspace is the Backspace key.
	KeyBackspace

	// KeyOther is any named key without a dedicated constant. The engine
	// treats it as a cancel during key collection.
	KeyOther
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "BS"
	case KeyOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Modifier is a bitmask of modifier keys.
type Modifier uint8

const (
	ModNone Modifier = 0
	ModCtrl Modifier = 1 << iota
	ModAlt
	ModShift
)

// HasCtrl returns true if Ctrl is pressed.
func (m Modifier) HasCtrl() bool { return m&ModCtrl != 0 }

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool { return m&ModAlt != 0 }

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool { return m&ModShift != 0 }
