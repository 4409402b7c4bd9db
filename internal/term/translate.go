package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keysnipe/internal/key"
)

// translateKey converts a tcell key event to the engine's key model.
// Keys without a dedicated constant come back as KeyOther, which cancels
// an in-progress collection.
func translateKey(ev *tcell.EventKey) key.Event {
	out := key.Event{Modifiers: translateMods(ev.Modifiers())}

	switch ev.Key() {
	case tcell.KeyRune:
		out.Key = key.KeyRune
		out.Rune = ev.Rune()
	case tcell.KeyEscape:
		out.Key = key.KeyEscape
	case tcell.KeyEnter:
		out.Key = key.KeyEnter
	case tcell.KeyTab:
		out.Key = key.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		out.Key = key.KeyBackspace
	default:
		out.Key = key.KeyOther
	}
	return out
}

func translateMods(m tcell.ModMask) key.Modifier {
	var out key.Modifier
	if m&tcell.ModCtrl != 0 {
		out |= key.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		out |= key.ModAlt
	}
	if m&tcell.ModShift != 0 {
		out |= key.ModShift
	}
	return out
}
