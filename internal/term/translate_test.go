package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keysnipe/internal/key"
	"github.com/dshills/keysnipe/internal/overlay"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name string
		in   *tcell.EventKey
		want key.Event
	}{
		{
			"plain rune",
			tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone),
			key.Event{Key: key.KeyRune, Rune: 'a'},
		},
		{
			"escape",
			tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
			key.Event{Key: key.KeyEscape},
		},
		{
			"enter",
			tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
			key.Event{Key: key.KeyEnter},
		},
		{
			"tab",
			tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone),
			key.Event{Key: key.KeyTab},
		},
		{
			"backspace2",
			tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
			key.Event{Key: key.KeyBackspace},
		},
		{
			"alt rune keeps modifier",
			tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt),
			key.Event{Key: key.KeyRune, Rune: 'x', Modifiers: key.ModAlt},
		},
		{
			"arrow maps to other",
			tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone),
			key.Event{Key: key.KeyOther},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateKey(tt.in); got != tt.want {
				t.Errorf("translateKey() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStyleAt(t *testing.T) {
	regions := []overlay.Region{
		{Start: 4, End: 6, Kind: overlay.KindPrimary},
		{Start: 10, End: 12, Kind: overlay.KindSecondary},
	}

	if got := styleAt(regions, 5); got != stylePrimary {
		t.Error("expected primary style inside the landing region")
	}
	if got := styleAt(regions, 10); got != styleSecondary {
		t.Error("expected secondary style inside a candidate region")
	}
	if got := styleAt(regions, 6); got != styleDefault {
		t.Error("expected default style at a region's exclusive end")
	}
}
