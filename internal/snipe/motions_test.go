package snipe

import (
	"errors"
	"strings"
	"testing"

	"github.com/dshills/keysnipe/internal/config"
	"github.com/dshills/keysnipe/internal/document"
	"github.com/dshills/keysnipe/internal/key"
)

func TestMotions(t *testing.T) {
	tests := []struct {
		name   string
		keys   string
		cursor document.Offset
		run    func(*Engine) error
		want   document.Offset
	}{
		{"snipe forward", "qu", 0, func(e *Engine) error { return e.Snipe(1) }, 4},
		{"snipe backward", "qu", 18, func(e *Engine) error { return e.SnipeReverse(1) }, 4},
		{"snipe till forward", "qu", 0, func(e *Engine) error { return e.SnipeTill(1) }, 3},
		{"snipe till backward", "qu", 18, func(e *Engine) error { return e.SnipeTillReverse(1) }, 6},
		{"find forward", "q", 0, func(e *Engine) error { return e.Find(1) }, 4},
		{"find backward", "q", 18, func(e *Engine) error { return e.FindReverse(1) }, 4},
		{"till forward", "q", 0, func(e *Engine) error { return e.Till(1) }, 3},
		{"till backward", "q", 18, func(e *Engine) error { return e.TillReverse(1) }, 5},
		{"find second occurrence", "o", 0, func(e *Engine) error { return e.Find(2) }, 17},
		{"negative count reverses", "q", 18, func(e *Engine) error { return e.Find(-1) }, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng, host, keys := newTestEngine(t, foxLine, config.Default())
			host.cursor = tt.cursor
			keys.press(typed(tt.keys)...)

			if err := tt.run(eng); err != nil {
				t.Fatalf("motion error = %v", err)
			}
			if host.cursor != tt.want {
				t.Errorf("cursor = %d, want %d", host.cursor, tt.want)
			}
		})
	}
}

func TestDoAbortIsNotAnError(t *testing.T) {
	eng, host, keys := newTestEngine(t, foxLine, config.Default())
	keys.press(key.NewRuneEvent('q'), key.NewSpecialEvent(key.KeyEscape))

	if err := eng.Snipe(1); err != nil {
		t.Fatalf("Snipe() after abort = %v, want nil", err)
	}
	if host.cursor != 0 {
		t.Errorf("cursor = %d, want 0", host.cursor)
	}
}

func TestDoNotFoundReports(t *testing.T) {
	eng, host, keys := newTestEngine(t, foxLine, config.Default())
	rec := &recorder{}
	eng.msg = rec
	keys.press(typed("xy")...)

	err := eng.Snipe(1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Snipe() error = %v, want ErrNotFound", err)
	}
	if host.cursor != 0 {
		t.Errorf("cursor = %d, want 0", host.cursor)
	}
	if !strings.Contains(rec.last(), "xy") {
		t.Errorf("message = %q, want the searched text", rec.last())
	}
}

func TestDoRecordsEvenOnFailure(t *testing.T) {
	eng, _, keys := newTestEngine(t, foxLine, config.Default())
	keys.press(typed("xy")...)

	if err := eng.Snipe(1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Snipe() error = %v, want ErrNotFound", err)
	}
	if !eng.CanRepeat() {
		t.Error("failed snipe was not recorded for repeat")
	}
}

func TestDoConfirmRepeatsLastSequence(t *testing.T) {
	eng, host, keys := newTestEngine(t, foxLine, config.Default())
	keys.press(typed("o")...)

	if err := eng.Find(1); err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if host.cursor != 12 {
		t.Fatalf("cursor = %d, want 12", host.cursor)
	}

	keys.press(key.NewSpecialEvent(key.KeyEnter))
	if err := eng.Find(1); err != nil {
		t.Fatalf("Find() on confirm error = %v", err)
	}
	if host.cursor != 17 {
		t.Errorf("cursor = %d, want 17", host.cursor)
	}
}

func TestDoConfirmReverseUsesMotionDirection(t *testing.T) {
	eng, host, keys := newTestEngine(t, foxLine, config.Default())
	keys.press(typed("o")...)

	if err := eng.Find(1); err != nil {
		t.Fatalf("Find() error = %v", err)
	}

	// Confirming a backward motion re-runs the sequence backward.
	keys.press(key.NewSpecialEvent(key.KeyEnter))
	host.cursor = 18
	if err := eng.FindReverse(1); err != nil {
		t.Fatalf("FindReverse() on confirm error = %v", err)
	}
	if host.cursor != 17 {
		t.Errorf("cursor = %d, want 17", host.cursor)
	}
}

func TestDoConfirmWithoutRecord(t *testing.T) {
	eng, _, keys := newTestEngine(t, foxLine, config.Default())
	keys.press(key.NewSpecialEvent(key.KeyEnter))

	if err := eng.Find(1); !errors.Is(err, ErrNothingToRepeat) {
		t.Fatalf("Find() error = %v, want ErrNothingToRepeat", err)
	}
}

func TestDoTabGrowth(t *testing.T) {
	eng, host, keys := newTestEngine(t, foxLine, config.Default())
	keys.press(key.NewSpecialEvent(key.KeyTab))
	keys.press(typed("fo")...)

	if err := eng.Find(1); err != nil {
		t.Fatalf("Find() error = %v", err)
	}
	if host.cursor != 16 {
		t.Errorf("cursor = %d, want 16", host.cursor)
	}
}
