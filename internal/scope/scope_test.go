package scope

import (
	"errors"
	"testing"
)

// testCtx models a cursor mid-document: line [100, 140), window [60, 200),
// document [0, 1000).
var testCtx = Context{
	Cursor:      120,
	LineStart:   100,
	LineEnd:     140,
	WindowStart: 60,
	WindowEnd:   200,
	DocStart:    0,
	DocEnd:      1000,
}

func TestModeBounds(t *testing.T) {
	tests := []struct {
		name    string
		mode    Mode
		forward bool
		want    Bounds
	}{
		{"line forward", ModeLine, true, Bounds{121, 140}},
		{"line backward", ModeLine, false, Bounds{100, 120}},
		{"visible forward", ModeVisible, true, Bounds{121, 199}},
		{"visible backward", ModeVisible, false, Bounds{60, 120}},
		{"buffer forward", ModeBuffer, true, Bounds{121, 1000}},
		{"buffer backward", ModeBuffer, false, Bounds{0, 120}},
		{"whole-line forward", ModeWholeLine, true, Bounds{100, 140}},
		{"whole-line backward", ModeWholeLine, false, Bounds{100, 140}},
		{"whole-visible", ModeWholeVisible, true, Bounds{60, 200}},
		{"whole-buffer", ModeWholeBuffer, false, Bounds{0, 1000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mode.Bounds(testCtx, tt.forward)
			if got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Cursor at the end of the line would invert the forward line range; the
// guard must collapse it instead.
func TestDegenerateRangeGuard(t *testing.T) {
	ctx := testCtx
	ctx.Cursor = 140

	got := ModeLine.Bounds(ctx, true)
	if got.Start > got.End {
		t.Fatalf("inverted bounds %v", got)
	}
	if !got.Empty() {
		t.Errorf("Bounds() = %v, want empty", got)
	}
	if got != (Bounds{140, 140}) {
		t.Errorf("Bounds() = %v, want [140, 140)", got)
	}
}

func TestBoundsInvariantAllModes(t *testing.T) {
	modes := []Mode{ModeLine, ModeVisible, ModeBuffer, ModeWholeLine, ModeWholeVisible, ModeWholeBuffer}
	cursors := []int64{0, 60, 100, 120, 139, 140, 199, 200, 999, 1000}
	for _, m := range modes {
		for _, cur := range cursors {
			ctx := testCtx
			ctx.Cursor = cur
			for _, fwd := range []bool{true, false} {
				b := m.Bounds(ctx, fwd)
				if b.Start > b.End {
					t.Errorf("mode %s cursor %d forward %v: start %d > end %d",
						m, cur, fwd, b.Start, b.End)
				}
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	valid := map[string]Mode{
		"line":          ModeLine,
		"visible":       ModeVisible,
		"buffer":        ModeBuffer,
		"whole-line":    ModeWholeLine,
		"whole-visible": ModeWholeVisible,
		"whole-buffer":  ModeWholeBuffer,
	}
	for name, want := range valid {
		got, err := ParseMode(name)
		if err != nil {
			t.Errorf("ParseMode(%q): %v", name, err)
		}
		if got != want {
			t.Errorf("ParseMode(%q) = %v, want %v", name, got, want)
		}
		if got.String() != name {
			t.Errorf("Mode.String() = %q, want %q", got.String(), name)
		}
	}

	if _, err := ParseMode("galaxy"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("ParseMode(\"galaxy\") error = %v, want ErrInvalidMode", err)
	}
}

func TestResolverSelect(t *testing.T) {
	tests := []struct {
		name      string
		resolver  *Resolver
		magnitude int
		repeating bool
		want      Mode
	}{
		{"primary", NewResolver(ModeLine), 1, false, ModeLine},
		{"repeat uses primary when unset", NewResolver(ModeLine), 1, true, ModeLine},
		{"repeat scope", NewResolver(ModeLine).WithRepeat(ModeBuffer), 1, true, ModeBuffer},
		{"large count without spillover", NewResolver(ModeLine), 3, false, ModeLine},
		{"large count uses spillover", NewResolver(ModeLine).WithSpillover(ModeWholeBuffer), 3, false, ModeWholeBuffer},
		{"spillover beats repeat for large count", NewResolver(ModeLine).WithRepeat(ModeVisible).WithSpillover(ModeBuffer), 2, true, ModeBuffer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.resolver.Select(tt.magnitude, tt.repeating); got != tt.want {
				t.Errorf("Select(%d, %v) = %v, want %v", tt.magnitude, tt.repeating, got, tt.want)
			}
		})
	}
}

func TestWhole(t *testing.T) {
	tests := []struct {
		in, want Mode
	}{
		{ModeLine, ModeWholeLine},
		{ModeVisible, ModeWholeVisible},
		{ModeBuffer, ModeWholeBuffer},
		{ModeWholeLine, ModeWholeLine},
	}
	for _, tt := range tests {
		if got := tt.in.Whole(); got != tt.want {
			t.Errorf("%v.Whole() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
