package viewport

import "testing"

// fakeView records the last scroll request.
type fakeView struct {
	top, bottom uint32

	scrolledTo *uint32
	centeredOn *uint32
}

func (v *fakeView) VisibleLines() (uint32, uint32) { return v.top, v.bottom }

func (v *fakeView) ScrollTo(top uint32) { v.scrolledTo = &top }

func (v *fakeView) CenterOn(line uint32) { v.centeredOn = &line }

func TestFollow(t *testing.T) {
	tests := []struct {
		name       string
		line       uint32
		wantMoved  bool
		wantScroll *uint32
		wantCenter *uint32
	}{
		{"already visible", 25, false, nil, nil},
		{"top edge visible", 20, false, nil, nil},
		{"bottom edge visible", 40, false, nil, nil},
		{"near above scrolls", 17, true, u(17), nil},
		{"near below scrolls", 43, true, u(23), nil},
		{"far above centers", 5, true, nil, u(5)},
		{"far below centers", 90, true, nil, u(90)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &fakeView{top: 20, bottom: 40}
			f := NewFollower(v)

			moved := f.Follow(tt.line)
			if moved != tt.wantMoved {
				t.Errorf("Follow(%d) = %v, want %v", tt.line, moved, tt.wantMoved)
			}
			if !equalPtr(v.scrolledTo, tt.wantScroll) {
				t.Errorf("scrolledTo = %v, want %v", fmtPtr(v.scrolledTo), fmtPtr(tt.wantScroll))
			}
			if !equalPtr(v.centeredOn, tt.wantCenter) {
				t.Errorf("centeredOn = %v, want %v", fmtPtr(v.centeredOn), fmtPtr(tt.wantCenter))
			}
		})
	}
}

func TestFollowNilView(t *testing.T) {
	var f *Follower
	if f.Follow(10) {
		t.Error("nil follower moved")
	}
}

func u(n uint32) *uint32 { return &n }

func equalPtr(a, b *uint32) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPtr(p *uint32) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
