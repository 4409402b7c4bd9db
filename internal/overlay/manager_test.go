package overlay

import "testing"

func TestMarkAndRegions(t *testing.T) {
	m := NewManager()

	m.MarkSecondary(10, 12)
	m.MarkSecondary(30, 32)
	m.MarkFirst(20, 22)

	regions := m.Regions()
	if len(regions) != 3 {
		t.Fatalf("Count = %d, want 3", len(regions))
	}
	if regions[0].Start != 10 || regions[1].Start != 20 || regions[2].Start != 30 {
		t.Errorf("regions not ordered by start: %v", regions)
	}
	if regions[1].Kind != KindPrimary {
		t.Errorf("middle region kind = %v, want primary", regions[1].Kind)
	}
}

func TestMarkFirstClearsOverlapping(t *testing.T) {
	m := NewManager()

	m.MarkSecondary(10, 12)
	m.MarkFirst(10, 12)
	m.MarkFirst(11, 13)

	regions := m.Regions()
	if len(regions) != 1 {
		t.Fatalf("Count = %d, want 1 (no stacked primary marks)", len(regions))
	}
	if regions[0].Kind != KindPrimary || regions[0].Start != 11 {
		t.Errorf("surviving region = %+v, want primary at 11", regions[0])
	}

	// A non-overlapping primary does not disturb others.
	m.MarkFirst(40, 42)
	if m.Count() != 2 {
		t.Errorf("Count = %d, want 2", m.Count())
	}
}

func TestClearIdempotent(t *testing.T) {
	m := NewManager()

	m.Clear() // nothing highlighted: must be safe

	m.MarkSecondary(1, 2)
	m.Clear()
	m.Clear()
	if m.Count() != 0 {
		t.Errorf("Count = %d after Clear, want 0", m.Count())
	}
}

func TestRemove(t *testing.T) {
	m := NewManager()
	id := m.MarkSecondary(5, 6)

	if !m.Remove(id) {
		t.Error("Remove(existing) = false")
	}
	if m.Remove(id) {
		t.Error("Remove(removed) = true")
	}
}

func TestKindAt(t *testing.T) {
	m := NewManager()
	m.MarkSecondary(10, 15)
	m.MarkFirst(20, 22)

	if k, ok := m.KindAt(12); !ok || k != KindSecondary {
		t.Errorf("KindAt(12) = %v, %v; want secondary, true", k, ok)
	}
	if k, ok := m.KindAt(21); !ok || k != KindPrimary {
		t.Errorf("KindAt(21) = %v, %v; want primary, true", k, ok)
	}
	if _, ok := m.KindAt(15); ok {
		t.Error("KindAt(15) = true, want false (end is exclusive)")
	}
}

func TestCleanupOneShot(t *testing.T) {
	m := NewManager()
	m.MarkSecondary(1, 2)

	c := m.ArmCleanup()
	c.Fire()
	if m.Count() != 0 {
		t.Fatalf("Count = %d after Fire, want 0", m.Count())
	}

	// Firing again after new highlights must not clear them.
	m.MarkSecondary(3, 4)
	c.Fire()
	if m.Count() != 1 {
		t.Errorf("stale Fire cleared new highlights")
	}
}

func TestCleanupSuperseded(t *testing.T) {
	m := NewManager()
	m.MarkSecondary(1, 2)

	old := m.ArmCleanup()
	m.ArmCleanup()

	old.Fire()
	if m.Count() != 1 {
		t.Errorf("superseded token cleared highlights")
	}
}
