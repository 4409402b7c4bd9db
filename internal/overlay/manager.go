package overlay

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/dshills/keysnipe/internal/document"
)

// Kind distinguishes the landing match from the other matches in scope.
type Kind uint8

const (
	// KindPrimary marks the first/landing match.
	KindPrimary Kind = iota

	// KindSecondary marks every other match in scope.
	KindSecondary
)

// String returns the kind name.
func (k Kind) String() string {
	if k == KindPrimary {
		return "primary"
	}
	return "secondary"
}

// Region is a highlighted [Start, End) span of the document.
type Region struct {
	// ID is the region handle, unique per region.
	ID string

	// Start and End delimit the highlighted span.
	Start document.Offset
	End   document.Offset

	// Kind tags the region primary or secondary.
	Kind Kind
}

// Overlaps returns true if the region intersects [start, end).
func (r Region) Overlaps(start, end document.Offset) bool {
	return r.Start < end && start < r.End
}

// Manager owns the highlight region set.
type Manager struct {
	mu      sync.Mutex
	regions map[string]Region
	pending *Cleanup
}

// NewManager creates an empty highlight manager.
func NewManager() *Manager {
	return &Manager{regions: make(map[string]Region)}
}

// MarkFirst highlights the landing match. Any existing region overlapping
// the span is removed first so primary marks never stack.
func (m *Manager) MarkFirst(start, end document.Offset) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, r := range m.regions {
		if r.Overlaps(start, end) {
			delete(m.regions, id)
		}
	}
	return m.addLocked(start, end, KindPrimary)
}

// MarkSecondary highlights a non-landing match.
func (m *Manager) MarkSecondary(start, end document.Offset) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.addLocked(start, end, KindSecondary)
}

func (m *Manager) addLocked(start, end document.Offset, kind Kind) string {
	id := uuid.NewString()
	m.regions[id] = Region{ID: id, Start: start, End: end, Kind: kind}
	return id
}

// Remove deletes a region by handle.
func (m *Manager) Remove(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.regions[id]; !ok {
		return false
	}
	delete(m.regions, id)
	return true
}

// Clear removes all regions. It is idempotent and safe to call when
// nothing is highlighted.
func (m *Manager) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
}

func (m *Manager) clearLocked() {
	if len(m.regions) > 0 {
		m.regions = make(map[string]Region)
	}
}

// Count returns the number of regions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.regions)
}

// Regions returns all regions ordered by start offset, primary first on
// ties. The slice is a copy; callers may retain it across clears.
func (m *Manager) Regions() []Region {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Region, 0, len(m.regions))
	for _, r := range m.regions {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

// KindAt returns the highest-priority kind covering the offset.
func (m *Manager) KindAt(off document.Offset) (Kind, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	found := false
	kind := KindSecondary
	for _, r := range m.regions {
		if off >= r.Start && off < r.End {
			if r.Kind == KindPrimary {
				return KindPrimary, true
			}
			found = true
		}
	}
	return kind, found
}

// Cleanup is a one-shot token that clears the manager when fired.
// Arming a new token invalidates the previous one, so a stale token from
// an earlier keystroke cannot wipe newer highlights.
type Cleanup struct {
	once sync.Once
	m    *Manager
}

// ArmCleanup registers the pending clear-on-next-action and returns its
// token.
func (m *Manager) ArmCleanup() *Cleanup {
	c := &Cleanup{m: m}
	m.mu.Lock()
	m.pending = c
	m.mu.Unlock()
	return c
}

// Fire clears the manager's regions if this token is still the pending
// one. Subsequent fires are no-ops.
func (c *Cleanup) Fire() {
	c.once.Do(func() {
		c.m.mu.Lock()
		defer c.m.mu.Unlock()
		if c.m.pending == c {
			c.m.pending = nil
			c.m.clearLocked()
		}
	})
}
