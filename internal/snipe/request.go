package snipe

// State is the host's modal state at the time of a motion.
// It selects the cursor-placement rule after a successful search.
type State uint8

const (
	// StateNormal is a plain motion.
	StateNormal State = iota

	// StateOperator is an operator-pending motion (the returned position
	// bounds an operator range).
	StateOperator

	// StateVisual is a motion extending a visual selection.
	StateVisual
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateOperator:
		return "operator"
	case StateVisual:
		return "visual"
	default:
		return "unknown"
	}
}

// Request describes one snipe motion invocation.
type Request struct {
	// KeyCount is the number of characters to collect (1 for the f/t
	// family, 2 for s/x). Fixed per motion binding; only the interactive
	// grow action extends it.
	KeyCount int

	// Forward is the motion's base direction.
	Forward bool

	// Count repeats the motion. Its magnitude is the occurrence number
	// to land on; a negative sign reverses the direction.
	Count int

	// Consume selects inclusive placement (the motion lands on/consumes
	// the match) versus exclusive (the motion stops short of it).
	Consume bool
}

// normalize resolves the signed count into an effective direction and a
// magnitude of at least one.
func (r Request) normalize() (forward bool, magnitude int) {
	forward = r.Forward
	magnitude = r.Count
	if magnitude == 0 {
		magnitude = 1
	}
	if magnitude < 0 {
		forward = !forward
		magnitude = -magnitude
	}
	return forward, magnitude
}
