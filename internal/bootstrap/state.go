package bootstrap

// State is the progress of a single bootstrap run. Transitions only move
// forward: NotBound → Bound → Serving → Stopped, and any step may end in
// Failed.
type State int

const (
	StateNotBound State = iota
	StateBound
	StateServing
	StateStopped
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateNotBound:
		return "not_bound"
	case StateBound:
		return "bound"
	case StateServing:
		return "serving"
	case StateStopped:
		return "stopped"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is possible.
func (s State) Terminal() bool {
	return s == StateStopped || s == StateFailed
}
