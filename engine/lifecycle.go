package engine

// State is the session lifecycle state
type State uint8

const (
	StateStopped State = iota
	StateRunning
	StatePaused
)

func (s State) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// validTransitions is the lifecycle graph: Stopped → Running ⇄ Paused → Stopped
var validTransitions = map[State][]State{
	StateStopped: {StateRunning},
	StateRunning: {StatePaused, StateStopped},
	StatePaused:  {StateRunning, StateStopped},
}

// CanTransition checks if a lifecycle transition is valid
func CanTransition(from, to State) bool {
	for _, s := range validTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
