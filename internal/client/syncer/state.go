package syncer

import "fmt"

// State is the engine's position in its round state machine.
type State int

const (
	StateIdle State = iota
	StateSyncing
	StateSuccess
	StateError
	StateOffline
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSyncing:
		return "syncing"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	case StateOffline:
		return "offline"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var transitions = map[State][]State{
	StateIdle:    {StateSyncing},
	StateSyncing: {StateSuccess, StateError, StateOffline},
	StateSuccess: {StateIdle},
	StateError:   {StateIdle},
	StateOffline: {StateIdle},
}

// CanTransition reports whether the machine may move from one state to another.
func CanTransition(from, to State) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}
