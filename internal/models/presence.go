package models

// PresenceState is the last known state of the target application.
type PresenceState int

const (
	PresenceChecking PresenceState = iota
	PresenceRunning
	PresenceNotRunning
)

// PresenceFromRunning maps a poll result to a state.
func PresenceFromRunning(running bool) PresenceState {
	if running {
		return PresenceRunning
	}
	return PresenceNotRunning
}

// IsRunning reports whether the target was seen on the last poll.
func (s PresenceState) IsRunning() bool {
	return s == PresenceRunning
}

func (s PresenceState) String() string {
	switch s {
	case PresenceRunning:
		return "running"
	case PresenceNotRunning:
		return "not running"
	default:
		return "checking"
	}
}

// CanSend reports whether a send may be attempted: the target is running and
// the trimmed text has between 1 and maxLength characters.
func CanSend(state PresenceState, text string, maxLength int) bool {
	n := TextLength(text)
	return state.IsRunning() && n > 0 && n <= maxLength
}
