package tui

// PresenceMsg carries the result of one presence check.
type PresenceMsg struct {
	Running bool
}

// PollMsg fires when the poll interval has elapsed.
type PollMsg struct{}

// SentMsg carries the outcome of a send.
type SentMsg struct {
	Text      string
	Immediate bool
	Err       error
}
