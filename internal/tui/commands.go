package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func checkPresenceCmd(monitor PresenceChecker) tea.Cmd {
	return func() tea.Msg {
		return PresenceMsg{Running: monitor.IsTargetRunning()}
	}
}

// pollTick is armed only after a check has completed, so a slow process
// scan delays the next poll instead of overlapping it.
func pollTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return PollMsg{}
	})
}

func sendCmd(sender Sender, text string, immediate bool) tea.Cmd {
	return func() tea.Msg {
		err := sender.Send(text, immediate)
		return SentMsg{Text: text, Immediate: immediate, Err: err}
	}
}
