package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func renderStatusBar(m *Model, width int) string {
	left := " " + m.status
	if strings.HasPrefix(m.status, "Send error") || m.status == "Connection settings error" {
		left = " " + lipgloss.NewStyle().Foreground(colorRed).Bold(true).Render(m.status)
	}

	right := getKeyHints(m) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// Status text wins over hints on narrow terminals
		right = ""
		gap = width - lipgloss.Width(left)
		if gap < 0 {
			gap = 0
		}
	}

	return statusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

func getKeyHints(m *Model) string {
	if m.dialog != nil || m.showHelp {
		return keyHint("Esc", "close")
	}

	hints := keyHint("Ctrl+q", "quit") + "  " + keyHint("Ctrl+h", "help") + "  " + keyHint("Tab", "next")
	switch m.focus {
	case focusHost, focusPort:
		hints += "  " + keyHint("Enter", "update")
	case focusImmediate:
		hints += "  " + keyHint("Space", "toggle")
	}
	if m.CanSend() {
		hints += "  " + keyHint("Ctrl+s", "send")
	}
	return hints
}

func keyHint(k, desc string) string {
	if k == "" {
		return hintStyle.Render(desc)
	}
	return keyStyle.Render(k) + " " + hintStyle.Render(desc)
}
