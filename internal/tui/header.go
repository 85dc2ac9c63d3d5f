package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vrcsend/vrcsend/internal/models"
)

func renderHeader(title string, presence models.PresenceState, width int) string {
	left := " " + lipgloss.NewStyle().Foreground(colorCyan).Render("●") + " " + title
	right := renderPresence(presence) + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return headerStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
