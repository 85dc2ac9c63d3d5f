package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Global",
		keys: []helpKey{
			{"Ctrl+q", "Quit"},
			{"Ctrl+h", "Toggle help"},
			{"Tab", "Next field"},
			{"Shift+Tab", "Previous field"},
		},
	},
	{
		title: "Message",
		keys: []helpKey{
			{"Ctrl+s", "Send (when enabled)"},
			{"Ctrl+l", "Clear text"},
			{"Ctrl+t", "Toggle send immediately"},
		},
	},
	{
		title: "Connection",
		keys: []helpKey{
			{"Enter", "Update connection (in IP/port)"},
			{"Ctrl+u", "Update connection"},
		},
	},
	{
		title: "Buttons",
		keys: []helpKey{
			{"Enter", "Press focused button"},
			{"Space", "Toggle focused option"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(width int) string {
	maxWidth := 56
	if width-4 < maxWidth {
		maxWidth = width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	sections := make([]string, 0, len(helpSections)*4+3)
	sections = append(sections, overlayTitleStyle.Render("Keyboard Shortcuts"))

	for _, sec := range helpSections {
		header := lipgloss.NewStyle().Bold(true).Foreground(colorCyan).Render(sec.title)
		sections = append(sections, "", header)

		for _, k := range sec.keys {
			keyCol := lipgloss.NewStyle().
				Width(12).
				Foreground(colorWhite).
				Bold(true).
				Render(k.key)
			descCol := lipgloss.NewStyle().
				Foreground(colorDim).
				Render(k.desc)
			sections = append(sections, "  "+keyCol+descCol)
		}
	}

	sections = append(sections, "", lipgloss.NewStyle().Foreground(colorDim).Render("Press Esc or Ctrl+h to close"))

	return overlayStyle.Width(maxWidth).Render(strings.Join(sections, "\n"))
}
