package tui

import "github.com/charmbracelet/lipgloss"

// Colors using AdaptiveColor for light/dark terminal support.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorYellow = lipgloss.AdaptiveColor{Light: "136", Dark: "220"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

// Layout styles.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Background(lipgloss.AdaptiveColor{Light: "235", Dark: "236"})

	sectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	focusedSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorWhite).
				Padding(0, 1)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorCyan)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Presence indicator styles.
var (
	presenceCheckingStyle   = lipgloss.NewStyle().Foreground(colorOrange).Bold(true)
	presenceRunningStyle    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	presenceNotRunningStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// Counter styles.
var (
	counterStyle     = lipgloss.NewStyle().Foreground(colorWhite)
	counterWarnStyle = lipgloss.NewStyle().Foreground(colorOrange)
	counterOverStyle = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
)

// Button and toggle styles.
var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(colorWhite).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim)

	buttonFocusedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				Padding(0, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorCyan)

	buttonDisabledStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Padding(0, 2).
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim)

	toggleOnStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	toggleOffStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	focusCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.AdaptiveColor{Light: "254", Dark: "237"})
)

// Overlay styles.
var (
	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorWhite).
			Padding(1, 2)

	overlayErrorStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorRed).
				Padding(1, 2)

	overlayWarningStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorYellow).
				Padding(1, 2)

	overlayTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite).
				MarginBottom(1)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Key hint styles for status bar.
var (
	keyStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	hintStyle = lipgloss.NewStyle().Foreground(colorDim)
)
