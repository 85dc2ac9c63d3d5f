package cli

import "github.com/charmbracelet/lipgloss"

// CLI output shares the TUI palette so presence reads the same in both.
var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorGreen  = lipgloss.AdaptiveColor{Light: "28", Dark: "40"}
	colorRed    = lipgloss.AdaptiveColor{Light: "160", Dark: "196"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
	colorCyan   = lipgloss.AdaptiveColor{Light: "30", Dark: "45"}
)

var (
	styleBrand   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleVersion = lipgloss.NewStyle().Foreground(colorGreen)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleSent    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleFailed  = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleHint    = lipgloss.NewStyle().Foreground(colorDim)
)

// Presence styles, matching the TUI indicator.
var (
	styleRunning    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	styleNotRunning = lipgloss.NewStyle().Bold(true).Foreground(colorRed)
	styleChecking   = lipgloss.NewStyle().Foreground(colorOrange)
)
