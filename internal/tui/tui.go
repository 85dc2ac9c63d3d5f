// Package tui implements the interactive chatbox sender.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vrcsend/vrcsend/internal/config"
)

// Run launches the TUI and blocks until the user quits.
func Run(cfg config.Config, sender Sender, monitor PresenceChecker) error {
	p := tea.NewProgram(
		NewModel(cfg, sender, monitor),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
