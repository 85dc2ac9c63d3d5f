package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/vrcsend/vrcsend/internal/models"
)

// ConnectionForm holds the editable host and port fields.
type ConnectionForm struct {
	hostInput textinput.Model
	portInput textinput.Model
}

// NewConnectionForm creates the form prefilled with the current target.
func NewConnectionForm(target models.Target) *ConnectionForm {
	hi := textinput.New()
	hi.Prompt = ""
	hi.Placeholder = "127.0.0.1"
	hi.CharLimit = 253
	hi.Width = 18
	hi.SetValue(target.Host)

	pi := textinput.New()
	pi.Prompt = ""
	pi.Placeholder = "9000"
	pi.CharLimit = 5
	pi.Width = 6
	pi.SetValue(strconv.Itoa(target.Port))

	return &ConnectionForm{hostInput: hi, portInput: pi}
}

// Host returns the raw host field value.
func (c *ConnectionForm) Host() string {
	return c.hostInput.Value()
}

// Port returns the raw port field value.
func (c *ConnectionForm) Port() string {
	return c.portInput.Value()
}

// HostInput returns the host input model for update forwarding.
func (c *ConnectionForm) HostInput() *textinput.Model {
	return &c.hostInput
}

// PortInput returns the port input model for update forwarding.
func (c *ConnectionForm) PortInput() *textinput.Model {
	return &c.portInput
}

func (c *ConnectionForm) blurAll() {
	c.hostInput.Blur()
	c.portInput.Blur()
}

// View renders the connection section.
func (c *ConnectionForm) View(focus int, presence models.PresenceState, width int) string {
	host := labelStyle.Render("IP Address: ") + c.hostInput.View()
	port := labelStyle.Render("Port: ") + c.portInput.View()
	update := labelStyle.Render("Ctrl+u update")

	row := lipgloss.JoinHorizontal(lipgloss.Top, host, "   ", port, "   ", update)
	state := labelStyle.Render("VRChat: ") + renderPresence(presence)

	content := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("Connection"),
		row,
		state,
	)

	style := sectionStyle
	if focus == focusHost || focus == focusPort {
		style = focusedSectionStyle
	}
	return style.Width(width - 2).Render(content)
}

func renderPresence(state models.PresenceState) string {
	switch state {
	case models.PresenceRunning:
		return presenceRunningStyle.Render("Running ✓")
	case models.PresenceNotRunning:
		return presenceNotRunningStyle.Render("Not running ✗")
	default:
		return presenceCheckingStyle.Render("Checking...")
	}
}
