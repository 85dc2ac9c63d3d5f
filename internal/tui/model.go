package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vrcsend/vrcsend/internal/chatbox"
	"github.com/vrcsend/vrcsend/internal/config"
	"github.com/vrcsend/vrcsend/internal/models"
)

// Sender delivers chatbox messages to the current target.
type Sender interface {
	Configure(host string, port int) error
	Send(text string, immediate bool) error
	Target() models.Target
}

// PresenceChecker reports whether the target application is running.
type PresenceChecker interface {
	IsTargetRunning() bool
}

// Focusable fields, in Tab order.
const (
	focusHost = iota
	focusPort
	focusText
	focusImmediate
	focusSend
	focusClear
	focusCount
)

// ShellState is the coarse state of the form.
type ShellState int

const (
	StateIdle ShellState = iota
	StateTextEntered
	StateSending
)

func (s ShellState) String() string {
	switch s {
	case StateTextEntered:
		return "text-entered"
	case StateSending:
		return "sending"
	default:
		return "idle"
	}
}

// Model is the root Bubbletea model for the TUI.
type Model struct {
	cfg     config.Config
	sender  Sender
	monitor PresenceChecker

	presence models.PresenceState
	sending  bool
	quitting bool

	connection *ConnectionForm
	composer   *Composer
	focus      int

	status   string
	dialog   *dialog
	showHelp bool

	width  int
	height int
}

// NewModel creates the initial TUI model.
func NewModel(cfg config.Config, sender Sender, monitor PresenceChecker) Model {
	m := Model{
		cfg:        cfg,
		sender:     sender,
		monitor:    monitor,
		presence:   models.PresenceChecking,
		connection: NewConnectionForm(sender.Target()),
		composer:   NewComposer(cfg),
		focus:      focusText,
		status:     "Started",
	}
	m.composer.Area().Focus()
	return m
}

// Init starts the first presence check.
func (m Model) Init() tea.Cmd {
	return checkPresenceCmd(m.monitor)
}

// State derives the form state from presence, buffer and in-flight send.
func (m Model) State() ShellState {
	switch {
	case m.sending:
		return StateSending
	case m.CanSend():
		return StateTextEntered
	default:
		return StateIdle
	}
}

// CanSend reports whether the send action is enabled.
func (m Model) CanSend() bool {
	return models.CanSend(m.presence, m.composer.Text(), m.cfg.MaxLength)
}

// Presence returns the last polled presence state.
func (m Model) Presence() models.PresenceState {
	return m.presence
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// Text returns the message buffer.
func (m Model) Text() string {
	return m.composer.Text()
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// ── Window resize ──────────────────────────────────────────────
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.composer.SetWidth(m.width - 8)
		return m, nil

	// ── Key events ─────────────────────────────────────────────────
	case tea.KeyMsg:
		return m, m.handleKey(msg)

	// ── Presence polling ───────────────────────────────────────────
	case PresenceMsg:
		if m.quitting {
			return m, nil
		}
		m.setPresence(models.PresenceFromRunning(msg.Running))
		return m, pollTick(m.cfg.PollInterval())

	case PollMsg:
		if m.quitting {
			return m, nil
		}
		return m, checkPresenceCmd(m.monitor)

	// ── Send result ────────────────────────────────────────────────
	case SentMsg:
		m.sending = false
		if msg.Err != nil {
			m.status = "Send error: " + msg.Err.Error()
			m.dialog = sendErrorDialog(msg.Err)
			return m, nil
		}
		// Text typed while the send was in flight is kept.
		if msg.Immediate && strings.TrimSpace(m.composer.Text()) == msg.Text {
			m.composer.Reset()
		}
		m.status = "✓ Sent: " + models.Preview(msg.Text, m.cfg.PreviewLength)
		return m, nil
	}

	return m, nil
}

func (m *Model) setPresence(state models.PresenceState) {
	if state == m.presence {
		return
	}
	m.presence = state
	if state.IsRunning() {
		m.status = "VRChat running - ready to send"
	} else {
		m.status = "Please start VRChat"
	}
}

// handleKey processes key events.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// Overlays capture everything except quit
	if m.dialog != nil || m.showHelp {
		switch {
		case key.Matches(msg, globalKeys.Quit):
			return m.doQuit()
		case key.Matches(msg, overlayKeys.Close), key.Matches(msg, globalKeys.Help) && m.showHelp:
			m.dialog = nil
			m.showHelp = false
		}
		return nil
	}

	switch {
	case key.Matches(msg, globalKeys.Quit):
		return m.doQuit()
	case key.Matches(msg, globalKeys.Help):
		m.showHelp = true
		return nil
	case key.Matches(msg, globalKeys.Next):
		return m.setFocus((m.focus + 1) % focusCount)
	case key.Matches(msg, globalKeys.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	case key.Matches(msg, globalKeys.Send):
		// The accelerator only fires while the send action is enabled.
		if m.CanSend() && !m.sending {
			return m.send()
		}
		return nil
	case key.Matches(msg, globalKeys.Clear):
		m.clear()
		return nil
	case key.Matches(msg, globalKeys.Toggle):
		m.composer.ToggleImmediate()
		return nil
	case key.Matches(msg, globalKeys.Connect):
		m.updateConnection()
		return nil
	}

	switch m.focus {
	case focusHost, focusPort:
		if key.Matches(msg, fieldKeys.Activate) {
			m.updateConnection()
			return nil
		}
		ti := m.connection.HostInput()
		if m.focus == focusPort {
			ti = m.connection.PortInput()
		}
		newTI, cmd := ti.Update(msg)
		*ti = newTI
		return cmd

	case focusText:
		ta := m.composer.Area()
		newTA, cmd := ta.Update(msg)
		*ta = newTA
		return cmd

	case focusImmediate:
		if key.Matches(msg, fieldKeys.Toggle) || key.Matches(msg, fieldKeys.Activate) {
			m.composer.ToggleImmediate()
		}

	case focusSend:
		if key.Matches(msg, fieldKeys.Activate) {
			return m.send()
		}

	case focusClear:
		if key.Matches(msg, fieldKeys.Activate) {
			m.clear()
		}
	}
	return nil
}

func (m *Model) setFocus(focus int) tea.Cmd {
	m.focus = focus
	m.connection.blurAll()
	m.composer.Area().Blur()

	switch focus {
	case focusHost:
		return m.connection.HostInput().Focus()
	case focusPort:
		return m.connection.PortInput().Focus()
	case focusText:
		return m.composer.Area().Focus()
	}
	return nil
}

// send validates the buffer and starts a send. Rejections are reported
// without touching the network.
func (m *Model) send() tea.Cmd {
	if m.sending {
		return nil
	}
	if !m.presence.IsRunning() {
		m.dialog = &dialog{
			kind:  dialogWarning,
			title: "VRChat is not running",
			body:  "Start VRChat and enable OSC.",
		}
		return nil
	}

	text := strings.TrimSpace(m.composer.Text())
	n := models.TextLength(text)
	if n == 0 {
		m.status = "Text is empty"
		return nil
	}
	if n > m.cfg.MaxLength {
		m.dialog = &dialog{
			kind:  dialogWarning,
			title: "Text too long",
			body:  fmt.Sprintf("Enter at most %d characters.", m.cfg.MaxLength),
		}
		return nil
	}

	m.sending = true
	m.status = "Sending..."
	return sendCmd(m.sender, text, m.composer.Immediate())
}

func (m *Model) clear() {
	m.composer.Reset()
	m.status = "Text cleared"
}

func (m *Model) updateConnection() {
	host := strings.TrimSpace(m.connection.Host())
	port, err := chatbox.ParsePort(m.connection.Port())
	if err == nil {
		err = m.sender.Configure(host, port)
	}
	if err != nil {
		m.status = "Connection settings error"
		m.dialog = &dialog{kind: dialogError, title: "Settings error", body: configErrorText(err)}
		return
	}
	m.status = "Target updated: " + m.sender.Target().Addr()
}

// doQuit stops polling and exits. The quitting flag keeps any in-flight
// presence result from re-arming the poll.
func (m *Model) doQuit() tea.Cmd {
	m.quitting = true
	return tea.Quit
}

func configErrorText(err error) string {
	var cfgErr *chatbox.ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr.Reason
	}
	return "Failed to update the connection settings.\n" + err.Error()
}

// ── View ─────────────────────────────────────────────────────────

// View renders the TUI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Minimum size check
	if m.width < 60 || m.height < 22 {
		sizeStr := fmt.Sprintf("%dx%d", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(colorYellow).
			Render(lipgloss.JoinVertical(lipgloss.Center,
				"Terminal too small",
				lipgloss.NewStyle().Foreground(colorDim).Render(
					"Need 60x22, have "+lipgloss.NewStyle().Bold(true).Render(sizeStr),
				),
			))
	}

	header := renderHeader(m.cfg.Title, m.presence, m.width)
	conn := m.connection.View(m.focus, m.presence, m.width)
	comp := m.composer.View(m.focus, m.width)
	buttons := m.renderButtons()
	statusBar := renderStatusBar(&m, m.width)

	body := lipgloss.JoinVertical(lipgloss.Left, header, conn, comp, buttons)
	pad := m.height - lipgloss.Height(body) - lipgloss.Height(statusBar)
	if pad > 0 {
		body += strings.Repeat("\n", pad)
	}
	view := lipgloss.JoinVertical(lipgloss.Left, body, statusBar)

	var overlayContent string
	switch {
	case m.dialog != nil:
		overlayContent = m.dialog.View(m.width)
	case m.showHelp:
		overlayContent = renderHelp(m.width)
	}
	if overlayContent != "" {
		view = renderOverlay(view, overlayContent, m.width, m.height)
	}
	return view
}

func (m Model) renderButtons() string {
	sendLabel := "Send to VRChat"
	if m.sending {
		sendLabel = "Sending..."
	}

	sendStyle := buttonStyle
	switch {
	case !m.CanSend() || m.sending:
		sendStyle = buttonDisabledStyle
	case m.focus == focusSend:
		sendStyle = buttonFocusedStyle
	}
	if m.focus == focusSend && (!m.CanSend() || m.sending) {
		sendStyle = buttonDisabledStyle.BorderForeground(colorCyan)
	}

	clearStyle := buttonStyle
	if m.focus == focusClear {
		clearStyle = buttonFocusedStyle
	}

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		sendStyle.Render(sendLabel),
		"  ",
		clearStyle.Render("Clear"),
	)
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, row)
}
