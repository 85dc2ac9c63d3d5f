package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vrcsend/vrcsend/internal/chatbox"
	"github.com/vrcsend/vrcsend/internal/config"
	"github.com/vrcsend/vrcsend/internal/models"
)

type sentCall struct {
	text      string
	immediate bool
}

type fakeSender struct {
	target models.Target
	calls  []sentCall
	err    error
}

func (f *fakeSender) Configure(host string, port int) error {
	if strings.TrimSpace(host) == "" {
		return &chatbox.ConfigurationError{Field: "host", Value: host, Reason: "host is empty"}
	}
	if port < 1 || port > 65535 {
		return &chatbox.ConfigurationError{Field: "port", Reason: "port must be between 1 and 65535"}
	}
	f.target = models.Target{Host: strings.TrimSpace(host), Port: port}
	return nil
}

func (f *fakeSender) Send(text string, immediate bool) error {
	f.calls = append(f.calls, sentCall{text: text, immediate: immediate})
	return f.err
}

func (f *fakeSender) Target() models.Target {
	return f.target
}

type fakeMonitor struct {
	running bool
	checks  int
}

func (f *fakeMonitor) IsTargetRunning() bool {
	f.checks++
	return f.running
}

func newTestModel(t *testing.T) (Model, *fakeSender, *fakeMonitor) {
	t.Helper()
	cfg := config.Default()
	sender := &fakeSender{target: models.Target{Host: cfg.Host, Port: cfg.Port}}
	monitor := &fakeMonitor{}
	m := NewModel(cfg, sender, monitor)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return next.(Model), sender, monitor
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func running(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, PresenceMsg{Running: true})
	return m
}

func TestInitialState(t *testing.T) {
	m, _, monitor := newTestModel(t)

	require.Equal(t, models.PresenceChecking, m.Presence())
	require.Equal(t, StateIdle, m.State())
	require.False(t, m.CanSend())

	cmd := m.Init()
	require.NotNil(t, cmd)
	require.Equal(t, PresenceMsg{Running: false}, cmd())
	require.Equal(t, 1, monitor.checks)
}

func TestSendEnabled(t *testing.T) {
	tests := []struct {
		name     string
		running  bool
		text     string
		expected bool
	}{
		{name: "running with text", running: true, text: "Hello", expected: true},
		{name: "running at limit", running: true, text: strings.Repeat("a", 144), expected: true},
		{name: "running over limit", running: true, text: strings.Repeat("a", 145), expected: false},
		{name: "running empty", running: true, text: "", expected: false},
		{name: "running whitespace", running: true, text: "   ", expected: false},
		{name: "not running", running: false, text: "Hello", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestModel(t)
			m, _ = update(t, m, PresenceMsg{Running: tt.running})
			m.composer.SetText(tt.text)
			require.Equal(t, tt.expected, m.CanSend())
			if tt.expected {
				require.Equal(t, StateTextEntered, m.State())
			} else {
				require.Equal(t, StateIdle, m.State())
			}
		})
	}
}

func TestPresenceTransitionUpdatesStatus(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.composer.SetText("Hello")

	m, cmd := update(t, m, PresenceMsg{Running: false})
	require.NotNil(t, cmd)
	require.Equal(t, models.PresenceNotRunning, m.Presence())
	require.Equal(t, "Please start VRChat", m.Status())
	require.False(t, m.CanSend())

	m, _ = update(t, m, PresenceMsg{Running: true})
	require.Equal(t, models.PresenceRunning, m.Presence())
	require.Equal(t, "VRChat running - ready to send", m.Status())
	require.True(t, m.CanSend())

	m, _ = update(t, m, PresenceMsg{Running: false})
	require.False(t, m.CanSend())
	require.Equal(t, StateIdle, m.State())
}

func TestPollWaitsForInterval(t *testing.T) {
	cfg := config.Default()
	cfg.PollIntervalMS = 100
	monitor := &fakeMonitor{running: true}
	m := NewModel(cfg, &fakeSender{target: models.Target{Host: cfg.Host, Port: cfg.Port}}, monitor)

	next, tick := m.Update(PresenceMsg{Running: false})
	m = next.(Model)
	require.Equal(t, 0, monitor.checks, "a result must not trigger an immediate re-check")

	start := time.Now()
	msg := tick()
	require.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	require.Equal(t, PollMsg{}, msg)

	next, check := m.Update(msg)
	m = next.(Model)
	require.Equal(t, PresenceMsg{Running: true}, check())
	require.Equal(t, 1, monitor.checks)

	next, _ = m.Update(PresenceMsg{Running: true})
	require.Equal(t, models.PresenceRunning, next.(Model).Presence())
}

func TestQuitStopsPolling(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, keyPress(tea.KeyCtrlQ))
	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())

	m, cmd = update(t, m, PresenceMsg{Running: true})
	require.Nil(t, cmd)
	_, cmd = update(t, m, PollMsg{})
	require.Nil(t, cmd)
}

func TestSendImmediateClearsBuffer(t *testing.T) {
	m, sender, _ := newTestModel(t)
	m = running(t, m)
	m.composer.SetText("Hi there")

	m, cmd := update(t, m, keyPress(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	require.Equal(t, StateSending, m.State())

	m, _ = update(t, m, cmd())
	require.Equal(t, []sentCall{{text: "Hi there", immediate: true}}, sender.calls)
	require.Equal(t, "", m.Text())
	require.Equal(t, "✓ Sent: Hi there", m.Status())
	require.Equal(t, StateIdle, m.State())
}

func TestSendKeepsTextTypedWhileSending(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = running(t, m)
	m.composer.SetText("Hi there")

	m, cmd := update(t, m, keyPress(tea.KeyCtrlS))
	require.NotNil(t, cmd)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})
	require.Equal(t, "Hi there!", m.Text())

	m, _ = update(t, m, cmd())
	require.Equal(t, "Hi there!", m.Text())
	require.Equal(t, "✓ Sent: Hi there", m.Status())
}

func TestSendWithoutImmediateKeepsBuffer(t *testing.T) {
	m, sender, _ := newTestModel(t)
	m = running(t, m)
	m.composer.SetText("draft")

	m, _ = update(t, m, keyPress(tea.KeyCtrlT))
	m, cmd := update(t, m, keyPress(tea.KeyCtrlS))
	m, _ = update(t, m, cmd())

	require.Equal(t, []sentCall{{text: "draft", immediate: false}}, sender.calls)
	require.Equal(t, "draft", m.Text())
	require.Equal(t, StateTextEntered, m.State())
}

func TestSendPreviewTruncates(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = running(t, m)
	long := strings.Repeat("b", 30)
	m.composer.SetText(long)

	m, cmd := update(t, m, keyPress(tea.KeyCtrlS))
	m, _ = update(t, m, cmd())
	require.Equal(t, "✓ Sent: "+strings.Repeat("b", 25)+"...", m.Status())
}

func TestSendFailureKeepsBuffer(t *testing.T) {
	m, sender, _ := newTestModel(t)
	sender.err = &chatbox.SendError{Target: sender.target, Attempts: 3, Err: errors.New("connection refused")}
	m = running(t, m)
	m.composer.SetText("Hello")

	m, cmd := update(t, m, keyPress(tea.KeyCtrlS))
	m, _ = update(t, m, cmd())

	require.Equal(t, "Hello", m.Text())
	require.True(t, strings.HasPrefix(m.Status(), "Send error"))
	require.NotNil(t, m.dialog)
	require.Equal(t, dialogError, m.dialog.kind)
	require.Contains(t, m.dialog.body, "OSC is enabled")
	require.Contains(t, m.dialog.body, "connection refused")
	require.Equal(t, StateTextEntered, m.State())

	m, _ = update(t, m, keyPress(tea.KeyEsc))
	require.Nil(t, m.dialog)
}

func TestSendIgnoredWhileSending(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = running(t, m)
	m.composer.SetText("Hello")

	m, cmd := update(t, m, keyPress(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	_, cmd = update(t, m, keyPress(tea.KeyCtrlS))
	require.Nil(t, cmd)
}

func TestAcceleratorRequiresEnabledSend(t *testing.T) {
	m, sender, _ := newTestModel(t)
	m.composer.SetText("Hello")

	_, cmd := update(t, m, keyPress(tea.KeyCtrlS))
	require.Nil(t, cmd)
	require.Empty(t, sender.calls)
}

func TestSendButtonRejectsOverLimitLocally(t *testing.T) {
	m, sender, _ := newTestModel(t)
	m = running(t, m)
	m.composer.SetText(strings.Repeat("x", 145))
	m.setFocus(focusSend)

	m, cmd := update(t, m, keyPress(tea.KeyEnter))
	require.Nil(t, cmd)
	require.Empty(t, sender.calls)
	require.NotNil(t, m.dialog)
	require.Equal(t, "Text too long", m.dialog.title)
}

func TestSendButtonAtLimit(t *testing.T) {
	m, sender, _ := newTestModel(t)
	m = running(t, m)
	m.composer.SetText(strings.Repeat("x", 144))
	m.setFocus(focusSend)

	m, cmd := update(t, m, keyPress(tea.KeyEnter))
	require.NotNil(t, cmd)
	update(t, m, cmd())
	require.Len(t, sender.calls, 1)
}

func TestSendButtonWhenNotRunning(t *testing.T) {
	m, sender, _ := newTestModel(t)
	m, _ = update(t, m, PresenceMsg{Running: false})
	m.composer.SetText("Hello")
	m.setFocus(focusSend)

	m, cmd := update(t, m, keyPress(tea.KeyEnter))
	require.Nil(t, cmd)
	require.Empty(t, sender.calls)
	require.Equal(t, "VRChat is not running", m.dialog.title)
}

func TestSendButtonEmptyText(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = running(t, m)
	m.setFocus(focusSend)

	m, cmd := update(t, m, keyPress(tea.KeyEnter))
	require.Nil(t, cmd)
	require.Equal(t, "Text is empty", m.Status())
}

func TestClearIsIdempotent(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.composer.SetText("something")

	m, _ = update(t, m, keyPress(tea.KeyCtrlL))
	require.Equal(t, "", m.Text())
	require.Equal(t, "Text cleared", m.Status())

	m, _ = update(t, m, keyPress(tea.KeyCtrlL))
	require.Equal(t, "", m.Text())
	require.Equal(t, "Text cleared", m.Status())
}

func TestUpdateConnection(t *testing.T) {
	m, sender, _ := newTestModel(t)
	m.connection.HostInput().SetValue("10.0.0.5")
	m.connection.PortInput().SetValue("9001")

	m, _ = update(t, m, keyPress(tea.KeyCtrlU))
	require.Equal(t, models.Target{Host: "10.0.0.5", Port: 9001}, sender.Target())
	require.Equal(t, "Target updated: 10.0.0.5:9001", m.Status())
	require.Nil(t, m.dialog)
}

func TestUpdateConnectionRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		host string
		port string
	}{
		{name: "empty host", host: "", port: "9000"},
		{name: "port out of range", host: "10.0.0.5", port: "70000"},
		{name: "port not a number", host: "10.0.0.5", port: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, sender, _ := newTestModel(t)
			before := sender.Target()
			m.connection.HostInput().SetValue(tt.host)
			m.connection.PortInput().SetValue(tt.port)

			m, _ = update(t, m, keyPress(tea.KeyCtrlU))
			require.Equal(t, before, sender.Target())
			require.Equal(t, "Connection settings error", m.Status())
			require.NotNil(t, m.dialog)
			require.Equal(t, "Settings error", m.dialog.title)
		})
	}
}

func TestEnterInPortFieldUpdatesConnection(t *testing.T) {
	m, sender, _ := newTestModel(t)
	m.setFocus(focusPort)
	m.connection.PortInput().SetValue("9100")

	_, _ = update(t, m, keyPress(tea.KeyEnter))
	require.Equal(t, 9100, sender.Target().Port)
}

func TestTypingGoesToFocusedField(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	require.Equal(t, "hi", m.Text())

	m, _ = update(t, m, keyPress(tea.KeyShiftTab))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	require.Equal(t, "90001", m.connection.Port())
	require.Equal(t, "hi", m.Text())
}

func TestToggleImmediateFromFocus(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.True(t, m.composer.Immediate())

	m, _ = update(t, m, keyPress(tea.KeyTab))
	require.Equal(t, focusImmediate, m.focus)
	m, _ = update(t, m, keyPress(tea.KeySpace))
	require.False(t, m.composer.Immediate())
}

func TestHelpOverlay(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, keyPress(tea.KeyCtrlH))
	require.True(t, m.showHelp)
	require.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = update(t, m, keyPress(tea.KeyEsc))
	require.False(t, m.showHelp)
}

func TestViewShowsIndicatorAndCounter(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.Contains(t, m.View(), "Checking...")

	m = running(t, m)
	m.composer.SetText("Hi there")
	view := m.View()
	require.Contains(t, view, "Running ✓")
	require.Contains(t, view, "8/144")

	m, _ = update(t, m, PresenceMsg{Running: false})
	require.Contains(t, m.View(), "Not running ✗")
}

func TestViewTooSmall(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 10})
	require.Contains(t, m.View(), "Terminal too small")
}
