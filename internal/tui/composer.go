package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vrcsend/vrcsend/internal/config"
	"github.com/vrcsend/vrcsend/internal/models"
)

// Composer is the message text area with its counter and immediate toggle.
type Composer struct {
	area       textarea.Model
	immediate  bool
	maxLength  int
	warnLength int
}

// NewComposer creates an empty composer with send-immediately on.
func NewComposer(cfg config.Config) *Composer {
	ta := textarea.New()
	ta.Placeholder = "Type a chatbox message"
	ta.ShowLineNumbers = false
	// Allow typing past the limit so the counter can show the overflow.
	ta.CharLimit = cfg.MaxLength * 4
	ta.SetHeight(6)

	return &Composer{
		area:       ta,
		immediate:  true,
		maxLength:  cfg.MaxLength,
		warnLength: cfg.WarnLength,
	}
}

// Text returns the raw buffer.
func (c *Composer) Text() string {
	return c.area.Value()
}

// SetText replaces the buffer.
func (c *Composer) SetText(s string) {
	c.area.SetValue(s)
}

// Reset empties the buffer.
func (c *Composer) Reset() {
	c.area.Reset()
}

// Length is the trimmed character count.
func (c *Composer) Length() int {
	return models.TextLength(c.area.Value())
}

// Immediate reports whether messages skip the receiver's confirmation step.
func (c *Composer) Immediate() bool {
	return c.immediate
}

// ToggleImmediate flips the send-immediately option.
func (c *Composer) ToggleImmediate() {
	c.immediate = !c.immediate
}

// Area returns the textarea model for update forwarding.
func (c *Composer) Area() *textarea.Model {
	return &c.area
}

// SetWidth resizes the text area.
func (c *Composer) SetWidth(width int) {
	c.area.SetWidth(width)
}

// Counter renders "n/max", orange past the warning length and red past
// the maximum.
func (c *Composer) Counter() string {
	n := c.Length()
	text := fmt.Sprintf("%d/%d", n, c.maxLength)
	switch {
	case n > c.maxLength:
		return counterOverStyle.Render(text)
	case n > c.warnLength:
		return counterWarnStyle.Render(text)
	default:
		return counterStyle.Render(text)
	}
}

// View renders the message section.
func (c *Composer) View(focus, width int) string {
	var toggle string
	if c.immediate {
		toggle = toggleOnStyle.Render("[x]") + " Send immediately"
	} else {
		toggle = toggleOffStyle.Render("[ ]") + " Send immediately"
	}
	if focus == focusImmediate {
		toggle = focusCursorStyle.Render(toggle)
	}

	inner := width - 6
	counter := c.Counter()
	gap := inner - lipgloss.Width(toggle) - lipgloss.Width(counter)
	if gap < 1 {
		gap = 1
	}
	options := toggle + lipgloss.NewStyle().Width(gap).Render("") + counter

	content := lipgloss.JoinVertical(lipgloss.Left,
		sectionTitleStyle.Render("Message"),
		c.area.View(),
		options,
	)

	style := sectionStyle
	if focus == focusText || focus == focusImmediate {
		style = focusedSectionStyle
	}
	return style.Width(width - 2).Render(content)
}
