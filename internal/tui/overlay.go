package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vrcsend/vrcsend/internal/chatbox"
)

type dialogKind int

const (
	dialogWarning dialogKind = iota
	dialogError
)

// dialog is a modal message box dismissed with Esc or Enter.
type dialog struct {
	kind  dialogKind
	title string
	body  string
}

// View renders the dialog box.
func (d *dialog) View(width int) string {
	maxWidth := 56
	if width-4 < maxWidth {
		maxWidth = width - 4
	}

	style := overlayWarningStyle
	if d.kind == dialogError {
		style = overlayErrorStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		overlayTitleStyle.Render(d.title),
		d.body,
		"",
		overlayDimStyle.Render("Press Esc or Enter to close"),
	)
	return style.Width(maxWidth).Render(content)
}

func sendErrorDialog(err error) *dialog {
	detail := err.Error()
	var sendErr *chatbox.SendError
	if errors.As(err, &sendErr) && sendErr.Err != nil {
		detail = sendErr.Err.Error()
	}
	lines := []string{"OSC send failed.", "", "Check that:"}
	for _, hint := range chatbox.TroubleshootingHints {
		lines = append(lines, "• "+hint)
	}
	lines = append(lines, "", "Details: "+detail)
	body := strings.Join(lines, "\n")
	return &dialog{kind: dialogError, title: "Send error", body: body}
}

// renderOverlay renders an overlay centered on top of the base view.
func renderOverlay(base, overlayContent string, width, height int) string {
	// Dim the background
	baseLines := strings.Split(base, "\n")
	for i, line := range baseLines {
		baseLines[i] = overlayDimStyle.Render(ansi.Strip(line))
	}

	overlayLines := strings.Split(overlayContent, "\n")
	overlayWidth := 0
	for _, l := range overlayLines {
		if w := lipgloss.Width(l); w > overlayWidth {
			overlayWidth = w
		}
	}

	top := (height - len(overlayLines)) / 2
	left := (width - overlayWidth) / 2
	if top < 1 {
		top = 1
	}
	if left < 1 {
		left = 1
	}

	// Splice overlay rows into the background using ANSI-aware cuts
	for i, line := range overlayLines {
		row := top + i
		if row >= len(baseLines) {
			continue
		}
		bg := baseLines[row]
		bgWidth := lipgloss.Width(bg)

		leftPart := ansi.Truncate(bg, left, "")
		rightPart := ""
		rightStart := left + lipgloss.Width(line)
		if rightStart < bgWidth {
			rightPart = ansi.Cut(bg, rightStart, bgWidth)
		}
		baseLines[row] = leftPart + "\033[0m" + line + "\033[0m" + rightPart
	}

	return strings.Join(baseLines, "\n")
}
