package notifications

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/manpower/internal/tui/state"
	"github.com/thenoetrevino/manpower/internal/tui/theme"
)

// RenderDialog renders a blocking dialog box: a title bar, the message
// wrapped to width, and a footer hint line.
func RenderDialog(severity Severity, title, message, footer string, width int) string {
	style := severity.style()
	inner := max(width-4, 1) // border + padding

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Bold(true).
		Width(inner).
		Render(style.icon + " " + title)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Width(inner).
		Render(message)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Width(inner).
		Render(footer)

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", hint)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(style.borderForeground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(content)
}

// RenderDialogFromState renders the given dialog from state
func RenderDialogFromState(d state.Dialog, footer string, width int) string {
	return RenderDialog(FromDialogKind(d.Kind), d.Title, d.Message, footer, width)
}

// RenderInline renders a compact single-line notification for the status line
func RenderInline(severity Severity, message string) string {
	style := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(FromLevel(n.Level), n.Message)
}
