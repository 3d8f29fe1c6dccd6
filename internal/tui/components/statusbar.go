package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	// Notice replaces the left text when set (already rendered)
	Notice string
	// HelpKey is the key that opens the help overlay
	HelpKey string
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	left := props.Notice
	if left == "" {
		left = SubtleStyle.Render("Manpower - Tank Task Tracking")
	}
	right := SubtleStyle.Render("press " + props.HelpKey + " for help")

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gapWidth), right)
}
