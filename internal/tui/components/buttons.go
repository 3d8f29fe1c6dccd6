package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/manpower/internal/models"
)

type ButtonsProps struct {
	// Focused is the focused action, or nil when focus is elsewhere
	Focused *models.Action
}

// RenderButtons renders the Generate Report and Estimate Time buttons
func RenderButtons(props ButtonsProps) string {
	actions := []models.Action{models.ActionReport, models.ActionEstimate}

	rendered := make([]string, 0, len(actions))
	for _, a := range actions {
		style := ButtonStyle
		if props.Focused != nil && *props.Focused == a {
			style = FocusedButtonStyle
		}
		rendered = append(rendered, style.Render(a.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
