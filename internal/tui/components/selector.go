package components

import "charm.land/lipgloss/v2"

// SelectorPlaceholder is shown while no tank is selected
const SelectorPlaceholder = "-- none --"

type SelectorProps struct {
	Label    string
	Value    string
	Focused  bool
	HintKeys string // e.g. "[ ] cycle · s pick"
}

// RenderSelector renders the labelled single-choice control
func RenderSelector(props SelectorProps) string {
	value := props.Value
	if value == "" {
		value = SubtleStyle.Render(SelectorPlaceholder)
	}

	box := SelectorStyle
	arrows := "  "
	if props.Focused {
		box = FocusedSelectorStyle
		arrows = " ▾"
	}

	field := box.Width(24).Render(value + arrows)
	label := LabelStyle.Render(props.Label)

	row := lipgloss.JoinHorizontal(lipgloss.Center, label, field)
	if props.HintKeys == "" {
		return row
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, row, "  ", SubtleStyle.Render(props.HintKeys))
}
