// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// Dialog sizing limits, in cells
const (
	DialogMinWidth = 40
	DialogMaxWidth = 72
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// DialogWidth picks a dialog width for the screen: half of it, clamped
// to the dialog limits and never wider than the screen itself.
func DialogWidth(screenWidth int) int {
	width := min(max(screenWidth/2, DialogMinWidth), DialogMaxWidth)
	return min(width, max(screenWidth-4, 1))
}
