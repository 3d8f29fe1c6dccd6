// Package components provides reusable UI components and styles.
// Call InitStyles() after theme.Init to rebuild the style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/manpower/internal/tui/theme"
)

// Window text shown in the banner and the terminal title
const (
	BrandName   = "Ashtavinayaka Technocrafts Pvt Ltd"
	WindowTitle = "Manpower Tracking - " + BrandName
)

// These are cached to avoid recomputing on every redraw.
var (
	// BannerStyle defines the branding banner across the top of the window
	BannerStyle lipgloss.Style

	// TitleStyle defines section titles ("Assigned Tasks")
	TitleStyle lipgloss.Style

	// LabelStyle defines field labels ("Select Tank")
	LabelStyle lipgloss.Style

	// SelectorStyle defines the selector box when not focused
	SelectorStyle lipgloss.Style

	// FocusedSelectorStyle defines the selector box when focused
	FocusedSelectorStyle lipgloss.Style

	// ButtonStyle defines an unfocused action button
	ButtonStyle lipgloss.Style

	// FocusedButtonStyle defines the focused action button
	FocusedButtonStyle lipgloss.Style

	// SubtleStyle defines muted text such as placeholders and hints
	SubtleStyle lipgloss.Style

	// PickerBoxStyle defines the frame around the tank picker form
	PickerBoxStyle lipgloss.Style

	// HelpBoxStyle defines the frame around the help overlay
	HelpBoxStyle lipgloss.Style
)

func init() {
	InitStyles()
}

// InitStyles builds every style from the current theme colors
func InitStyles() {
	BannerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.BannerText)).
		Background(lipgloss.Color(theme.BannerBg)).
		Align(lipgloss.Center).
		Padding(1, 0)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Title))

	LabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		PaddingRight(2)

	SelectorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Subtle)).
		Padding(0, 1)

	FocusedSelectorStyle = SelectorStyle.
		BorderForeground(lipgloss.Color(theme.Highlight))

	ButtonStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ButtonText)).
		Background(lipgloss.Color(theme.ButtonBg)).
		Padding(0, 2).
		MarginRight(2)

	FocusedButtonStyle = ButtonStyle.
		Bold(true).
		Background(lipgloss.Color(theme.ButtonFocusBg))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle))

	PickerBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Highlight)).
		Padding(1, 2)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.TableBorder)).
		Padding(0, 1)
}
