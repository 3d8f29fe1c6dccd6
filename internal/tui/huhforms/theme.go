package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/manpower/internal/config/colors"
)

// CreateTheme creates a huh theme matching the configured color scheme
func CreateTheme(colorScheme colors.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(colorScheme.Accent)
		subtle := lipgloss.Color(colorScheme.Subtle)
		normal := lipgloss.Color(colorScheme.Normal)
		title := lipgloss.Color(colorScheme.Title)
		errorColor := lipgloss.Color(colorScheme.ErrorFg)

		// Focused field styles
		t.Focused.Base = t.Focused.Base.BorderForeground(accent)
		t.Focused.Title = t.Focused.Title.Foreground(title).Bold(true)
		t.Focused.Description = t.Focused.Description.Foreground(subtle)
		t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(errorColor)
		t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(errorColor)
		t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(accent)
		t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(accent).Bold(true)
		t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(normal)

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

		return t
	})
}
