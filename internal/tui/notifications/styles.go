package notifications

import "github.com/thenoetrevino/manpower/internal/tui/theme"

type style struct {
	icon             string
	foreground       string
	background       string
	borderForeground string
}

func (s Severity) style() style {
	switch s {
	case Error:
		return style{
			icon:             "✕",
			foreground:       theme.ErrorFg,
			background:       theme.ErrorBg,
			borderForeground: theme.ErrorFg,
		}
	default:
		return style{
			icon:             "🔔",
			foreground:       theme.InfoFg,
			background:       theme.InfoBg,
			borderForeground: theme.InfoFg,
		}
	}
}
