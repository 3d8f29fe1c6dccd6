package notifications

import "github.com/thenoetrevino/manpower/internal/tui/state"

// Severity represents the severity level of a dialog or notification
type Severity int

const (
	Info Severity = iota
	Error
)

// FromDialogKind maps a dialog kind to its severity
func FromDialogKind(kind state.DialogKind) Severity {
	if kind == state.DialogError {
		return Error
	}
	return Info
}

// FromLevel maps a notification level to its severity
func FromLevel(level state.NotificationLevel) Severity {
	if level == state.LevelError {
		return Error
	}
	return Info
}
