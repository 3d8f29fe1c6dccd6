package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode Mode = iota // Default: selector, table and buttons
	PickerMode             // Tank picker modal (huh select)
	DialogMode             // Blocking info/error dialog
	HelpMode               // Help overlay
)

// Focus identifies which control of the main window has keyboard focus
type Focus int

const (
	FocusSelector Focus = iota
	FocusReportButton
	FocusEstimateButton

	focusCount
)

// UIState manages the user interface state:
// terminal dimensions, the interaction mode and the focused control.
type UIState struct {
	width  int
	height int
	mode   Mode
	focus  Focus
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:  NormalMode,
		focus: FocusSelector,
	}
}

// Width returns the terminal width.
func (s *UIState) Width() int { return s.width }

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(w int) { s.width = w }

// Height returns the terminal height.
func (s *UIState) Height() int { return s.height }

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(h int) { s.height = h }

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode { return s.mode }

// SetMode sets the interaction mode.
func (s *UIState) SetMode(mode Mode) { s.mode = mode }

// Focus returns the focused control.
func (s *UIState) Focus() Focus { return s.focus }

// SetFocus sets the focused control. Out of range values are ignored.
func (s *UIState) SetFocus(f Focus) {
	if f < 0 || f >= focusCount {
		return
	}
	s.focus = f
}

// FocusNext moves focus forward, wrapping around.
func (s *UIState) FocusNext() {
	s.focus = (s.focus + 1) % focusCount
}

// FocusPrev moves focus backward, wrapping around.
func (s *UIState) FocusPrev() {
	s.focus = (s.focus + focusCount - 1) % focusCount
}
