package state

// DialogKind selects how a dialog is styled
type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogError
)

// Dialog is a blocking message box
type Dialog struct {
	Kind    DialogKind
	Title   string
	Message string
	// Copyable marks dialogs whose message can be copied to the clipboard
	Copyable bool
}

// DialogState holds the dialog currently shown, if any.
type DialogState struct {
	current *Dialog
}

// NewDialogState creates a DialogState with no open dialog.
func NewDialogState() *DialogState {
	return &DialogState{}
}

// Open shows d, replacing any open dialog.
func (s *DialogState) Open(d Dialog) {
	s.current = &d
}

// Close dismisses the open dialog.
func (s *DialogState) Close() {
	s.current = nil
}

// IsOpen reports whether a dialog is shown.
func (s *DialogState) IsOpen() bool {
	return s.current != nil
}

// Current returns the open dialog, or nil.
func (s *DialogState) Current() *Dialog {
	return s.current
}
