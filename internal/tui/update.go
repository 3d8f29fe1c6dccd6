package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/manpower/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		if m.UiState.Mode() == state.PickerMode {
			return m.updatePicker(msg)
		}
		return m, nil

	case clearNoticeMsg:
		m.NotificationState.Clear()
		return m, nil
	}

	// Forms need every message, not only key presses
	if m.UiState.Mode() == state.PickerMode {
		return m.updatePicker(msg)
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.DialogMode:
		return m.handleDialogMode(keyMsg)
	case state.HelpMode:
		return m.handleHelpMode(keyMsg)
	default:
		return m.handleNormalMode(keyMsg)
	}
}

// handleNormalMode handles keys on the main window
func (m Model) handleNormalMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	onSelector := m.UiState.Focus() == state.FocusSelector

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.ShowHelp):
		m.UiState.SetMode(state.HelpMode)

	case key.Matches(msg, m.Keys.FocusNext):
		m.UiState.FocusNext()

	case key.Matches(msg, m.Keys.FocusPrev):
		m.UiState.FocusPrev()

	case key.Matches(msg, m.Keys.SelectTank):
		return m, m.openTankPicker()

	case key.Matches(msg, m.Keys.NextTank), onSelector && key.Matches(msg, m.Keys.Right):
		m.selectionChanged(m.Selector.Next())

	case key.Matches(msg, m.Keys.PrevTank), onSelector && key.Matches(msg, m.Keys.Left):
		m.selectionChanged(m.Selector.Prev())

	case key.Matches(msg, m.Keys.ClearTank):
		m.selectionChanged(m.Selector.Clear())

	case key.Matches(msg, m.Keys.GenerateReport):
		HandleGenerateReport(&m)

	case key.Matches(msg, m.Keys.EstimateTime):
		HandleEstimateTime(&m)

	case key.Matches(msg, m.Keys.Activate):
		return m.activateFocused()
	}

	return m, nil
}

// activateFocused runs the control that has focus
func (m Model) activateFocused() (tea.Model, tea.Cmd) {
	switch m.UiState.Focus() {
	case state.FocusSelector:
		return m, m.openTankPicker()
	case state.FocusReportButton:
		HandleGenerateReport(&m)
	case state.FocusEstimateButton:
		HandleEstimateTime(&m)
	}
	return m, nil
}

// handleDialogMode handles keys while a dialog blocks the window
func (m Model) handleDialogMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.Keys.CopyReport):
		return m, m.copyDialogText()

	case key.Matches(msg, m.Keys.Close):
		m.DialogState.Close()
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// handleHelpMode handles input in the help screen.
func (m Model) handleHelpMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit

	case key.Matches(msg, m.Keys.ShowHelp), key.Matches(msg, m.Keys.Close):
		m.UiState.SetMode(state.NormalMode)
	}
	return m, nil
}

// updatePicker forwards messages to the tank picker form and applies the
// choice once the form completes.
func (m Model) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.PickerForm == nil {
		m.closeTankPicker()
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.closeTankPicker()
			return m, nil
		}
	}

	model, cmd := m.PickerForm.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.PickerForm = f
	}

	switch m.PickerForm.State {
	case huh.StateCompleted:
		chosen := *m.pickerValue
		m.closeTankPicker()
		m.selectionChanged(m.Selector.Select(chosen))
		return m, nil
	case huh.StateAborted:
		m.closeTankPicker()
		return m, nil
	}

	return m, cmd
}
