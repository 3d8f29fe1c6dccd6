package tui

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/manpower/internal/models"
	"github.com/thenoetrevino/manpower/internal/services/report"
	"github.com/thenoetrevino/manpower/internal/tui/huhforms"
	"github.com/thenoetrevino/manpower/internal/tui/state"
)

// ============================================================================
// TABLE SYNC
// ============================================================================

// HandleSelectionChanged replaces the table rows with the catalog entry
// for tank, in catalog order. An empty or unknown tank empties the table.
func HandleSelectionChanged(m *Model, tank string) {
	tasks, ok := m.App.Catalog.Get(tank)
	if !ok {
		m.Table.Clear()
		slog.Debug("table cleared", "tank", tank)
		return
	}

	rows := make([]models.DisplayRow, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, models.NewDisplayRow(task))
	}
	m.Table.Replace(rows)
	slog.Debug("table synced", "tank", tank, "rows", len(rows))
}

// selectionChanged syncs the table with the selector after an effective
// change. It runs inside the Update that changed the selector, so no key is
// ever handled against rows of a previous selection.
func (m *Model) selectionChanged(changed bool) {
	if !changed {
		return
	}
	HandleSelectionChanged(m, m.Selector.Selected())
}

// ============================================================================
// SUMMARY ACTIONS
// ============================================================================

// HandleGenerateReport shows the report for the displayed rows, or an
// error dialog when the table is empty.
func HandleGenerateReport(m *Model) {
	text, err := m.App.ReportService.Generate(m.Selector.Selected(), m.Table.Rows())
	if err != nil {
		showActionError(m, err)
		return
	}

	m.DialogState.Open(state.Dialog{
		Kind:     state.DialogInfo,
		Title:    "Task Report",
		Message:  strings.TrimSuffix(text, "\n"),
		Copyable: true,
	})
	m.UiState.SetMode(state.DialogMode)
}

// HandleEstimateTime shows the total hours of the displayed rows, or an
// error dialog when the table is empty.
func HandleEstimateTime(m *Model) {
	total, err := m.App.ReportService.Estimate(m.Table.Rows())
	if err != nil {
		showActionError(m, err)
		return
	}

	m.DialogState.Open(state.Dialog{
		Kind:    state.DialogInfo,
		Title:   "Estimated Time",
		Message: report.EstimateMessage(total),
	})
	m.UiState.SetMode(state.DialogMode)
}

// showActionError turns an action failure into a blocking error dialog.
// An empty table is an expected outcome and is not logged.
func showActionError(m *Model, err error) {
	var emptyErr *models.EmptyTableError
	if !errors.As(err, &emptyErr) {
		slog.Error("summary action failed", "error", err)
	}

	m.DialogState.Open(state.Dialog{
		Kind:    state.DialogError,
		Title:   "Error",
		Message: err.Error(),
	})
	m.UiState.SetMode(state.DialogMode)
}

// ============================================================================
// CLIPBOARD
// ============================================================================

// copyDialogText copies the open dialog's text when it is copyable and
// reports the outcome on the status line.
func (m *Model) copyDialogText() tea.Cmd {
	d := m.DialogState.Current()
	if d == nil || !d.Copyable {
		return nil
	}

	if err := m.copyToClipboard(d.Message + "\n"); err != nil {
		slog.Warn("failed to copy report", "error", err)
		m.NotificationState.Add(state.LevelError, "Could not copy report to clipboard")
	} else {
		m.NotificationState.Add(state.LevelInfo, "Report copied to clipboard")
	}

	return tea.Tick(m.noticeTimeout, func(time.Time) tea.Msg {
		return clearNoticeMsg{}
	})
}

// ============================================================================
// TANK PICKER
// ============================================================================

// openTankPicker shows the tank picker modal, preselecting the current tank
func (m *Model) openTankPicker() tea.Cmd {
	options := m.Selector.Options()
	if len(options) == 0 {
		return nil
	}

	value := options[0]
	if m.Selector.HasSelection() && m.App.Catalog.Contains(m.Selector.Selected()) {
		value = m.Selector.Selected()
	}
	m.pickerValue = &value
	m.PickerForm = huhforms.CreateTankPickerForm(options, m.pickerValue).
		WithTheme(m.pickerTheme)
	m.UiState.SetMode(state.PickerMode)

	return m.PickerForm.Init()
}

// closeTankPicker discards the picker and returns to the main window with
// the selector focused
func (m *Model) closeTankPicker() {
	m.PickerForm = nil
	m.pickerValue = nil
	m.UiState.SetMode(state.NormalMode)
	m.UiState.SetFocus(state.FocusSelector)
}
