package tui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/manpower/internal/models"
	"github.com/thenoetrevino/manpower/internal/tui/components"
	"github.com/thenoetrevino/manpower/internal/tui/layers"
	"github.com/thenoetrevino/manpower/internal/tui/notifications"
	"github.com/thenoetrevino/manpower/internal/tui/state"
	"github.com/thenoetrevino/manpower/internal/tui/theme"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.WindowTitle = components.WindowTitle
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// The main window is always drawn; modals are layered on top of it
	layerStack := []*lipgloss.Layer{
		lipgloss.NewLayer(m.renderMainWindow()),
	}
	if modal := m.renderModal(); modal != nil {
		layerStack = append(layerStack, modal)
	}

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

// renderMainWindow renders banner, selector, table, buttons and status bar
func (m Model) renderMainWindow() string {
	width := m.UiState.Width()
	focus := m.UiState.Focus()

	var focusedAction *models.Action
	switch focus {
	case state.FocusReportButton:
		a := models.ActionReport
		focusedAction = &a
	case state.FocusEstimateButton:
		a := models.ActionEstimate
		focusedAction = &a
	}

	body := lipgloss.JoinVertical(
		lipgloss.Center,
		components.RenderSelector(components.SelectorProps{
			Label:    "Select Tank",
			Value:    m.Selector.Selected(),
			Focused:  focus == state.FocusSelector,
			HintKeys: m.Config.KeyMappings.PrevTank + " " + m.Config.KeyMappings.NextTank + " cycle · " + m.Config.KeyMappings.SelectTank + " pick",
		}),
		"",
		components.RenderTaskTable(components.TaskTableProps{
			Rows:  m.Table.Rows(),
			Width: width - 4,
		}),
		"",
		components.RenderButtons(components.ButtonsProps{Focused: focusedAction}),
	)

	banner := components.RenderBanner(components.BannerProps{Width: width})
	statusBar := m.renderStatusBar()

	bodyHeight := max(m.UiState.Height()-lipgloss.Height(banner)-lipgloss.Height(statusBar), 0)
	placed := lipgloss.Place(width, bodyHeight, lipgloss.Center, lipgloss.Top, "\n"+body)

	return lipgloss.JoinVertical(lipgloss.Left, banner, placed, statusBar)
}

func (m Model) renderStatusBar() string {
	var notice string
	if n, ok := m.NotificationState.Latest(); ok {
		notice = notifications.RenderInlineFromState(n)
	}
	return components.RenderStatusBar(components.StatusBarProps{
		Width:   m.UiState.Width(),
		Notice:  notice,
		HelpKey: m.Config.KeyMappings.ShowHelp,
	})
}

// renderModal renders the layer for the current mode, or nil in NormalMode
func (m Model) renderModal() *lipgloss.Layer {
	width, height := m.UiState.Width(), m.UiState.Height()

	switch m.UiState.Mode() {
	case state.PickerMode:
		if m.PickerForm == nil {
			return nil
		}
		box := components.PickerBoxStyle.Render(m.PickerForm.View())
		return layers.CreateCenteredLayer(box, width, height)

	case state.DialogMode:
		d := m.DialogState.Current()
		if d == nil {
			return nil
		}
		footer := "esc close"
		if d.Copyable {
			footer += " · " + m.Config.KeyMappings.CopyReport + " copy"
		}
		box := notifications.RenderDialogFromState(*d, footer, layers.DialogWidth(width))
		return layers.CreateCenteredLayer(box, width, height)

	case state.HelpMode:
		box := components.RenderHelp(components.HelpProps{
			Sections: m.Keys.HelpSections(),
			Width:    layers.DialogWidth(width),
		})
		return layers.CreateCenteredLayer(box, width, height)
	}

	return nil
}
