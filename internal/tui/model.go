package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/atotto/clipboard"
	"github.com/thenoetrevino/manpower/internal/app"
	"github.com/thenoetrevino/manpower/internal/config"
	"github.com/thenoetrevino/manpower/internal/tui/components"
	"github.com/thenoetrevino/manpower/internal/tui/huhforms"
	"github.com/thenoetrevino/manpower/internal/tui/state"
	"github.com/thenoetrevino/manpower/internal/tui/theme"
)

// defaultNoticeTimeout is how long a status line notification stays visible
const defaultNoticeTimeout = 3 * time.Second

// Model is the application context of the TUI. It is built once at startup
// and every handler receives it explicitly. The table is only written by
// HandleSelectionChanged.
type Model struct {
	App    *app.App
	Config *config.Config
	Keys   KeyMap

	UiState           *state.UIState
	Selector          *state.SelectorState
	Table             *state.TableState
	DialogState       *state.DialogState
	NotificationState *state.NotificationState

	// PickerForm is the open tank picker, nil outside PickerMode
	PickerForm  *huh.Form
	pickerValue *string
	pickerTheme huh.Theme

	// copyToClipboard and noticeTimeout are swapped out in tests
	copyToClipboard func(string) error
	noticeTimeout   time.Duration
}

// InitialModel creates the TUI model for the given application and config
func InitialModel(application *app.App, cfg *config.Config) Model {
	theme.Init(cfg.ColorScheme)
	components.InitStyles()

	return Model{
		App:    application,
		Config: cfg,
		Keys:   NewKeyMap(cfg.KeyMappings),

		UiState:           state.NewUIState(),
		Selector:          state.NewSelectorState(application.Catalog.Tanks()),
		Table:             state.NewTableState(),
		DialogState:       state.NewDialogState(),
		NotificationState: state.NewNotificationState(),

		pickerTheme:     huhforms.CreateTheme(cfg.ColorScheme),
		copyToClipboard: clipboard.WriteAll,
		noticeTimeout:   defaultNoticeTimeout,
	}
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	// The window starts with nothing selected and an empty table
	return nil
}
