package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/manpower/internal/app"
	"github.com/thenoetrevino/manpower/internal/config"
)

// setupTestModel builds a model over the built-in catalog with a fake
// clipboard that records what was copied.
func setupTestModel(t *testing.T) (Model, *[]string) {
	t.Helper()

	copied := &[]string{}
	m := InitialModel(app.New(), config.Default())
	m.copyToClipboard = func(s string) error {
		*copied = append(*copied, s)
		return nil
	}
	m.noticeTimeout = 0
	m.UiState.SetWidth(100)
	m.UiState.SetHeight(40)
	return m, copied
}

func keyPress(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab})
	case "shift+tab":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	case "ctrl+c":
		return tea.KeyPressMsg(tea.Key{Code: 'c', Mod: tea.ModCtrl})
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg(tea.Key{Text: s, Code: r})
}

// send runs msg through Update. Returned commands are not executed.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()

	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = send(t, m, keyPress(k))
	}
	return m
}
