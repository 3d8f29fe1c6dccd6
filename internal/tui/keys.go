package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/manpower/internal/config"
	"github.com/thenoetrevino/manpower/internal/tui/components"
)

// KeyMap holds the bindings of the main window, built from the config
type KeyMap struct {
	SelectTank     key.Binding
	NextTank       key.Binding
	PrevTank       key.Binding
	ClearTank      key.Binding
	GenerateReport key.Binding
	EstimateTime   key.Binding
	CopyReport     key.Binding
	FocusNext      key.Binding
	FocusPrev      key.Binding
	Activate       key.Binding
	Left           key.Binding
	Right          key.Binding
	Close          key.Binding
	ShowHelp       key.Binding
	Quit           key.Binding
}

// NewKeyMap builds bindings from the configured key mappings
func NewKeyMap(km config.KeyMappings) KeyMap {
	return KeyMap{
		SelectTank:     key.NewBinding(key.WithKeys(km.SelectTank), key.WithHelp(km.SelectTank, "pick a tank")),
		NextTank:       key.NewBinding(key.WithKeys(km.NextTank), key.WithHelp(km.NextTank, "next tank")),
		PrevTank:       key.NewBinding(key.WithKeys(km.PrevTank), key.WithHelp(km.PrevTank, "previous tank")),
		ClearTank:      key.NewBinding(key.WithKeys(km.ClearTank), key.WithHelp(km.ClearTank, "clear selection")),
		GenerateReport: key.NewBinding(key.WithKeys(km.GenerateReport), key.WithHelp(km.GenerateReport, "generate report")),
		EstimateTime:   key.NewBinding(key.WithKeys(km.EstimateTime), key.WithHelp(km.EstimateTime, "estimate time")),
		CopyReport:     key.NewBinding(key.WithKeys(km.CopyReport), key.WithHelp(km.CopyReport, "copy report to clipboard")),
		FocusNext:      key.NewBinding(key.WithKeys(km.FocusNext), key.WithHelp(km.FocusNext, "next control")),
		FocusPrev:      key.NewBinding(key.WithKeys(km.FocusPrev), key.WithHelp(km.FocusPrev, "previous control")),
		Activate:       key.NewBinding(key.WithKeys(km.Activate), key.WithHelp(km.Activate, "activate focused control")),
		Left:           key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "previous tank (selector focused)")),
		Right:          key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "next tank (selector focused)")),
		Close:          key.NewBinding(key.WithKeys("esc", "enter", km.Quit), key.WithHelp("esc", "close dialog")),
		ShowHelp:       key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "toggle help")),
		Quit:           key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),
	}
}

// HelpSections groups the bindings for the help overlay
func (k KeyMap) HelpSections() []components.HelpSection {
	section := func(title string, bindings ...key.Binding) components.HelpSection {
		s := components.HelpSection{Title: title}
		for _, b := range bindings {
			h := b.Help()
			s.Entries = append(s.Entries, components.HelpEntry{Keys: h.Key, Description: h.Desc})
		}
		return s
	}

	return []components.HelpSection{
		section("Tank", k.SelectTank, k.NextTank, k.PrevTank, k.Left, k.Right, k.ClearTank),
		section("Actions", k.GenerateReport, k.EstimateTime, k.CopyReport),
		section("Window", k.FocusNext, k.FocusPrev, k.Activate, k.Close, k.ShowHelp, k.Quit),
	}
}
