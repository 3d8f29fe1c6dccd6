package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Tank selector
	SelectTank string `yaml:"select_tank"`
	NextTank   string `yaml:"next_tank"`
	PrevTank   string `yaml:"prev_tank"`
	ClearTank  string `yaml:"clear_tank"`

	// Actions
	GenerateReport string `yaml:"generate_report"`
	EstimateTime   string `yaml:"estimate_time"`
	CopyReport     string `yaml:"copy_report"`

	// Focus
	FocusNext string `yaml:"focus_next"`
	FocusPrev string `yaml:"focus_prev"`
	Activate  string `yaml:"activate"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		SelectTank: "s",
		NextTank:   "]",
		PrevTank:   "[",
		ClearTank:  "x",

		GenerateReport: "r",
		EstimateTime:   "e",
		CopyReport:     "y",

		FocusNext: "tab",
		FocusPrev: "shift+tab",
		Activate:  "enter",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.SelectTank, defaults.SelectTank)
	fill(&k.NextTank, defaults.NextTank)
	fill(&k.PrevTank, defaults.PrevTank)
	fill(&k.ClearTank, defaults.ClearTank)
	fill(&k.GenerateReport, defaults.GenerateReport)
	fill(&k.EstimateTime, defaults.EstimateTime)
	fill(&k.CopyReport, defaults.CopyReport)
	fill(&k.FocusNext, defaults.FocusNext)
	fill(&k.FocusPrev, defaults.FocusPrev)
	fill(&k.Activate, defaults.Activate)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
