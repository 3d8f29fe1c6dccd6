package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (focus ring, titles, picker selector)
	Accent string `yaml:"accent"`

	// Background of the whole window
	Background string `yaml:"background"`

	// Branding banner
	BannerBg   string `yaml:"banner_bg"`
	BannerText string `yaml:"banner_text"`

	// Task table
	TableBorder string `yaml:"table_border"`
	TableHeader string `yaml:"table_header"`

	// Buttons
	ButtonBg      string `yaml:"button_bg"`
	ButtonText    string `yaml:"button_text"`
	ButtonFocusBg string `yaml:"button_focus_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Dialog colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	c.MergeMissing(*preset)
}

// MergeMissing copies every field of base that is empty in c
func (c *ColorScheme) MergeMissing(base ColorScheme) {
	for _, f := range c.fields(&base) {
		if *f.dst == "" {
			*f.dst = *f.src
		}
	}
}

// MergeFrom overrides c with every non-empty field of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	for _, f := range c.fields(&other) {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
}

type fieldPair struct {
	dst *string
	src *string
}

func (c *ColorScheme) fields(o *ColorScheme) []fieldPair {
	return []fieldPair{
		{&c.Preset, &o.Preset},
		{&c.Accent, &o.Accent},
		{&c.Background, &o.Background},
		{&c.BannerBg, &o.BannerBg},
		{&c.BannerText, &o.BannerText},
		{&c.TableBorder, &o.TableBorder},
		{&c.TableHeader, &o.TableHeader},
		{&c.ButtonBg, &o.ButtonBg},
		{&c.ButtonText, &o.ButtonText},
		{&c.ButtonFocusBg, &o.ButtonFocusBg},
		{&c.Title, &o.Title},
		{&c.Subtle, &o.Subtle},
		{&c.Normal, &o.Normal},
		{&c.InfoFg, &o.InfoFg},
		{&c.InfoBg, &o.InfoBg},
		{&c.ErrorFg, &o.ErrorFg},
		{&c.ErrorBg, &o.ErrorBg},
	}
}
