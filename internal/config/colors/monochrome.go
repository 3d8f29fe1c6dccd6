package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:     "#FFFFFF",
		Background: "#121212",

		BannerBg:   "#FFFFFF",
		BannerText: "#121212",

		TableBorder: "#FFFFFF",
		TableHeader: "#FFFFFF",

		ButtonBg:      "#3A3A3A",
		ButtonText:    "#FFFFFF",
		ButtonFocusBg: "#585858",

		Title:  "#FFFFFF",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#1C1C1C",
		ErrorFg: "#FFFFFF",
		ErrorBg: "#585858",
	}
}
