package colors

// Default returns the default color scheme (light blue branding)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Primary
		Accent: "#5FAFFF",

		// Background
		Background: "#1C1C1C",

		// Branding
		BannerBg:   "#ADD8E6", // lightblue
		BannerText: "#1C1C1C",

		// Table
		TableBorder: "#5F87D7",
		TableHeader: "#D75FD7",

		// Buttons
		ButtonBg:      "#3A3A3A",
		ButtonText:    "#D0D0D0",
		ButtonFocusBg: "#5F87D7",

		// Text
		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		// Dialogs
		InfoFg:  "#00AFFF",
		InfoBg:  "#00005F",
		ErrorFg: "#FF0000",
		ErrorBg: "#5F0000",
	}
}
