package theme

import "github.com/thenoetrevino/manpower/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight     string
	Background    string
	BannerBg      string
	BannerText    string
	TableBorder   string
	TableHeader   string
	ButtonBg      string
	ButtonText    string
	ButtonFocusBg string
	Title         string
	Subtle        string
	Normal        string
	InfoFg        string
	InfoBg        string
	ErrorFg       string
	ErrorBg       string
)

func init() {
	Init(*colors.Default())
}

// Init initializes the theme colors from the given color scheme
func Init(c colors.ColorScheme) {
	Highlight = c.Accent
	Background = c.Background
	BannerBg = c.BannerBg
	BannerText = c.BannerText
	TableBorder = c.TableBorder
	TableHeader = c.TableHeader
	ButtonBg = c.ButtonBg
	ButtonText = c.ButtonText
	ButtonFocusBg = c.ButtonFocusBg
	Title = c.Title
	Subtle = c.Subtle
	Normal = c.Normal
	InfoFg = c.InfoFg
	InfoBg = c.InfoBg
	ErrorFg = c.ErrorFg
	ErrorBg = c.ErrorBg
}
