package components

type BannerProps struct {
	Width int
}

// RenderBanner renders the full-width branding banner
func RenderBanner(props BannerProps) string {
	return BannerStyle.Width(props.Width).Render(BrandName)
}
