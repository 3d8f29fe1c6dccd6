package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// HelpEntry is one key binding line of the help overlay
type HelpEntry struct {
	Keys        string
	Description string
}

// HelpSection groups help entries under a heading
type HelpSection struct {
	Title   string
	Entries []HelpEntry
}

type HelpProps struct {
	Sections []HelpSection
	Width    int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// HelpMarkdown builds the markdown source of the help overlay
func HelpMarkdown(sections []HelpSection) string {
	var b strings.Builder
	b.WriteString("# Keyboard shortcuts\n")
	for _, s := range sections {
		fmt.Fprintf(&b, "\n## %s\n\n", s.Title)
		b.WriteString("| Key | Action |\n|-----|--------|\n")
		for _, e := range s.Entries {
			fmt.Fprintf(&b, "| `%s` | %s |\n", e.Keys, e.Description)
		}
	}
	return b.String()
}

// RenderHelp renders the help overlay. Falls back to the raw markdown
// when glamour cannot render it.
func RenderHelp(props HelpProps) string {
	source := HelpMarkdown(props.Sections)

	width := max(props.Width-4, 20)
	content := source
	if renderer, err := getRenderer(width); err == nil {
		if rendered, err := renderer.Render(source); err == nil {
			content = strings.TrimSpace(rendered)
		}
	}

	return HelpBoxStyle.Render(content)
}
