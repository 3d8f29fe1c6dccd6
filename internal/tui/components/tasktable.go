package components

import (
	"strconv"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/thenoetrevino/manpower/internal/models"
	"github.com/thenoetrevino/manpower/internal/tui/theme"
)

// Column headings of the Assigned Tasks table
var TaskTableHeaders = []string{"Task", "Time Required (hrs)", "No. of Workers"}

// EmptyTablePlaceholder is shown under the headings when there are no rows
const EmptyTablePlaceholder = "Select a tank to load its tasks"

type TaskTableProps struct {
	Rows  []models.DisplayRow
	Width int
}

// TaskTableCells converts rows to table cells in display order
func TaskTableCells(rows []models.DisplayRow) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Name, strconv.Itoa(r.Hours), strconv.Itoa(r.Workers)})
	}
	return cells
}

// RenderTaskTable renders the "Assigned Tasks" title and the task table
func RenderTaskTable(props TaskTableProps) string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.TableHeader)).
		Padding(0, 1)
	cellStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		Padding(0, 1)
	numberStyle := cellStyle.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.TableBorder))).
		Headers(TaskTableHeaders...).
		Rows(TaskTableCells(props.Rows)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col > 0:
				return numberStyle
			default:
				return cellStyle
			}
		})

	if props.Width > 0 {
		t = t.Width(min(props.Width, 80))
	}

	parts := []string{TitleStyle.Render("Assigned Tasks"), t.Render()}
	if len(props.Rows) == 0 {
		parts = append(parts, SubtleStyle.Render(EmptyTablePlaceholder))
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}
