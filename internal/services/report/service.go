package report

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/manpower/internal/models"
)

// Service defines the summary actions over the rows currently displayed
type Service interface {
	// Generate renders a text report for the rows of the given tank.
	Generate(tank string, rows []models.DisplayRow) (string, error)
	// Estimate sums the hours of all rows.
	Estimate(rows []models.DisplayRow) (int, error)
}

// service implements Service interface
type service struct{}

// NewService creates a new report service
func NewService() Service {
	return &service{}
}

// Generate returns a header naming the tank followed by one line per row
// in display order. An empty row set is an *models.EmptyTableError.
func (s *service) Generate(tank string, rows []models.DisplayRow) (string, error) {
	if len(rows) == 0 {
		return "", &models.EmptyTableError{Action: models.ActionReport}
	}

	var b strings.Builder
	b.WriteString(Header(tank))
	b.WriteByte('\n')
	for _, row := range rows {
		b.WriteString(Line(row))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// Estimate returns the total hours across rows.
// An empty row set is an *models.EmptyTableError.
func (s *service) Estimate(rows []models.DisplayRow) (int, error) {
	if len(rows) == 0 {
		return 0, &models.EmptyTableError{Action: models.ActionEstimate}
	}

	total := 0
	for _, row := range rows {
		total += row.Hours
	}
	return total, nil
}

// Header is the first line of a report
func Header(tank string) string {
	return fmt.Sprintf("Task Report for %s:", tank)
}

// Line formats a single report line for a row
func Line(row models.DisplayRow) string {
	return fmt.Sprintf("Task: %s, Time Required: %d hrs, Workers: %d", row.Name, row.Hours, row.Workers)
}

// EstimateMessage is the text shown in the estimate dialog
func EstimateMessage(total int) string {
	return fmt.Sprintf("Estimated total time for task completion: %d hours.", total)
}
