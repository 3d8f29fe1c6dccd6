package state

import (
	"slices"

	"github.com/thenoetrevino/manpower/internal/models"
)

// TableState holds the rows of the Assigned Tasks table.
// Only the selection-changed handler writes to it.
type TableState struct {
	rows []models.DisplayRow
}

// NewTableState creates an empty table.
func NewTableState() *TableState {
	return &TableState{rows: []models.DisplayRow{}}
}

// Replace discards every current row and shows the given ones in order.
func (s *TableState) Replace(rows []models.DisplayRow) {
	s.rows = slices.Clone(rows)
	if s.rows == nil {
		s.rows = []models.DisplayRow{}
	}
}

// Clear empties the table.
func (s *TableState) Clear() {
	s.rows = []models.DisplayRow{}
}

// Rows returns a copy of the displayed rows in display order.
func (s *TableState) Rows() []models.DisplayRow {
	return slices.Clone(s.rows)
}

// Len returns the number of displayed rows.
func (s *TableState) Len() int {
	return len(s.rows)
}
