package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/manpower/internal/models"
)

func TestTableState_ReplaceDropsOldRows(t *testing.T) {
	s := NewTableState()
	s.Replace([]models.DisplayRow{{Name: "Shell Cutting", Hours: 5, Workers: 4}, {Name: "Shell Bending", Hours: 3, Workers: 3}})
	s.Replace([]models.DisplayRow{{Name: "Shell Welding", Hours: 8, Workers: 7}})

	assert.Equal(t, []models.DisplayRow{{Name: "Shell Welding", Hours: 8, Workers: 7}}, s.Rows())
	assert.Equal(t, 1, s.Len())
}

func TestTableState_ReplaceNil(t *testing.T) {
	s := NewTableState()
	s.Replace([]models.DisplayRow{{Name: "Shell Cutting"}})

	s.Replace(nil)

	assert.Zero(t, s.Len())
	assert.NotNil(t, s.Rows())
}

func TestTableState_Clear(t *testing.T) {
	s := NewTableState()
	s.Replace([]models.DisplayRow{{Name: "Shell Cutting"}})

	s.Clear()

	assert.Empty(t, s.Rows())
	assert.Zero(t, s.Len())
}

func TestTableState_RowsIsCopy(t *testing.T) {
	s := NewTableState()
	s.Replace([]models.DisplayRow{{Name: "Shell Cutting", Hours: 5}})

	rows := s.Rows()
	rows[0].Hours = 100

	assert.Equal(t, 5, s.Rows()[0].Hours)
}
