package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDisplayRow_CopiesRecord(t *testing.T) {
	rec := TaskRecord{Name: "Shell Cutting", Hours: 5, Workers: 4}

	row := NewDisplayRow(rec)

	assert.Equal(t, "Shell Cutting", row.Name)
	assert.Equal(t, 5, row.Hours)
	assert.Equal(t, 4, row.Workers)
}

func TestEmptyTableError_Messages(t *testing.T) {
	tests := []struct {
		action Action
		want   string
	}{
		{ActionReport, "No tasks to generate a report."},
		{ActionEstimate, "Please select a tank and tasks first."},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			err := &EmptyTableError{Action: tt.action}
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestEmptyTableError_SurvivesWrapping(t *testing.T) {
	wrapped := fmt.Errorf("estimate: %w", &EmptyTableError{Action: ActionEstimate})

	var emptyErr *EmptyTableError
	require.True(t, errors.As(wrapped, &emptyErr))
	assert.Equal(t, ActionEstimate, emptyErr.Action)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "Generate Report", ActionReport.String())
	assert.Equal(t, "Estimate Time", ActionEstimate.String())
	assert.Equal(t, "Unknown", Action(42).String())
}
