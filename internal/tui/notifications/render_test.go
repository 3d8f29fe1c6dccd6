package notifications

import (
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/thenoetrevino/manpower/internal/tui/state"
)

func TestRenderDialog_ContainsTitleAndMessage(t *testing.T) {
	out := RenderDialog(Error, "Error", "No tasks to generate a report.", "esc close", 50)

	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "No tasks to generate a report.")
	assert.Contains(t, out, "esc close")
	assert.Equal(t, 50, lipgloss.Width(out))
}

func TestRenderDialogFromState_KeepsLines(t *testing.T) {
	d := state.Dialog{
		Kind:    state.DialogInfo,
		Title:   "Task Report",
		Message: "Task Report for Tank A:\nTask: Shell Cutting, Time Required: 5 hrs, Workers: 4",
	}

	out := RenderDialogFromState(d, "", 72)

	assert.Contains(t, out, "Task Report for Tank A:")
	assert.Contains(t, out, "Task: Shell Cutting, Time Required: 5 hrs, Workers: 4")
}

func TestFromDialogKind(t *testing.T) {
	assert.Equal(t, Error, FromDialogKind(state.DialogError))
	assert.Equal(t, Info, FromDialogKind(state.DialogInfo))
	assert.Equal(t, Error, FromLevel(state.LevelError))
	assert.Equal(t, Info, FromLevel(state.LevelInfo))
}

func TestRenderInline(t *testing.T) {
	out := RenderInlineFromState(state.Notification{Level: state.LevelInfo, Message: "Report copied to clipboard"})
	assert.Contains(t, out, "Report copied to clipboard")
}
