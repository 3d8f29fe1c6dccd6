package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialogState_OpenClose(t *testing.T) {
	s := NewDialogState()
	assert.False(t, s.IsOpen())
	assert.Nil(t, s.Current())

	s.Open(Dialog{Kind: DialogError, Title: "Error", Message: "No tasks to generate a report."})
	require.True(t, s.IsOpen())
	assert.Equal(t, DialogError, s.Current().Kind)

	s.Open(Dialog{Kind: DialogInfo, Title: "Estimated Time", Message: "x"})
	assert.Equal(t, "Estimated Time", s.Current().Title, "opening replaces the previous dialog")

	s.Close()
	assert.False(t, s.IsOpen())
}

func TestNotificationState_Latest(t *testing.T) {
	s := NewNotificationState()
	_, ok := s.Latest()
	assert.False(t, ok)

	s.Add(LevelInfo, "first")
	s.Add(LevelError, "second")

	n, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, Notification{Level: LevelError, Message: "second"}, n)

	s.Clear()
	_, ok = s.Latest()
	assert.False(t, ok)
}
