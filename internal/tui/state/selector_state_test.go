package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var tanks = []string{"Tank A", "Tank B", "Tank C"}

func TestSelect_ReportsChangeOnce(t *testing.T) {
	s := NewSelectorState(tanks)

	assert.True(t, s.Select("Tank B"))
	assert.False(t, s.Select("Tank B"), "re-selecting the same tank is not a change")
	assert.Equal(t, "Tank B", s.Selected())
	assert.True(t, s.HasSelection())
}

func TestSelect_UnknownValueKept(t *testing.T) {
	s := NewSelectorState(tanks)

	assert.True(t, s.Select("Tank Z"))
	assert.Equal(t, "Tank Z", s.Selected())
}

func TestClear(t *testing.T) {
	s := NewSelectorState(tanks)

	assert.False(t, s.Clear(), "clearing an empty selector is not a change")

	s.Select("Tank A")
	assert.True(t, s.Clear())
	assert.False(t, s.HasSelection())
}

func TestNext_CyclesAndWraps(t *testing.T) {
	s := NewSelectorState(tanks)

	for _, want := range []string{"Tank A", "Tank B", "Tank C", "Tank A"} {
		assert.True(t, s.Next())
		assert.Equal(t, want, s.Selected())
	}
}

func TestPrev_CyclesAndWraps(t *testing.T) {
	s := NewSelectorState(tanks)

	for _, want := range []string{"Tank C", "Tank B", "Tank A", "Tank C"} {
		assert.True(t, s.Prev())
		assert.Equal(t, want, s.Selected())
	}
}

// A single option cannot change by cycling once it is selected.
func TestNext_SingleOption(t *testing.T) {
	s := NewSelectorState([]string{"Tank A"})

	assert.True(t, s.Next())
	assert.False(t, s.Next())
	assert.False(t, s.Prev())
}

func TestNextPrev_NoOptions(t *testing.T) {
	s := NewSelectorState(nil)

	assert.False(t, s.Next())
	assert.False(t, s.Prev())
	assert.Empty(t, s.Options())
}

func TestOptions_ReturnsCopy(t *testing.T) {
	s := NewSelectorState(tanks)

	opts := s.Options()
	opts[0] = "mutated"

	assert.Equal(t, "Tank A", s.Options()[0])
}
