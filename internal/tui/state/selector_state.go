package state

import "slices"

// SelectorState is the single-choice tank selector.
// An empty selection means no tank is selected.
type SelectorState struct {
	options  []string
	selected string
}

// NewSelectorState creates a selector over the given options with nothing selected.
func NewSelectorState(options []string) *SelectorState {
	return &SelectorState{options: slices.Clone(options)}
}

// Options returns the selectable tank identifiers in order.
func (s *SelectorState) Options() []string {
	return slices.Clone(s.options)
}

// Selected returns the current selection, or "" when nothing is selected.
func (s *SelectorState) Selected() string {
	return s.selected
}

// HasSelection reports whether a value is selected.
func (s *SelectorState) HasSelection() bool {
	return s.selected != ""
}

// Select sets the current value and reports whether it changed.
// Values outside the option list are kept as-is.
func (s *SelectorState) Select(value string) bool {
	if value == s.selected {
		return false
	}
	s.selected = value
	return true
}

// Clear removes the selection and reports whether it changed.
func (s *SelectorState) Clear() bool {
	return s.Select("")
}

// Next advances to the following option, wrapping at the end.
// From no selection it picks the first option.
func (s *SelectorState) Next() bool {
	if len(s.options) == 0 {
		return false
	}
	i := slices.Index(s.options, s.selected)
	return s.Select(s.options[(i+1)%len(s.options)])
}

// Prev moves to the preceding option, wrapping at the start.
// From no selection it picks the last option.
func (s *SelectorState) Prev() bool {
	if len(s.options) == 0 {
		return false
	}
	i := slices.Index(s.options, s.selected)
	if i <= 0 {
		return s.Select(s.options[len(s.options)-1])
	}
	return s.Select(s.options[i-1])
}
