package state

import (
	"testing"
)

// TestFocusNext_Wraps ensures tab cycles selector -> report -> estimate -> selector.
func TestFocusNext_Wraps(t *testing.T) {
	s := NewUIState()

	want := []Focus{FocusReportButton, FocusEstimateButton, FocusSelector}
	for i, w := range want {
		s.FocusNext()
		if s.Focus() != w {
			t.Errorf("step %d: Focus() = %v, want %v", i, s.Focus(), w)
		}
	}
}

// TestFocusPrev_Wraps ensures shift+tab from the selector lands on the last button.
func TestFocusPrev_Wraps(t *testing.T) {
	s := NewUIState()

	s.FocusPrev()
	if s.Focus() != FocusEstimateButton {
		t.Errorf("FocusPrev() from selector = %v, want FocusEstimateButton", s.Focus())
	}
}

// TestSetFocus_OutOfRange ensures invalid focus values are ignored.
// Edge case: Corrupted focus index.
func TestSetFocus_OutOfRange(t *testing.T) {
	s := NewUIState()
	s.SetFocus(FocusReportButton)

	s.SetFocus(Focus(99))
	s.SetFocus(Focus(-1))

	if s.Focus() != FocusReportButton {
		t.Errorf("Focus() after invalid SetFocus = %v, want FocusReportButton", s.Focus())
	}
}

func TestNewUIState_Defaults(t *testing.T) {
	s := NewUIState()

	if s.Mode() != NormalMode {
		t.Errorf("Mode() = %v, want NormalMode", s.Mode())
	}
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", s.Width(), s.Height())
	}
}
