package models

// Action identifies a summary action that reads the task table
type Action int

const (
	// ActionReport is the Generate Report action
	ActionReport Action = iota
	// ActionEstimate is the Estimate Time action
	ActionEstimate
)

// String returns the button label of the action
func (a Action) String() string {
	switch a {
	case ActionReport:
		return "Generate Report"
	case ActionEstimate:
		return "Estimate Time"
	default:
		return "Unknown"
	}
}

// EmptyTableError is returned by a summary action invoked while the task
// table has no rows. The message is shown verbatim in the error dialog.
type EmptyTableError struct {
	Action Action
}

func (e *EmptyTableError) Error() string {
	switch e.Action {
	case ActionEstimate:
		return "Please select a tank and tasks first."
	default:
		return "No tasks to generate a report."
	}
}
