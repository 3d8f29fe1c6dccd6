package huhforms

import "charm.land/huh/v2"

// TankPickerKey is the field key of the tank select
const TankPickerKey = "tank"

// CreateTankPickerForm creates a single-select form over the tank identifiers.
// The chosen tank is written to value when the form completes.
func CreateTankPickerForm(tanks []string, value *string) *huh.Form {
	field := huh.NewSelect[string]().
		Key(TankPickerKey).
		Title("Select Tank").
		Description("enter to choose · esc to cancel").
		Options(huh.NewOptions(tanks...)...).
		Value(value)

	return huh.NewForm(huh.NewGroup(field)).
		WithShowHelp(false)
}
