package models

// TaskRecord is a single unit of labor attached to a tank in the catalog
type TaskRecord struct {
	Name    string
	Hours   int // estimated duration in hours
	Workers int // number of workers required
}

// DisplayRow is a task record as currently shown in the Assigned Tasks table.
// Rows are copies; editing one never touches the catalog.
type DisplayRow struct {
	Name    string
	Hours   int
	Workers int
}

// NewDisplayRow materializes a catalog record for display
func NewDisplayRow(r TaskRecord) DisplayRow {
	return DisplayRow{
		Name:    r.Name,
		Hours:   r.Hours,
		Workers: r.Workers,
	}
}
