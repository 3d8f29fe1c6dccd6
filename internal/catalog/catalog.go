// Package catalog holds the fixed mapping from tank identifiers to the
// ordered list of tasks each tank requires.
package catalog

import (
	"fmt"
	"slices"

	"github.com/thenoetrevino/manpower/internal/models"
)

// Entry is one tank and its tasks, used to build a Catalog
type Entry struct {
	Tank  string
	Tasks []models.TaskRecord
}

// Catalog is a read-only, ordered mapping of tank identifier to tasks.
// It is validated once at construction and never mutated afterwards.
type Catalog struct {
	tanks []string
	tasks map[string][]models.TaskRecord
}

// New validates the entries and builds a Catalog.
// Tanks keep the order in which they are given.
func New(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		tanks: make([]string, 0, len(entries)),
		tasks: make(map[string][]models.TaskRecord, len(entries)),
	}

	for _, e := range entries {
		if e.Tank == "" {
			return nil, ErrEmptyTankID
		}
		if _, exists := c.tasks[e.Tank]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTankID, e.Tank)
		}
		for i, task := range e.Tasks {
			if err := validateTask(task); err != nil {
				return nil, fmt.Errorf("tank %q task %d: %w", e.Tank, i, err)
			}
		}

		c.tanks = append(c.tanks, e.Tank)
		c.tasks[e.Tank] = slices.Clone(e.Tasks)
	}

	return c, nil
}

// Must is like New but panics on invalid entries.
// Use only for data compiled into the binary.
func Must(c *Catalog, err error) *Catalog {
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

func validateTask(t models.TaskRecord) error {
	if t.Name == "" {
		return ErrEmptyTaskName
	}
	if t.Hours < 0 {
		return ErrNegativeHours
	}
	if t.Workers < 0 {
		return ErrNegativeWorkers
	}
	return nil
}

// Get returns a copy of the tasks for the given tank in catalog order.
// The second return value is false when the tank is unknown.
func (c *Catalog) Get(tank string) ([]models.TaskRecord, bool) {
	tasks, ok := c.tasks[tank]
	if !ok {
		return nil, false
	}
	return slices.Clone(tasks), true
}

// Contains reports whether the tank is a known key
func (c *Catalog) Contains(tank string) bool {
	_, ok := c.tasks[tank]
	return ok
}

// Tanks returns the tank identifiers in catalog order
func (c *Catalog) Tanks() []string {
	return slices.Clone(c.tanks)
}

// Len returns the number of tanks
func (c *Catalog) Len() int {
	return len(c.tanks)
}
