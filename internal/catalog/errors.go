package catalog

import "errors"

// Catalog construction errors
var (
	ErrEmptyTankID     = errors.New("tank identifier cannot be empty")
	ErrDuplicateTankID = errors.New("tank identifier already defined")
	ErrEmptyTaskName   = errors.New("task name cannot be empty")
	ErrNegativeHours   = errors.New("task hours must be >= 0")
	ErrNegativeWorkers = errors.New("task workers must be >= 0")
)
