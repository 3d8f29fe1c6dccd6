package catalog

import "github.com/thenoetrevino/manpower/internal/models"

// Default returns the built-in shop catalog
func Default() *Catalog {
	return Must(New(
		Entry{
			Tank: "Tank A",
			Tasks: []models.TaskRecord{
				{Name: "Shell Cutting", Hours: 5, Workers: 4},
				{Name: "Shell Bending", Hours: 3, Workers: 3},
				{Name: "Shell Welding", Hours: 7, Workers: 6},
			},
		},
		Entry{
			Tank: "Tank B",
			Tasks: []models.TaskRecord{
				{Name: "Shell Cutting", Hours: 6, Workers: 5},
				{Name: "Shell Bending", Hours: 4, Workers: 4},
				{Name: "Shell Welding", Hours: 8, Workers: 7},
			},
		},
		Entry{
			Tank: "Tank C",
			Tasks: []models.TaskRecord{
				{Name: "Shell Cutting", Hours: 4, Workers: 3},
				{Name: "Shell Bending", Hours: 2, Workers: 2},
				{Name: "Shell Welding", Hours: 6, Workers: 5},
			},
		},
	))
}
