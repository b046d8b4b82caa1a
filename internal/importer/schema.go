package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// ImportSchema is the top-level JSON structure for project import.
type ImportSchema struct {
	Project      ProjectImport      `json:"project"`
	Epics        []EpicImport       `json:"epics,omitempty"`
	Sprints      []SprintImport     `json:"sprints,omitempty"`
	Tasks        []TaskImport       `json:"tasks"`
	Dependencies []DependencyImport `json:"dependencies,omitempty"`
}

// ProjectImport defines the project-level fields in the import file.
type ProjectImport struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// EpicImport defines an epic in the import file.
type EpicImport struct {
	Ref         string  `json:"ref"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

// SprintImport defines a sprint in the import file.
type SprintImport struct {
	Ref       string  `json:"ref"`
	Name      string  `json:"name"`
	EpicRef   *string `json:"epic_ref,omitempty"`
	Status    string  `json:"status,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}

// TaskImport defines a task in the import file.
type TaskImport struct {
	Ref         string  `json:"ref"`
	EpicRef     *string `json:"epic_ref,omitempty"`
	SprintRef   *string `json:"sprint_ref,omitempty"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Status      string  `json:"status,omitempty"`
	Priority    string  `json:"priority,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
}

// DependencyImport defines a dependency between two tasks.
type DependencyImport struct {
	PredecessorRef string `json:"predecessor_ref"`
	SuccessorRef   string `json:"successor_ref"`
}

// LoadImportSchema reads and parses a project import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema ImportSchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
