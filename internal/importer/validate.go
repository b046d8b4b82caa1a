package importer

import (
	"fmt"
	"time"

	"github.com/dthomann/planview/internal/domain"
)

var validSprintStatuses = map[string]bool{"planned": true, "active": true, "closed": true}

// ValidateImportSchema checks the import schema for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	errs = append(errs, validateProject(&schema.Project)...)

	epicRefs := make(map[string]bool)
	errs = append(errs, validateEpics(schema.Epics, epicRefs)...)

	sprintRefs := make(map[string]bool)
	errs = append(errs, validateSprints(schema.Sprints, epicRefs, sprintRefs)...)

	taskRefs := make(map[string]bool)
	errs = append(errs, validateTasks(schema.Tasks, epicRefs, sprintRefs, taskRefs)...)

	errs = append(errs, validateDependencies(schema.Dependencies, taskRefs)...)

	return errs
}

func validateProject(p *ProjectImport) []error {
	var errs []error

	if p.Name == "" {
		errs = append(errs, fmt.Errorf("project.name is required"))
	}
	probe := domain.Project{Key: p.Key}
	if err := probe.ValidateKey(); err != nil {
		errs = append(errs, fmt.Errorf("project.key: %w", err))
	}

	return errs
}

func validateEpics(epics []EpicImport, epicRefs map[string]bool) []error {
	var errs []error

	for i, e := range epics {
		prefix := fmt.Sprintf("epics[%d]", i)

		if e.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if epicRefs[e.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, e.Ref))
		} else {
			epicRefs[e.Ref] = true
		}

		if e.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if e.Status != "" && !domain.ValidEpicStatuses[e.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, e.Status))
		}
		if e.Priority != "" && !domain.ValidTaskPriorities[e.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, e.Priority))
		}

		errs = append(errs, validateOptionalDate(prefix+".start_date", e.StartDate)...)
		errs = append(errs, validateOptionalDate(prefix+".end_date", e.EndDate)...)
		errs = append(errs, validateDateOrder(prefix, e.StartDate, e.EndDate)...)
	}

	return errs
}

func validateSprints(sprints []SprintImport, epicRefs, sprintRefs map[string]bool) []error {
	var errs []error

	for i, s := range sprints {
		prefix := fmt.Sprintf("sprints[%d]", i)

		if s.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if sprintRefs[s.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, s.Ref))
		} else {
			sprintRefs[s.Ref] = true
		}

		if s.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
		if s.Status != "" && !validSprintStatuses[s.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, s.Status))
		}
		if s.EpicRef != nil && *s.EpicRef != "" && !epicRefs[*s.EpicRef] {
			errs = append(errs, fmt.Errorf("%s.epic_ref: ref %q not found in epics", prefix, *s.EpicRef))
		}

		errs = append(errs, validateOptionalDate(prefix+".start_date", s.StartDate)...)
		errs = append(errs, validateOptionalDate(prefix+".end_date", s.EndDate)...)
		errs = append(errs, validateDateOrder(prefix, s.StartDate, s.EndDate)...)
	}

	return errs
}

func validateTasks(tasks []TaskImport, epicRefs, sprintRefs, taskRefs map[string]bool) []error {
	var errs []error

	for i, t := range tasks {
		prefix := fmt.Sprintf("tasks[%d]", i)

		if t.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if taskRefs[t.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, t.Ref))
		} else {
			taskRefs[t.Ref] = true
		}

		if t.Title == "" {
			errs = append(errs, fmt.Errorf("%s.title is required", prefix))
		}
		if t.Status != "" && !domain.ValidTaskStatuses[t.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, t.Status))
		}
		if t.Priority != "" && !domain.ValidTaskPriorities[t.Priority] {
			errs = append(errs, fmt.Errorf("%s.priority: invalid value %q", prefix, t.Priority))
		}
		if t.EpicRef != nil && *t.EpicRef != "" && !epicRefs[*t.EpicRef] {
			errs = append(errs, fmt.Errorf("%s.epic_ref: ref %q not found in epics", prefix, *t.EpicRef))
		}
		if t.SprintRef != nil && *t.SprintRef != "" && !sprintRefs[*t.SprintRef] {
			errs = append(errs, fmt.Errorf("%s.sprint_ref: ref %q not found in sprints", prefix, *t.SprintRef))
		}

		errs = append(errs, validateOptionalDate(prefix+".start_date", t.StartDate)...)
		errs = append(errs, validateOptionalDate(prefix+".end_date", t.EndDate)...)
		errs = append(errs, validateDateOrder(prefix, t.StartDate, t.EndDate)...)
	}

	return errs
}

func validateDependencies(deps []DependencyImport, taskRefs map[string]bool) []error {
	var errs []error

	for i, d := range deps {
		prefix := fmt.Sprintf("dependencies[%d]", i)

		if d.PredecessorRef == "" {
			errs = append(errs, fmt.Errorf("%s.predecessor_ref is required", prefix))
		} else if !taskRefs[d.PredecessorRef] {
			errs = append(errs, fmt.Errorf("%s.predecessor_ref: ref %q not found in tasks", prefix, d.PredecessorRef))
		}

		if d.SuccessorRef == "" {
			errs = append(errs, fmt.Errorf("%s.successor_ref is required", prefix))
		} else if !taskRefs[d.SuccessorRef] {
			errs = append(errs, fmt.Errorf("%s.successor_ref: ref %q not found in tasks", prefix, d.SuccessorRef))
		}

		if d.PredecessorRef != "" && d.SuccessorRef != "" && d.PredecessorRef == d.SuccessorRef {
			errs = append(errs, fmt.Errorf("%s: self-dependency (predecessor_ref == successor_ref == %q)", prefix, d.PredecessorRef))
		}
	}

	if len(deps) > 1 {
		errs = append(errs, detectCycles(deps)...)
	}

	return errs
}

func detectCycles(deps []DependencyImport) []error {
	graph := make(map[string][]string)
	nodes := make(map[string]bool)
	for _, d := range deps {
		if d.PredecessorRef != "" && d.SuccessorRef != "" && d.PredecessorRef != d.SuccessorRef {
			graph[d.PredecessorRef] = append(graph[d.PredecessorRef], d.SuccessorRef)
			nodes[d.PredecessorRef] = true
			nodes[d.SuccessorRef] = true
		}
	}

	const (
		white = 0 // unvisited
		gray  = 1 // in current path
		black = 2 // fully processed
	)

	color := make(map[string]int)
	var errs []error

	var visit func(node string) bool
	visit = func(node string) bool {
		color[node] = gray
		for _, neighbor := range graph[node] {
			if color[neighbor] == gray {
				errs = append(errs, fmt.Errorf("circular dependency detected involving %q and %q", node, neighbor))
				return true
			}
			if color[neighbor] == white {
				if visit(neighbor) {
					return true
				}
			}
		}
		color[node] = black
		return false
	}

	for node := range nodes {
		if color[node] == white {
			visit(node)
		}
	}

	return errs
}

func validateOptionalDate(field string, dateStr *string) []error {
	if dateStr == nil || *dateStr == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", *dateStr); err != nil {
		return []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return nil
}

func validateDateOrder(prefix string, startStr, endStr *string) []error {
	if startStr == nil || *startStr == "" || endStr == nil || *endStr == "" {
		return nil
	}
	start, err := time.Parse("2006-01-02", *startStr)
	if err != nil {
		return nil
	}
	end, err := time.Parse("2006-01-02", *endStr)
	if err != nil {
		return nil
	}
	if end.Before(start) {
		return []error{fmt.Errorf("%s: end_date %q is before start_date %q", prefix, *endStr, *startStr)}
	}
	return nil
}
