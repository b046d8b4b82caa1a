package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/dthomann/planview/internal/domain"
	"github.com/google/uuid"
)

// GeneratedProject holds the domain objects produced from an import schema,
// ready for persistence in a single transaction.
type GeneratedProject struct {
	Project      *domain.Project
	Epics        []*domain.Epic
	Sprints      []*domain.Sprint
	Tasks        []*domain.Task
	Dependencies []domain.Dependency
}

// Convert transforms a validated ImportSchema into domain objects ready for
// persistence. Call ValidateImportSchema first; Convert assumes the schema
// is valid. Tasks are numbered sequentially in file order starting at 1.
func Convert(schema *ImportSchema) (*GeneratedProject, error) {
	now := time.Now().UTC()

	project := &domain.Project{
		ID:          uuid.New().String(),
		Key:         strings.ToUpper(schema.Project.Key),
		Name:        schema.Project.Name,
		Description: schema.Project.Description,
		Status:      domain.ProjectActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	epicIDs := make(map[string]string)   // ref -> UUID
	sprintIDs := make(map[string]string) // ref -> UUID
	taskIDs := make(map[string]string)   // ref -> UUID

	epics := make([]*domain.Epic, 0, len(schema.Epics))
	for i, e := range schema.Epics {
		realID := uuid.New().String()
		epicIDs[e.Ref] = realID

		epics = append(epics, &domain.Epic{
			ID:          realID,
			ProjectID:   project.ID,
			Seq:         i + 1,
			Title:       e.Title,
			Description: e.Description,
			Status:      domain.EpicStatus(domain.CoalesceStr(e.Status, string(domain.EpicPlanned))),
			Priority:    domain.TaskPriority(domain.CoalesceStr(e.Priority, string(domain.PriorityMedium))),
			StartDate:   parseOptionalDate(e.StartDate),
			EndDate:     parseOptionalDate(e.EndDate),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	sprints := make([]*domain.Sprint, 0, len(schema.Sprints))
	for _, s := range schema.Sprints {
		realID := uuid.New().String()
		sprintIDs[s.Ref] = realID

		sprints = append(sprints, &domain.Sprint{
			ID:        realID,
			ProjectID: project.ID,
			EpicID:    resolveRef(epicIDs, s.EpicRef),
			Name:      s.Name,
			Status:    domain.SprintStatus(domain.CoalesceStr(s.Status, string(domain.SprintPlanned))),
			StartDate: parseOptionalDate(s.StartDate),
			EndDate:   parseOptionalDate(s.EndDate),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}

	tasks := make([]*domain.Task, 0, len(schema.Tasks))
	for i, t := range schema.Tasks {
		realID := uuid.New().String()
		taskIDs[t.Ref] = realID

		if t.EpicRef != nil && *t.EpicRef != "" {
			if _, ok := epicIDs[*t.EpicRef]; !ok {
				return nil, fmt.Errorf("epic_ref %q not found for task %q", *t.EpicRef, t.Ref)
			}
		}

		tasks = append(tasks, &domain.Task{
			ID:          realID,
			ProjectID:   project.ID,
			EpicID:      resolveRef(epicIDs, t.EpicRef),
			SprintID:    resolveRef(sprintIDs, t.SprintRef),
			Seq:         i + 1,
			Title:       t.Title,
			Description: t.Description,
			Status:      domain.TaskStatus(domain.CoalesceStr(t.Status, string(domain.TaskTodo))),
			Priority:    domain.TaskPriority(domain.CoalesceStr(t.Priority, string(domain.PriorityMedium))),
			StartDate:   parseOptionalDate(t.StartDate),
			EndDate:     parseOptionalDate(t.EndDate),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	var deps []domain.Dependency
	for _, d := range schema.Dependencies {
		predID, ok := taskIDs[d.PredecessorRef]
		if !ok {
			return nil, fmt.Errorf("predecessor_ref %q not found", d.PredecessorRef)
		}
		succID, ok := taskIDs[d.SuccessorRef]
		if !ok {
			return nil, fmt.Errorf("successor_ref %q not found", d.SuccessorRef)
		}
		deps = append(deps, domain.Dependency{
			PredecessorTaskID: predID,
			SuccessorTaskID:   succID,
		})
	}

	return &GeneratedProject{
		Project:      project,
		Epics:        epics,
		Sprints:      sprints,
		Tasks:        tasks,
		Dependencies: deps,
	}, nil
}

func parseOptionalDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func resolveRef(ids map[string]string, ref *string) *string {
	if ref == nil || *ref == "" {
		return nil
	}
	if id, ok := ids[*ref]; ok {
		return &id
	}
	return nil
}
