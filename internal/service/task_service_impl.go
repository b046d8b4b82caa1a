package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks repository.TaskRepo
	deps  repository.DependencyRepo
}

func NewTaskService(tasks repository.TaskRepo, deps repository.DependencyRepo) TaskService {
	return &taskService{tasks: tasks, deps: deps}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Seq == 0 {
		seq, err := s.tasks.NextSeq(ctx, t.ProjectID)
		if err != nil {
			return fmt.Errorf("allocating task number: %w", err)
		}
		t.Seq = seq
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) GetBySeq(ctx context.Context, projectID string, seq int) (*domain.Task, error) {
	return s.tasks.GetBySeq(ctx, projectID, seq)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) ListByEpic(ctx context.Context, epicID string) ([]*domain.Task, error) {
	return s.tasks.ListByEpic(ctx, epicID)
}

func (s *taskService) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = time.Now().UTC()
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) AddDependency(ctx context.Context, predecessorID, successorID string) error {
	if predecessorID == successorID {
		return fmt.Errorf("a task cannot depend on itself")
	}
	pred, err := s.tasks.GetByID(ctx, predecessorID)
	if err != nil {
		return fmt.Errorf("predecessor: %w", err)
	}
	succ, err := s.tasks.GetByID(ctx, successorID)
	if err != nil {
		return fmt.Errorf("successor: %w", err)
	}
	if pred.ProjectID != succ.ProjectID {
		return fmt.Errorf("dependencies must stay within one project")
	}

	cycle, err := s.wouldCreateCycle(ctx, pred.ProjectID, predecessorID, successorID)
	if err != nil {
		return err
	}
	if cycle {
		return fmt.Errorf("dependency #%d -> #%d would create a cycle", pred.Seq, succ.Seq)
	}

	return s.deps.Create(ctx, &domain.Dependency{
		PredecessorTaskID: predecessorID,
		SuccessorTaskID:   successorID,
	})
}

// wouldCreateCycle walks successor edges from the candidate successor
// looking for a path back to the predecessor.
func (s *taskService) wouldCreateCycle(ctx context.Context, projectID, predecessorID, successorID string) (bool, error) {
	existing, err := s.deps.ListByProject(ctx, projectID)
	if err != nil {
		return false, fmt.Errorf("loading dependencies: %w", err)
	}
	next := make(map[string][]string, len(existing))
	for _, d := range existing {
		next[d.PredecessorTaskID] = append(next[d.PredecessorTaskID], d.SuccessorTaskID)
	}

	seen := map[string]bool{successorID: true}
	frontier := []string{successorID}
	for len(frontier) > 0 {
		id := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		if id == predecessorID {
			return true, nil
		}
		for _, n := range next[id] {
			if !seen[n] {
				seen[n] = true
				frontier = append(frontier, n)
			}
		}
	}
	return false, nil
}

func (s *taskService) RemoveDependency(ctx context.Context, predecessorID, successorID string) error {
	return s.deps.Delete(ctx, predecessorID, successorID)
}

func (s *taskService) ListDependencies(ctx context.Context, projectID string) ([]domain.Dependency, error) {
	return s.deps.ListByProject(ctx, projectID)
}
