package service

import (
	"context"
	"time"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/repository"
	"github.com/google/uuid"
)

type sprintService struct {
	sprints repository.SprintRepo
}

func NewSprintService(sprints repository.SprintRepo) SprintService {
	return &sprintService{sprints: sprints}
}

func (s *sprintService) Create(ctx context.Context, sp *domain.Sprint) error {
	if sp.ID == "" {
		sp.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	sp.CreatedAt = now
	sp.UpdatedAt = now
	if sp.Status == "" {
		sp.Status = domain.SprintPlanned
	}
	return s.sprints.Create(ctx, sp)
}

func (s *sprintService) GetByID(ctx context.Context, id string) (*domain.Sprint, error) {
	return s.sprints.GetByID(ctx, id)
}

func (s *sprintService) ListByProject(ctx context.Context, projectID string) ([]*domain.Sprint, error) {
	return s.sprints.ListByProject(ctx, projectID)
}

func (s *sprintService) Update(ctx context.Context, sp *domain.Sprint) error {
	sp.UpdatedAt = time.Now().UTC()
	return s.sprints.Update(ctx, sp)
}

func (s *sprintService) Delete(ctx context.Context, id string) error {
	return s.sprints.Delete(ctx, id)
}
