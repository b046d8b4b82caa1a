package service

import (
	"context"
	"time"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/repository"
	"github.com/google/uuid"
)

type epicService struct {
	epics repository.EpicRepo
}

func NewEpicService(epics repository.EpicRepo) EpicService {
	return &epicService{epics: epics}
}

func (s *epicService) Create(ctx context.Context, e *domain.Epic) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Status == "" {
		e.Status = domain.EpicPlanned
	}
	if e.Priority == "" {
		e.Priority = domain.PriorityMedium
	}
	if e.Seq == 0 {
		existing, err := s.epics.ListByProject(ctx, e.ProjectID)
		if err != nil {
			return err
		}
		maxSeq := 0
		for _, other := range existing {
			if other.Seq > maxSeq {
				maxSeq = other.Seq
			}
		}
		e.Seq = maxSeq + 1
	}
	return s.epics.Create(ctx, e)
}

func (s *epicService) GetByID(ctx context.Context, id string) (*domain.Epic, error) {
	return s.epics.GetByID(ctx, id)
}

func (s *epicService) ListByProject(ctx context.Context, projectID string) ([]*domain.Epic, error) {
	return s.epics.ListByProject(ctx, projectID)
}

func (s *epicService) Update(ctx context.Context, e *domain.Epic) error {
	e.UpdatedAt = time.Now().UTC()
	return s.epics.Update(ctx, e)
}

func (s *epicService) Delete(ctx context.Context, id string) error {
	return s.epics.Delete(ctx, id)
}
