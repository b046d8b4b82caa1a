package service

import (
	"context"
	"time"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/importer"
	"github.com/dthomann/planview/internal/timeline"
)

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	GetByKey(ctx context.Context, key string) (*domain.Project, error)
	List(ctx context.Context, includeArchived bool) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Archive(ctx context.Context, id string) error
	Delete(ctx context.Context, id string, force bool) error
}

type EpicService interface {
	Create(ctx context.Context, e *domain.Epic) error
	GetByID(ctx context.Context, id string) (*domain.Epic, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Epic, error)
	Update(ctx context.Context, e *domain.Epic) error
	Delete(ctx context.Context, id string) error
}

type SprintService interface {
	Create(ctx context.Context, s *domain.Sprint) error
	GetByID(ctx context.Context, id string) (*domain.Sprint, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Sprint, error)
	Update(ctx context.Context, s *domain.Sprint) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	GetBySeq(ctx context.Context, projectID string, seq int) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	ListByEpic(ctx context.Context, epicID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	AddDependency(ctx context.Context, predecessorID, successorID string) error
	RemoveDependency(ctx context.Context, predecessorID, successorID string) error
	ListDependencies(ctx context.Context, projectID string) ([]domain.Dependency, error)
}

// ScheduleOptions are the view knobs a renderer passes through to the
// layout engine. Zero values fall back to the engine defaults.
type ScheduleOptions struct {
	Zoom             float64
	BaseWidth        float64
	MinBarWidth      float64 // terminal renderers use 1 cell, SVG keeps the default
	Window           *timeline.Range
	ShowDependencies bool
	CriticalIDs      []string
	Now              time.Time
}

// ScheduleView pairs a project with a computed layout.
type ScheduleView struct {
	Project *domain.Project
	Layout  timeline.Layout
}

type ScheduleService interface {
	GanttLayout(ctx context.Context, projectID string, opts ScheduleOptions) (*ScheduleView, error)
	RoadmapLayout(ctx context.Context, projectID string, opts ScheduleOptions) (*ScheduleView, error)
}

// ImportResult holds the outcome of a project import.
type ImportResult struct {
	Project         *domain.Project
	EpicCount       int
	SprintCount     int
	TaskCount       int
	DependencyCount int
}

type ImportService interface {
	ImportProject(ctx context.Context, filePath string) (*ImportResult, error)
	ImportProjectFromSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}
