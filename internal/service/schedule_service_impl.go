package service

import (
	"context"
	"fmt"
	"time"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/repository"
	"github.com/dthomann/planview/internal/timeline"
)

type scheduleService struct {
	projects repository.ProjectRepo
	epics    repository.EpicRepo
	sprints  repository.SprintRepo
	tasks    repository.TaskRepo
	deps     repository.DependencyRepo
	observer UseCaseObserver
}

func NewScheduleService(
	projects repository.ProjectRepo,
	epics repository.EpicRepo,
	sprints repository.SprintRepo,
	tasks repository.TaskRepo,
	deps repository.DependencyRepo,
	observers ...UseCaseObserver,
) ScheduleService {
	return &scheduleService{
		projects: projects,
		epics:    epics,
		sprints:  sprints,
		tasks:    tasks,
		deps:     deps,
		observer: useCaseObserverOrNoop(observers),
	}
}

// GanttLayout lays out the project's tasks on a week-marker timeline
// with dependency connectors.
func (s *scheduleService) GanttLayout(ctx context.Context, projectID string, opts ScheduleOptions) (*ScheduleView, error) {
	started := time.Now()

	view, err := s.ganttLayout(ctx, projectID, opts)
	s.observe(ctx, "gantt_layout", started, projectID, view, err)
	return view, err
}

func (s *scheduleService) ganttLayout(ctx context.Context, projectID string, opts ScheduleOptions) (*ScheduleView, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	deps, err := s.deps.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	predecessors := make(map[string][]string, len(deps))
	for _, d := range deps {
		predecessors[d.SuccessorTaskID] = append(predecessors[d.SuccessorTaskID], d.PredecessorTaskID)
	}

	items := make([]timeline.Item, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, timeline.ItemFromTask(t, predecessors[t.ID]))
	}

	cfg := timeline.GanttConfig()
	if opts.MinBarWidth > 0 {
		cfg.MinBarWidth = opts.MinBarWidth
	}
	layout := timeline.Compute(items, timeline.Options{
		Zoom:             opts.Zoom,
		BaseWidth:        opts.BaseWidth,
		Granularity:      timeline.GranularityWeek,
		Now:              opts.Now,
		ShowDependencies: opts.ShowDependencies,
		Critical:         timeline.NewCriticalSet(opts.CriticalIDs...),
		Override:         opts.Window,
		Config:           cfg,
	})

	return &ScheduleView{Project: project, Layout: layout}, nil
}

// RoadmapLayout lays out the project's epics on an adaptive-marker
// timeline. Sprint windows widen the range without occupying rows.
func (s *scheduleService) RoadmapLayout(ctx context.Context, projectID string, opts ScheduleOptions) (*ScheduleView, error) {
	started := time.Now()

	view, err := s.roadmapLayout(ctx, projectID, opts)
	s.observe(ctx, "roadmap_layout", started, projectID, view, err)
	return view, err
}

func (s *scheduleService) roadmapLayout(ctx context.Context, projectID string, opts ScheduleOptions) (*ScheduleView, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	epics, err := s.epics.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	sprints, err := s.sprints.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	items := make([]timeline.Item, 0, len(epics))
	for _, e := range epics {
		items = append(items, timeline.ItemFromEpic(e))
	}

	var extra []time.Time
	for _, sp := range sprints {
		if sp.StartDate != nil {
			extra = append(extra, *sp.StartDate)
		}
		if sp.EndDate != nil {
			extra = append(extra, *sp.EndDate)
		}
	}

	cfg := timeline.RoadmapConfig()
	if opts.MinBarWidth > 0 {
		cfg.MinBarWidth = opts.MinBarWidth
	}
	layout := timeline.Compute(items, timeline.Options{
		Zoom:        opts.Zoom,
		BaseWidth:   opts.BaseWidth,
		Granularity: timeline.GranularityAdaptive,
		Now:         opts.Now,
		Critical:    timeline.NewCriticalSet(opts.CriticalIDs...),
		Override:    opts.Window,
		ExtraDates:  extra,
		Config:      cfg,
	})

	return &ScheduleView{Project: project, Layout: layout}, nil
}

func (s *scheduleService) observe(ctx context.Context, name string, started time.Time, projectID string, view *ScheduleView, err error) {
	fields := map[string]any{"project_id": projectID}
	if view != nil {
		fields["rows"] = len(view.Layout.Rows)
		fields["markers"] = len(view.Layout.Markers)
	}
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		Duration:  time.Since(started),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
		StartedAt: started,
	})
}

// ResolveProject accepts either a project key (WEB) or a full id and
// returns the matching project.
func ResolveProject(ctx context.Context, projects repository.ProjectRepo, keyOrID string) (*domain.Project, error) {
	if p, err := projects.GetByKey(ctx, keyOrID); err == nil {
		return p, nil
	}
	p, err := projects.GetByID(ctx, keyOrID)
	if err != nil {
		return nil, fmt.Errorf("no project with key or id %q: %w", keyOrID, err)
	}
	return p, nil
}
