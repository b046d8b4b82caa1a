package service_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/repository"
	"github.com/dthomann/planview/internal/service"
	"github.com/dthomann/planview/internal/testutil"
	"github.com/dthomann/planview/internal/timeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scheduleFixture struct {
	svc     service.ScheduleService
	project *domain.Project
	tasks   *repository.SQLiteTaskRepo
	epics   *repository.SQLiteEpicRepo
	sprints *repository.SQLiteSprintRepo
	deps    *repository.SQLiteDependencyRepo
}

func newScheduleFixture(t *testing.T) (*scheduleFixture, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	epics := repository.NewSQLiteEpicRepo(database)
	sprints := repository.NewSQLiteSprintRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	deps := repository.NewSQLiteDependencyRepo(database)

	p := testutil.NewTestProject("Website")
	require.NoError(t, projects.Create(context.Background(), p))

	return &scheduleFixture{
		svc:     service.NewScheduleService(projects, epics, sprints, tasks, deps),
		project: p,
		tasks:   tasks,
		epics:   epics,
		sprints: sprints,
		deps:    deps,
	}, database
}

func TestScheduleService_GanttLayout(t *testing.T) {
	f, _ := newScheduleFixture(t)
	ctx := context.Background()

	a := testutil.NewTestTask(f.project.ID, "Design", testutil.WithSeq(1),
		testutil.WithTaskDates(
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	b := testutil.NewTestTask(f.project.ID, "Build", testutil.WithSeq(2),
		testutil.WithTaskDates(
			time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)))
	unplanned := testutil.NewTestTask(f.project.ID, "Later", testutil.WithSeq(3))
	require.NoError(t, f.tasks.Create(ctx, a))
	require.NoError(t, f.tasks.Create(ctx, b))
	require.NoError(t, f.tasks.Create(ctx, unplanned))
	require.NoError(t, f.deps.Create(ctx, &domain.Dependency{PredecessorTaskID: a.ID, SuccessorTaskID: b.ID}))

	view, err := f.svc.GanttLayout(ctx, f.project.ID, service.ScheduleOptions{
		ShowDependencies: true,
		Now:              time.Date(2024, 3, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	require.Len(t, view.Layout.Rows, 3)
	assert.NotNil(t, view.Layout.Rows[0].Bar)
	assert.NotNil(t, view.Layout.Rows[1].Bar)
	assert.Nil(t, view.Layout.Rows[2].Bar, "dateless task renders without a bar")

	require.Len(t, view.Layout.Edges, 1)
	assert.Equal(t, a.ID, view.Layout.Edges[0].FromID)
	assert.Equal(t, b.ID, view.Layout.Edges[0].ToID)

	assert.NotNil(t, view.Layout.TodayX, "now falls inside the padded range")
	assert.NotEmpty(t, view.Layout.Markers)
}

func TestScheduleService_GanttLayoutCriticalHighlight(t *testing.T) {
	f, _ := newScheduleFixture(t)
	ctx := context.Background()

	a := testutil.NewTestTask(f.project.ID, "Design", testutil.WithSeq(1))
	b := testutil.NewTestTask(f.project.ID, "Build", testutil.WithSeq(2))
	require.NoError(t, f.tasks.Create(ctx, a))
	require.NoError(t, f.tasks.Create(ctx, b))

	view, err := f.svc.GanttLayout(ctx, f.project.ID, service.ScheduleOptions{
		CriticalIDs: []string{a.ID},
	})
	require.NoError(t, err)

	require.Len(t, view.Layout.Rows, 2)
	assert.True(t, view.Layout.Rows[0].Critical)
	assert.False(t, view.Layout.Rows[1].Critical)
}

func TestScheduleService_GanttLayoutPinnedWindow(t *testing.T) {
	f, _ := newScheduleFixture(t)
	ctx := context.Background()

	task := testutil.NewTestTask(f.project.ID, "Design", testutil.WithSeq(1),
		testutil.WithTaskDates(
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.tasks.Create(ctx, task))

	window := &timeline.Range{
		Start: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
	}
	view, err := f.svc.GanttLayout(ctx, f.project.ID, service.ScheduleOptions{Window: window})
	require.NoError(t, err)

	assert.Equal(t, window.Start, view.Layout.Range.Start, "pinned window wins over item dates")
	assert.Equal(t, window.End, view.Layout.Range.End)
}

func TestScheduleService_GanttLayoutUnknownProject(t *testing.T) {
	f, _ := newScheduleFixture(t)

	_, err := f.svc.GanttLayout(context.Background(), "missing", service.ScheduleOptions{})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestScheduleService_RoadmapLayoutSprintWindowsWidenRange(t *testing.T) {
	f, _ := newScheduleFixture(t)
	ctx := context.Background()

	epic := testutil.NewTestEpic(f.project.ID, "Checkout",
		testutil.WithEpicDates(
			time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)))
	epic.Seq = 1
	require.NoError(t, f.epics.Create(ctx, epic))

	// Sprint ends well past the last epic; the roadmap range must reach it.
	sprint := testutil.NewTestSprint(f.project.ID, "Hardening",
		testutil.WithSprintDates(
			time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.sprints.Create(ctx, sprint))

	view, err := f.svc.RoadmapLayout(ctx, f.project.ID, service.ScheduleOptions{})
	require.NoError(t, err)

	require.Len(t, view.Layout.Rows, 1)
	assert.False(t, view.Layout.Range.End.Before(time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)),
		"range end %v should cover the sprint window", view.Layout.Range.End)
}

func TestResolveProject_KeyThenID(t *testing.T) {
	f, database := newScheduleFixture(t)
	ctx := context.Background()
	projects := repository.NewSQLiteProjectRepo(database)

	byKey, err := service.ResolveProject(ctx, projects, f.project.Key)
	require.NoError(t, err)
	assert.Equal(t, f.project.ID, byKey.ID)

	byID, err := service.ResolveProject(ctx, projects, f.project.ID)
	require.NoError(t, err)
	assert.Equal(t, f.project.Key, byID.Key)

	_, err = service.ResolveProject(ctx, projects, "nope")
	assert.Error(t, err)
}
