package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/repository"
	"github.com/dthomann/planview/internal/service"
	"github.com/dthomann/planview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskFixture struct {
	svc     service.TaskService
	project *domain.Project
}

func newTaskFixture(t *testing.T) (*taskFixture, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	deps := repository.NewSQLiteDependencyRepo(database)

	p := testutil.NewTestProject("Website")
	require.NoError(t, projects.Create(context.Background(), p))

	return &taskFixture{
		svc:     service.NewTaskService(tasks, deps),
		project: p,
	}, database
}

func (f *taskFixture) mustCreate(t *testing.T, title string) *domain.Task {
	t.Helper()
	task := &domain.Task{ProjectID: f.project.ID, Title: title}
	require.NoError(t, f.svc.Create(context.Background(), task))
	return task
}

func TestTaskService_CreateAllocatesSequentialNumbers(t *testing.T) {
	f, _ := newTaskFixture(t)

	first := f.mustCreate(t, "First")
	second := f.mustCreate(t, "Second")

	assert.Equal(t, 1, first.Seq)
	assert.Equal(t, 2, second.Seq)
	assert.Equal(t, domain.TaskTodo, first.Status)
	assert.Equal(t, domain.PriorityMedium, first.Priority)
}

func TestTaskService_AddDependency(t *testing.T) {
	f, _ := newTaskFixture(t)
	ctx := context.Background()

	a := f.mustCreate(t, "a")
	b := f.mustCreate(t, "b")

	require.NoError(t, f.svc.AddDependency(ctx, a.ID, b.ID))

	deps, err := f.svc.ListDependencies(ctx, f.project.ID)
	require.NoError(t, err)
	require.Len(t, deps, 1)
	assert.Equal(t, a.ID, deps[0].PredecessorTaskID)
}

func TestTaskService_AddDependencyRejectsSelf(t *testing.T) {
	f, _ := newTaskFixture(t)

	a := f.mustCreate(t, "a")
	err := f.svc.AddDependency(context.Background(), a.ID, a.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "itself")
}

func TestTaskService_AddDependencyRejectsCycle(t *testing.T) {
	f, _ := newTaskFixture(t)
	ctx := context.Background()

	a := f.mustCreate(t, "a")
	b := f.mustCreate(t, "b")
	c := f.mustCreate(t, "c")

	require.NoError(t, f.svc.AddDependency(ctx, a.ID, b.ID))
	require.NoError(t, f.svc.AddDependency(ctx, b.ID, c.ID))

	err := f.svc.AddDependency(ctx, c.ID, a.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle")
}

func TestTaskService_AddDependencyRejectsCrossProject(t *testing.T) {
	f, database := newTaskFixture(t)
	ctx := context.Background()

	projects := repository.NewSQLiteProjectRepo(database)
	other := testutil.NewTestProject("Other")
	require.NoError(t, projects.Create(ctx, other))

	a := f.mustCreate(t, "a")
	foreign := &domain.Task{ProjectID: other.ID, Title: "elsewhere"}
	require.NoError(t, f.svc.Create(ctx, foreign))

	err := f.svc.AddDependency(ctx, a.ID, foreign.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "one project")
}

func TestTaskService_RemoveDependency(t *testing.T) {
	f, _ := newTaskFixture(t)
	ctx := context.Background()

	a := f.mustCreate(t, "a")
	b := f.mustCreate(t, "b")
	require.NoError(t, f.svc.AddDependency(ctx, a.ID, b.ID))
	require.NoError(t, f.svc.RemoveDependency(ctx, a.ID, b.ID))

	deps, err := f.svc.ListDependencies(ctx, f.project.ID)
	require.NoError(t, err)
	assert.Empty(t, deps)
}
