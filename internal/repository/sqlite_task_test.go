package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/repository"
	"github.com/dthomann/planview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProject(t *testing.T, repo *repository.SQLiteProjectRepo) *domain.Project {
	t.Helper()
	p := testutil.NewTestProject("Website")
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestTaskRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask(p.ID, "Design schema",
		testutil.WithSeq(1),
		testutil.WithTaskDates(start, end),
		testutil.WithTaskPriority(domain.PriorityHigh),
	)
	require.NoError(t, tasks.Create(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Design schema", got.Title)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
	require.NotNil(t, got.StartDate)
	require.NotNil(t, got.EndDate)
	assert.Equal(t, start, *got.StartDate)
	assert.Equal(t, end, *got.EndDate)
}

func TestTaskRepo_OptionalDatesRoundTrip(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask(p.ID, "Open ended",
		testutil.WithSeq(1),
		testutil.WithTaskStart(start),
	)
	require.NoError(t, tasks.Create(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, got.StartDate)
	assert.Nil(t, got.EndDate)
	assert.False(t, got.HasSchedule())
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)

	_, err := tasks.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepo_GetBySeq(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)
	task := testutil.NewTestTask(p.ID, "Numbered", testutil.WithSeq(7))
	require.NoError(t, tasks.Create(ctx, task))

	got, err := tasks.GetBySeq(ctx, p.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, task.ID, got.ID)

	_, err = tasks.GetBySeq(ctx, p.ID, 99)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestTaskRepo_NextSeq(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)

	seq, err := tasks.NextSeq(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, seq)

	require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(p.ID, "First", testutil.WithSeq(seq))))

	seq, err = tasks.NextSeq(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, seq)
}

func TestTaskRepo_ListByProjectOrderedBySeq(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)
	for i, title := range []string{"c", "a", "b"} {
		require.NoError(t, tasks.Create(ctx, testutil.NewTestTask(p.ID, title, testutil.WithSeq(3-i))))
	}

	list, err := tasks.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "b", list[0].Title)
	assert.Equal(t, "a", list[1].Title)
	assert.Equal(t, "c", list[2].Title)
}

func TestTaskRepo_UpdateClearsDates(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask(p.ID, "Scheduled", testutil.WithSeq(1), testutil.WithTaskDates(start, end))
	require.NoError(t, tasks.Create(ctx, task))

	task.StartDate = nil
	task.EndDate = nil
	task.Status = domain.TaskInProgress
	require.NoError(t, tasks.Update(ctx, task))

	got, err := tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.StartDate)
	assert.Nil(t, got.EndDate)
	assert.Equal(t, domain.TaskInProgress, got.Status)
}

func TestTaskRepo_DeleteCascadesFromProject(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	ctx := context.Background()

	p := seedProject(t, projects)
	task := testutil.NewTestTask(p.ID, "Doomed", testutil.WithSeq(1))
	require.NoError(t, tasks.Create(ctx, task))

	require.NoError(t, projects.Delete(ctx, p.ID))

	_, err := tasks.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
