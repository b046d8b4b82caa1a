package repository_test

import (
	"context"
	"testing"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/repository"
	"github.com/dthomann/planview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Website", testutil.WithKey("WEB"))
	p.Description = "Marketing site rebuild"
	require.NoError(t, projects.Create(ctx, p))

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "WEB", got.Key)
	assert.Equal(t, "Website", got.Name)
	assert.Equal(t, "Marketing site rebuild", got.Description)
	assert.Equal(t, domain.ProjectActive, got.Status)
	assert.Nil(t, got.ArchivedAt)
}

func TestProjectRepo_GetByKey(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Platform", testutil.WithKey("PLAT"))
	require.NoError(t, projects.Create(ctx, p))

	got, err := projects.GetByKey(ctx, "PLAT")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)

	_, err = projects.GetByKey(ctx, "NOPE")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectRepo_DuplicateKeyRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	require.NoError(t, projects.Create(ctx, testutil.NewTestProject("First", testutil.WithKey("WEB"))))
	err := projects.Create(ctx, testutil.NewTestProject("Second", testutil.WithKey("WEB")))
	assert.Error(t, err)
}

func TestProjectRepo_ListExcludesArchivedByDefault(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	active := testutil.NewTestProject("Active")
	archived := testutil.NewTestProject("Retired")
	require.NoError(t, projects.Create(ctx, active))
	require.NoError(t, projects.Create(ctx, archived))
	require.NoError(t, projects.Archive(ctx, archived.ID))

	list, err := projects.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, active.ID, list[0].ID)

	all, err := projects.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestProjectRepo_ArchiveSetsTimestampAndStatus(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Website")
	require.NoError(t, projects.Create(ctx, p))
	require.NoError(t, projects.Archive(ctx, p.ID))

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectArchived, got.Status)
	assert.NotNil(t, got.ArchivedAt)
}

func TestProjectRepo_Update(t *testing.T) {
	database := testutil.NewTestDB(t)
	projects := repository.NewSQLiteProjectRepo(database)
	ctx := context.Background()

	p := testutil.NewTestProject("Website")
	require.NoError(t, projects.Create(ctx, p))

	p.Name = "Website v2"
	p.Description = "Second iteration"
	require.NoError(t, projects.Update(ctx, p))

	got, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Website v2", got.Name)
	assert.Equal(t, "Second iteration", got.Description)
}
