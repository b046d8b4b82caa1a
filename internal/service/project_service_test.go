package service_test

import (
	"context"
	"testing"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/repository"
	"github.com/dthomann/planview/internal/service"
	"github.com/dthomann/planview/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProjectService(t *testing.T) (service.ProjectService, *repository.SQLiteProjectRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	repo := repository.NewSQLiteProjectRepo(database)
	return service.NewProjectService(repo), repo
}

func TestProjectService_CreateFillsDefaults(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	p := &domain.Project{Key: "WEB", Name: "Website"}
	require.NoError(t, svc.Create(ctx, p))

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, domain.ProjectActive, p.Status)
	assert.False(t, p.CreatedAt.IsZero())
}

func TestProjectService_CreateRejectsBadKey(t *testing.T) {
	svc, _ := newProjectService(t)

	err := svc.Create(context.Background(), &domain.Project{Key: "web-1", Name: "Website"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "uppercase")
}

func TestProjectService_DeleteRequiresArchive(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	p := &domain.Project{Key: "WEB", Name: "Website"}
	require.NoError(t, svc.Create(ctx, p))

	err := svc.Delete(ctx, p.ID, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archived")

	require.NoError(t, svc.Archive(ctx, p.ID))
	require.NoError(t, svc.Delete(ctx, p.ID, false))

	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectService_ForceDeleteSkipsCheck(t *testing.T) {
	svc, _ := newProjectService(t)
	ctx := context.Background()

	p := &domain.Project{Key: "WEB", Name: "Website"}
	require.NoError(t, svc.Create(ctx, p))
	require.NoError(t, svc.Delete(ctx, p.ID, true))
}
