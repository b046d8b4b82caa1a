package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dthomann/planview/internal/domain"
	"github.com/dthomann/planview/internal/repository"
	"github.com/dthomann/planview/internal/service"
	"github.com/dthomann/planview/internal/testutil"
)

func TestEpicService_CreateAllocatesSeqAndDefaults(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	projects := repository.NewSQLiteProjectRepo(database)
	p := testutil.NewTestProject("Website")
	require.NoError(t, projects.Create(ctx, p))

	svc := service.NewEpicService(repository.NewSQLiteEpicRepo(database))

	first := &domain.Epic{ProjectID: p.ID, Title: "Checkout"}
	require.NoError(t, svc.Create(ctx, first))
	assert.Equal(t, 1, first.Seq)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, domain.EpicPlanned, first.Status)
	assert.Equal(t, domain.PriorityMedium, first.Priority)

	second := &domain.Epic{ProjectID: p.ID, Title: "Search"}
	require.NoError(t, svc.Create(ctx, second))
	assert.Equal(t, 2, second.Seq)
}
