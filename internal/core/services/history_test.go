package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/roialign/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/roialign/internal/core/domain"
)

func TestHistoryService_Unavailable(t *testing.T) {
	service := NewHistoryService(nil)
	ctx := context.Background()

	_, err := service.List(ctx, 10)
	assert.ErrorIs(t, err, domain.ErrHistoryUnavailable)

	_, err = service.Get(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrHistoryUnavailable)

	assert.ErrorIs(t, service.Delete(ctx, "run-1"), domain.ErrHistoryUnavailable)
}

func TestHistoryService_EmptyID(t *testing.T) {
	service := NewHistoryService(memory.NewRunStore())
	ctx := context.Background()

	_, err := service.Get(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorIs(t, service.Delete(ctx, ""), domain.ErrInvalidInput)
}

func TestHistoryService_Lifecycle(t *testing.T) {
	runs := memory.NewRunStore()
	service := NewHistoryService(runs)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, runs.Save(ctx, &domain.AlignmentRun{ID: "a", CreatedAt: base}))
	require.NoError(t, runs.Save(ctx, &domain.AlignmentRun{ID: "b", CreatedAt: base.Add(time.Hour)}))

	list, err := service.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "b", list[0].ID)

	got, err := service.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", got.ID)

	require.NoError(t, service.Delete(ctx, "a"))
	_, err = service.Get(ctx, "a")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
