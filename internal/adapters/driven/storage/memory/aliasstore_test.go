package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

func TestAliasStore_Load(t *testing.T) {
	table, err := domain.NewAliasTable("v1", domain.AliasRule{From: "Left-L-Sg", To: "Left-LSg"})
	require.NoError(t, err)
	store := NewAliasStore(table)

	got, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Same(t, table, got)
	assert.Empty(t, store.Location())
}

func TestAliasStore_NilTableIsEmpty(t *testing.T) {
	store := NewAliasStore(nil)

	got, err := store.Load(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 0, got.Len())
}

func TestAliasStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAliasStore(nil).Load(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}
