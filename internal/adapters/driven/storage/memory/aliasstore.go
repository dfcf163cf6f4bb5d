package memory

import (
	"context"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
)

// Ensure AliasStore implements the interface.
var _ driven.AliasStore = (*AliasStore)(nil)

// AliasStore serves a fixed alias table.
// It is used when no alias file is configured, and in tests.
type AliasStore struct {
	table *domain.AliasTable
}

// NewAliasStore creates a store serving table. A nil table serves an empty one.
func NewAliasStore(table *domain.AliasTable) *AliasStore {
	if table == nil {
		table = &domain.AliasTable{}
	}
	return &AliasStore{table: table}
}

// Load returns the table.
func (s *AliasStore) Load(ctx context.Context) (*domain.AliasTable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.table, nil
}

// Location returns an empty string; the table has no backing file.
func (s *AliasStore) Location() string {
	return ""
}
