package driven

import (
	"context"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

// AliasStore loads the curated alias table.
type AliasStore interface {
	// Load reads the current alias table.
	// A store with nothing configured returns an empty table, not an error.
	Load(ctx context.Context) (*domain.AliasTable, error)

	// Location describes where the table comes from (a file path, or "" for none).
	Location() string
}
