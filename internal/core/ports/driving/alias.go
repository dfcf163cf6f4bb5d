package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

// AliasCheck reports whether an alias rule is usable against an index.
type AliasCheck struct {
	Rule domain.AliasRule

	// TargetID is the index id of Rule.To, empty when the target is absent.
	TargetID string

	// Usable is true when Rule.To exists in the index.
	Usable bool
}

// AliasService exposes the curated alias table.
type AliasService interface {
	// Table returns the configured alias table.
	Table(ctx context.Context) (*domain.AliasTable, error)

	// Check reports, per rule, whether its target exists in the given index list.
	Check(ctx context.Context, index io.Reader) ([]AliasCheck, error)

	// Location describes where the table is loaded from.
	Location() string
}
