package driven

import (
	"context"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

// RunStore persists alignment runs.
type RunStore interface {
	// Save stores a run with all of its outcomes.
	Save(ctx context.Context, run *domain.AlignmentRun) error

	// Get retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.AlignmentRun, error)

	// List returns runs newest first.
	// A limit of zero or less returns all runs.
	List(ctx context.Context, limit int) ([]domain.AlignmentRun, error)

	// Delete removes a run and its outcomes.
	// Returns domain.ErrNotFound if the run does not exist.
	Delete(ctx context.Context, id string) error
}
