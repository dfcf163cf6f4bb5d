package driving

import (
	"context"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

// HistoryService manages recorded alignment runs.
type HistoryService interface {
	// List returns recent runs, newest first.
	List(ctx context.Context, limit int) ([]domain.AlignmentRun, error)

	// Get retrieves a run by ID.
	Get(ctx context.Context, id string) (*domain.AlignmentRun, error)

	// Delete removes a run.
	Delete(ctx context.Context, id string) error
}
