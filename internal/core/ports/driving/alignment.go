package driving

import (
	"context"
	"io"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

// AlignRequest carries the two input lists for one alignment.
type AlignRequest struct {
	// Volumes is list A: "<name> <volume>" per line.
	Volumes io.Reader

	// Index is list B: "<id> <name>" per line.
	Index io.Reader

	// VolumeMode overrides the configured volume mode when set.
	VolumeMode domain.VolumeMode

	// Aliases replaces the configured alias table for this request when set.
	Aliases *domain.AliasTable

	// Record stores the run in history when a run store is configured.
	Record bool
}

// AlignmentService resolves list A against list B.
type AlignmentService interface {
	// Align loads both lists and the alias table, then resolves every volume record.
	// The returned run's outcomes are in list A order.
	Align(ctx context.Context, req AlignRequest) (*domain.AlignmentRun, error)
}
