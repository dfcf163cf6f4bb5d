package services

import (
	"context"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
	"github.com/custodia-labs/roialign/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService manages recorded alignment runs.
type HistoryService struct {
	runs driven.RunStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(runs driven.RunStore) *HistoryService {
	return &HistoryService{runs: runs}
}

// List returns recent runs, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.AlignmentRun, error) {
	if s.runs == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	return s.runs.List(ctx, limit)
}

// Get retrieves a run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.AlignmentRun, error) {
	if s.runs == nil {
		return nil, domain.ErrHistoryUnavailable
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.runs.Get(ctx, id)
}

// Delete removes a run.
func (s *HistoryService) Delete(ctx context.Context, id string) error {
	if s.runs == nil {
		return domain.ErrHistoryUnavailable
	}
	if id == "" {
		return domain.ErrInvalidInput
	}
	return s.runs.Delete(ctx, id)
}
