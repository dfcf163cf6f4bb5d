package services

import (
	"context"
	"fmt"
	"io"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
	"github.com/custodia-labs/roialign/internal/core/ports/driving"
)

// Ensure AliasService implements the interface.
var _ driving.AliasService = (*AliasService)(nil)

// AliasService exposes the curated alias table.
type AliasService struct {
	store  driven.AliasStore
	parser driven.ListParser
}

// NewAliasService creates a new alias service.
func NewAliasService(store driven.AliasStore, parser driven.ListParser) *AliasService {
	return &AliasService{
		store:  store,
		parser: parser,
	}
}

// Table returns the configured alias table.
func (s *AliasService) Table(ctx context.Context) (*domain.AliasTable, error) {
	table, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading alias table: %w", err)
	}
	return table, nil
}

// Check reports, per rule, whether its target exists in the given index list.
// Rules whose target is absent are ignored during resolution.
func (s *AliasService) Check(ctx context.Context, index io.Reader) ([]driving.AliasCheck, error) {
	table, err := s.Table(ctx)
	if err != nil {
		return nil, err
	}

	mapping, err := s.parser.ParseIndex(index)
	if err != nil {
		return nil, fmt.Errorf("loading index list: %w", err)
	}

	rules := table.Rules()
	checks := make([]driving.AliasCheck, 0, len(rules))
	for _, rule := range rules {
		id, ok := mapping.Lookup(rule.To)
		checks = append(checks, driving.AliasCheck{
			Rule:     rule,
			TargetID: id,
			Usable:   ok,
		})
	}
	return checks, nil
}

// Location describes where the table is loaded from.
func (s *AliasService) Location() string {
	return s.store.Location()
}
