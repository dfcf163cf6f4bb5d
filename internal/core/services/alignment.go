package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
	"github.com/custodia-labs/roialign/internal/core/ports/driving"
	"github.com/custodia-labs/roialign/internal/logger"
)

// Ensure AlignmentService implements the interface.
var _ driving.AlignmentService = (*AlignmentService)(nil)

// AlignmentService loads both lists and the alias table, then resolves.
type AlignmentService struct {
	parser   driven.ListParser
	aliases  driven.AliasStore
	settings driving.SettingsService
	runs     driven.RunStore
	now      func() time.Time
}

// NewAlignmentService creates a new alignment service.
// settings and runs may be nil; defaults apply and recording is refused.
func NewAlignmentService(
	parser driven.ListParser,
	aliases driven.AliasStore,
	settings driving.SettingsService,
	runs driven.RunStore,
) *AlignmentService {
	return &AlignmentService{
		parser:   parser,
		aliases:  aliases,
		settings: settings,
		runs:     runs,
		now:      time.Now,
	}
}

// Align resolves every record of req.Volumes against req.Index.
// Both lists and the alias table are fully loaded before resolution starts,
// so a read failure aborts without producing any outcome.
func (s *AlignmentService) Align(ctx context.Context, req driving.AlignRequest) (*domain.AlignmentRun, error) {
	if req.Volumes == nil || req.Index == nil {
		return nil, fmt.Errorf("both volume and index lists are required: %w", domain.ErrInvalidInput)
	}
	if req.Record && s.runs == nil {
		return nil, fmt.Errorf("recording run: %w", domain.ErrHistoryUnavailable)
	}

	logger.Section("Alignment")

	mode, err := s.volumeMode(req.VolumeMode)
	if err != nil {
		return nil, err
	}
	logger.Debug("Volume mode: %s", mode)

	records, err := s.parser.ParseVolumes(req.Volumes, mode)
	if err != nil {
		return nil, fmt.Errorf("loading volume list: %w", err)
	}
	logger.Debug("Loaded %d volume records", len(records))

	index, err := s.parser.ParseIndex(req.Index)
	if err != nil {
		return nil, fmt.Errorf("loading index list: %w", err)
	}
	logger.Debug("Loaded %d index entries", len(index))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := s.loadAliases(ctx, req.Aliases)
	if err != nil {
		return nil, err
	}

	outcomes := Resolve(records, index, table)

	run := &domain.AlignmentRun{
		CreatedAt:    s.now().UTC(),
		AliasVersion: table.Version,
		Outcomes:     outcomes,
	}

	summary := run.Summary()
	logger.Info("Resolved %d of %d records (%d exact, %d alias)",
		summary.Resolved(), summary.Total,
		summary.Counts[domain.StatusExactMatch], summary.Counts[domain.StatusMatchedAlias])

	if req.Record {
		if err := s.runs.Save(ctx, run); err != nil {
			return nil, fmt.Errorf("recording run: %w", err)
		}
		logger.Debug("Recorded run %s", run.ID)
	}

	return run, nil
}

func (s *AlignmentService) volumeMode(override domain.VolumeMode) (domain.VolumeMode, error) {
	if override != "" {
		if !override.IsValid() {
			return "", fmt.Errorf("volume mode %q: %w", override, domain.ErrInvalidInput)
		}
		return override, nil
	}
	if s.settings == nil {
		return domain.DefaultAppSettings().Volume.Mode, nil
	}
	settings, err := s.settings.Get()
	if err != nil {
		return "", fmt.Errorf("reading settings: %w", err)
	}
	return settings.Volume.Mode, nil
}

func (s *AlignmentService) loadAliases(ctx context.Context, override *domain.AliasTable) (*domain.AliasTable, error) {
	if override != nil {
		logger.Debug("Alias table %q: %d rules from request", override.Version, override.Len())
		return override, nil
	}
	if s.aliases == nil {
		logger.Debug("No alias store configured")
		return domain.NewAliasTable("")
	}
	table, err := s.aliases.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading alias table: %w", err)
	}
	if table == nil {
		return domain.NewAliasTable("")
	}
	logger.Debug("Alias table %q: %d rules from %s", table.Version, table.Len(), s.aliases.Location())
	return table, nil
}
