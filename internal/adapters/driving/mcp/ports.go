package mcp

import (
	"github.com/custodia-labs/roialign/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Alignment resolves volume lists against index lists.
	Alignment driving.AlignmentService

	// Aliases exposes the curated alias table.
	Aliases driving.AliasService

	// History reads recorded runs.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Aliases and History are optional.
func (p *Ports) Validate() error {
	if p.Alignment == nil {
		return ErrMissingAlignmentService
	}
	return nil
}
