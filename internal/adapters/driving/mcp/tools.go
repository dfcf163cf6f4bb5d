package mcp

import (
	"context"
	"errors"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driving"
)

// AlignInput is the input schema for the align_rois tool.
type AlignInput struct {
	Volumes    string `json:"volumes" jsonschema:"volume list, one 'name volume' pair per line"`
	Index      string `json:"index" jsonschema:"index list, one 'id name' pair per line"`
	VolumeMode string `json:"volume_mode,omitempty" jsonschema:"strict (default) or passthrough for non-numeric volumes"`
	Record     bool   `json:"record,omitempty" jsonschema:"record the run in history"`
}

// AlignOutput is the output schema for the align_rois tool.
type AlignOutput struct {
	RunID        string          `json:"run_id,omitempty"`
	AliasVersion string          `json:"alias_version,omitempty"`
	Outcomes     []OutcomeOutput `json:"outcomes"`
	Summary      SummaryOutput   `json:"summary"`
}

// OutcomeOutput represents a single resolved record.
type OutcomeOutput struct {
	Name    string `json:"name"`
	Volume  string `json:"volume"`
	IndexID string `json:"index_id,omitempty"`
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Note    string `json:"note"`
}

// SummaryOutput counts outcomes per status.
type SummaryOutput struct {
	Total    int            `json:"total"`
	Resolved int            `json:"resolved"`
	Counts   map[string]int `json:"counts"`
}

// ListAliasesInput is the input schema for the list_aliases tool.
type ListAliasesInput struct{}

// ListAliasesOutput is the output schema for the list_aliases tool.
type ListAliasesOutput struct {
	Version  string            `json:"version,omitempty"`
	Location string            `json:"location,omitempty"`
	Rules    []AliasRuleOutput `json:"rules"`
}

// AliasRuleOutput is one alias rule.
type AliasRuleOutput struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "align_rois",
		Description: "Match ROI names from a volume list to ids in an index list",
	}, s.handleAlign)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_aliases",
		Description: "List the curated alias rules used during alignment",
	}, s.handleListAliases)
}

// handleAlign handles the align_rois tool invocation.
func (s *Server) handleAlign(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AlignInput,
) (*mcp.CallToolResult, AlignOutput, error) {
	if strings.TrimSpace(input.Volumes) == "" {
		return nil, AlignOutput{}, errors.New("volumes is required")
	}

	run, err := s.ports.Alignment.Align(ctx, driving.AlignRequest{
		Volumes:    strings.NewReader(input.Volumes),
		Index:      strings.NewReader(input.Index),
		VolumeMode: domain.VolumeMode(input.VolumeMode),
		Record:     input.Record,
	})
	if err != nil {
		return nil, AlignOutput{}, err
	}

	return nil, toAlignOutput(run), nil
}

// handleListAliases handles the list_aliases tool invocation.
func (s *Server) handleListAliases(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListAliasesInput,
) (*mcp.CallToolResult, ListAliasesOutput, error) {
	output := ListAliasesOutput{Rules: []AliasRuleOutput{}}
	if s.ports.Aliases == nil {
		return nil, output, nil
	}

	table, err := s.ports.Aliases.Table(ctx)
	if err != nil {
		return nil, ListAliasesOutput{}, err
	}

	output.Version = table.Version
	output.Location = s.ports.Aliases.Location()
	for _, rule := range table.Rules() {
		output.Rules = append(output.Rules, AliasRuleOutput{From: rule.From, To: rule.To})
	}

	return nil, output, nil
}

func toAlignOutput(run *domain.AlignmentRun) AlignOutput {
	output := AlignOutput{
		RunID:        run.ID,
		AliasVersion: run.AliasVersion,
		Outcomes:     make([]OutcomeOutput, len(run.Outcomes)),
	}

	for i := range run.Outcomes {
		o := run.Outcomes[i]
		output.Outcomes[i] = OutcomeOutput{
			Name:    o.Name,
			Volume:  o.Volume.Raw,
			IndexID: o.ResolvedID,
			Status:  o.Status.String(),
			Detail:  o.Detail,
			Note:    o.Note(),
		}
	}

	summary := run.Summary()
	output.Summary = SummaryOutput{
		Total:    summary.Total,
		Resolved: summary.Resolved(),
		Counts:   make(map[string]int, len(summary.Counts)),
	}
	for kind, n := range summary.Counts {
		output.Summary.Counts[kind.String()] = n
	}

	return output
}
