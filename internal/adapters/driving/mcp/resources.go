package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for roialign resources.
	uriScheme = "roialign://"

	// recentRunsLimit caps the runs resource.
	recentRunsLimit = 20
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "aliases",
		Name:        "aliases",
		Description: "The curated alias table",
		MIMEType:    "application/json",
	}, s.handleAliasesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "runs",
		Name:        "runs",
		Description: "Recently recorded alignment runs",
		MIMEType:    "application/json",
	}, s.handleRunsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "runs/{runId}",
		Name:        "run",
		Description: "Outcomes of a recorded alignment run",
		MIMEType:    "application/json",
	}, s.handleRunResource)
}

// handleAliasesResource returns the alias table.
func (s *Server) handleAliasesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	_, output, err := s.handleListAliases(ctx, nil, ListAliasesInput{})
	if err != nil {
		return nil, fmt.Errorf("loading aliases: %w", err)
	}
	return jsonResource(req.Params.URI, output)
}

// runInfo is the list entry for a recorded run.
type runInfo struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	AliasVersion string    `json:"alias_version,omitempty"`
	Total        int       `json:"total"`
	Resolved     int       `json:"resolved"`
}

// handleRunsResource lists recent runs.
func (s *Server) handleRunsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     "[]",
			}},
		}, nil
	}

	runs, err := s.ports.History.List(ctx, recentRunsLimit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}

	infos := make([]runInfo, len(runs))
	for i := range runs {
		summary := runs[i].Summary()
		infos[i] = runInfo{
			ID:           runs[i].ID,
			CreatedAt:    runs[i].CreatedAt,
			AliasVersion: runs[i].AliasVersion,
			Total:        summary.Total,
			Resolved:     summary.Resolved(),
		}
	}

	return jsonResource(req.Params.URI, infos)
}

// handleRunResource returns the outcomes of one run.
func (s *Server) handleRunResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.History == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// roialign://runs/{runId}
	runID := extractRunID(req.Params.URI)
	if runID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	run, err := s.ports.History.Get(ctx, runID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}
		return nil, fmt.Errorf("getting run: %w", err)
	}

	return jsonResource(req.Params.URI, toAlignOutput(run))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractRunID extracts the run ID from a URI like roialign://runs/{runId}.
func extractRunID(uri string) string {
	const prefix = uriScheme + "runs/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
