// Package mcp provides an MCP (Model Context Protocol) server adapter for roialign.
// It lets AI assistants align ROI volume lists against an index list and
// inspect the alias table and run history.
package mcp

import "errors"

// ErrMissingAlignmentService is returned when the alignment service is not provided.
var ErrMissingAlignmentService = errors.New("mcp: alignment service is required")
