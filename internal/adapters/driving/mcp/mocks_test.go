package mcp

import (
	"context"
	"io"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driving"
)

// mockAlignmentService is a mock implementation of driving.AlignmentService.
type mockAlignmentService struct {
	run     *domain.AlignmentRun
	err     error
	lastReq driving.AlignRequest
	volumes string
}

func (m *mockAlignmentService) Align(_ context.Context, req driving.AlignRequest) (*domain.AlignmentRun, error) {
	m.lastReq = req
	if req.Volumes != nil {
		data, _ := io.ReadAll(req.Volumes)
		m.volumes = string(data)
	}
	return m.run, m.err
}

// mockAliasService is a mock implementation of driving.AliasService.
type mockAliasService struct {
	table    *domain.AliasTable
	location string
	err      error
}

func (m *mockAliasService) Table(_ context.Context) (*domain.AliasTable, error) {
	return m.table, m.err
}

func (m *mockAliasService) Check(_ context.Context, _ io.Reader) ([]driving.AliasCheck, error) {
	return nil, m.err
}

func (m *mockAliasService) Location() string {
	return m.location
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	runs []domain.AlignmentRun
	run  *domain.AlignmentRun
	err  error
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.AlignmentRun, error) {
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.AlignmentRun, error) {
	return m.run, m.err
}

func (m *mockHistoryService) Delete(_ context.Context, _ string) error {
	return m.err
}

func sampleRun() *domain.AlignmentRun {
	return &domain.AlignmentRun{
		ID:           "run-1",
		AliasVersion: "thalamic-nuclei-2024.1",
		Outcomes: []domain.OutcomeRecord{
			{
				Name:       "Left-LGN",
				Volume:     domain.Volume{Raw: "303.199231", Value: 303.199231, Numeric: true},
				ResolvedID: "8109",
				Status:     domain.StatusExactMatch,
			},
			{
				Name:   "Right-LGN",
				Volume: domain.Volume{Raw: "269.045382", Value: 269.045382, Numeric: true},
				Status: domain.StatusRightSideHint,
				Detail: "8109",
			},
		},
	}
}
