package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcomeRecord_Note(t *testing.T) {
	tests := []struct {
		name     string
		outcome  OutcomeRecord
		expected string
	}{
		{
			name:     "exact match",
			outcome:  OutcomeRecord{Status: StatusExactMatch, ResolvedID: "8109"},
			expected: "Exact Match",
		},
		{
			name:     "matched alias",
			outcome:  OutcomeRecord{Status: StatusMatchedAlias, ResolvedID: "8111", Detail: "Left-LSg"},
			expected: "Matched to Left-LSg",
		},
		{
			name:     "right side hint",
			outcome:  OutcomeRecord{Status: StatusRightSideHint, Detail: "8103"},
			expected: "Right Side (Left ID: 8103)",
		},
		{
			name:     "right side no hint",
			outcome:  OutcomeRecord{Status: StatusRightSideNoHint},
			expected: "Right Side (No Left match)",
		},
		{
			name:     "no match",
			outcome:  OutcomeRecord{Status: StatusNoMatch},
			expected: "No Match",
		},
		{
			name:     "unknown status",
			outcome:  OutcomeRecord{Status: "bogus"},
			expected: "Unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.outcome.Note())
		})
	}
}

func TestParseStatusKind(t *testing.T) {
	for _, k := range AllStatusKinds() {
		got, err := ParseStatusKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParseStatusKind("fuzzy")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestOutcomeRecord_IsResolved(t *testing.T) {
	assert.True(t, OutcomeRecord{ResolvedID: "8109"}.IsResolved())
	assert.False(t, OutcomeRecord{Status: StatusRightSideHint, Detail: "8103"}.IsResolved())
}

func TestAlignmentRun_Summary(t *testing.T) {
	run := &AlignmentRun{
		ID:        "run-1",
		CreatedAt: time.Now(),
		Outcomes: []OutcomeRecord{
			{Name: "Left-LGN", Status: StatusExactMatch, ResolvedID: "8109"},
			{Name: "Left-L-Sg", Status: StatusMatchedAlias, ResolvedID: "8111"},
			{Name: "Right-AV", Status: StatusRightSideHint, Detail: "8103"},
			{Name: "Right-Whole_thalamus", Status: StatusRightSideNoHint},
			{Name: "Left-Whole_thalamus", Status: StatusNoMatch},
			{Name: "Left-MGN", Status: StatusExactMatch, ResolvedID: "8115"},
		},
	}

	summary := run.Summary()

	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 2, summary.Counts[StatusExactMatch])
	assert.Equal(t, 1, summary.Counts[StatusMatchedAlias])
	assert.Equal(t, 1, summary.Counts[StatusRightSideHint])
	assert.Equal(t, 1, summary.Counts[StatusRightSideNoHint])
	assert.Equal(t, 1, summary.Counts[StatusNoMatch])
	assert.Equal(t, 3, summary.Resolved())
}
