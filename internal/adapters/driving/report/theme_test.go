package report

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

func TestDefaultTheme_ColorsAreDistinct(t *testing.T) {
	theme := DefaultTheme()

	//nolint:misspell // using colors for technical accuracy
	colors := []lipgloss.Color{
		theme.Success,
		theme.Secondary,
		theme.Warning,
		theme.Muted,
		theme.Error,
		theme.Header,
	}

	seen := make(map[string]bool)
	for _, c := range colors { //nolint:misspell // using colors for technical accuracy
		s := string(c)
		assert.NotEmpty(t, s)
		assert.False(t, seen[s], "duplicate color: %s", s) //nolint:misspell // using color for technical accuracy
		seen[s] = true
	}
}

func TestNewStyles_NilTheme(t *testing.T) {
	styles := NewStyles(nil, false)

	require.NotNil(t, styles)
	assert.Equal(t, "Exact Match", styles.Note(domain.OutcomeRecord{Status: domain.StatusExactMatch}))
}

func TestStyles_Note_Plain(t *testing.T) {
	styles := NewStyles(nil, false)

	for _, kind := range domain.AllStatusKinds() {
		o := domain.OutcomeRecord{Status: kind, Detail: "8109"}
		assert.Equal(t, o.Note(), styles.Note(o), "status %s", kind)
	}
}

func TestStyles_Note_Colored(t *testing.T) {
	styles := NewStyles(nil, true)

	o := domain.OutcomeRecord{Status: domain.StatusNoMatch}
	got := styles.Note(o)

	assert.NotEqual(t, o.Note(), got)
	assert.Contains(t, got, "No Match")
}

func TestStyles_Note_UnknownStatus(t *testing.T) {
	styles := NewStyles(nil, true)

	o := domain.OutcomeRecord{Status: "mystery"}
	assert.Equal(t, "Unknown", styles.Note(o))
}
