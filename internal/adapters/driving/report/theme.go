package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

// Theme defines the colour palette for status notes.
type Theme struct {
	// Success marks exact matches.
	Success lipgloss.Color

	// Secondary marks alias matches.
	Secondary lipgloss.Color

	// Warning marks right-side hints.
	Warning lipgloss.Color

	// Muted marks right-side names without a hint.
	Muted lipgloss.Color

	// Error marks records with no match.
	Error lipgloss.Color

	// Header colours the table header.
	Header lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Success:   lipgloss.Color("#A6E3A1"), // Green
		Secondary: lipgloss.Color("#06B6D4"), // Cyan
		Warning:   lipgloss.Color("#F9E2AF"), // Yellow
		Muted:     lipgloss.Color("#6C7086"), // Medium gray
		Error:     lipgloss.Color("#F38BA8"), // Red
		Header:    lipgloss.Color("#7C3AED"), // Purple
	}
}

// Styles holds one style per status plus the header style.
type Styles struct {
	header lipgloss.Style
	status map[domain.StatusKind]lipgloss.Style
}

// NewStyles creates styles from a theme.
// When color is false every style renders plain text.
func NewStyles(theme *Theme, color bool) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	// The profile is fixed up front so output does not depend on what the
	// destination writer happens to be.
	r := lipgloss.NewRenderer(io.Discard)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		header: r.NewStyle().Bold(true).Foreground(theme.Header),
		status: map[domain.StatusKind]lipgloss.Style{
			domain.StatusExactMatch:      r.NewStyle().Foreground(theme.Success),
			domain.StatusMatchedAlias:    r.NewStyle().Foreground(theme.Secondary),
			domain.StatusRightSideHint:   r.NewStyle().Foreground(theme.Warning),
			domain.StatusRightSideNoHint: r.NewStyle().Foreground(theme.Muted),
			domain.StatusNoMatch:         r.NewStyle().Foreground(theme.Error).Bold(true),
		},
	}
}

// Note renders the outcome note in its status colour.
func (s *Styles) Note(o domain.OutcomeRecord) string {
	style, ok := s.status[o.Status]
	if !ok {
		return o.Note()
	}
	return style.Render(o.Note())
}

// Header renders a header line.
func (s *Styles) Header(text string) string {
	return s.header.Render(text)
}
