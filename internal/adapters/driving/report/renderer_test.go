package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

func sampleOutcomes() []domain.OutcomeRecord {
	return []domain.OutcomeRecord{
		{
			Name:       "Left-LGN",
			Volume:     domain.Volume{Raw: "303.199231", Value: 303.199231, Numeric: true},
			ResolvedID: "8109",
			Status:     domain.StatusExactMatch,
		},
		{
			Name:       "Left-L-Sg",
			Volume:     domain.Volume{Raw: "28.052934", Value: 28.052934, Numeric: true},
			ResolvedID: "8111",
			Status:     domain.StatusMatchedAlias,
			Detail:     "Left-LSg",
		},
		{
			Name:   "Right-LGN",
			Volume: domain.Volume{Raw: "269.045382", Value: 269.045382, Numeric: true},
			Status: domain.StatusRightSideHint,
			Detail: "8109",
		},
		{
			Name:   "Right-CeM",
			Volume: domain.Volume{Raw: "58.997370", Value: 58.99737, Numeric: true},
			Status: domain.StatusRightSideNoHint,
		},
		{
			Name:   "Left-Whole_thalamus",
			Volume: domain.Volume{Raw: "7145.382416", Value: 7145.382416, Numeric: true},
			Status: domain.StatusNoMatch,
		},
	}
}

func render(t *testing.T, format domain.ReportFormat, color bool, outcomes []domain.OutcomeRecord) string {
	t.Helper()
	r, err := NewRenderer(format, color)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, outcomes))
	return buf.String()
}

func TestRenderer_Table(t *testing.T) {
	out := render(t, domain.ReportFormatTable, false, sampleOutcomes())

	want := "" +
		"ROI Name                  | Volume          | Index ID   | Match Status/Note\n" +
		strings.Repeat("-", 80) + "\n" +
		"Left-LGN                  | 303.199231      | 8109       | Exact Match\n" +
		"Left-L-Sg                 | 28.052934       | 8111       | Matched to Left-LSg\n" +
		"Right-LGN                 | 269.045382      |            | Right Side (Left ID: 8109)\n" +
		"Right-CeM                 | 58.997370       |            | Right Side (No Left match)\n" +
		"Left-Whole_thalamus       | 7145.382416     |            | No Match\n"

	assert.Equal(t, want, out)
}

func TestRenderer_Table_Empty(t *testing.T) {
	out := render(t, domain.ReportFormatTable, false, nil)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	assert.Len(t, lines, 2, "header and rule only")
}

func TestRenderer_Table_Color(t *testing.T) {
	out := render(t, domain.ReportFormatTable, true, sampleOutcomes())

	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "Exact Match")

	// Columns before the note are never styled.
	assert.Contains(t, out, "Left-LGN                  | 303.199231      | 8109       | ")
}

func TestRenderer_Table_VolumeVerbatim(t *testing.T) {
	outcomes := []domain.OutcomeRecord{
		{Name: "Left-CM", Volume: domain.Volume{Raw: "2.5e2", Value: 250, Numeric: true}, Status: domain.StatusNoMatch},
		{Name: "Left-CL", Volume: domain.Volume{Raw: "n/a"}, Status: domain.StatusNoMatch},
	}

	out := render(t, domain.ReportFormatTable, false, outcomes)

	assert.Contains(t, out, "| 2.5e2           |")
	assert.Contains(t, out, "| n/a             |")
}

func TestRenderer_Markdown(t *testing.T) {
	outcomes := sampleOutcomes()
	outcomes[0].Name = "Left|Odd"

	out := render(t, domain.ReportFormatMarkdown, false, outcomes)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	require.Len(t, lines, 7)
	assert.Equal(t, "| ROI Name | Volume | Index ID | Match Status/Note |", lines[0])
	assert.Equal(t, "|---|---|---|---|", lines[1])
	assert.Equal(t, `| Left\|Odd | 303.199231 | 8109 | Exact Match |`, lines[2])
	assert.Equal(t, "| Right-LGN | 269.045382 |  | Right Side (Left ID: 8109) |", lines[4])
}

func TestRenderer_Markdown_IgnoresColor(t *testing.T) {
	out := render(t, domain.ReportFormatMarkdown, true, sampleOutcomes())
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderer_CSV(t *testing.T) {
	out := render(t, domain.ReportFormatCSV, false, sampleOutcomes())

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 6)

	assert.Equal(t, []string{"roi_name", "volume", "index_id", "status", "note"}, records[0])
	assert.Equal(t, []string{"Left-L-Sg", "28.052934", "8111", "matched_alias", "Matched to Left-LSg"}, records[2])
	assert.Equal(t, []string{"Right-LGN", "269.045382", "", "right_side_hint", "Right Side (Left ID: 8109)"}, records[3])
}

func TestRenderer_JSON(t *testing.T) {
	out := render(t, domain.ReportFormatJSON, false, sampleOutcomes())

	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 5)

	assert.Equal(t, map[string]string{
		"name":     "Right-LGN",
		"volume":   "269.045382",
		"index_id": "",
		"status":   "right_side_hint",
		"detail":   "8109",
		"note":     "Right Side (Left ID: 8109)",
	}, got[2])

	_, hasDetail := got[0]["detail"]
	assert.False(t, hasDetail)
}

func TestRenderer_JSON_EmptyIsArray(t *testing.T) {
	out := render(t, domain.ReportFormatJSON, false, nil)
	assert.Equal(t, "[]\n", out)
}

func TestRenderer_DoesNotModifyOutcomes(t *testing.T) {
	outcomes := sampleOutcomes()
	before := sampleOutcomes()

	for _, format := range domain.AllReportFormats() {
		render(t, format, true, outcomes)
	}

	assert.Equal(t, before, outcomes)
}

func TestNewRenderer_DefaultsToTable(t *testing.T) {
	r, err := NewRenderer("", false)
	require.NoError(t, err)
	assert.Equal(t, domain.ReportFormatTable, r.Format())
}

func TestNewRenderer_Unsupported(t *testing.T) {
	_, err := NewRenderer("xml", false)
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderSummary(&buf, domain.Summarise(sampleOutcomes())))

	out := buf.String()
	assert.Contains(t, out, "5 records, 2 resolved")
	assert.Contains(t, out, "exact_match          1")
	assert.Contains(t, out, "no_match             1")
}
