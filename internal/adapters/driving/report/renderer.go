package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

// Table layout.
const (
	nameWidth   = 25
	volumeWidth = 15
	idWidth     = 10
	ruleWidth   = 80
)

// Column titles shared by the table and markdown formats.
const (
	colName   = "ROI Name"
	colVolume = "Volume"
	colID     = "Index ID"
	colNote   = "Match Status/Note"
)

// csvHeader is the header row of the csv format.
var csvHeader = []string{"roi_name", "volume", "index_id", "status", "note"}

// Renderer writes outcomes in one report format.
type Renderer struct {
	format domain.ReportFormat
	styles *Styles
}

// NewRenderer creates a renderer for format.
// color only affects the table format.
func NewRenderer(format domain.ReportFormat, color bool) (*Renderer, error) {
	if format == "" {
		format = domain.ReportFormatTable
	}
	if !format.IsValid() {
		return nil, fmt.Errorf("report format %q: %w", format, domain.ErrUnsupportedFormat)
	}
	return &Renderer{
		format: format,
		styles: NewStyles(nil, color && format == domain.ReportFormatTable),
	}, nil
}

// Format returns the renderer's format.
func (r *Renderer) Format() domain.ReportFormat {
	return r.format
}

// Render writes outcomes to w, one row per outcome in input order.
func (r *Renderer) Render(w io.Writer, outcomes []domain.OutcomeRecord) error {
	switch r.format {
	case domain.ReportFormatTable:
		return r.renderTable(w, outcomes)
	case domain.ReportFormatMarkdown:
		return renderMarkdown(w, outcomes)
	case domain.ReportFormatCSV:
		return renderCSV(w, outcomes)
	case domain.ReportFormatJSON:
		return renderJSON(w, outcomes)
	default:
		return fmt.Errorf("report format %q: %w", r.format, domain.ErrUnsupportedFormat)
	}
}

func (r *Renderer) renderTable(w io.Writer, outcomes []domain.OutcomeRecord) error {
	header := fmt.Sprintf("%-*s | %-*s | %-*s | %s",
		nameWidth, colName, volumeWidth, colVolume, idWidth, colID, colNote)
	if _, err := fmt.Fprintln(w, r.styles.Header(header)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, strings.Repeat("-", ruleWidth)); err != nil {
		return err
	}

	for i := range outcomes {
		o := outcomes[i]
		// The note is the last column, so styling it never shifts alignment.
		if _, err := fmt.Fprintf(w, "%-*s | %-*s | %-*s | %s\n",
			nameWidth, o.Name, volumeWidth, o.Volume.Raw, idWidth, o.ResolvedID,
			r.styles.Note(o)); err != nil {
			return err
		}
	}
	return nil
}

func renderMarkdown(w io.Writer, outcomes []domain.OutcomeRecord) error {
	var b strings.Builder
	b.WriteString("| " + colName + " | " + colVolume + " | " + colID + " | " + colNote + " |\n")
	b.WriteString("|---|---|---|---|\n")
	for i := range outcomes {
		o := outcomes[i]
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			escapeMarkdown(o.Name), escapeMarkdown(o.Volume.Raw),
			escapeMarkdown(o.ResolvedID), escapeMarkdown(o.Note()))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// escapeMarkdown keeps cell text from closing the cell.
func escapeMarkdown(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func renderCSV(w io.Writer, outcomes []domain.OutcomeRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i := range outcomes {
		o := outcomes[i]
		if err := cw.Write([]string{o.Name, o.Volume.Raw, o.ResolvedID, o.Status.String(), o.Note()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// jsonOutcome is the json shape of one outcome.
type jsonOutcome struct {
	Name    string `json:"name"`
	Volume  string `json:"volume"`
	IndexID string `json:"index_id"`
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Note    string `json:"note"`
}

func renderJSON(w io.Writer, outcomes []domain.OutcomeRecord) error {
	out := make([]jsonOutcome, 0, len(outcomes))
	for i := range outcomes {
		o := outcomes[i]
		out = append(out, jsonOutcome{
			Name:    o.Name,
			Volume:  o.Volume.Raw,
			IndexID: o.ResolvedID,
			Status:  o.Status.String(),
			Detail:  o.Detail,
			Note:    o.Note(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// RenderSummary writes per-status counts as plain text.
func RenderSummary(w io.Writer, s domain.RunSummary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%d records, %d resolved\n", s.Total, s.Resolved())
	for _, kind := range domain.AllStatusKinds() {
		fmt.Fprintf(&b, "  %-20s %d\n", kind, s.Counts[kind])
	}
	_, err := io.WriteString(w, b.String())
	return err
}
