package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/roialign/internal/adapters/driving/report"
	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driving"
)

// stdinArg selects standard input in place of a file path.
const stdinArg = "-"

var (
	alignAliases    string
	alignFormat     string
	alignVolumeMode string
	alignColor      string
	alignOutput     string
	alignSave       bool
	alignSummary    bool
	alignWatch      bool
)

var alignCmd = &cobra.Command{
	Use:   "align <volumes> <index>",
	Short: "Match ROI volumes to index ids",
	Long: `Reads a volume list ("<name> <volume>" per line) and an index list
("<id> <name>" per line), resolves every volume record and prints one row
per record in volume-list order.

Either path may be "-" to read standard input.

Match statuses:
  Exact Match                  name found in the index
  Matched to <name>            found through the alias table
  Right Side (Left ID: <id>)   left counterpart found; no id is assigned
  Right Side (No Left match)   right-side name without a left counterpart
  No Match                     nothing found`,
	Args: cobra.ExactArgs(2),
	RunE: runAlign,
}

func init() {
	alignCmd.Flags().StringVarP(&alignAliases, "aliases", "a", "", "alias table file (.toml, .yaml) overriding alias.path")
	alignCmd.Flags().StringVarP(&alignFormat, "format", "f", "", "report format: table, markdown, csv, json")
	alignCmd.Flags().StringVar(&alignVolumeMode, "volume-mode", "", "strict or passthrough")
	alignCmd.Flags().StringVar(&alignColor, "color", "", "colour the status column: auto, always, never")
	alignCmd.Flags().StringVarP(&alignOutput, "output", "o", "", "write the report to a file instead of stdout")
	alignCmd.Flags().BoolVar(&alignSave, "save", false, "record the run in history (default from history.enabled)")
	alignCmd.Flags().BoolVar(&alignSummary, "summary", false, "print per-status counts after the report")
	alignCmd.Flags().BoolVarP(&alignWatch, "watch", "w", false, "re-run whenever an input or the alias file changes")
	rootCmd.AddCommand(alignCmd)
}

// alignOptions are the flag values merged over stored settings.
type alignOptions struct {
	format     domain.ReportFormat
	color      domain.ColorMode
	volumeMode domain.VolumeMode
	record     bool
	aliasPath  string
	output     string
	summary    bool
}

func runAlign(cmd *cobra.Command, args []string) error {
	if alignmentService == nil {
		return errors.New("alignment service not configured")
	}
	if args[0] == stdinArg && args[1] == stdinArg {
		return errors.New("only one of <volumes> and <index> can be read from stdin")
	}

	opts, err := alignOptionsFromFlags(cmd)
	if err != nil {
		return err
	}

	if alignWatch {
		return watchAlign(cmd, args, opts)
	}
	return alignOnce(cmd.Context(), cmd, args, opts)
}

func alignOptionsFromFlags(cmd *cobra.Command) (alignOptions, error) {
	settings, err := currentSettings()
	if err != nil {
		return alignOptions{}, fmt.Errorf("failed to get settings: %w", err)
	}

	opts := alignOptions{
		format:     settings.Report.Format,
		color:      settings.Report.Color,
		volumeMode: settings.Volume.Mode,
		record:     settings.History.Enabled,
		aliasPath:  alignAliases,
		output:     alignOutput,
		summary:    alignSummary,
	}

	if alignFormat != "" {
		opts.format = domain.ReportFormat(alignFormat)
		if !opts.format.IsValid() {
			return alignOptions{}, fmt.Errorf("invalid format %q: %w", alignFormat, domain.ErrUnsupportedFormat)
		}
	}
	if alignColor != "" {
		opts.color = domain.ColorMode(alignColor)
		if !opts.color.IsValid() {
			return alignOptions{}, fmt.Errorf("invalid color mode: %s", alignColor)
		}
	}
	if alignVolumeMode != "" {
		opts.volumeMode = domain.VolumeMode(alignVolumeMode)
		if !opts.volumeMode.IsValid() {
			return alignOptions{}, fmt.Errorf("invalid volume mode: %s", alignVolumeMode)
		}
	}
	if cmd.Flags().Changed("save") {
		opts.record = alignSave
	}

	return opts, nil
}

// alignOnce runs one alignment and writes the report.
func alignOnce(ctx context.Context, cmd *cobra.Command, args []string, opts alignOptions) error {
	volumes, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer volumes.Close()

	index, err := openInput(cmd, args[1])
	if err != nil {
		return err
	}
	defer index.Close()

	req := driving.AlignRequest{
		Volumes:    volumes,
		Index:      index,
		VolumeMode: opts.volumeMode,
		Record:     opts.record,
	}

	if opts.aliasPath != "" {
		if aliasFileLoader == nil {
			return errors.New("alias file loading not configured")
		}
		req.Aliases, err = aliasFileLoader(ctx, opts.aliasPath)
		if err != nil {
			return fmt.Errorf("loading aliases: %w", err)
		}
	}

	run, err := alignmentService.Align(ctx, req)
	if err != nil {
		return fmt.Errorf("alignment failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeReport(out, cmd.ErrOrStderr(), run, opts); err != nil {
		return err
	}

	if run.ID != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Recorded run %s\n", run.ID)
	}
	return nil
}

// writeReport renders outcomes to out. Summaries of machine-readable
// formats go to errOut so out stays parseable.
func writeReport(out, errOut io.Writer, run *domain.AlignmentRun, opts alignOptions) error {
	renderer, err := report.NewRenderer(opts.format, useColor(opts.color, out))
	if err != nil {
		return err
	}

	if err := renderer.Render(out, run.Outcomes); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	if !opts.summary {
		return nil
	}
	summaryOut := out
	if f := renderer.Format(); f == domain.ReportFormatCSV || f == domain.ReportFormatJSON {
		summaryOut = errOut
	}
	return report.RenderSummary(summaryOut, run.Summary())
}

// openInput opens a file, or standard input for "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == stdinArg {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	return f, nil
}

// useColor decides whether the table note column is styled.
func useColor(mode domain.ColorMode, w io.Writer) bool {
	switch mode {
	case domain.ColorAlways:
		return true
	case domain.ColorNever:
		return false
	}
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
