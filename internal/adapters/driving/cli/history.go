package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

var (
	historyLimit  int
	historyFormat string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse recorded alignment runs",
	Long: `Runs are recorded when history.enabled is true or align is given --save.
History is stored in ~/.roialign/data/history.db.`,
	RunE: runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent runs",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the outcomes of a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a run",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of runs to list")
	historyShowCmd.Flags().StringVarP(&historyFormat, "format", "f", "", "report format: table, markdown, csv, json")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	historyCmd.AddCommand(historyDeleteCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	runs, err := historyService.List(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No recorded runs.")
		return nil
	}

	cmd.Println("Recent runs:")
	cmd.Println()
	for i := range runs {
		summary := runs[i].Summary()
		cmd.Printf("  %s  %s\n", runs[i].ID, runs[i].CreatedAt.Local().Format(time.DateTime))
		cmd.Printf("      %d of %d resolved", summary.Resolved(), summary.Total)
		if runs[i].AliasVersion != "" {
			cmd.Printf(", aliases %s", runs[i].AliasVersion)
		}
		cmd.Println()
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	run, err := historyService.Get(cmd.Context(), args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("run %s not found", args[0])
		}
		return fmt.Errorf("failed to get run: %w", err)
	}

	settings, err := currentSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	opts := alignOptions{
		format:  settings.Report.Format,
		color:   settings.Report.Color,
		summary: true,
	}
	if historyFormat != "" {
		opts.format = domain.ReportFormat(historyFormat)
	}

	if opts.format == domain.ReportFormatTable || opts.format == domain.ReportFormatMarkdown {
		cmd.Printf("Run %s (%s)\n\n", run.ID, run.CreatedAt.Local().Format(time.DateTime))
	}
	return writeReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), run, opts)
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	if err := historyService.Delete(cmd.Context(), args[0]); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("run %s not found", args[0])
		}
		return fmt.Errorf("failed to delete run: %w", err)
	}

	cmd.Printf("Deleted run %s\n", args[0])
	return nil
}
