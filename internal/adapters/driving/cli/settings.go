package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the alias table, volume parsing, report output and
run history.

Settings are stored in ~/.roialign/config.toml.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting",
	Long: `Change one setting by key.

Keys:
  alias.path       alias table file (.toml, .yaml, .yml); empty disables aliases
  volume.mode      strict | passthrough
  report.format    table | markdown | csv | json
  report.color     auto | always | never
  history.enabled  true | false`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Alias]")
	if settings.Alias.Path != "" {
		cmd.Printf("  Path: %s\n", settings.Alias.Path)
	} else {
		cmd.Println("  Path: (not set)")
	}
	cmd.Println()

	cmd.Println("[Volume]")
	cmd.Printf("  Mode: %s\n", settings.Volume.Mode.Description())
	cmd.Println()

	cmd.Println("[Report]")
	cmd.Printf("  Format: %s\n", settings.Report.Format)
	cmd.Printf("  Color: %s\n", settings.Report.Color)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %t\n", settings.History.Enabled)
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("unknown setting %q (keys: %s)", key, strings.Join(settingsService.Keys(), ", "))
		}
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	cmd.Printf("Set %s = %s\n", key, value)
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("roialign Settings Wizard")
	cmd.Println("========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Volume mode
	cmd.Println("Step 1: Volume Parsing")
	cmd.Println("----------------------")
	modes := domain.AllVolumeModes()
	for i, mode := range modes {
		cmd.Printf("  %d. %s\n", i+1, mode.Description())
	}
	cmd.Print("\nEnter choice [1]: ")
	settings.Volume.Mode = modes[parseChoice(readLine(reader), len(modes), 1)-1]
	cmd.Println()

	// Step 2: Report format
	cmd.Println("Step 2: Report Format")
	cmd.Println("---------------------")
	formats := domain.AllReportFormats()
	for i, f := range formats {
		cmd.Printf("  %d. %s\n", i+1, f)
	}
	cmd.Print("\nEnter choice [1]: ")
	settings.Report.Format = formats[parseChoice(readLine(reader), len(formats), 1)-1]
	cmd.Println()

	// Step 3: Colour
	cmd.Println("Step 3: Colour")
	cmd.Println("--------------")
	colors := domain.AllColorModes()
	for i, c := range colors {
		cmd.Printf("  %d. %s\n", i+1, c)
	}
	cmd.Print("\nEnter choice [1]: ")
	settings.Report.Color = colors[parseChoice(readLine(reader), len(colors), 1)-1]
	cmd.Println()

	// Step 4: Alias table
	cmd.Println("Step 4: Alias Table")
	cmd.Println("-------------------")
	cmd.Printf("Path to alias file [%s]: ", settings.Alias.Path)
	if path := readLine(reader); path != "" {
		settings.Alias.Path = path
	}
	cmd.Println()

	// Step 5: History
	cmd.Println("Step 5: Run History")
	cmd.Println("-------------------")
	cmd.Printf("Record every run? (y/n) [%s]: ", yesNo(settings.History.Enabled))
	if answer := strings.ToLower(readLine(reader)); answer != "" {
		settings.History.Enabled = answer == "y" || answer == "yes"
	}
	cmd.Println()

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	cmd.Println("All settings are valid and saved.")
	return nil
}

func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n') //nolint:errcheck // EOF yields the default
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func yesNo(b bool) string {
	if b {
		return "y"
	}
	return "n"
}
