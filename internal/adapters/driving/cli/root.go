// Package cli implements the roialign command line.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driving"
	"github.com/custodia-labs/roialign/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

var verbose bool

// Services injected by main. Commands check for nil before use.
var (
	alignmentService driving.AlignmentService
	aliasService     driving.AliasService
	historyService   driving.HistoryService
	settingsService  driving.SettingsService
	aliasFileLoader  AliasFileLoader
	aliasEncoder     AliasEncoder
)

// AliasFileLoader reads an alias table from a file named on the command line.
type AliasFileLoader func(ctx context.Context, path string) (*domain.AliasTable, error)

// AliasEncoder writes an alias table in the file format implied by name.
type AliasEncoder func(table *domain.AliasTable, name string) ([]byte, error)

// Services holds the driving ports used by the commands.
type Services struct {
	Alignment driving.AlignmentService
	Aliases   driving.AliasService
	History   driving.HistoryService
	Settings  driving.SettingsService

	// LoadAliasFile backs the --aliases flag. Optional.
	LoadAliasFile AliasFileLoader

	// EncodeAliases backs aliases list --format toml|yaml. Optional.
	EncodeAliases AliasEncoder
}

var rootCmd = &cobra.Command{
	Use:   "roialign",
	Short: "Reconcile ROI volume lists with atlas index ids",
	Long: `roialign matches region-of-interest names from a volume list against an
atlas index list and reports, for every volume record, the index id it
resolves to and how it was resolved.

Resolution tries an exact name match, then the curated alias table, then
a left-side hint for right-hemisphere names.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// SetServices injects the services used by the commands.
func SetServices(s Services) {
	alignmentService = s.Alignment
	aliasService = s.Aliases
	historyService = s.History
	settingsService = s.Settings
	aliasFileLoader = s.LoadAliasFile
	aliasEncoder = s.EncodeAliases
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// currentSettings returns stored settings, or defaults when no settings service is configured.
func currentSettings() (domain.AppSettings, error) {
	if settingsService == nil {
		return domain.DefaultAppSettings(), nil
	}
	settings, err := settingsService.Get()
	if err != nil {
		return domain.AppSettings{}, err
	}
	return *settings, nil
}
