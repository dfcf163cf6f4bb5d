package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/roialign/internal/core/domain"
)

var aliasesCmd = &cobra.Command{
	Use:   "aliases",
	Short: "Inspect the alias table",
	Long: `The alias table maps volume-list names to index-list names that differ
only by spelling. It is configured with alias.path or --aliases on align.`,
	RunE: runAliasesList,
}

var aliasesFormat string

var aliasesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List alias rules",
	Long: `List the configured alias rules.

With --format toml or --format yaml the table is written as an alias file
that alias.path or align --aliases can read back.`,
	RunE: runAliasesList,
}

var aliasesCheckCmd = &cobra.Command{
	Use:   "check <index>",
	Short: "Check which alias targets exist in an index list",
	Long: `Reports, for every alias rule, whether its target name is present in the
given index list. Rules whose target is missing are ignored during alignment.

The index path may be "-" to read standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runAliasesCheck,
}

func init() {
	aliasesListCmd.Flags().StringVarP(&aliasesFormat, "format", "f", "", "output as an alias file: toml, yaml")
	aliasesCmd.AddCommand(aliasesListCmd)
	aliasesCmd.AddCommand(aliasesCheckCmd)
	rootCmd.AddCommand(aliasesCmd)
}

func runAliasesList(cmd *cobra.Command, _ []string) error {
	if aliasService == nil {
		return errors.New("alias service not configured")
	}

	table, err := aliasService.Table(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load aliases: %w", err)
	}

	if aliasesFormat != "" {
		return writeAliasFile(cmd, table, aliasesFormat)
	}

	location := aliasService.Location()
	if location == "" {
		location = "(none)"
	}
	version := table.Version
	if version == "" {
		version = "(unversioned)"
	}

	cmd.Printf("Alias table: %s\n", version)
	cmd.Printf("Source: %s\n", location)
	cmd.Println()

	rules := table.Rules()
	if len(rules) == 0 {
		cmd.Println("No alias rules configured.")
		return nil
	}

	for _, rule := range rules {
		cmd.Printf("  %-25s -> %s\n", rule.From, rule.To)
	}
	cmd.Printf("\n%d rule(s)\n", len(rules))
	return nil
}

func writeAliasFile(cmd *cobra.Command, table *domain.AliasTable, format string) error {
	if aliasEncoder == nil {
		return errors.New("alias file encoding not configured")
	}
	data, err := aliasEncoder(table, "aliases."+format)
	if err != nil {
		return fmt.Errorf("encoding aliases: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func runAliasesCheck(cmd *cobra.Command, args []string) error {
	if aliasService == nil {
		return errors.New("alias service not configured")
	}

	index, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer index.Close()

	checks, err := aliasService.Check(cmd.Context(), index)
	if err != nil {
		return fmt.Errorf("failed to check aliases: %w", err)
	}

	if len(checks) == 0 {
		cmd.Println("No alias rules configured.")
		return nil
	}

	usable := 0
	for _, c := range checks {
		status := "ignored (target not in index)"
		if c.Usable {
			status = "usable (id " + c.TargetID + ")"
			usable++
		}
		cmd.Printf("  %-25s -> %-25s %s\n", c.Rule.From, c.Rule.To, status)
	}
	cmd.Printf("\n%d of %d rule(s) usable\n", usable, len(checks))
	return nil
}
