package cli

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/roialign/internal/adapters/driven/config/file"
	"github.com/custodia-labs/roialign/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/roialign/internal/adapters/driven/textlist"
	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/services"
	"github.com/custodia-labs/roialign/internal/logger"
)

const (
	testVolumes = "../../../../testdata/volumes.txt"
	testIndex   = "../../../../testdata/index.txt"
)

// testEnv exposes the stores behind the services installed by setupTestServices.
type testEnv struct {
	runs   *memory.RunStore
	config *memory.ConfigStore
}

// setupTestServices installs services backed by in-memory stores.
func setupTestServices(t *testing.T) (*testEnv, func()) {
	t.Helper()

	table, err := domain.NewAliasTable("thalamic-nuclei-2024.1",
		domain.AliasRule{From: "Left-L-Sg", To: "Left-LSg"},
		domain.AliasRule{From: "Left-MDl", To: "Left-MDI"},
		domain.AliasRule{From: "Left-VLp", To: "Left-VLP"},
		domain.AliasRule{From: "Left-VM", To: "Left-VMP"},
	)
	require.NoError(t, err)

	env := &testEnv{
		runs:   memory.NewRunStore(),
		config: memory.NewConfigStore(),
	}
	parser := textlist.NewParser()
	aliases := memory.NewAliasStore(table)
	settings := services.NewSettingsService(env.config)

	SetServices(Services{
		Alignment: services.NewAlignmentService(parser, aliases, settings, env.runs),
		Aliases:   services.NewAliasService(aliases, parser),
		History:   services.NewHistoryService(env.runs),
		Settings:  settings,

		EncodeAliases: file.EncodeAliasTable,
	})

	return env, func() {
		SetServices(Services{})
	}
}

// executeCommand runs rootCmd with args and returns what it wrote.
func executeCommand(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	out := new(bytes.Buffer)
	errOut := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		resetFlags(rootCmd)
		logger.SetVerbose(false)
	}()

	err = rootCmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// resetFlags restores every flag in the command tree to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "roialign", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag, "verbose flag should exist")
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"align", "aliases", "history", "settings", "mcp", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestRootCmd_VerboseEnablesLogger(t *testing.T) {
	_, cleanup := setupTestServices(t)
	defer cleanup()

	logs := new(bytes.Buffer)
	logger.SetOutput(logs)
	defer logger.SetOutput(os.Stderr)

	_, _, err := executeCommand(t, "", "--verbose", "align", "--color", "never", testVolumes, testIndex)

	require.NoError(t, err)
	assert.Contains(t, logs.String(), "=== Alignment ===")
	assert.Contains(t, logs.String(), "[INFO] Resolved 22 of 52 records")
}

func TestCurrentSettings_DefaultsWithoutService(t *testing.T) {
	SetServices(Services{})

	settings, err := currentSettings()

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAppSettings(), settings)
}
