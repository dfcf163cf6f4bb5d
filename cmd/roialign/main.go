// Command roialign reconciles ROI volume lists against atlas index lists.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/roialign/internal/adapters/driven/config/file"
	"github.com/custodia-labs/roialign/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/roialign/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/roialign/internal/adapters/driven/textlist"
	"github.com/custodia-labs/roialign/internal/adapters/driving/cli"
	"github.com/custodia-labs/roialign/internal/core/domain"
	"github.com/custodia-labs/roialign/internal/core/ports/driven"
	"github.com/custodia-labs/roialign/internal/core/services"
	"github.com/custodia-labs/roialign/internal/logger"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	cleanup, err := setup()
	if err != nil {
		stop()
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	// cobra reports command errors itself.
	err = cli.Execute(ctx)
	cleanup()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// setup wires the adapters into the services and hands them to the CLI.
// The returned func releases the run history database.
func setup() (func(), error) {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	aliasPath, err := configStore.AliasPath()
	if err != nil {
		return nil, err
	}
	aliases, err := aliasStore(aliasPath)
	if err != nil {
		return nil, err
	}

	// history.enabled only sets the --save default; the database opens on first use.
	runs := sqlite.NewLazyRunStore("")
	cleanup := func() {
		if err := runs.Close(); err != nil {
			logger.Warn("closing run history: %v", err)
		}
	}

	parser := textlist.NewParser()

	cli.SetServices(cli.Services{
		Alignment:     services.NewAlignmentService(parser, aliases, settingsService, runs),
		Aliases:       services.NewAliasService(aliases, parser),
		History:       services.NewHistoryService(runs),
		Settings:      settingsService,
		LoadAliasFile: loadAliasFile,
		EncodeAliases: file.EncodeAliasTable,
	})
	cli.SetVersion(version)

	return cleanup, nil
}

// aliasStore picks the file-backed store when a path is configured.
func aliasStore(path string) (driven.AliasStore, error) {
	if path == "" {
		return memory.NewAliasStore(nil), nil
	}
	store, err := file.NewAliasStore(path)
	if err != nil {
		return nil, fmt.Errorf("alias.path: %w", err)
	}
	return store, nil
}

func loadAliasFile(ctx context.Context, path string) (*domain.AliasTable, error) {
	store, err := file.NewAliasStore(path)
	if err != nil {
		return nil, err
	}
	return store.Load(ctx)
}
