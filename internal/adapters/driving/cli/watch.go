package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/roialign/internal/logger"
)

// watchDebounce coalesces the burst of events an editor save produces.
const watchDebounce = 200 * time.Millisecond

// watchAlign re-runs the alignment whenever an input or the alias file changes.
// Alignment errors are reported and watching continues.
func watchAlign(cmd *cobra.Command, args []string, opts alignOptions) error {
	for _, arg := range args {
		if arg == stdinArg {
			return errors.New("--watch needs file paths, not stdin")
		}
	}

	aliasPath := opts.aliasPath
	if aliasPath == "" && aliasService != nil {
		aliasPath = aliasService.Location()
	}

	paths := append([]string{}, args...)
	if aliasPath != "" {
		paths = append(paths, aliasPath)
	}
	targets, err := watchTargets(paths)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	// Directories are watched so files replaced by rename keep being seen.
	for dir := range watchDirs(targets) {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching %s: %w", dir, err)
		}
		logger.Debug("Watching %s", dir)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run := func(changed string) {
		if changed != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "\n%s changed, re-running\n", filepath.Base(changed))
		}
		if err := alignOnce(ctx, cmd, args, opts); err != nil {
			logger.Error("%v", err)
		}
	}

	run("")
	return watchLoop(ctx, watcher.Events, watcher.Errors, targets, watchDebounce, run)
}

// watchLoop calls run once per debounced burst of events on targets.
// It returns nil when ctx is done or the event channel closes.
func watchLoop(
	ctx context.Context,
	events <-chan fsnotify.Event,
	errs <-chan error,
	targets map[string]struct{},
	debounce time.Duration,
	run func(changed string),
) error {
	// Armed only while events are pending.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	var pending string
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !isRelevant(ev, targets) {
				continue
			}
			logger.Debug("Change: %s", ev)
			pending = ev.Name
			timer.Reset(debounce)

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Error("watch: %v", err)

		case <-timer.C:
			if pending == "" {
				continue
			}
			changed := pending
			pending = ""
			run(changed)
		}
	}
}

// isRelevant reports whether ev modifies one of the watched files.
func isRelevant(ev fsnotify.Event, targets map[string]struct{}) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	_, ok := targets[filepath.Clean(ev.Name)]
	return ok
}

// watchTargets returns the absolute, cleaned form of each path.
func watchTargets(paths []string) (map[string]struct{}, error) {
	targets := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolving %s: %w", p, err)
		}
		targets[abs] = struct{}{}
	}
	return targets, nil
}

// watchDirs returns the set of directories holding targets.
func watchDirs(targets map[string]struct{}) map[string]struct{} {
	dirs := make(map[string]struct{}, len(targets))
	for t := range targets {
		dirs[filepath.Dir(t)] = struct{}{}
	}
	return dirs
}
