package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"harvest/internal/config"
	"harvest/internal/fsops"
	"harvest/internal/library"
	"harvest/internal/logging"
	"harvest/internal/reconcile"
	"harvest/internal/scan"
)

func runSync(cmd *cobra.Command, ctx *commandContext, args []string, dryRun bool) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}

	incoming, libraryRoot, err := resolveRoots(args, cfg)
	if err != nil {
		_ = cmd.Usage()
		return err
	}
	if err := requireDirectory(incoming); err != nil {
		return err
	}
	if err := requireDirectory(libraryRoot); err != nil {
		return err
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("ensure directories: %w", err)
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	logger = logger.With(logging.String("run_id", uuid.NewString()))

	lock := flock.New(filepath.Join(cfg.Paths.LogDir, "harvest.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return errors.New("another harvest run is already in progress")
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			logger.Warn("failed to release run lock", logging.Error(err))
		}
	}()

	if dryRun {
		logger.Info("dry run: no filesystem changes will be made")
	}

	inv, err := scan.Analyze(incoming, cfg.Classifier(), logger)
	if err != nil {
		return err
	}

	var exec fsops.Executor = fsops.Real{}
	if dryRun {
		exec = fsops.Dry{}
	}
	layout := library.Layout{
		MoviesDir: cfg.Library.MoviesDir,
		ShowsDir:  cfg.Library.ShowsDir,
	}
	res, err := reconcile.New(exec, layout, logger).Sync(inv, libraryRoot)
	if err != nil {
		return err
	}

	printSummary(cmd, res, dryRun)
	return nil
}

// resolveRoots picks the source and library directories from positional
// arguments, falling back to the configuration for whichever is missing.
func resolveRoots(args []string, cfg *config.Config) (string, string, error) {
	incoming := cfg.Paths.IncomingDir
	libraryRoot := cfg.Paths.LibraryDir
	if len(args) > 0 {
		expanded, err := config.ExpandPath(args[0])
		if err != nil {
			return "", "", fmt.Errorf("resolve incoming directory: %w", err)
		}
		incoming = expanded
	}
	if len(args) > 1 {
		expanded, err := config.ExpandPath(args[1])
		if err != nil {
			return "", "", fmt.Errorf("resolve library directory: %w", err)
		}
		libraryRoot = expanded
	}
	if incoming == "" || libraryRoot == "" {
		return "", "", errors.New("incoming and library directories must be given as arguments or configured")
	}
	return incoming, libraryRoot, nil
}

func requireDirectory(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fsops.Wrap(fsops.ErrConfiguration, "inspect directory", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", fsops.ErrConfiguration, path)
	}
	return nil
}

func printSummary(cmd *cobra.Command, res *reconcile.Result, dryRun bool) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(res.Created)+len(res.Removed)+len(res.Pruned)+len(res.Extra))
	for _, link := range res.Created {
		rows = append(rows, []string{"link", link.Target, link.Source})
	}
	for _, path := range res.Removed {
		rows = append(rows, []string{"remove", path, ""})
	}
	for _, path := range res.Pruned {
		rows = append(rows, []string{"prune", path, ""})
	}
	for _, path := range res.Extra {
		rows = append(rows, []string{"extra", path, "left in place"})
	}

	if dryRun {
		fmt.Fprintln(out, "Dry run; planned actions:")
	}
	if len(rows) == 0 {
		fmt.Fprintln(out, "Library already in sync; nothing to do.")
		return
	}
	fmt.Fprintln(out, renderTable([]string{"Action", "Path", "Detail"}, rows))
	fmt.Fprintf(out, "%d linked, %d removed, %d pruned, %d extra\n",
		len(res.Created), len(res.Removed), len(res.Pruned), len(res.Extra))
}
