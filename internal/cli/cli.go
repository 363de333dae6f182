// Package cli implements the cargoscope command-line interface.
//
// Commands audit a Cargo workspace's local path dependencies: `audit`
// prints the unused and single-consumer reports, `tree` prints a rooted
// dependency tree, `export` serializes the graph (JSON, DOT, SVG, PNG),
// `serve` exposes results over HTTP, and `snapshot` persists audit runs
// to MongoDB.
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"
	"path/filepath"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoscope/internal/config"
	"github.com/matzehuels/cargoscope/pkg/buildinfo"
	"github.com/matzehuels/cargoscope/pkg/workspace"
)

// appName is the application name used for directories and display.
const appName = "cargoscope"

// Execute runs the cargoscope CLI with the given base context.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Cargoscope audits path dependencies in Cargo workspaces",
		Long: `Cargoscope discovers every Cargo.toml in a workspace, links crates by
their local path dependencies, and reports crates nothing depends on,
crates with a single consumer, and rooted dependency trees.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newAuditCmd())
	root.AddCommand(newTreeCmd())
	root.AddCommand(newExportCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newSnapshotCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}

// scanOpts holds flags shared by every command that builds the graph.
type scanOpts struct {
	manifest string // manifest filename override
	noIgnore bool   // walk ignored directories too
}

// addScanFlags registers the shared scan flags on cmd.
func (o *scanOpts) addScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.manifest, "manifest", "", "manifest filename (default from config, Cargo.toml)")
	cmd.Flags().BoolVar(&o.noIgnore, "no-ignore", false, "do not skip ignored directories (.git, target)")
}

// buildWorkspace loads the workspace config for root, applies flag
// overrides, and constructs the linked registry.
func (o *scanOpts) buildWorkspace(ctx context.Context, root string) (*workspace.Registry, config.Config, error) {
	logger := loggerFromContext(ctx)

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, config.Config{}, err
	}

	cfg, err := config.Load(abs)
	if err != nil {
		return nil, config.Config{}, err
	}

	opts := workspace.Options{
		Manifest: cfg.Manifest,
		Ignore:   cfg.Ignore,
		Logf:     func(format string, args ...any) { logger.Debugf(format, args...) },
	}
	if o.manifest != "" {
		opts.Manifest = o.manifest
	}
	if o.noIgnore {
		opts.Ignore = []string{}
	}

	prog := newProgress(logger)
	reg, err := workspace.Build(abs, opts)
	if err != nil {
		return nil, config.Config{}, err
	}
	prog.done("Scanned %d projects", reg.Len())

	return reg, cfg, nil
}

// workspaceRoot returns the positional root argument, defaulting to the
// current directory.
func workspaceRoot(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
