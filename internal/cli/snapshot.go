package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoscope/internal/config"
	"github.com/matzehuels/cargoscope/pkg/graph"
	"github.com/matzehuels/cargoscope/pkg/snapshot"
)

// newSnapshotCmd creates the snapshot command group for persisting audit
// runs to MongoDB and browsing earlier ones.
func newSnapshotCmd() *cobra.Command {
	var mongoURI, database string

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Persist and browse audit snapshots",
		Long: `Snapshot stores point-in-time captures of the workspace graph in
MongoDB, so the dependency structure can be compared across branches or
refactorings. Connection settings come from cargoscope.toml and can be
overridden with --mongo-uri and --database.`,
	}

	cmd.PersistentFlags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection string (default from config)")
	cmd.PersistentFlags().StringVar(&database, "database", "", "MongoDB database name (default from config)")

	cmd.AddCommand(newSnapshotSaveCmd(&mongoURI, &database))
	cmd.AddCommand(newSnapshotListCmd(&mongoURI, &database))
	cmd.AddCommand(newSnapshotShowCmd(&mongoURI, &database))

	return cmd
}

// connectStore resolves snapshot settings for the workspace at root and
// opens the store.
func connectStore(ctx context.Context, root, mongoURI, database string) (*snapshot.Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(abs)
	if err != nil {
		return nil, err
	}
	if mongoURI == "" {
		mongoURI = cfg.Snapshots.MongoURI
	}
	if database == "" {
		database = cfg.Snapshots.Database
	}
	return snapshot.Connect(ctx, mongoURI, database)
}

func newSnapshotSaveCmd(mongoURI, database *string) *cobra.Command {
	var opts scanOpts

	cmd := &cobra.Command{
		Use:   "save [path]",
		Short: "Capture the current workspace graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			root := workspaceRoot(args)

			reg, _, err := opts.buildWorkspace(ctx, root)
			if err != nil {
				return err
			}

			store, err := connectStore(ctx, root, *mongoURI, *database)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			abs, err := filepath.Abs(root)
			if err != nil {
				return err
			}
			snap := snapshot.New(abs, graph.FromRegistry(reg))
			if err := store.Save(ctx, snap); err != nil {
				return err
			}

			printSuccess("Saved snapshot %s", snap.ID)
			printStats(snap.Nodes, snap.Edges)
			return nil
		},
	}

	opts.addScanFlags(cmd)
	return cmd
}

func newSnapshotListCmd(mongoURI, database *string) *cobra.Command {
	var limit int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored snapshots, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := connectStore(ctx, ".", *mongoURI, *database)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			snaps, err := store.List(ctx, limit)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				fmt.Println(styleDim.Render("no snapshots stored"))
				return nil
			}
			for _, s := range snaps {
				fmt.Printf("%s  %s  %s\n",
					s.ID,
					s.CreatedAt.Format("2006-01-02 15:04:05"),
					styleDim.Render(fmt.Sprintf("%s (%d nodes, %d edges, %d unused)",
						s.Root, s.Nodes, s.Edges, len(s.Unused))))
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&limit, "limit", 20, "maximum snapshots to list (0 for all)")
	return cmd
}

func newSnapshotShowCmd(mongoURI, database *string) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a stored snapshot's graph as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := connectStore(ctx, ".", *mongoURI, *database)
			if err != nil {
				return err
			}
			defer store.Close(ctx)

			snap, err := store.Get(ctx, args[0])
			if err != nil {
				return err
			}
			return graph.Write(snap.Graph, os.Stdout)
		},
	}
}
