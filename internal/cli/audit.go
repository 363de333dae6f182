package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoscope/pkg/workspace"
)

// newAuditCmd creates the audit command. It scans the workspace, links
// crates by their path dependencies, and prints the unused and
// single-consumer reports. With --root it appends the rooted tree.
func newAuditCmd() *cobra.Command {
	var opts scanOpts
	var rootSel string

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Report unused and single-consumer crates",
		Long: `Audit scans every manifest below the given path (default: current
directory), links crates by their local path dependencies, and prints
crates nothing depends on and crates with exactly one consumer. With
--root it also prints the dependency tree below that crate.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := opts.buildWorkspace(cmd.Context(), workspaceRoot(args))
			if err != nil {
				return err
			}

			var root *workspace.Project
			if rootSel != "" {
				root, err = reg.ResolveRoot(rootSel)
				if err != nil {
					return err
				}
			}
			workspace.WriteReport(os.Stdout, reg, root)
			return nil
		},
	}

	opts.addScanFlags(cmd)
	cmd.Flags().StringVar(&rootSel, "root", "", "crate to print the dependency tree for (directory, name, or substring)")

	return cmd
}
