package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoscope/pkg/workspace"
)

// stdoutIsTerminal reports whether stdout is attached to a terminal.
func stdoutIsTerminal() bool {
	info, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

// newTreeCmd creates the tree command. It prints the depth-first path
// dependency tree below a root crate. Without a root argument on a
// terminal it opens an interactive picker.
func newTreeCmd() *cobra.Command {
	var opts scanOpts
	var path string

	cmd := &cobra.Command{
		Use:   "tree [root]",
		Short: "Print the dependency tree below a crate",
		Long: `Tree prints the depth-first path dependency tree below the given
crate. The root may be a directory path, an exact directory name, or a
unique substring. When no root is given and stdout is a terminal, an
interactive picker lists the workspace crates.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, _, err := opts.buildWorkspace(cmd.Context(), path)
			if err != nil {
				return err
			}

			var root *workspace.Project
			if len(args) > 0 {
				root, err = reg.ResolveRoot(args[0])
				if err != nil {
					return err
				}
			} else {
				if !stdoutIsTerminal() {
					return cmd.Usage()
				}
				root, err = pickProject(reg.Projects())
				if err != nil {
					return err
				}
				if root == nil {
					return nil // user quit the picker
				}
			}

			reg.WriteTree(os.Stdout, root)
			return nil
		},
	}

	opts.addScanFlags(cmd)
	cmd.Flags().StringVar(&path, "path", ".", "workspace root to scan")

	return cmd
}
