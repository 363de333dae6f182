package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/cargoscope/pkg/graph"
	"github.com/matzehuels/cargoscope/pkg/render"
)

const (
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
	formatPNG  = "png"
)

// validFormats is the set of supported export formats.
var validFormats = map[string]bool{formatJSON: true, formatDOT: true, formatSVG: true, formatPNG: true}

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	scanOpts
	output   string // output file path, "-" or empty for stdout (text formats)
	format   string // json, dot, svg, png
	detailed bool   // include full directories in diagram labels
}

// newExportCmd creates the export command for serializing the workspace
// graph to JSON, DOT, SVG, or PNG.
func newExportCmd() *cobra.Command {
	opts := exportOpts{format: formatJSON}

	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export the dependency graph to JSON, DOT, SVG, or PNG",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !validFormats[opts.format] {
				return fmt.Errorf("invalid format: %s (must be 'json', 'dot', 'svg', or 'png')", opts.format)
			}
			return runExport(cmd.Context(), workspaceRoot(args), &opts)
		},
	}

	opts.addScanFlags(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout for json/dot, graph.<format> otherwise)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json (default), dot, svg, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include crate directories in diagram labels")

	return cmd
}

func runExport(ctx context.Context, root string, opts *exportOpts) error {
	logger := loggerFromContext(ctx)

	reg, _, err := opts.buildWorkspace(ctx, root)
	if err != nil {
		return err
	}
	g := graph.FromRegistry(reg)
	logger.Debugf("Graph: %d nodes, %d edges", len(g.Nodes), len(g.Edges))

	switch opts.format {
	case formatJSON:
		if writeToStdout(opts.output) {
			return graph.Write(g, os.Stdout)
		}
		if err := graph.WriteFile(g, opts.output); err != nil {
			return err
		}
	case formatDOT:
		dot := render.ToDOT(g, render.Options{Detailed: opts.detailed})
		if writeToStdout(opts.output) {
			fmt.Print(dot)
			return nil
		}
		if err := os.WriteFile(opts.output, []byte(dot), 0o644); err != nil {
			return err
		}
	case formatSVG, formatPNG:
		dot := render.ToDOT(g, render.Options{Detailed: opts.detailed})

		spin := newSpinner(ctx, "Rendering "+strings.ToUpper(opts.format))
		spin.Start()
		var data []byte
		if opts.format == formatSVG {
			data, err = render.SVG(ctx, dot)
		} else {
			data, err = render.PNG(ctx, dot)
		}
		if err != nil {
			spin.StopWithError("Rendering failed")
			return err
		}
		spin.Stop()

		path := opts.output
		if path == "" || path == "-" {
			path = "graph." + opts.format
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return err
		}
		opts.output = path
	}

	printSuccess("Exported %s graph", opts.format)
	printFile(opts.output)
	printStats(len(g.Nodes), len(g.Edges))
	return nil
}

// writeToStdout reports whether a text format should go to stdout.
func writeToStdout(output string) bool {
	return output == "" || output == "-"
}
