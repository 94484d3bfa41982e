package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/pipeline"
)

// renderCommand creates the render command for Graphviz and text output.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		lf layoutFlags
		of outputFlags
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a layout as SVG, DOT, JSON or text",
		Long: `Render a layout as a node-link diagram.

The format is taken from --format, or inferred from the --output extension
(.svg, .dot, .gv, .json, .txt). Selected slots (--select) are highlighted.
SVG and DOT outputs are cached by layout hash and render options.`,
		Example: `  missionlayout render -l hopscotch -n 13 -o hopscotch.svg
  missionlayout render --from mission.json -s entrances -o mission.dot
  missionlayout render -c mission.yaml -f svg,dot -o out/mission`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			doc, opts, _, err := c.load(ctx, cmd, &lf)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				if format, ok := formatForExtension(filepath.Ext(of.output)); ok {
					of.formats = format
				}
			}
			opts.Formats = nil
			of.apply(cmd, &opts)
			return c.runRender(ctx, cmd.OutOrStdout(), doc, opts, lf.noCache, of.output)
		},
	}

	lf.register(cmd, true)
	of.register(cmd, pipeline.FormatSVG)

	return cmd
}

// runRender resolves the selection and renders every requested format.
func (c *CLI) runRender(ctx context.Context, w io.Writer, doc graph.Layout, opts pipeline.Options, noCache bool, output string) error {
	selection, err := pipeline.Select(doc, opts.Select...)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	artifacts, hit, err := runner.RenderWithCacheInfo(ctx, doc, selection, opts)
	if err != nil {
		return err
	}
	if hit {
		c.Logger.Debug("artifacts from cache", "formats", opts.Formats)
	}

	if output == "" && len(opts.Formats) == 1 {
		_, err := w.Write(artifacts[opts.Formats[0]])
		return err
	}

	base := output
	if base == "" {
		base = fmt.Sprintf("%s-%d", doc.Layout, doc.EffectiveSize)
	}
	paths, err := writeArtifacts(artifacts, opts.Formats, output, base)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(paths)))

	printSuccess(w, "Rendered %s layout", doc.Layout)
	for _, p := range paths {
		printFile(w, p)
	}
	return nil
}
