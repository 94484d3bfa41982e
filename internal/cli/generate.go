package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/missionlayout/pkg/pipeline"
)

// outputFlags are the select and render flags of generate and render.
type outputFlags struct {
	output   string
	formats  string
	selects  []string
	detailed bool
}

func (f *outputFlags) register(cmd *cobra.Command, defaultFormat string) {
	fl := cmd.Flags()
	fl.StringVarP(&f.output, "output", "o", "", "output file (single format) or base path (multiple formats)")
	fl.StringVarP(&f.formats, "format", "f", defaultFormat, "output format(s): json, dot, svg, text (comma-separated)")
	fl.StringArrayVarP(&f.selects, "select", "s", nil, "index term to resolve and highlight (repeatable)")
	fl.BoolVar(&f.detailed, "detailed", false, "show slot flags and metadata in diagram labels")
}

// apply overrides file-provided settings with the flags set on cmd.
func (f *outputFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	fl := cmd.Flags()
	if fl.Changed("format") || len(opts.Formats) == 0 {
		opts.Formats = parseFormats(f.formats)
	}
	opts.SetRenderDefaults()
	if fl.Changed("select") {
		opts.Select = f.selects
	}
	if fl.Changed("detailed") {
		opts.Detailed = f.detailed
	}
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		lf layoutFlags
		of outputFlags
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a mission layout",
		Long: `Generate a mission layout and write it as JSON, DOT, SVG or text.

The layout is described by flags or a configuration file (--config); flags
win over file values. Without --output a single format is written to stdout.

Results are cached locally for faster subsequent runs.`,
		Example: `  missionlayout generate --layout grid --size 12 --two-start
  missionlayout generate -c mission.toml -f json,svg -o mission
  missionlayout generate -l hopscotch -n 13 -s "corner(2)" -f text`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := lf.resolve(cmd)
			if err != nil {
				return err
			}
			of.apply(cmd, &opts)
			return c.runGenerate(cmd.Context(), cmd.OutOrStdout(), opts, lf.noCache, of.output)
		},
	}

	lf.register(cmd, false)
	of.register(cmd, pipeline.FormatJSON)

	return cmd
}

// runGenerate executes the pipeline and writes every artifact.
func (c *CLI) runGenerate(ctx context.Context, w io.Writer, opts pipeline.Options, noCache bool, output string) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}

	if output == "" && len(opts.Formats) == 1 {
		_, err := w.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	base := output
	if base == "" {
		base = fmt.Sprintf("%s-%d", result.Layout.Layout, result.Layout.EffectiveSize)
	}
	paths, err := writeArtifacts(result.Artifacts, opts.Formats, output, base)
	if err != nil {
		return err
	}

	printSuccess(w, "Generated %s layout", result.Layout.Layout)
	for _, p := range paths {
		printFile(w, p)
	}
	printStats(w, result.Stats.SlotCount, result.Stats.EdgeCount, result.CacheInfo.LayoutHit)
	fmt.Fprintln(w)
	printNextStep(w, "Explore", appName+" explore --from "+paths[0])
	return nil
}

// writeArtifacts writes rendered outputs to disk. A single format goes to
// output verbatim; several formats go to base.<format>.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, base string) ([]string, error) {
	if len(formats) == 1 && output != "" {
		if err := os.WriteFile(output, artifacts[formats[0]], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", output, err)
		}
		return []string{output}, nil
	}

	base = basePath(base)
	paths := make([]string, 0, len(formats))
	for _, format := range formats {
		path := base + "." + extension(format)
		if err := os.WriteFile(path, artifacts[format], 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// basePath strips a known format extension so "out.svg" and "out" both
// yield "out.json", "out.svg", ... for multiple formats.
func basePath(output string) string {
	ext := filepath.Ext(output)
	if _, ok := formatForExtension(ext); ok {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

func extension(format string) string {
	if format == pipeline.FormatText {
		return "txt"
	}
	return format
}

// formatForExtension maps a file extension to its output format.
func formatForExtension(ext string) (string, bool) {
	switch strings.ToLower(ext) {
	case ".json":
		return pipeline.FormatJSON, true
	case ".dot", ".gv":
		return pipeline.FormatDOT, true
	case ".svg":
		return pipeline.FormatSVG, true
	case ".txt":
		return pipeline.FormatText, true
	}
	return "", false
}
