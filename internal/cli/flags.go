package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/missionlayout/pkg/config"
	apperrors "github.com/matzehuels/missionlayout/pkg/errors"
	"github.com/matzehuels/missionlayout/pkg/graph"
	"github.com/matzehuels/missionlayout/pkg/layout"
	"github.com/matzehuels/missionlayout/pkg/pipeline"
)

// layoutFlags are the generation flags shared by every command that builds
// or loads a layout. Flags override values from --config.
type layoutFlags struct {
	config   string
	from     string
	layout   string
	size     int
	width    int
	twoStart bool
	options  []string
	noCache  bool
	refresh  bool
}

func (f *layoutFlags) register(cmd *cobra.Command, allowFrom bool) {
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", "", "generation file (.toml, .yaml, .yml or .json)")
	fl.StringVarP(&f.layout, "layout", "l", "", "layout kind: "+kindList()+" (default "+pipeline.DefaultLayout+")")
	fl.IntVarP(&f.size, "size", "n", 0, "number of mission slots")
	fl.IntVarP(&f.width, "width", "w", 0, "layout width (grid, hopscotch, gauntlet, blitz)")
	fl.BoolVar(&f.twoStart, "two-start", false, "use two entrance slots (grid, hopscotch)")
	fl.StringArrayVarP(&f.options, "option", "O", nil, "extra layout option as key=value (repeatable)")
	fl.BoolVar(&f.noCache, "no-cache", false, "disable caching")
	fl.BoolVar(&f.refresh, "refresh", false, "regenerate even when a cached layout exists")
	if allowFrom {
		fl.StringVar(&f.from, "from", "", "read a layout document written by 'generate' instead of generating")
		cmd.MarkFlagsMutuallyExclusive("from", "config")
	}
}

// resolve merges the optional configuration file with the flags set on cmd.
func (f *layoutFlags) resolve(cmd *cobra.Command) (pipeline.Options, error) {
	var opts pipeline.Options
	if f.config != "" {
		file, err := config.Load(f.config)
		if err != nil {
			return opts, err
		}
		opts = file.PipelineOptions()
	}

	fl := cmd.Flags()
	if fl.Changed("layout") {
		opts.Layout = f.layout
	}
	if fl.Changed("size") {
		opts.Size = f.size
	}

	set := func(key string, value any) {
		if opts.LayoutOptions == nil {
			opts.LayoutOptions = make(map[string]any)
		}
		opts.LayoutOptions[key] = value
	}
	if fl.Changed("width") {
		set(layout.OptionWidth, f.width)
	}
	if fl.Changed("two-start") {
		set(layout.OptionTwoStartPositions, f.twoStart)
	}
	for _, raw := range f.options {
		key, value, err := apperrors.ParseOptionAssignment(raw)
		if err != nil {
			return opts, err
		}
		set(key, value)
	}

	if opts.Size == 0 {
		return opts, apperrors.New(apperrors.ErrCodeInvalidSize, "size is required (use --size or a config file)")
	}
	opts.Refresh = f.refresh
	return opts, nil
}

// load returns the layout document named by --from, or generates one. The
// returned options carry the file's select, format and detail settings.
func (c *CLI) load(ctx context.Context, cmd *cobra.Command, f *layoutFlags) (graph.Layout, pipeline.Options, bool, error) {
	if f.from != "" {
		doc, err := graph.ReadLayoutFile(f.from)
		if err != nil {
			return graph.Layout{}, pipeline.Options{}, false, err
		}
		c.Logger.Debug("loaded layout", "path", f.from, "layout", doc.Layout, "size", doc.EffectiveSize)
		return doc, pipeline.Options{Layout: doc.Layout, Size: doc.Size, Logger: c.Logger}, false, nil
	}

	opts, err := f.resolve(cmd)
	if err != nil {
		return graph.Layout{}, opts, false, err
	}
	opts.Logger = c.Logger

	runner, err := c.newRunner(ctx, f.noCache)
	if err != nil {
		return graph.Layout{}, opts, false, err
	}
	defer runner.Close()

	doc, hit, err := runner.GenerateWithCacheInfo(ctx, opts)
	return doc, opts, hit, err
}

func kindList() string {
	names := make([]string, 0, len(layout.Kinds()))
	for _, k := range layout.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}
