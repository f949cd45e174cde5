package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/axis2d/pkg/cache"
	"github.com/matzehuels/axis2d/pkg/config"
	"github.com/matzehuels/axis2d/pkg/errors"
	"github.com/matzehuels/axis2d/pkg/render/axis"
	"github.com/matzehuels/axis2d/pkg/render/axis/sink"
	"github.com/matzehuels/axis2d/pkg/render/viewport"
)

// stdout as an output path writes the artifact to standard output.
const stdout = "-"

// renderOpts holds the flags of the render command. Axis flags are only
// applied when given, so a file's values survive unless overridden.
type renderOpts struct {
	output string // output file, "-" for stdout; derived from the input when empty
	format string // svg, png or json

	min, max      float64
	labels        int
	labelFormat   string
	title         string
	p1, p2        string
	width, height int
	noAdjust      bool

	hideAxis, hideTicks, hideLabels, hideTitle bool

	cache cacheOpts
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: sink.FormatSVG}
	def := config.Default()

	cmd := &cobra.Command{
		Use:   "render [file.toml]",
		Short: "Render an axis to SVG, PNG or JSON",
		Long: `Render an axis described by a TOML file, by flags, or both. Flags override
the file. Without a file the axis starts from the built-in defaults.`,
		Example: `  axis2d render --min 0 --max 97 --title "Load (%)" -o load.svg
  axis2d render axis.toml -t png --width 1200 --height 300
  axis2d render --min -1 --max 1 --p1 0.5,0 --p2 0.5,1 -t json -o -`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			f, err := loadFile(input)
			if err != nil {
				return err
			}
			o, err := opts.overrides(cmd)
			if err != nil {
				return err
			}
			if err := f.Apply(o); err != nil {
				return err
			}
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runRender(ctx, f, input, &opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.output, "output", "o", "", `output file, "-" for stdout (default: input name or axis.<type>)`)
	fs.StringVarP(&opts.format, "type", "t", opts.format, "output type: svg, png or json")
	fs.Float64Var(&opts.min, "min", def.Axis.Range[0], "first value of the data range")
	fs.Float64Var(&opts.max, "max", def.Axis.Range[1], "last value of the data range")
	fs.IntVar(&opts.labels, "labels", def.Axis.NumberOfLabels, fmt.Sprintf("requested number of labels (%d-%d)", axis.MinLabels, axis.MaxLabels))
	fs.StringVar(&opts.labelFormat, "format", def.Axis.LabelFormat, "printf format of label values")
	fs.StringVar(&opts.title, "title", "", "axis title")
	fs.StringVar(&opts.p1, "p1", def.Axis.Point1.String(), `first endpoint, "x,y" or "system:x,y"`)
	fs.StringVar(&opts.p2, "p2", def.Axis.Point2.String(), `second endpoint, "x,y" or "system:x,y"`)
	fs.IntVar(&opts.width, "width", def.Viewport.Width, "viewport width in pixels")
	fs.IntVar(&opts.height, "height", def.Viewport.Height, "viewport height in pixels")
	fs.BoolVar(&opts.noAdjust, "no-adjust", false, "split the range evenly instead of rounding to nice numbers")
	fs.BoolVar(&opts.hideAxis, "hide-axis", false, "do not draw the axis line")
	fs.BoolVar(&opts.hideTicks, "hide-ticks", false, "do not draw tick marks")
	fs.BoolVar(&opts.hideLabels, "hide-labels", false, "do not draw labels")
	fs.BoolVar(&opts.hideTitle, "hide-title", false, "do not draw the title")
	opts.cache.register(cmd)

	return cmd
}

// overrides collects the axis flags the user actually set.
func (o *renderOpts) overrides(cmd *cobra.Command) (config.Overrides, error) {
	var out config.Overrides
	changed := cmd.Flags().Changed

	if changed("min") {
		out.Min = &o.min
	}
	if changed("max") {
		out.Max = &o.max
	}
	if changed("labels") {
		out.Labels = &o.labels
	}
	if changed("format") {
		out.Format = &o.labelFormat
	}
	if changed("title") {
		out.Title = &o.title
	}
	if changed("width") {
		out.Width = &o.width
	}
	if changed("height") {
		out.Height = &o.height
	}
	if changed("no-adjust") {
		adjust := !o.noAdjust
		out.Adjust = &adjust
	}
	for name, s := range map[string]string{"p1": o.p1, "p2": o.p2} {
		if !changed(name) {
			continue
		}
		c, err := viewport.ParseCoordinate(s)
		if err != nil {
			return out, errors.Wrap(errors.ErrCodeInvalidInput, err, "--%s", name)
		}
		if name == "p1" {
			out.P1 = &c
		} else {
			out.P2 = &c
		}
	}
	for part, hide := range map[string]bool{"axis": o.hideAxis, "ticks": o.hideTicks, "labels": o.hideLabels, "title": o.hideTitle} {
		if hide {
			out.Hide = append(out.Hide, part)
		}
	}
	return out, nil
}

// loadFile reads an axis file, or returns the defaults for an empty path.
func loadFile(path string) (config.File, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// outputPath picks the file to write: the explicit output, else the input
// file with the extension swapped, else axis.<format>.
func outputPath(output, input, format string) string {
	switch {
	case output != "":
		return output
	case input != "":
		return strings.TrimSuffix(input, filepath.Ext(input)) + "." + format
	default:
		return "axis." + format
	}
}

func (c *CLI) runRender(ctx context.Context, f config.File, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	if err := errors.ValidateOutputFormat(opts.format); err != nil {
		return err
	}
	out := outputPath(opts.output, input, opts.format)
	if out != stdout {
		if err := errors.ValidatePath(out); err != nil {
			return err
		}
	}

	store, err := c.openCache(ctx, opts.cache)
	if err != nil {
		return err
	}
	defer store.Close()

	prog := newProgress(logger)
	a := axis.NewFromSpec(f.Axis, nil, axis.WithLogger(logger))
	key := cache.ArtifactKey(f, f.Viewport.Width, f.Viewport.Height, opts.format)

	data, hit, err := store.Get(ctx, key)
	if err != nil {
		logger.Warn("cache lookup failed", "err", err)
	}
	if !hit {
		data, err = sink.Render(a, f.Viewport.Fixed(), opts.format)
		if err != nil {
			return err
		}
		if err := store.Set(ctx, key, data, cache.DefaultTTL); err != nil {
			logger.Warn("cache store failed", "err", err)
		}
	}
	logger.Debug("axis",
		"range", a.AdjustedRange(),
		"labels", a.AdjustedNumberOfLabels(),
		"cached", hit)

	if out == stdout {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", out)
	}
	prog.done("Rendered " + opts.format)

	printSuccess("Rendered axis %s", StyleNumber.Render(fmt.Sprintf("%dx%d", f.Viewport.Width, f.Viewport.Height)))
	fmt.Println(statsLine(a.AdjustedNumberOfLabels(), a.AdjustedInterval(), hit))
	printFile(out)
	return nil
}
