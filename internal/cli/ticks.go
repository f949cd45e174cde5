package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/axis2d/pkg/errors"
	"github.com/matzehuels/axis2d/pkg/render/axis"
	"github.com/matzehuels/axis2d/pkg/render/axis/layout"
)

type ticksOpts struct {
	min, max    float64
	labels      int
	labelFormat string
	noAdjust    bool
}

func (c *CLI) ticksCommand() *cobra.Command {
	def := axis.DefaultSpec()
	opts := ticksOpts{
		min:         def.Range[0],
		max:         def.Range[1],
		labels:      def.NumberOfLabels,
		labelFormat: def.LabelFormat,
	}

	cmd := &cobra.Command{
		Use:     "ticks",
		Short:   "Print the labelled range and label values",
		Example: "  axis2d ticks --min 0.25 --max 96.7 --labels 10",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.axis()
			if err != nil {
				return err
			}
			c.Logger.Debug("ticks", "requested", opts.labels, "adjusted", a.AdjustedNumberOfLabels())
			printTicks(a)
			return nil
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&opts.min, "min", opts.min, "first value of the data range")
	fs.Float64Var(&opts.max, "max", opts.max, "last value of the data range")
	fs.IntVar(&opts.labels, "labels", opts.labels, fmt.Sprintf("requested number of labels (%d-%d)", axis.MinLabels, axis.MaxLabels))
	fs.StringVar(&opts.labelFormat, "format", opts.labelFormat, "printf format of label values")
	fs.BoolVar(&opts.noAdjust, "no-adjust", false, "split the range evenly instead of rounding to nice numbers")

	return cmd
}

func (o ticksOpts) axis() (*axis.Axis, error) {
	if err := errors.ValidateRange(o.min, o.max); err != nil {
		return nil, err
	}
	if err := errors.ValidateLabelFormat(o.labelFormat); err != nil {
		return nil, err
	}
	a := axis.New(nil)
	a.SetRange(o.min, o.max)
	a.SetNumberOfLabels(o.labels)
	a.SetAdjustLabels(!o.noAdjust)
	a.SetLabelFormat(o.labelFormat)
	return a, nil
}

// adjusted reads the labelled range back out of a.
func adjusted(a *axis.Axis) layout.Adjusted {
	return layout.Adjusted{
		Range:    a.AdjustedRange(),
		Labels:   a.AdjustedNumberOfLabels(),
		Interval: a.AdjustedInterval(),
	}
}

func printTicks(a *axis.Axis) {
	adj := adjusted(a)
	printKeyValue("Range", fmt.Sprintf("%s … %s", formatNumber(adj.Range[0]), formatNumber(adj.Range[1])))
	printKeyValue("Labels", strconv.Itoa(adj.Labels))
	printKeyValue("Interval", formatNumber(adj.Interval))
	fmt.Println(ticksTable(adj, a.LabelFormat()))
}

func formatNumber(v float64) string { return strconv.FormatFloat(v, 'g', 10, 64) }

// ticksTable renders the label values of adj as a table.
func ticksTable(adj layout.Adjusted, format string) string {
	texts := adj.Texts(format)
	rows := make([][]string, len(texts))
	for i, v := range adj.Values() {
		rows[i] = []string{strconv.Itoa(i), formatNumber(v), texts[i]}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Value", "Label").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case col == 2:
				return StyleNumber
			}
			return StyleDim
		}).
		Render()
}
