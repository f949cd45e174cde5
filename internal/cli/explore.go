package cli

import (
	"fmt"
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/axis2d/pkg/render/axis"
)

var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

func (c *CLI) exploreCommand() *cobra.Command {
	def := axis.DefaultSpec()
	opts := ticksOpts{
		min:         def.Range[0],
		max:         def.Range[1],
		labels:      def.NumberOfLabels,
		labelFormat: def.LabelFormat,
	}

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Adjust a range interactively and watch the labels change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.axis()
			if err != nil {
				return err
			}
			final, err := tea.NewProgram(NewExploreModel(a), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			m := final.(ExploreModel)
			c.Logger.Debug("explore finished", "range", m.Axis.Range(), "labels", m.Axis.NumberOfLabels())
			printTicks(m.Axis)
			printNextStep("Render it", m.renderCommandLine())
			return nil
		},
	}

	fs := cmd.Flags()
	fs.Float64Var(&opts.min, "min", opts.min, "initial first value")
	fs.Float64Var(&opts.max, "max", opts.max, "initial last value")
	fs.IntVar(&opts.labels, "labels", opts.labels, "initial number of labels")
	fs.StringVar(&opts.labelFormat, "format", opts.labelFormat, "printf format of label values")

	return cmd
}

// =============================================================================
// ExploreModel - Interactive range explorer
// =============================================================================

// exploreField is the setting the arrow keys change.
type exploreField int

const (
	fieldMin exploreField = iota
	fieldMax
	fieldLabels
	fieldCount
)

func (f exploreField) String() string {
	switch f {
	case fieldMin:
		return "Min"
	case fieldMax:
		return "Max"
	default:
		return "Labels"
	}
}

// ExploreModel is the bubbletea model of "axis2d explore".
type ExploreModel struct {
	Axis  *axis.Axis
	Field exploreField
}

// NewExploreModel creates an explorer editing a.
func NewExploreModel(a *axis.Axis) ExploreModel {
	return ExploreModel{Axis: a}
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case "q", "ctrl+c", "esc", "enter":
		return m, tea.Quit
	case "up", "k", "shift+tab":
		m.Field = (m.Field + fieldCount - 1) % fieldCount
	case "down", "j", "tab":
		m.Field = (m.Field + 1) % fieldCount
	case "left", "h", "-":
		m.nudge(-1)
	case "right", "l", "+":
		m.nudge(1)
	case "a":
		m.Axis.SetAdjustLabels(!m.Axis.AdjustLabels())
	}
	return m, nil
}

// nudge moves the selected setting one step in direction dir. Range
// bounds move by a tenth of the order of magnitude of the larger bound
// or the span, whichever is bigger, so repeated presses keep their size.
func (m ExploreModel) nudge(dir int) {
	a := m.Axis
	r := a.Range()
	step := nudgeStep(max(math.Abs(r[0]), math.Abs(r[1]), math.Abs(r[1]-r[0])))
	switch m.Field {
	case fieldMin:
		a.SetRange(r[0]+float64(dir)*step, r[1])
	case fieldMax:
		a.SetRange(r[0], r[1]+float64(dir)*step)
	case fieldLabels:
		a.SetNumberOfLabels(a.NumberOfLabels() + dir)
	}
}

func nudgeStep(magnitude float64) float64 {
	magnitude = math.Abs(magnitude)
	if magnitude == 0 {
		return 1
	}
	return math.Pow(10, math.Floor(math.Log10(magnitude))) / 10
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Axis Explorer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ select  ←/→ change  a adjust  q quit"))
	b.WriteString("\n\n")

	r := m.Axis.Range()
	values := map[exploreField]string{
		fieldMin:    formatNumber(r[0]),
		fieldMax:    formatNumber(r[1]),
		fieldLabels: fmt.Sprint(m.Axis.NumberOfLabels()),
	}
	for f := fieldMin; f < fieldCount; f++ {
		line := fmt.Sprintf("%-8s %s", f, values[f])
		if f == m.Field {
			b.WriteString(listSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(listNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	adjust := "off"
	if m.Axis.AdjustLabels() {
		adjust = "on"
	}
	b.WriteString(listDimStyle.Render("  nice numbers " + adjust))
	b.WriteString("\n\n")

	adj := adjusted(m.Axis)
	b.WriteString(ticksTable(adj, m.Axis.LabelFormat()))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s … %s, step %s",
		formatNumber(adj.Range[0]), formatNumber(adj.Range[1]), formatNumber(adj.Interval))))
	b.WriteString("\n")

	return b.String()
}

// renderCommandLine is the render invocation that reproduces the explored
// axis.
func (m ExploreModel) renderCommandLine() string {
	r := m.Axis.Range()
	line := fmt.Sprintf("axis2d render --min %s --max %s --labels %d",
		formatNumber(r[0]), formatNumber(r[1]), m.Axis.NumberOfLabels())
	if !m.Axis.AdjustLabels() {
		line += " --no-adjust"
	}
	if f := m.Axis.LabelFormat(); f != axis.DefaultSpec().LabelFormat {
		line += fmt.Sprintf(" --format %q", f)
	}
	return line
}
