package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/polyorder/pkg/euler"
	"github.com/matzehuels/polyorder/pkg/match"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorOrange = lipgloss.Color("166") // Burnt orange - gate labels
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleGate for gate labels in a sequence.
	StyleGate = lipgloss.NewStyle().Bold(true).Foreground(colorOrange)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Network Stats
// =============================================================================

// printNetworkStats prints the path count of one network on a single line.
func printNetworkStats(name string, col *euler.Collection, cached bool) {
	parts := []string{name, fmt.Sprintf("%d edges", col.EdgeCount)}
	switch {
	case !col.Exists:
		parts = append(parts, fmt.Sprintf("no Euler path (%d odd nets)", len(col.OddVertices)))
	case col.Truncated:
		parts = append(parts, fmt.Sprintf("%d paths (truncated)", col.Len()))
	default:
		parts = append(parts, fmt.Sprintf("%d paths", col.Len()))
	}

	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}

	line := "  "
	for i, part := range parts {
		if i > 0 {
			line += StyleDim.Render(" · ")
		}
		line += StyleDim.Render(part)
	}
	fmt.Println(line + StyleDim.Render(" · ") + statusStyle.Render(status))
}

// =============================================================================
// Sequences
// =============================================================================

// formatSequence renders gate labels in order.
func formatSequence(seq euler.Sequence) string {
	gates := make([]string, len(seq))
	for i, g := range seq {
		gates[i] = StyleGate.Render(g)
	}
	return strings.Join(gates, " ")
}

// formatWalk renders a path as nets joined by gate labels.
func formatWalk(p euler.Path) string {
	var b strings.Builder
	b.WriteString(p.Start)
	for _, s := range p.Steps {
		b.WriteString(StyleDim.Render(" -"))
		b.WriteString(StyleGate.Render(s.Label))
		b.WriteString(StyleDim.Render("- "))
		b.WriteString(s.Vertex)
	}
	return b.String()
}

// orderingTable lays out orderings with their first witness walks.
func orderingTable(orderings []match.Ordering) *table.Table {
	rows := make([][]string, len(orderings))
	for i, o := range orderings {
		rows[i] = []string{
			fmt.Sprintf("%d", i),
			formatSequence(o.Sequence),
			formatWalk(o.PullUp[0]),
			formatWalk(o.PullDown[0]),
		}
	}
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Gates", "Pull-up", "Pull-down").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

// printPaths writes one numbered line per path.
func printPaths(w io.Writer, paths []euler.Path, labelsOnly bool) {
	width := len(fmt.Sprint(len(paths)))
	for i, p := range paths {
		line := formatWalk(p)
		if labelsOnly {
			line = formatSequence(p.Labels())
		}
		fmt.Fprintf(w, "%s %s\n", StyleDim.Render(fmt.Sprintf("%*d", width, i+1)), line)
	}
}
