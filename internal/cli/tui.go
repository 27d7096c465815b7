package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/polyorder/pkg/match"
	"github.com/matzehuels/polyorder/pkg/pipeline"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle    = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var flags solveFlags

	cmd := &cobra.Command{
		Use:   "browse [circuit]",
		Short: "Page through shared orderings and their witness paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.solve(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			if len(res.Orderings) == 0 {
				printSolveResult(res)
				return nil
			}
			m, err := tea.NewProgram(NewOrderingListModel(res), tea.WithContext(cmd.Context())).Run()
			if err != nil {
				return err
			}
			if sel := m.(OrderingListModel).Selected; sel != nil {
				printSuccess("%s", formatSequence(sel.Sequence))
				printDetail("pull-up:   %s", sel.PullUp[0])
				printDetail("pull-down: %s", sel.PullDown[0])
			}
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

// =============================================================================
// OrderingListModel - Interactive ordering selection
// =============================================================================

// OrderingListModel is the bubbletea model for browsing orderings. The
// detail pane pages through every witness path of the ordering under the
// cursor.
type OrderingListModel struct {
	Result   *pipeline.Result
	Cursor   int
	Witness  int
	Selected *match.Ordering
	Height   int
	Offset   int
}

// NewOrderingListModel creates a new ordering list model.
func NewOrderingListModel(res *pipeline.Result) OrderingListModel {
	return OrderingListModel{Result: res, Height: 10}
}

func (m OrderingListModel) Init() tea.Cmd {
	return nil
}

func (m OrderingListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	orderings := m.Result.Orderings
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				m.Witness = 0
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(orderings)-1 {
				m.Cursor++
				m.Witness = 0
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "left", "h":
			if m.Witness > 0 {
				m.Witness--
			}
		case "right", "l":
			if m.Witness < m.witnesses()-1 {
				m.Witness++
			}
		case "enter":
			m.Selected = &orderings[m.Cursor]
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-12, 3)
	}
	return m, nil
}

// witnesses is the number of witness pairs the detail pane pages through.
func (m OrderingListModel) witnesses() int {
	o := m.Result.Orderings[m.Cursor]
	return max(len(o.PullUp), len(o.PullDown))
}

func (m OrderingListModel) View() string {
	var b strings.Builder
	orderings := m.Result.Orderings

	b.WriteString(StyleTitle.Render(fmt.Sprintf("%s: %d shared orderings", m.Result.Circuit.Name, len(orderings))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ ordering  ←/→ witness  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(orderings))
	for i := m.Offset; i < end; i++ {
		line := fmt.Sprintf("  %3d  %s", i, orderings[i].Sequence)
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸" + line[1:]))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	o := orderings[m.Cursor]
	up := o.PullUp[min(m.Witness, len(o.PullUp)-1)]
	down := o.PullDown[min(m.Witness, len(o.PullDown)-1)]
	detail := fmt.Sprintf("%s  %s\n%s  %s\n%s",
		listDimStyle.Render("pull-up  "), formatWalk(up),
		listDimStyle.Render("pull-down"), formatWalk(down),
		listDimStyle.Render(fmt.Sprintf("witness %d/%d", m.Witness+1, m.witnesses())))

	b.WriteString("\n")
	b.WriteString(detailBoxStyle.Render(detail))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(orderings))))

	return b.String()
}
