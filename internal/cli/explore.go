package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/spacegraph/pkg/graph"
)

// exploreCommand opens an interactive vertex browser for a graph file.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [file]",
		Short: "Browse vertices and their neighbors interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := tea.NewProgram(NewExplorerModel(g),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
}

var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	listCursorStyle = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	listLoopStyle   = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// ExplorerModel - Interactive vertex browser
// =============================================================================

// ExplorerModel is the bubbletea model for browsing a graph's vertices.
// It never mutates the graph.
type ExplorerModel struct {
	Graph  *graph.Graph
	Cursor int
	Height int
	Offset int
}

// NewExplorerModel creates an explorer positioned on vertex 0.
func NewExplorerModel(g *graph.Graph) ExplorerModel {
	return ExplorerModel{Graph: g, Height: 15}
}

func (m ExplorerModel) Init() tea.Cmd {
	return nil
}

func (m ExplorerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := m.Graph.VertexCount()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < n-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(n-1, 0)
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-10, 5)
	}

	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m, nil
}

func (m ExplorerModel) View() string {
	var b strings.Builder
	g := m.Graph

	b.WriteString(StyleTitle.Render("Graph Explorer"))
	b.WriteString("  ")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("%d vertices · %d edges · %d self-loops",
		g.VertexCount(), g.EdgeCount(), g.SelfLoopCount())))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	if g.VertexCount() == 0 {
		b.WriteString(listDimStyle.Render("  (no vertices)"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, g.VertexCount())
	rows := [][]string{}
	for v := m.Offset; v < end; v++ {
		ns, _ := g.Neighbors(v)
		cursor := "  "
		if v == m.Cursor {
			cursor = "▸ "
		}
		loop := ""
		if loopOK, _ := g.AreNeighbors(v, v); loopOK {
			loop = iconLoop
		}
		rows = append(rows, []string{cursor, strconv.Itoa(v), strconv.Itoa(len(ns)), loop, formatNeighbors(ns)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Vertex", "Degree", "Loop", "Neighbors").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return listCursorStyle
			}
			if col == 3 {
				return listLoopStyle
			}
			return lipgloss.NewStyle()
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, g.VertexCount())))

	return b.String()
}
