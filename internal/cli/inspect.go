package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/erdgraph/pkg/graph"
	erdio "github.com/matzehuels/erdgraph/pkg/io"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorFaint)
	listHeaderStyle = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)
	tabActiveStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true)
	tabStyle        = lipgloss.NewStyle().Foreground(colorMuted)
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var (
		noCache bool
		flags   layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "inspect [diagram.toml|diagram.json|file.layout.json]",
		Short: "Browse the tables and relations of a layout",
		Long: `Browse the tables and relations of a layout in the terminal.

A layout file (*.layout.json, or any JSON file written by "layout") is shown
as is. Any other input is treated as a diagram and laid out first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := c.loadInspectLayout(cmd, args[0], &flags, noCache)
			if err != nil {
				return err
			}
			_, err = tea.NewProgram(NewInspectModel(l), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.register(cmd.Flags())

	return cmd
}

// isLayoutFile reports whether path holds a computed layout rather than a
// diagram: either by its ".layout.json" suffix or, for other JSON files, by
// a top-level "records" key without "tables".
func isLayoutFile(path string) bool {
	if strings.HasSuffix(path, ".layout.json") {
		return true
	}
	if !strings.EqualFold(filepath.Ext(path), ".json") {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var top map[string]json.RawMessage
	if json.Unmarshal(data, &top) != nil {
		return false
	}
	_, records := top["records"]
	_, tables := top["tables"]
	return records && !tables
}

func (c *CLI) loadInspectLayout(cmd *cobra.Command, path string, flags *layoutFlags, noCache bool) (graph.Layout, error) {
	if isLayoutFile(path) {
		return graph.ReadLayoutFile(path)
	}

	opts, err := c.resolveOptions(cmd.Flags(), flags)
	if err != nil {
		return graph.Layout{}, err
	}
	d, err := erdio.ImportDiagram(path)
	if err != nil {
		return graph.Layout{}, fmt.Errorf("load diagram %s: %w", path, err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return graph.Layout{}, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	res, err := runner.Execute(ctx, d, opts)
	if err != nil {
		return graph.Layout{}, fmt.Errorf("compute layout: %w", err)
	}
	return res.Layout, nil
}

// =============================================================================
// InspectModel - Interactive layout browser
// =============================================================================

type inspectTab int

const (
	tabRecords inspectTab = iota
	tabEdges
)

// InspectModel is the bubbletea model for browsing a layout.
type InspectModel struct {
	Layout graph.Layout
	Tab    inspectTab
	Cursor int
	Offset int
	Height int

	names map[int]string
}

// NewInspectModel creates an inspector for l.
func NewInspectModel(l graph.Layout) InspectModel {
	return InspectModel{
		Layout: l,
		Height: 15,
		names:  nodeNames(l),
	}
}

// nodeNames labels records by table name and fields as table.column.
func nodeNames(l graph.Layout) map[int]string {
	names := make(map[int]string)
	for _, r := range l.Records {
		names[r.ID] = r.Label
		for _, f := range r.Fields {
			names[f.ID] = r.Label + "." + f.Name
		}
	}
	return names
}

func (m InspectModel) rowCount() int {
	if m.Tab == tabEdges {
		return len(m.Layout.Edges)
	}
	return len(m.Layout.Records)
}

func (m InspectModel) Init() tea.Cmd {
	return nil
}

func (m InspectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "left", "right", "h", "l":
			if m.Tab == tabRecords {
				m.Tab = tabEdges
			} else {
				m.Tab = tabRecords
			}
			m.Cursor, m.Offset = 0, 0
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < m.rowCount()-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m InspectModel) View() string {
	var b strings.Builder

	title := m.Layout.Title
	if title == "" {
		title = "Layout"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %s × %s",
		formatNum(m.Layout.ViewBox.Width), formatNum(m.Layout.ViewBox.Height))))
	b.WriteString("\n")

	records, edges := tabStyle, tabStyle
	if m.Tab == tabRecords {
		records = tabActiveStyle
	} else {
		edges = tabActiveStyle
	}
	b.WriteString(records.Render(fmt.Sprintf("Tables (%d)", len(m.Layout.Records))))
	b.WriteString("   ")
	b.WriteString(edges.Render(fmt.Sprintf("Relations (%d)", len(m.Layout.Edges))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⇥ switch  q quit"))
	b.WriteString("\n\n")

	var headers []string
	var rows [][]string
	if m.Tab == tabRecords {
		headers, rows = m.recordRows()
	} else {
		headers, rows = m.edgeRows()
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorFaint)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return listHeaderStyle
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorOK).Bold(true)
			}
			if col >= 2 {
				return StyleNumber
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	if n := m.rowCount(); n > 0 {
		b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, n)))
	} else {
		b.WriteString(listDimStyle.Render("  (none)"))
	}

	return b.String()
}

func (m InspectModel) window(n int) (int, int) {
	end := m.Offset + m.Height
	if end > n {
		end = n
	}
	return m.Offset, end
}

func cursorMark(selected bool) string {
	if selected {
		return "▸"
	}
	return " "
}

func (m InspectModel) recordRows() ([]string, [][]string) {
	headers := []string{"", "Table", "Position", "Size", "Columns", "Anchors"}
	start, end := m.window(len(m.Layout.Records))
	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		r := m.Layout.Records[i]
		anchors := len(r.Anchors)
		for _, f := range r.Fields {
			anchors += len(f.Anchors)
		}
		rows = append(rows, []string{
			cursorMark(i == m.Cursor),
			r.Label,
			formatNum(r.X) + ", " + formatNum(r.Y),
			formatNum(r.Width) + " × " + formatNum(r.Height),
			strconv.Itoa(len(r.Fields)),
			strconv.Itoa(anchors),
		})
	}
	return headers, rows
}

func (m InspectModel) edgeRows() ([]string, [][]string) {
	headers := []string{"", "Relation", "Start", "End", "Length"}
	start, end := m.window(len(m.Layout.Edges))
	rows := make([][]string, 0, end-start)
	for i := start; i < end; i++ {
		e := m.Layout.Edges[i]
		rows = append(rows, []string{
			cursorMark(i == m.Cursor),
			m.names[e.From] + " → " + m.names[e.To],
			m.anchorLabel(e.Start),
			m.anchorLabel(e.End),
			strconv.FormatFloat(e.Length, 'f', 1, 64),
		})
	}
	return headers, rows
}

func (m InspectModel) anchorLabel(ref graph.AnchorRef) string {
	return fmt.Sprintf("%s#%d", m.names[ref.Node], ref.Index)
}

// formatNum prints whole numbers without a fraction.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
