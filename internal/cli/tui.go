package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mhalvorsen/deckplan/pkg/errors"
	"github.com/mhalvorsen/deckplan/pkg/frame"
	"github.com/mhalvorsen/deckplan/pkg/geom"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// WallListModel - Interactive attachment wall selection
// =============================================================================

// wallRow is one pickable outline edge, endpoints preformatted in feet.
type wallRow struct {
	Index   int
	Wall    frame.Wall
	From    string
	To      string
	Length  float64 // feet
	Horizon bool
}

// WallListModel is the bubbletea model for interactive wall selection.
type WallListModel struct {
	Walls    []wallRow
	Cursor   int
	Selected *wallRow
}

// NewWallListModel creates a wall list model with the cursor on the deck
// file's current wall.
func NewWallListModel(walls []wallRow, current int) WallListModel {
	m := WallListModel{Walls: walls}
	if current >= 0 && current < len(walls) {
		m.Cursor = current
	}
	return m
}

func (m WallListModel) Init() tea.Cmd {
	return nil
}

func (m WallListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			if m.Cursor < len(m.Walls)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Walls[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m WallListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Attachment Wall"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := [][]string{}
	for i, w := range m.Walls {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		facing := "vertical"
		if w.Horizon {
			facing = "horizontal"
		}
		rows = append(rows, []string{
			cursor,
			fmt.Sprintf("%d", w.Index),
			w.From,
			w.To,
			fmt.Sprintf("%.1f ft", w.Length),
			facing,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("", "#", "From", "To", "Length", "Run").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			return StyleValue
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Walls))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// outlineWalls lists the outline's edges as pickable walls.
func outlineWalls(cfg frame.Config, dims frame.Dimensions) []wallRow {
	n := len(dims.Polygon)
	walls := make([]wallRow, 0, n)
	for i := 0; i < n; i++ {
		w := frame.Wall{P1: dims.Polygon[i], P2: dims.Polygon[(i+1)%n]}
		walls = append(walls, wallRow{
			Index:   i,
			Wall:    w,
			From:    feetLabel(cfg, w.P1),
			To:      feetLabel(cfg, w.P2),
			Length:  w.LengthPx() / cfg.ScalePxPerFoot,
			Horizon: w.Horizontal(),
		})
	}
	return walls
}

// pickWall runs the interactive wall picker and returns the chosen edge
// index.
func pickWall(cfg frame.Config, dims frame.Dimensions, current int) (int, error) {
	walls := outlineWalls(cfg, dims)
	p := tea.NewProgram(NewWallListModel(walls, current))
	final, err := p.Run()
	if err != nil {
		return 0, fmt.Errorf("wall picker: %w", err)
	}
	m, ok := final.(WallListModel)
	if !ok || m.Selected == nil {
		return 0, errors.New(errors.ErrCodeInvalidWall, "no attachment wall selected")
	}
	return m.Selected.Index, nil
}

// feetLabel formats a pixel point as feet for display.
func feetLabel(cfg frame.Config, p geom.Point) string {
	return fmt.Sprintf("(%.0f, %.0f)", p.X/cfg.ScalePxPerFoot, p.Y/cfg.ScalePxPerFoot)
}
