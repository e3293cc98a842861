package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mhalvorsen/deckplan/pkg/lumber"
	"github.com/mhalvorsen/deckplan/pkg/spantable"
)

// sizesCommand creates the sizes command printing the embedded span tables.
func (c *CLI) sizesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sizes",
		Short: "Print the embedded allowable-span tables",
		Long: `Print the embedded allowable-span tables.

Joist spans are maximum allowable spans in feet by size and on-center
spacing. Beam spans are by ply and size against the tributary width the
beam carries; lookups between tabulated widths interpolate linearly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSpanTables(spantable.Default())
			return nil
		},
	}
}

func printSpanTables(tables *spantable.Tables) {
	printNewline()
	fmt.Println(StyleTitle.Render("Joist Spans"))
	printDetail("maximum span in feet by on-center spacing")
	printNewline()

	spacings := tables.Spacings()
	headers := []string{"Size"}
	for _, s := range spacings {
		headers = append(headers, fmt.Sprintf("%d\" o.c.", s))
	}

	joistRows := [][]string{}
	for _, size := range lumber.JoistSizes {
		row := []string{size.String()}
		for _, s := range spacings {
			if span, ok := tables.MaxJoistSpan(size, s); ok {
				row = append(row, fmt.Sprintf("%.2f", span))
			} else {
				row = append(row, "-")
			}
		}
		joistRows = append(joistRows, row)
	}
	fmt.Println(spanTable(headers, joistRows))

	printNewline()
	fmt.Println(StyleTitle.Render("Beam Spans"))
	printDetail("maximum span in feet by tributary width")
	printNewline()

	tribs := []float64{6, 8, 10, 12}
	headers = []string{"Beam"}
	for _, tw := range tribs {
		headers = append(headers, fmt.Sprintf("%.0f ft trib", tw))
	}

	beamRows := [][]string{}
	for _, r := range tables.BeamRows() {
		ply, size := r[0], lumber.Size(r[1])
		row := []string{fmt.Sprintf("%d-ply %s", ply, size)}
		for _, tw := range tribs {
			if span, ok := tables.MaxBeamSpan(ply, size, tw); ok {
				row = append(row, fmt.Sprintf("%.2f", span))
			} else {
				row = append(row, "-")
			}
		}
		beamRows = append(beamRows, row)
	}
	fmt.Println(spanTable(headers, beamRows))
}

func spanTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if col == 0 {
				return StyleValue
			}
			return StyleHighlight
		}).
		Render()
}
