package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/mhalvorsen/deckplan/pkg/frame"
)

// wallsCommand creates the walls command listing the pickable attachment
// walls of a deck outline.
func (c *CLI) wallsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "walls [deck.toml]",
		Short: "List the outline's walls, the candidate attachment edges",
		Long: `List the outline's walls, the candidate attachment edges.

Each outline edge is a candidate for the ledger (or the wall side of a
floating deck). The index shown is what the deck file's wall key and the
plan command's --wall flag refer to.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runWalls(args[0])
		},
	}
}

func (c *CLI) runWalls(path string) error {
	cfg := frame.DefaultConfig()
	in, err := loadDeckFile(path, cfg)
	if err != nil {
		return err
	}

	rows := [][]string{}
	for _, w := range outlineWalls(cfg, in.Dims) {
		current := ""
		if w.Index == in.WallIndex {
			current = iconArrow
		}
		facing := "vertical"
		if w.Horizon {
			facing = "horizontal"
		}
		rows = append(rows, []string{
			current,
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
			return StyleValue
		})
	fmt.Println(t.Render())
	printDetail("%s marks the deck file's attachment wall", iconArrow)
	return nil
}
