package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mhalvorsen/deckplan/pkg/frame"
)

// planCommand creates the plan command for computing a framing plan.
func (c *CLI) planCommand() *cobra.Command {
	var (
		output      string
		format      string
		wallIndex   int
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "plan [deck.toml]",
		Short: "Compute the framing plan for a deck definition",
		Long: `Compute the framing plan for a deck definition.

The plan command reads a TOML deck definition (outline in feet, joist
spacing, attachment, beam style, footings, picture frame) and computes the
full structural plan: ledger, beams with posts and footings, joists, rim
joists, and blocking.

Multi-rectangle outlines list their rectangles as [[section]] blocks;
collinear beams and ledgers along section seams are merged in the result.

By default a member schedule is printed. Use --format json for the full
component geometry, and --output to write it to a file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatTable && format != formatJSON {
				return fmt.Errorf("unknown format %q (must be one of: table, json)", format)
			}
			return c.runPlan(cmd.Context(), args[0], output, format, wallIndex, interactive)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the plan to a file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format: table (default), json")
	cmd.Flags().IntVar(&wallIndex, "wall", -1, "attachment wall index, overriding the deck file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick the attachment wall interactively")

	return cmd
}

// runPlan loads the deck definition, resolves the attachment wall, and
// computes and emits the plan.
func (c *CLI) runPlan(ctx context.Context, path, output, format string, wallIndex int, interactive bool) error {
	cfg := frame.DefaultConfig()

	in, err := loadDeckFile(path, cfg)
	if err != nil {
		return err
	}
	if wallIndex >= 0 {
		in.WallIndex = wallIndex
	}
	if interactive {
		if wallIndex >= 0 {
			printWarning("Both --wall and --interactive given; the interactive pick wins")
		}
		idx, err := pickWall(cfg, in.Dims, in.WallIndex)
		if err != nil {
			printError("No attachment wall selected")
			return err
		}
		in.WallIndex = idx
		printInfo("Attachment wall: %s", StyleHighlight.Render(fmt.Sprintf("%d", idx)))
	}

	c.Logger.Debug("deck loaded",
		"outline_points", len(in.Dims.Polygon),
		"sections", len(in.Sections),
		"wall", in.WallIndex)

	prog := newProgress(c.Logger)
	comp, err := frame.CalculateSections(log.WithContext(ctx, c.Logger), cfg, in.Dims, in.WallIndex, in.Sections, in.Spec)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Framed %d joists, %d beams, %d posts",
		len(comp.Joists), len(comp.Beams), len(comp.Posts)))

	if format == formatJSON {
		if output != "" {
			if err := exportPlan(comp, output); err != nil {
				return err
			}
			printSuccess("Plan written")
			printFile(output)
			return nil
		}
		return writePlan(comp, os.Stdout)
	}

	printSchedule(comp)
	return nil
}
