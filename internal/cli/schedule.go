package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/mhalvorsen/deckplan/pkg/frame"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// printSchedule renders the member schedule: one row per member group with
// quantity and total length, the shape a lumber order is written in.
func printSchedule(comp *frame.Components) {
	printNewline()
	fmt.Println(StyleTitle.Render("Framing Schedule"))
	printDetail("deck depth %.1f ft", comp.TotalDepthFeet)
	printNewline()

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleTableBorder).
		Headers("Member", "Size", "Qty", "Total").
		Rows(scheduleRows(comp)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleTableHeader
			}
			if col >= 2 {
				return StyleHighlight
			}
			return StyleValue
		})
	fmt.Println(t.Render())
}

// scheduleRows aggregates the components into schedule rows.
func scheduleRows(comp *frame.Components) [][]string {
	var rows [][]string

	if comp.Ledger != nil {
		rows = append(rows, []string{
			"Ledger",
			comp.Ledger.Size.String(),
			"1",
			feet(comp.Ledger.LengthFeet),
		})
	}

	for _, b := range comp.Beams {
		name := b.Usage.String()
		if b.Merged {
			name += " (merged)"
		}
		size := fmt.Sprintf("%d-ply %s", b.Ply, b.Size)
		if b.Flush {
			size += " flush"
		}
		rows = append(rows, []string{name, size, "1", feet(b.LengthFeet)})
	}

	rows = append(rows, groupJoists(comp.Joists)...)
	rows = append(rows, groupRims(comp.RimJoists)...)
	rows = append(rows, groupBlocking(comp.MidSpanBlocking)...)
	rows = append(rows, groupBlocking(comp.PictureFrameBlocking)...)

	if len(comp.Posts) > 0 {
		total := 0.0
		for _, p := range comp.Posts {
			total += p.HeightFeet
		}
		rows = append(rows, []string{
			"Posts",
			comp.Posts[0].Size.String(),
			fmt.Sprintf("%d", len(comp.Posts)),
			feet(total),
		})
	}
	if len(comp.Footings) > 0 {
		rows = append(rows, []string{
			"Footings",
			comp.Footings[0].Type.String(),
			fmt.Sprintf("%d", len(comp.Footings)),
			"",
		})
	}

	return rows
}

type memberGroup struct {
	count int
	total float64
}

func groupJoists(joists []frame.Joist) [][]string {
	type key struct {
		usage lumber.JoistUsage
		size  lumber.Size
	}
	groups := map[key]*memberGroup{}
	var order []key
	for _, j := range joists {
		k := key{j.Usage, j.Size}
		g, ok := groups[k]
		if !ok {
			g = &memberGroup{}
			groups[k] = g
			order = append(order, k)
		}
		g.count++
		g.total += j.LengthFeet
	}

	var rows [][]string
	for _, k := range order {
		g := groups[k]
		rows = append(rows, []string{k.usage.String(), k.size.String(), fmt.Sprintf("%d", g.count), feet(g.total)})
	}
	return rows
}

func groupRims(rims []frame.RimJoist) [][]string {
	groups := map[lumber.RimUsage]*memberGroup{}
	var order []lumber.RimUsage
	for _, r := range rims {
		g, ok := groups[r.Usage]
		if !ok {
			g = &memberGroup{}
			groups[r.Usage] = g
			order = append(order, r.Usage)
		}
		g.count++
		g.total += r.LengthFeet
	}

	var rows [][]string
	for _, usage := range order {
		g := groups[usage]
		size := ""
		if len(rims) > 0 {
			size = rims[0].Size.String()
		}
		rows = append(rows, []string{usage.String(), size, fmt.Sprintf("%d", g.count), feet(g.total)})
	}
	return rows
}

func groupBlocking(blocking []frame.Blocking) [][]string {
	if len(blocking) == 0 {
		return nil
	}
	total := 0.0
	for _, b := range blocking {
		total += b.LengthFeet
	}
	return [][]string{{
		blocking[0].Usage.String(),
		blocking[0].Size.String(),
		fmt.Sprintf("%d", len(blocking)),
		feet(total),
	}}
}

// feet formats a length in feet for display.
func feet(f float64) string {
	return fmt.Sprintf("%.1f ft", f)
}
