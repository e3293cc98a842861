package frame

import (
	"context"
	"math"

	"github.com/charmbracelet/log"
	"github.com/mhalvorsen/deckplan/pkg/errors"
	"github.com/mhalvorsen/deckplan/pkg/geom"
)

// CalculateSections computes the framing plan for a deck decomposed into
// rectangular sections. Each section is solved independently as its own
// rectangle, then ledgers and beams shared along section seams are merged
// and duplicate posts and footings are removed.
//
// wallIndex selects the attachment wall among the outline's edges. Sections
// that do not touch the selected wall are framed as freestanding regardless
// of the requested attachment, since nothing on their wall side can carry
// load.
//
// A section that fails to solve is skipped with a warning; the error return
// is non-nil only when every section fails.
func CalculateSections(ctx context.Context, cfg Config, dims Dimensions, wallIndex int, sections []Section, spec Spec) (*Components, error) {
	logger := log.FromContext(ctx)

	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if !dims.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidOutline,
			"deck outline is missing or degenerate (%d points)", len(dims.Polygon))
	}
	n := len(dims.Polygon)
	if wallIndex < 0 || wallIndex >= n {
		return nil, errors.New(errors.ErrCodeInvalidWall,
			"wall index %d out of range for %d-edge outline", wallIndex, n)
	}
	wall := Wall{P1: dims.Polygon[wallIndex], P2: dims.Polygon[(wallIndex+1)%n]}

	if len(sections) == 0 {
		return Calculate(cfg, dims, wall, spec)
	}
	if len(sections) == 1 {
		secDims := DimensionsFromPolygon(sections[0].Corners[:])
		secWall, secSpec := sectionPlacement(cfg, sections[0], wall, spec)
		return calculate(cfg, secDims, secWall, secSpec, 0)
	}

	results := make([]*Components, 0, len(sections))
	var firstErr error
	for i, s := range sections {
		secDims := DimensionsFromPolygon(s.Corners[:])
		secWall, secSpec := sectionPlacement(cfg, s, wall, spec)

		comp, err := calculate(cfg, secDims, secWall, secSpec, i)
		if err != nil {
			logger.Warn("section failed, skipping", "section", i, "error", err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		results = append(results, comp)
	}
	if len(results) == 0 {
		return nil, errors.Wrap(errors.ErrCodeAllSectionsFailed, firstErr,
			"all %d deck sections failed to solve", len(sections))
	}

	return mergeComponents(cfg, dims, spec, results), nil
}

// sectionPlacement picks the section's wall edge and effective attachment.
//
// Preference order: an explicit ledger wall carried on the section, then a
// section edge lying on the selected wall's line with overlapping extent,
// then the parallel edge nearest the wall. An explicit ledger wall is
// honored only when it runs parallel to the selected wall; a perpendicular
// one would flip the section's joists against the global direction, so the
// edge is re-picked and the section stays ledger-attached. The nearest-edge
// fallback keeps the requested attachment for sections marked IsLedger or
// carrying an explicit ledger wall; unmarked detached sections are
// downgraded to freestanding.
func sectionPlacement(cfg Config, s Section, wall Wall, spec Spec) (Wall, Spec) {
	if len(s.LedgerWalls) > 0 && s.LedgerWalls[0].Horizontal() == wall.Horizontal() {
		return s.LedgerWalls[0], spec
	}

	horizontal := wall.Horizontal()
	wLo := math.Min(alongOf(horizontal, wall.P1), alongOf(horizontal, wall.P2))
	wHi := math.Max(alongOf(horizontal, wall.P1), alongOf(horizontal, wall.P2))

	var fallback Wall
	fallbackDist := math.Inf(1)
	for i := 0; i < 4; i++ {
		e := Wall{P1: s.Corners[i], P2: s.Corners[(i+1)%4]}
		if e.Horizontal() != horizontal {
			continue
		}
		d := math.Max(distToLine(wall, e.P1), distToLine(wall, e.P2))
		eLo := math.Min(alongOf(horizontal, e.P1), alongOf(horizontal, e.P2))
		eHi := math.Max(alongOf(horizontal, e.P1), alongOf(horizontal, e.P2))
		if d <= cfg.EdgeMatchTolerancePx && math.Min(wHi, eHi)-math.Max(wLo, eLo) > geom.Epsilon {
			return e, spec
		}
		if d < fallbackDist {
			fallbackDist = d
			fallback = e
		}
	}

	if s.IsLedger || len(s.LedgerWalls) > 0 {
		return fallback, spec
	}
	floating := spec
	floating.Attachment = AttachFloating
	return fallback, floating
}

// distToLine returns the perpendicular distance from p to the infinite line
// through the wall.
func distToLine(w Wall, p geom.Point) float64 {
	dx, dy := w.P2.X-w.P1.X, w.P2.Y-w.P1.Y
	length := math.Hypot(dx, dy)
	if length <= geom.Epsilon {
		return geom.Distance(w.P1, p)
	}
	return math.Abs(dx*(p.Y-w.P1.Y)-dy*(p.X-w.P1.X)) / length
}
