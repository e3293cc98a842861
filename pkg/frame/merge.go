package frame

import (
	"math"
	"sort"

	"github.com/mhalvorsen/deckplan/pkg/geom"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// mergeComponents combines per-section results into one plan. Joists, rims
// and blocking concatenate as-is since section interiors never overlap;
// ledgers and beams along section seams collapse into single members, and
// posts and footings are regenerated from the final beams so seam posts are
// shared rather than doubled.
func mergeComponents(cfg Config, dims Dimensions, spec Spec, results []*Components) *Components {
	out := &Components{}

	for _, r := range results {
		out.Joists = append(out.Joists, r.Joists...)
		out.RimJoists = append(out.RimJoists, r.RimJoists...)
		out.MidSpanBlocking = append(out.MidSpanBlocking, r.MidSpanBlocking...)
		out.PictureFrameBlocking = append(out.PictureFrameBlocking, r.PictureFrameBlocking...)
		out.TotalDepthFeet = math.Max(out.TotalDepthFeet, r.TotalDepthFeet)
	}

	out.Ledger = mergeLedgers(cfg, results)

	var beams []Beam
	for _, r := range results {
		beams = append(beams, r.Beams...)
	}
	out.Beams = mergeBeams(cfg, beams)

	for i := range out.Beams {
		rebuildBeamSpan(cfg, &out.Beams[i])
		posts, footings := beamSupports(cfg, dims, spec, out.Beams[i])
		out.Posts = append(out.Posts, posts...)
		out.Footings = append(out.Footings, footings...)
	}
	out.Posts = dedupePosts(out.Posts)
	out.Footings = dedupeFootings(out.Footings)

	sortBeams(out.Beams)
	return out
}

// mergeLedgers collapses the sections' ledgers. Collinear pieces combine
// into one segment spanning their union; non-collinear pieces (an L-shaped
// house wall) keep the first piece's geometry and sum the lengths.
func mergeLedgers(cfg Config, results []*Components) *Ledger {
	var ledgers []*Ledger
	for _, r := range results {
		if r.Ledger != nil {
			ledgers = append(ledgers, r.Ledger)
		}
	}
	if len(ledgers) == 0 {
		return nil
	}
	merged := *ledgers[0]
	line := Wall{P1: merged.P1, P2: merged.P2}
	horizontal := line.Horizontal()

	collinear := true
	for _, l := range ledgers[1:] {
		if distToLine(line, l.P1) > cfg.CollinearTolerancePx || distToLine(line, l.P2) > cfg.CollinearTolerancePx {
			collinear = false
			break
		}
	}
	if !collinear {
		total := 0.0
		for _, l := range ledgers {
			total += l.LengthFeet
		}
		merged.LengthFeet = total
		return &merged
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, l := range ledgers {
		for _, p := range []float64{alongOf(horizontal, l.P1), alongOf(horizontal, l.P2)} {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	across := acrossOf(horizontal, merged.P1)
	merged.P1 = axisPoint(horizontal, lo, across)
	merged.P2 = axisPoint(horizontal, hi, across)
	merged.LengthFeet = cfg.pxToFeet(hi - lo)
	return &merged
}

// mergeBeams repeatedly combines mergeable beam pairs until no pair
// remains. Two beams merge when they are the same member in every respect
// that matters for ordering lumber: same size, ply and style, compatible
// usage, collinear axes, and end-to-end within the adjacency tolerance.
func mergeBeams(cfg Config, beams []Beam) []Beam {
	merged := append([]Beam(nil), beams...)
	for {
		combined := false
	scan:
		for i := 0; i < len(merged); i++ {
			for j := i + 1; j < len(merged); j++ {
				b, ok := combineBeams(cfg, merged[i], merged[j])
				if !ok {
					continue
				}
				merged[i] = b
				merged = append(merged[:j], merged[j+1:]...)
				combined = true
				break scan
			}
		}
		if !combined {
			return merged
		}
	}
}

func combineBeams(cfg Config, a, b Beam) (Beam, bool) {
	if a.Size != b.Size || a.Ply != b.Ply || a.Flush != b.Flush {
		return Beam{}, false
	}
	sameUsage := a.Usage == b.Usage
	bothPerimeter := a.Usage.Perimeter() && b.Usage.Perimeter()
	if !sameUsage && !bothPerimeter {
		return Beam{}, false
	}
	if a.Horizontal() != b.Horizontal() {
		return Beam{}, false
	}
	horizontal := a.Horizontal()
	aV := acrossOf(horizontal, a.CenterlineP1)
	bV := acrossOf(horizontal, b.CenterlineP1)
	if math.Abs(aV-bV) > cfg.CollinearTolerancePx {
		return Beam{}, false
	}

	aLo, aHi := orderedAlong(horizontal, a.CenterlineP1, a.CenterlineP2)
	bLo, bHi := orderedAlong(horizontal, b.CenterlineP1, b.CenterlineP2)
	gap := math.Max(bLo-aHi, aLo-bHi)
	if gap > cfg.feetToPx(cfg.AdjacencyToleranceFeet) {
		return Beam{}, false
	}

	out := a
	if !sameUsage {
		out.Usage = lumber.BeamOuter
	}
	// The tighter sizing constraint governs the combined member.
	if b.PostGapFeet > 0 && (out.PostGapFeet <= 0 || b.PostGapFeet < out.PostGapFeet) {
		out.PostGapFeet = b.PostGapFeet
	}
	across := (aV + bV) / 2
	out.CenterlineP1 = axisPoint(horizontal, math.Min(aLo, bLo), across)
	out.CenterlineP2 = axisPoint(horizontal, math.Max(aHi, bHi), across)
	out.Merged = true
	out.SectionIDs = unionSections(a.SectionIDs, b.SectionIDs)
	return out, true
}

// rebuildBeamSpan recomputes the beam's material extent from its
// centerline: posts set the outermost stations and the material overhangs
// them by the cantilever distance.
func rebuildBeamSpan(cfg Config, b *Beam) {
	horizontal := b.Horizontal()
	lo, hi := orderedAlong(horizontal, b.CenterlineP1, b.CenterlineP2)
	across := acrossOf(horizontal, b.CenterlineP1)

	stations := postStations(cfg, lo, hi, b.PostGapFeet)
	cantPx := cfg.feetToPx(cfg.CantileverFeet)
	m1 := stations[0] - cantPx
	m2 := stations[len(stations)-1] + cantPx
	b.P1 = axisPoint(horizontal, m1, across)
	b.P2 = axisPoint(horizontal, m2, across)
	b.LengthFeet = cfg.pxToFeet(m2 - m1)
}

// beamSupports regenerates the posts and footings under a beam from its
// centerline, using the overall outline for footing containment. The
// beam's own sizing gap governs the regenerated spacing, so a member
// sized below the configured maximum keeps its tighter post grid after a
// merge.
func beamSupports(cfg Config, dims Dimensions, spec Spec, b Beam) ([]Post, []Footing) {
	horizontal := b.Horizontal()
	lo, hi := orderedAlong(horizontal, b.CenterlineP1, b.CenterlineP2)
	across := acrossOf(horizontal, b.CenterlineP1)
	stations := postStations(cfg, lo, hi, b.PostGapFeet)
	return emitPosts(cfg, dims, spec, horizontal, across, stations)
}

// orderedAlong returns the along coordinates of two points, low first.
func orderedAlong(horizontal bool, p1, p2 geom.Point) (float64, float64) {
	a, b := alongOf(horizontal, p1), alongOf(horizontal, p2)
	if a > b {
		return b, a
	}
	return a, b
}

// dedupePosts removes posts occupying the same pixel.
func dedupePosts(posts []Post) []Post {
	seen := make(map[[2]int]bool, len(posts))
	out := posts[:0]
	for _, p := range posts {
		key := [2]int{int(math.Round(p.X)), int(math.Round(p.Y))}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, p)
	}
	return out
}

// dedupeFootings removes footings occupying the same pixel.
func dedupeFootings(footings []Footing) []Footing {
	seen := make(map[[2]int]bool, len(footings))
	out := footings[:0]
	for _, f := range footings {
		key := [2]int{int(math.Round(f.X)), int(math.Round(f.Y))}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, f)
	}
	return out
}

// unionSections merges two sorted-or-not id lists into a sorted set.
func unionSections(a, b []int) []int {
	seen := make(map[int]bool, len(a)+len(b))
	var out []int
	for _, id := range append(append([]int(nil), a...), b...) {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
