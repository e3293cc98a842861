package frame

import (
	"math"

	"github.com/mhalvorsen/deckplan/pkg/geom"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// beamSpec describes one beam for the beam-and-post solver: an infinite
// axis at a perpendicular offset from the wall, plus the member properties
// to emit.
type beamSpec struct {
	acrossPx   float64 // axis coordinate perpendicular to the wall
	horizontal bool    // wall (and beam) orientation
	size       lumber.Size
	ply        int
	flush      bool
	usage      lumber.BeamUsage
	maxGapFeet float64 // widest allowed post gap for this beam
}

// solveBeam places one beam and its posts and footings.
//
// The axis line is built across the full bounding box, clipped to the deck
// polygon keeping only the single longest inside segment, end posts are
// inset from the clipped endpoints, intermediate posts are added so no gap
// exceeds the allowed spacing, and the beam material is extended past the
// outermost posts by the cantilever distance. Footings are emitted only for
// posts that land inside the polygon; a post pushed outside by a notch
// bears on nothing and is the caller's signal that the axis is marginal.
//
// A zero-length result (Beam.Empty) means the axis does not cross the deck
// at all. That is not an error here: the caller decides whether a missing
// beam is tolerable.
func solveBeam(cfg Config, dims Dimensions, spec Spec, bs beamSpec) (Beam, []Post, []Footing) {
	beam := Beam{
		Size:        bs.size,
		Ply:         bs.ply,
		Flush:       bs.flush,
		Usage:       bs.usage,
		PostGapFeet: bs.maxGapFeet,
	}

	uMin, uMax := alongBounds(bs.horizontal, dims)
	p1 := axisPoint(bs.horizontal, uMin, bs.acrossPx)
	p2 := axisPoint(bs.horizontal, uMax, bs.acrossPx)

	seg, ok := geom.LongestInside(p1, p2, dims.Polygon)
	if !ok || seg.Length() <= geom.Epsilon {
		return beam, nil, nil
	}

	u1 := alongOf(bs.horizontal, seg.P1)
	u2 := alongOf(bs.horizontal, seg.P2)
	if u1 > u2 {
		u1, u2 = u2, u1
	}

	stations := postStations(cfg, u1, u2, bs.maxGapFeet)

	cantPx := cfg.feetToPx(cfg.CantileverFeet)
	m1 := stations[0] - cantPx
	m2 := stations[len(stations)-1] + cantPx

	beam.P1 = axisPoint(bs.horizontal, m1, bs.acrossPx)
	beam.P2 = axisPoint(bs.horizontal, m2, bs.acrossPx)
	beam.CenterlineP1 = axisPoint(bs.horizontal, u1, bs.acrossPx)
	beam.CenterlineP2 = axisPoint(bs.horizontal, u2, bs.acrossPx)
	beam.LengthFeet = cfg.pxToFeet(m2 - m1)

	posts, footings := emitPosts(cfg, dims, spec, bs.horizontal, bs.acrossPx, stations)
	return beam, posts, footings
}

// postStations computes post positions along the clipped beam span
// [u1, u2] in pixels. A span shorter than twice the post inset gets a
// single centered post; otherwise end posts sit at the inset and
// intermediate posts divide the remainder evenly so no gap exceeds
// maxGapFeet.
func postStations(cfg Config, u1, u2 float64, maxGapFeet float64) []float64 {
	insetPx := cfg.feetToPx(cfg.PostInsetFeet)
	length := u2 - u1
	if length <= 2*insetPx {
		return []float64{(u1 + u2) / 2}
	}

	a, b := u1+insetPx, u2-insetPx
	span := b - a
	maxGapPx := cfg.feetToPx(maxGapFeet)
	if maxGapPx <= 0 {
		maxGapPx = cfg.feetToPx(cfg.MaxPostSpacingFeet)
	}

	gaps := int(math.Ceil(span/maxGapPx - 1e-9))
	if gaps < 1 {
		gaps = 1
	}
	stations := make([]float64, gaps+1)
	for i := 0; i <= gaps; i++ {
		stations[i] = a + span*float64(i)/float64(gaps)
	}
	return stations
}

// emitPosts materializes posts at the given along stations and footings for
// every post that lies inside the polygon.
func emitPosts(cfg Config, dims Dimensions, spec Spec, horizontal bool, acrossPx float64, stations []float64) ([]Post, []Footing) {
	posts := make([]Post, 0, len(stations))
	var footings []Footing
	for _, u := range stations {
		p := axisPoint(horizontal, u, acrossPx)
		posts = append(posts, Post{
			X:          p.X,
			Y:          p.Y,
			Size:       cfg.PostSize,
			HeightFeet: spec.DeckHeightIn / 12,
		})
		if geom.Contains(dims.Polygon, p) {
			footings = append(footings, Footing{X: p.X, Y: p.Y, Type: spec.Footing})
		}
	}
	return posts, footings
}
