package frame

import (
	"math"
	"testing"

	"github.com/mhalvorsen/deckplan/pkg/geom"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// rectDims builds a rectangle outline in pixels, origin at (0,0).
func rectDims(cfg Config, widthFeet, depthFeet float64) Dimensions {
	w := cfg.feetToPx(widthFeet)
	d := cfg.feetToPx(depthFeet)
	return DimensionsFromPolygon([]geom.Point{
		{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: d}, {X: 0, Y: d},
	})
}

func TestPostStationsShortSpanCentered(t *testing.T) {
	cfg := DefaultConfig()

	// 1.5 ft span is shorter than twice the 1 ft inset.
	stations := postStations(cfg, 0, cfg.feetToPx(1.5), cfg.MaxPostSpacingFeet)
	if len(stations) != 1 {
		t.Fatalf("stations = %d, want 1 centered post", len(stations))
	}
	if got, want := stations[0], cfg.feetToPx(0.75); math.Abs(got-want) > geom.Epsilon {
		t.Errorf("station = %v, want centered at %v", got, want)
	}
}

func TestPostStationsInsetEnds(t *testing.T) {
	cfg := DefaultConfig()

	stations := postStations(cfg, 0, cfg.feetToPx(10), cfg.MaxPostSpacingFeet)
	if len(stations) < 2 {
		t.Fatalf("stations = %d, want at least end posts", len(stations))
	}
	inset := cfg.feetToPx(cfg.PostInsetFeet)
	if math.Abs(stations[0]-inset) > geom.Epsilon {
		t.Errorf("first station = %v, want inset %v", stations[0], inset)
	}
	last := stations[len(stations)-1]
	if math.Abs(last-(cfg.feetToPx(10)-inset)) > geom.Epsilon {
		t.Errorf("last station = %v, want %v", last, cfg.feetToPx(10)-inset)
	}
}

func TestPostStationsGapNeverExceedsMax(t *testing.T) {
	cfg := DefaultConfig()

	for _, spanFeet := range []float64{6, 10, 17, 23.5, 40} {
		stations := postStations(cfg, 0, cfg.feetToPx(spanFeet), cfg.MaxPostSpacingFeet)
		maxGap := cfg.feetToPx(cfg.MaxPostSpacingFeet)
		for i := 1; i < len(stations); i++ {
			if gap := stations[i] - stations[i-1]; gap > maxGap+geom.Epsilon {
				t.Errorf("span %v ft: gap %v px exceeds max %v px", spanFeet, gap, maxGap)
			}
		}
	}
}

func TestSolveBeamCantileverAndPosts(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 10)
	spec := baseSpec()

	beam, posts, footings := solveBeam(cfg, dims, spec, beamSpec{
		acrossPx:   cfg.feetToPx(8.5),
		horizontal: true,
		size:       lumber.Size2x10,
		ply:        2,
		usage:      lumber.BeamOuter,
		maxGapFeet: cfg.MaxPostSpacingFeet,
	})
	if beam.Empty() {
		t.Fatal("beam is empty inside the outline")
	}
	// 12 ft clipped span, 1 ft insets, 8 ft max gap: 3 posts.
	if len(posts) != 3 {
		t.Fatalf("posts = %d, want 3", len(posts))
	}
	if len(footings) != len(posts) {
		t.Errorf("footings = %d, want one per inside post (%d)", len(footings), len(posts))
	}
	// Material overhangs the end posts by the cantilever on each side.
	wantLen := 10.0 + 2*cfg.CantileverFeet
	if math.Abs(beam.LengthFeet-wantLen) > 1e-9 {
		t.Errorf("beam length = %v ft, want %v", beam.LengthFeet, wantLen)
	}
}

func TestSolveBeamAxisOutsideIsEmpty(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 10)

	beam, posts, footings := solveBeam(cfg, dims, baseSpec(), beamSpec{
		acrossPx:   cfg.feetToPx(15),
		horizontal: true,
		size:       lumber.Size2x10,
		ply:        2,
		usage:      lumber.BeamMid,
		maxGapFeet: cfg.MaxPostSpacingFeet,
	})
	if !beam.Empty() {
		t.Errorf("beam length = %v, want empty outside the polygon", beam.LengthFeet)
	}
	if len(posts) != 0 || len(footings) != 0 {
		t.Errorf("posts/footings = %d/%d, want none", len(posts), len(footings))
	}
}

func TestSolveBeamNotchClipsToDeepHalf(t *testing.T) {
	cfg := DefaultConfig()
	// L-shape: 16 ft wide, 10 ft deep, with the right 8 ft only 6 ft deep.
	poly := []geom.Point{
		{X: 0, Y: 0},
		{X: cfg.feetToPx(16), Y: 0},
		{X: cfg.feetToPx(16), Y: cfg.feetToPx(6)},
		{X: cfg.feetToPx(8), Y: cfg.feetToPx(6)},
		{X: cfg.feetToPx(8), Y: cfg.feetToPx(10)},
		{X: 0, Y: cfg.feetToPx(10)},
	}
	dims := DimensionsFromPolygon(poly)

	// Axis at 8.5 ft crosses only the left half.
	beam, posts, footings := solveBeam(cfg, dims, baseSpec(), beamSpec{
		acrossPx:   cfg.feetToPx(8.5),
		horizontal: true,
		size:       lumber.Size2x10,
		ply:        2,
		usage:      lumber.BeamOuter,
		maxGapFeet: cfg.MaxPostSpacingFeet,
	})
	if beam.Empty() {
		t.Fatal("beam is empty, want clipped to the deep half")
	}
	if got, want := cfg.pxToFeet(geom.Distance(beam.CenterlineP1, beam.CenterlineP2)), 8.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("clipped centerline = %v ft, want %v", got, want)
	}
	for _, f := range footings {
		if !geom.Contains(dims.Polygon, geom.Point{X: f.X, Y: f.Y}) {
			t.Errorf("footing at (%v, %v) lies outside the outline", f.X, f.Y)
		}
	}
	if len(footings) > len(posts) {
		t.Errorf("footings = %d exceed posts = %d", len(footings), len(posts))
	}
}
