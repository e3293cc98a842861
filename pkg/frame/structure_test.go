package frame

import (
	"math"
	"strings"
	"testing"

	"github.com/mhalvorsen/deckplan/pkg/errors"
	"github.com/mhalvorsen/deckplan/pkg/geom"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// bottomWall returns the wall along the outline's first edge.
func bottomWall(d Dimensions) Wall {
	return Wall{P1: d.Polygon[0], P2: d.Polygon[1]}
}

func countBeams(beams []Beam, usage lumber.BeamUsage) int {
	n := 0
	for _, b := range beams {
		if b.Usage == usage {
			n++
		}
	}
	return n
}

func countRims(rims []RimJoist, usage lumber.RimUsage) int {
	n := 0
	for _, r := range rims {
		if r.Usage == usage {
			n++
		}
	}
	return n
}

func TestCalculateLedgerDeck(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 10)

	c, err := Calculate(cfg, dims, bottomWall(dims), baseSpec())
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}

	if c.Ledger == nil {
		t.Fatal("ledger is nil for house_rim attachment")
	}
	if got, want := c.Ledger.LengthFeet, 12.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("ledger length = %v ft, want %v", got, want)
	}
	if c.Ledger.Size != lumber.Size2x8 {
		t.Errorf("ledger size = %v, want 2x8 matching the joists", c.Ledger.Size)
	}

	if len(c.Beams) != 1 {
		t.Fatalf("beams = %d, want outer beam only", len(c.Beams))
	}
	b := c.Beams[0]
	if b.Usage != lumber.BeamOuter {
		t.Errorf("beam usage = %v, want outer", b.Usage)
	}
	if b.Flush {
		t.Error("beam is flush, want dropped")
	}
	// Dropped beam sits a setback in from the outer edge.
	wantAxis := cfg.feetToPx(10 - cfg.DropBeamSetbackFeet)
	if math.Abs(b.CenterlineP1.Y-wantAxis) > geom.Epsilon {
		t.Errorf("beam axis y = %v, want %v", b.CenterlineP1.Y, wantAxis)
	}

	if len(c.Posts) != 3 {
		t.Errorf("posts = %d, want 3", len(c.Posts))
	}
	if len(c.Footings) != 3 {
		t.Errorf("footings = %d, want 3", len(c.Footings))
	}

	// Joists hang off the ledger and stop at the outer rim.
	if len(c.Joists) == 0 {
		t.Fatal("no joists emitted")
	}
	thickness := cfg.inToPx(lumber.ActualThicknessIn)
	for _, j := range c.Joists {
		lo := math.Min(j.P1.Y, j.P2.Y)
		hi := math.Max(j.P1.Y, j.P2.Y)
		if math.Abs(lo-thickness) > geom.Epsilon {
			t.Fatalf("joist starts at y=%v, want ledger face %v", lo, thickness)
		}
		if math.Abs(hi-(cfg.feetToPx(10)-thickness)) > geom.Epsilon {
			t.Fatalf("joist ends at y=%v, want outer rim face", hi)
		}
		if j.Size != lumber.Size2x8 {
			t.Fatalf("joist size = %v, want 2x8", j.Size)
		}
	}

	if got := countRims(c.RimJoists, lumber.RimEnd); got != 2 {
		t.Errorf("end rims = %d, want 2", got)
	}
	if got := countRims(c.RimJoists, lumber.RimOuter); got != 1 {
		t.Errorf("outer rims = %d, want 1", got)
	}
	if got := countRims(c.RimJoists, lumber.RimWall); got != 0 {
		t.Errorf("wall rims = %d, want 0 for house_rim", got)
	}

	// 9.75 ft unbraced run exceeds 8 ft: one blocking row, one piece per bay.
	if len(c.MidSpanBlocking) == 0 {
		t.Error("no mid-span blocking for a run over the unbraced maximum")
	}
	if len(c.PictureFrameBlocking) != 0 {
		t.Errorf("ladder blocking = %d, want none without a picture frame", len(c.PictureFrameBlocking))
	}

	if math.Abs(c.TotalDepthFeet-10) > 1e-9 {
		t.Errorf("total depth = %v, want 10", c.TotalDepthFeet)
	}
}

func TestCalculateJoistSpacingInvariant(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 10)

	for _, spacing := range []int{12, 16} {
		spec := baseSpec()
		spec.JoistSpacingIn = spacing
		c, err := Calculate(cfg, dims, bottomWall(dims), spec)
		if err != nil {
			t.Fatalf("Calculate(%d\") error: %v", spacing, err)
		}
		spacingPx := cfg.inToPx(float64(spacing))
		xs := map[float64]bool{}
		for _, j := range c.Joists {
			xs[j.P1.X] = true
		}
		for x := range xs {
			rem := math.Mod(x, spacingPx)
			if rem > geom.Epsilon && spacingPx-rem > geom.Epsilon {
				t.Errorf("spacing %d\": joist at x=%v off the grid", spacing, x)
			}
		}
	}
}

func TestCalculateFlushOuterBeam(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 10)
	spec := baseSpec()
	spec.BeamStyle = BeamFlush

	c, err := Calculate(cfg, dims, bottomWall(dims), spec)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}

	if len(c.Beams) != 1 || !c.Beams[0].Flush {
		t.Fatalf("beams = %+v, want one flush outer beam", c.Beams)
	}
	// Flush beam sits on the deck edge and replaces the outer rim.
	if math.Abs(c.Beams[0].CenterlineP1.Y-cfg.feetToPx(10)) > geom.Epsilon {
		t.Errorf("flush beam axis y = %v, want on the outer edge", c.Beams[0].CenterlineP1.Y)
	}
	if got := countRims(c.RimJoists, lumber.RimOuter); got != 0 {
		t.Errorf("outer rims = %d, want 0 with a flush outer beam", got)
	}

	// Joists butt the beam face: flush framing consumes depth.
	halfBeam := float64(c.Beams[0].Ply) * cfg.inToPx(lumber.ActualThicknessIn) / 2
	wantEnd := cfg.feetToPx(10) - halfBeam
	for _, j := range c.Joists {
		hi := math.Max(j.P1.Y, j.P2.Y)
		if math.Abs(hi-wantEnd) > geom.Epsilon {
			t.Fatalf("joist ends at y=%v, want flush beam face %v", hi, wantEnd)
		}
	}
}

func TestCalculateConcreteWallRim(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 10)
	spec := baseSpec()
	spec.Attachment = AttachConcrete

	c, err := Calculate(cfg, dims, bottomWall(dims), spec)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if c.Ledger != nil {
		t.Error("ledger emitted for concrete attachment")
	}
	if got := countRims(c.RimJoists, lumber.RimWall); got != 1 {
		t.Errorf("wall rims = %d, want 1 for concrete", got)
	}
}

func TestCalculateFloatingDeck(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 10)
	spec := baseSpec()
	spec.Attachment = AttachFloating

	c, err := Calculate(cfg, dims, bottomWall(dims), spec)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if c.Ledger != nil {
		t.Error("ledger emitted for a floating deck")
	}
	if got := countBeams(c.Beams, lumber.BeamWall); got != 1 {
		t.Errorf("wall beams = %d, want 1", got)
	}
	if got := countBeams(c.Beams, lumber.BeamOuter); got != 1 {
		t.Errorf("outer beams = %d, want 1", got)
	}
	// Beams are ordered wall-side first.
	if c.Beams[0].Usage != lumber.BeamWall {
		t.Errorf("first beam usage = %v, want wall", c.Beams[0].Usage)
	}

	// Every footing coincides with a post.
	posts := map[[2]int]bool{}
	for _, p := range c.Posts {
		posts[[2]int{int(math.Round(p.X)), int(math.Round(p.Y))}] = true
	}
	for _, f := range c.Footings {
		if !posts[[2]int{int(math.Round(f.X)), int(math.Round(f.Y))}] {
			t.Errorf("footing at (%v, %v) has no post", f.X, f.Y)
		}
	}
}

func TestCalculateMidBeamSplitsJoists(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 22)

	c, err := Calculate(cfg, dims, bottomWall(dims), baseSpec())
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if got := countBeams(c.Beams, lumber.BeamMid); got != 1 {
		t.Fatalf("mid beams = %d, want 1 at 22 ft depth", got)
	}
	// Beams order: mid before outer.
	if c.Beams[0].Usage != lumber.BeamMid {
		t.Errorf("first beam usage = %v, want mid", c.Beams[0].Usage)
	}

	// Joists split at the mid beam: no single piece spans the full depth.
	for _, j := range c.Joists {
		if j.LengthFeet > 12 {
			t.Errorf("joist of %v ft not split at the mid beam", j.LengthFeet)
		}
	}
	// Both halves exceed the unbraced maximum: two blocking rows.
	rows := map[float64]bool{}
	for _, b := range c.MidSpanBlocking {
		rows[b.P1.Y] = true
	}
	if len(rows) != 2 {
		t.Errorf("blocking rows = %d, want 2", len(rows))
	}
}

func TestCalculateSingleSpanOverride(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 18)

	c, err := Calculate(cfg, dims, bottomWall(dims), baseSpec())
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	// The mid beam is still placed, but joists run the full depth unbroken.
	if got := countBeams(c.Beams, lumber.BeamMid); got != 1 {
		t.Errorf("mid beams = %d, want 1", got)
	}
	for _, j := range c.Joists {
		if j.LengthFeet < 17 {
			t.Errorf("joist of %v ft split despite single-span override", j.LengthFeet)
		}
		if j.Size != lumber.Size2x8 {
			t.Errorf("joist size = %v, want 2x8", j.Size)
		}
	}
}

func TestCalculatePictureFrame(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 10)
	spec := baseSpec()
	spec.PictureFrame = PictureFrameDouble

	c, err := Calculate(cfg, dims, bottomWall(dims), spec)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	pf := 0
	for _, j := range c.Joists {
		if j.Usage == lumber.JoistPictureFrame {
			pf++
		}
	}
	if pf != 2 {
		t.Errorf("picture-frame joists = %d, want 2", pf)
	}
	if len(c.PictureFrameBlocking) == 0 {
		t.Error("no ladder blocking behind the picture frame")
	}
	for _, b := range c.PictureFrameBlocking {
		wantLen := cfg.PictureFrameDoubleInsetIn / 12
		if math.Abs(b.LengthFeet-wantLen) > 1e-9 {
			t.Errorf("ladder rung = %v ft, want %v", b.LengthFeet, wantLen)
		}
	}
}

func TestCalculateTooDeepFails(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 35)

	_, err := Calculate(cfg, dims, bottomWall(dims), baseSpec())
	if err == nil {
		t.Fatal("expected error for a 35 ft deep deck")
	}
	if got := errors.GetCode(err); got != errors.ErrCodeNoJoistSize {
		t.Errorf("error code = %v, want %v", got, errors.ErrCodeNoJoistSize)
	}
	if !strings.Contains(err.Error(), "No joist") {
		t.Errorf("error %q does not explain the joist limit", err)
	}
}

func TestCalculateRejectsBadSpec(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 10)
	spec := baseSpec()
	spec.JoistSpacingIn = 19

	if _, err := Calculate(cfg, dims, bottomWall(dims), spec); err == nil {
		t.Error("expected error for 19in joist spacing")
	}
}

func TestCalculateVerticalWall(t *testing.T) {
	cfg := DefaultConfig()
	dims := rectDims(cfg, 12, 10)
	// Left edge: vertical wall, deck grows in +x.
	wall := Wall{P1: dims.Polygon[3], P2: dims.Polygon[0]}

	c, err := Calculate(cfg, dims, wall, baseSpec())
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if c.Ledger == nil {
		t.Fatal("ledger is nil")
	}
	if got, want := c.Ledger.LengthFeet, 10.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("ledger length = %v, want the left edge %v", got, want)
	}
	// Joists run horizontally off the vertical wall.
	for _, j := range c.Joists {
		if math.Abs(j.P1.Y-j.P2.Y) > geom.Epsilon {
			t.Fatalf("joist from %+v to %+v is not horizontal", j.P1, j.P2)
		}
	}
	if math.Abs(c.TotalDepthFeet-12) > 1e-9 {
		t.Errorf("total depth = %v, want 12 across the deck", c.TotalDepthFeet)
	}
}
