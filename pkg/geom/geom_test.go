package geom

import (
	"math"
	"testing"
)

// rect returns a clockwise ring for an axis-aligned rectangle.
func rect(x1, y1, x2, y2 float64) []Point {
	return []Point{{x1, y1}, {x2, y1}, {x2, y2}, {x1, y2}}
}

// lShape is a 12x10 rectangle with its lower-right 6x5 corner notched out.
func lShape() []Point {
	return []Point{{0, 0}, {12, 0}, {12, 5}, {6, 5}, {6, 10}, {0, 10}}
}

func TestDistance(t *testing.T) {
	got := Distance(Point{0, 0}, Point{3, 4})
	if got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestContains_Inside(t *testing.T) {
	poly := rect(0, 0, 10, 10)
	if !Contains(poly, Point{5, 5}) {
		t.Errorf("Contains(center) = false, want true")
	}
}

func TestContains_Outside(t *testing.T) {
	poly := rect(0, 0, 10, 10)
	if Contains(poly, Point{15, 5}) {
		t.Errorf("Contains(outside) = true, want false")
	}
}

func TestContains_OnEdge(t *testing.T) {
	poly := rect(0, 0, 10, 10)
	for _, p := range []Point{{0, 5}, {10, 5}, {5, 0}, {5, 10}, {0, 0}} {
		if !Contains(poly, p) {
			t.Errorf("Contains(%v) = false, want true (boundary counts as inside)", p)
		}
	}
}

func TestContains_Notch(t *testing.T) {
	poly := lShape()
	if Contains(poly, Point{9, 8}) {
		t.Errorf("Contains(notch interior) = true, want false")
	}
	if !Contains(poly, Point{3, 8}) {
		t.Errorf("Contains(leg interior) = false, want true")
	}
}

func TestClipToPolygon_FullyInside(t *testing.T) {
	poly := rect(0, 0, 10, 10)
	got := ClipToPolygon(Point{2, 5}, Point{8, 5}, poly)
	if len(got) != 1 {
		t.Fatalf("ClipToPolygon() yielded %d segments, want 1", len(got))
	}
	if got[0].P1.X != 2 || got[0].P2.X != 8 {
		t.Errorf("ClipToPolygon() = %v, want [2,5]-[8,5]", got[0])
	}
}

func TestClipToPolygon_CrossingBoth(t *testing.T) {
	poly := rect(0, 0, 10, 10)
	got := ClipToPolygon(Point{-5, 5}, Point{15, 5}, poly)
	if len(got) != 1 {
		t.Fatalf("ClipToPolygon() yielded %d segments, want 1", len(got))
	}
	if math.Abs(got[0].P1.X) > 1e-6 || math.Abs(got[0].P2.X-10) > 1e-6 {
		t.Errorf("ClipToPolygon() = %v, want clipped to [0,5]-[10,5]", got[0])
	}
}

func TestClipToPolygon_FullyOutside(t *testing.T) {
	poly := rect(0, 0, 10, 10)
	if got := ClipToPolygon(Point{-5, 20}, Point{15, 20}, poly); len(got) != 0 {
		t.Errorf("ClipToPolygon() yielded %d segments, want 0", len(got))
	}
}

func TestClipToPolygon_AlongEdge(t *testing.T) {
	// A run exactly along the top edge must be kept: rim joists and ledgers
	// sit on the outline itself.
	poly := rect(0, 0, 10, 10)
	got := ClipToPolygon(Point{-2, 0}, Point{12, 0}, poly)
	if len(got) != 1 {
		t.Fatalf("ClipToPolygon() yielded %d segments, want 1", len(got))
	}
	if math.Abs(got[0].Length()-10) > 1e-6 {
		t.Errorf("ClipToPolygon() length = %v, want 10", got[0].Length())
	}
}

func TestClipToPolygon_NotchSplitsLine(t *testing.T) {
	// A horizontal line at y=8 crosses only the leg of the L; at y=3 it
	// spans the full width.
	poly := lShape()
	low := ClipToPolygon(Point{0, 8}, Point{12, 8}, poly)
	if len(low) != 1 || math.Abs(low[0].Length()-6) > 1e-6 {
		t.Fatalf("ClipToPolygon(y=8) = %v, want one 6-long segment", low)
	}
	high := ClipToPolygon(Point{0, 3}, Point{12, 3}, poly)
	if len(high) != 1 || math.Abs(high[0].Length()-12) > 1e-6 {
		t.Fatalf("ClipToPolygon(y=3) = %v, want one 12-long segment", high)
	}
}

func TestLongestInside_PicksLongest(t *testing.T) {
	// U-shape: two prongs of width 3 and 4 separated by a slot.
	poly := []Point{{0, 0}, {3, 0}, {3, 6}, {6, 6}, {6, 0}, {10, 0}, {10, 10}, {0, 10}}
	seg, ok := LongestInside(Point{0, 2}, Point{10, 2}, poly)
	if !ok {
		t.Fatalf("LongestInside() ok = false, want true")
	}
	if math.Abs(seg.Length()-4) > 1e-6 {
		t.Errorf("LongestInside() length = %v, want 4 (the wider prong)", seg.Length())
	}
}

func TestLongestInside_NoOverlap(t *testing.T) {
	poly := rect(0, 0, 10, 10)
	if _, ok := LongestInside(Point{0, 30}, Point{10, 30}, poly); ok {
		t.Errorf("LongestInside() ok = true, want false")
	}
}

func TestOnSegment(t *testing.T) {
	a, b := Point{0, 0}, Point{10, 0}
	if !OnSegment(a, b, Point{5, 0}) {
		t.Errorf("OnSegment(midpoint) = false, want true")
	}
	if OnSegment(a, b, Point{5, 1}) {
		t.Errorf("OnSegment(offset point) = true, want false")
	}
	if OnSegment(a, b, Point{11, 0}) {
		t.Errorf("OnSegment(past end) = true, want false")
	}
}
