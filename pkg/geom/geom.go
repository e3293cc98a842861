// Package geom provides the small 2-D geometry kernel used by the framing
// calculator: point distance, point-in-polygon containment, and clipping of
// a line segment against a rectilinear polygon.
//
// The conventions match the drawing plane of the rest of the system: x
// increases to the right, y increases downward, and all coordinates are in
// pixels. Polygons are ordered closed rings whose edges are each horizontal
// or vertical. None of the functions mutate their inputs.
package geom

import (
	"math"
	"sort"
)

// Epsilon is the tolerance used to merge nearly identical intersection
// parameters and to decide whether a point sits on an edge. Coordinates are
// pixels, so anything below a thousandth of a pixel is noise.
var Epsilon = 1e-7

// Point is a location in the shared 2-D plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Segment is a straight line segment between two points.
type Segment struct {
	P1, P2 Point
}

// Length returns the segment's length.
func (s Segment) Length() float64 { return Distance(s.P1, s.P2) }

// Midpoint returns the point halfway between the segment's endpoints.
func (s Segment) Midpoint() Point {
	return Point{X: (s.P1.X + s.P2.X) / 2, Y: (s.P1.Y + s.P2.Y) / 2}
}

// OnSegment reports whether p lies on the segment [a, b] within Epsilon.
func OnSegment(a, b, p Point) bool {
	cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
	if math.Abs(cross) > Epsilon*math.Max(1, Distance(a, b)) {
		return false
	}
	dot := (p.X-a.X)*(b.X-a.X) + (p.Y-a.Y)*(b.Y-a.Y)
	if dot < -Epsilon {
		return false
	}
	return dot <= (b.X-a.X)*(b.X-a.X)+(b.Y-a.Y)*(b.Y-a.Y)+Epsilon
}

// Contains reports whether p is inside the polygon or on its boundary.
// The polygon is an ordered ring; a trailing repeat of the first point is
// optional. Containment uses ray casting; boundary points always count as
// inside so that members sitting exactly on a deck edge are kept.
func Contains(poly []Point, p Point) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if OnSegment(poly[i], poly[(i+1)%n], p) {
			return true
		}
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) {
			x := pi.X + (p.Y-pi.Y)/(pj.Y-pi.Y)*(pj.X-pi.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// ClipToPolygon clips the segment [p1, p2] against the polygon and returns
// the pieces that lie inside it, ordered from p1 toward p2. A segment
// collinear with a polygon edge is kept, since perimeter members run exactly
// along deck edges. The result is empty when nothing of the segment is
// inside.
func ClipToPolygon(p1, p2 Point, poly []Point) []Segment {
	if len(poly) < 3 {
		return nil
	}
	ts := crossingParams(p1, p2, poly)

	var out []Segment
	for i := 0; i+1 < len(ts); i++ {
		a := lerp(p1, p2, ts[i])
		b := lerp(p1, p2, ts[i+1])
		if Distance(a, b) <= Epsilon {
			continue
		}
		if Contains(poly, Segment{a, b}.Midpoint()) {
			if n := len(out); n > 0 && Distance(out[n-1].P2, a) <= Epsilon {
				out[n-1].P2 = b // coalesce touching pieces
				continue
			}
			out = append(out, Segment{a, b})
		}
	}
	return out
}

// LongestInside returns the single longest piece of [p1, p2] inside the
// polygon. Disjoint secondary pieces, possible when a concave outline is
// crossed more than once, are discarded. The boolean is false when no part
// of the segment is inside.
func LongestInside(p1, p2 Point, poly []Point) (Segment, bool) {
	pieces := ClipToPolygon(p1, p2, poly)
	if len(pieces) == 0 {
		return Segment{}, false
	}
	best := pieces[0]
	for _, s := range pieces[1:] {
		if s.Length() > best.Length() {
			best = s
		}
	}
	return best, true
}

// crossingParams collects the sorted, deduplicated parameters t in [0, 1]
// at which the segment p1+t·(p2-p1) meets the polygon boundary, always
// including the endpoints 0 and 1.
func crossingParams(p1, p2 Point, poly []Point) []float64 {
	ts := []float64{0, 1}
	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		ts = append(ts, segmentIntersections(p1, p2, a, b)...)
	}
	sort.Float64s(ts)

	dedup := ts[:0]
	for _, t := range ts {
		if t < -Epsilon || t > 1+Epsilon {
			continue
		}
		t = math.Min(1, math.Max(0, t))
		if len(dedup) == 0 || t-dedup[len(dedup)-1] > Epsilon {
			dedup = append(dedup, t)
		}
	}
	return dedup
}

// segmentIntersections returns the parameters along [p1, p2] where it meets
// the edge [a, b]. Collinear overlap contributes the projections of both
// edge endpoints so that runs along a polygon edge split correctly.
func segmentIntersections(p1, p2, a, b Point) []float64 {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	ex, ey := b.X-a.X, b.Y-a.Y
	denom := dx*ey - dy*ex

	if math.Abs(denom) <= Epsilon {
		// Parallel. Only collinear edges contribute crossings.
		if !OnSegment(p1, p2, a) && !OnSegment(p1, p2, b) {
			return nil
		}
		var ts []float64
		for _, q := range []Point{a, b} {
			if t, ok := paramOn(p1, p2, q); ok {
				ts = append(ts, t)
			}
		}
		return ts
	}

	// Solve p1 + t·d = a + u·e for t and u.
	t := ((a.X-p1.X)*ey - (a.Y-p1.Y)*ex) / denom
	u := ((a.X-p1.X)*dy - (a.Y-p1.Y)*dx) / denom
	if u < -Epsilon || u > 1+Epsilon || t < -Epsilon || t > 1+Epsilon {
		return nil
	}
	return []float64{t}
}

// paramOn returns the parameter of q along [p1, p2] when q lies on the
// carrying line within the segment's range.
func paramOn(p1, p2, q Point) (float64, bool) {
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	l2 := dx*dx + dy*dy
	if l2 <= Epsilon {
		return 0, false
	}
	t := ((q.X-p1.X)*dx + (q.Y-p1.Y)*dy) / l2
	if t < -Epsilon || t > 1+Epsilon {
		return 0, false
	}
	return math.Min(1, math.Max(0, t)), true
}

func lerp(p1, p2 Point, t float64) Point {
	return Point{X: p1.X + t*(p2.X-p1.X), Y: p1.Y + t*(p2.Y-p1.Y)}
}
