package frame

import "github.com/mhalvorsen/deckplan/pkg/geom"

// The calculator works in wall-relative coordinates: "along" runs parallel
// to the selected wall, "across" runs perpendicular to it (the joist
// direction). When the wall is horizontal, along is x and across is y;
// when vertical, the roles swap. All three helpers take the wall's
// orientation so call sites read symmetrically for both cases.

// axisPoint builds a plane point from wall-relative coordinates.
func axisPoint(wallHorizontal bool, along, across float64) geom.Point {
	if wallHorizontal {
		return geom.Point{X: along, Y: across}
	}
	return geom.Point{X: across, Y: along}
}

// alongOf extracts the along coordinate of p.
func alongOf(wallHorizontal bool, p geom.Point) float64 {
	if wallHorizontal {
		return p.X
	}
	return p.Y
}

// acrossOf extracts the across coordinate of p.
func acrossOf(wallHorizontal bool, p geom.Point) float64 {
	if wallHorizontal {
		return p.Y
	}
	return p.X
}

// alongBounds returns the bounding-box extent parallel to the wall.
func alongBounds(wallHorizontal bool, d Dimensions) (float64, float64) {
	if wallHorizontal {
		return d.MinX, d.MaxX
	}
	return d.MinY, d.MaxY
}

// acrossBounds returns the bounding-box extent perpendicular to the wall.
func acrossBounds(wallHorizontal bool, d Dimensions) (float64, float64) {
	if wallHorizontal {
		return d.MinY, d.MaxY
	}
	return d.MinX, d.MaxX
}
