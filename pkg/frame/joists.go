package frame

import (
	"math"

	"github.com/mhalvorsen/deckplan/pkg/geom"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// layoutJob carries the coordinates shared by the joist, rim, and blocking
// engines: the across-range the members span, the optional mid-beam split,
// and the spacing grid. startV is the wall side, endV the outer side; the
// two may be in either numeric order depending on which way the deck grows.
type layoutJob struct {
	horizontal bool    // wall orientation; joists run perpendicular
	startV     float64 // across coordinate where joists start (wall side)
	endV       float64 // across coordinate where joists end (outer side)
	midV       float64 // mid-beam across coordinate, meaningful when splitAtMid
	splitAtMid bool    // split members at midV; forced single span clears this
	spacingPx  float64 // on-center joist spacing
	pfInsetPx  float64 // picture-frame joist inset, 0 when disabled
	size       lumber.Size
}

// runs returns the across-ranges a member at one station covers: two when
// split at the mid beam, one otherwise.
func (j layoutJob) runs() [][2]float64 {
	if j.splitAtMid {
		return [][2]float64{{j.startV, j.midV}, {j.midV, j.endV}}
	}
	return [][2]float64{{j.startV, j.endV}}
}

// fieldStations returns the along coordinates of the field joists: one per
// spacing increment strictly between the two side edges, which carry end
// joists instead.
func fieldStations(dims Dimensions, horizontal bool, spacingPx float64) []float64 {
	uMin, uMax := alongBounds(horizontal, dims)
	var stations []float64
	for u := uMin + spacingPx; u < uMax-geom.Epsilon; u += spacingPx {
		stations = append(stations, u)
	}
	return stations
}

// emitJoists lays out the field joists and, when a picture frame is
// enabled, the two border joists inset from the side edges. Every line is
// clipped to the deck polygon; a station crossing a notch yields one piece
// per inside span.
func emitJoists(cfg Config, dims Dimensions, job layoutJob) []Joist {
	var joists []Joist

	emit := func(u float64, usage lumber.JoistUsage) {
		for _, run := range job.runs() {
			p1 := axisPoint(job.horizontal, u, run[0])
			p2 := axisPoint(job.horizontal, u, run[1])
			for _, seg := range geom.ClipToPolygon(p1, p2, dims.Polygon) {
				if seg.Length() <= geom.Epsilon {
					continue
				}
				joists = append(joists, Joist{
					P1:         seg.P1,
					P2:         seg.P2,
					Size:       job.size,
					Usage:      usage,
					LengthFeet: cfg.pxToFeet(seg.Length()),
				})
			}
		}
	}

	for _, u := range fieldStations(dims, job.horizontal, job.spacingPx) {
		emit(u, lumber.JoistField)
	}

	if job.pfInsetPx > 0 {
		uMin, uMax := alongBounds(job.horizontal, dims)
		if uMax-uMin > 2*job.pfInsetPx+geom.Epsilon {
			emit(uMin+job.pfInsetPx, lumber.JoistPictureFrame)
			emit(uMax-job.pfInsetPx, lumber.JoistPictureFrame)
		}
	}

	return joists
}

// runFeet returns the unbraced length of an across-range in feet.
func (c Config) runFeet(run [2]float64) float64 {
	return c.pxToFeet(math.Abs(run[1] - run[0]))
}
