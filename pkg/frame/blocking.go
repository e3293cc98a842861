package frame

import (
	"math"

	"github.com/mhalvorsen/deckplan/pkg/geom"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// emitMidSpanBlocking computes the perpendicular blocking rows that brace
// long joist runs. Each run longer than the configured unbraced maximum
// gets one row at its midpoint: a blocking piece per bay between adjacent
// joist stations (side edges included), clipped to the polygon.
func emitMidSpanBlocking(cfg Config, dims Dimensions, job layoutJob) []Blocking {
	uMin, uMax := alongBounds(job.horizontal, dims)
	stations := append([]float64{uMin}, fieldStations(dims, job.horizontal, job.spacingPx)...)
	stations = append(stations, uMax)

	var blocking []Blocking
	for _, run := range job.runs() {
		if cfg.runFeet(run) <= cfg.MaxUnbracedFeet {
			continue
		}
		rowV := (run[0] + run[1]) / 2
		for i := 0; i+1 < len(stations); i++ {
			p1 := axisPoint(job.horizontal, stations[i], rowV)
			p2 := axisPoint(job.horizontal, stations[i+1], rowV)
			blocking = append(blocking, clipBlocking(cfg, dims, p1, p2, job.size, lumber.BlockingMidSpan)...)
		}
	}
	return blocking
}

// emitLadderBlocking computes the "ladder" cross blocking between each
// picture-frame joist and the perimeter it borders: short rungs every
// LadderRungSpacingFeet along the joist direction, on both sides.
func emitLadderBlocking(cfg Config, dims Dimensions, job layoutJob) []Blocking {
	if job.pfInsetPx <= 0 {
		return nil
	}
	uMin, uMax := alongBounds(job.horizontal, dims)
	if uMax-uMin <= 2*job.pfInsetPx+geom.Epsilon {
		return nil
	}

	vLo := math.Min(job.startV, job.endV)
	vHi := math.Max(job.startV, job.endV)
	rungPx := cfg.feetToPx(cfg.LadderRungSpacingFeet)

	sides := [][2]float64{
		{uMin, uMin + job.pfInsetPx},
		{uMax, uMax - job.pfInsetPx},
	}

	var blocking []Blocking
	for _, side := range sides {
		for v := vLo + rungPx; v < vHi-geom.Epsilon; v += rungPx {
			p1 := axisPoint(job.horizontal, side[0], v)
			p2 := axisPoint(job.horizontal, side[1], v)
			blocking = append(blocking, clipBlocking(cfg, dims, p1, p2, job.size, lumber.BlockingLadder)...)
		}
	}
	return blocking
}

// clipBlocking clips one blocking line to the polygon and emits a member
// per inside piece.
func clipBlocking(cfg Config, dims Dimensions, p1, p2 geom.Point, size lumber.Size, usage lumber.BlockingUsage) []Blocking {
	var out []Blocking
	for _, seg := range geom.ClipToPolygon(p1, p2, dims.Polygon) {
		if seg.Length() <= geom.Epsilon {
			continue
		}
		out = append(out, Blocking{
			P1:         seg.P1,
			P2:         seg.P2,
			Size:       size,
			Usage:      usage,
			LengthFeet: cfg.pxToFeet(seg.Length()),
		})
	}
	return out
}
