package frame

import (
	"github.com/mhalvorsen/deckplan/pkg/geom"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// rimJob extends layoutJob with the perimeter coordinates the rim engine
// needs: the wall and far edge lines and which perimeter rims to include.
type rimJob struct {
	layoutJob
	wallV           float64 // across coordinate of the wall edge
	farV            float64 // across coordinate of the outer edge
	includeWallRim  bool    // concrete attachment caps the wall edge
	includeOuterRim bool    // false when a flush outer beam takes its place
}

// emitRims lays out the perimeter framing: end joists along the two sides
// parallel to the joists, the outer rim across the joist ends, and a wall
// rim when the deck anchors to concrete. End joists honor the mid-beam
// split the same way field joists do. FullEdge endpoints keep the
// un-clipped deck edge for downstream stair placement.
func emitRims(cfg Config, dims Dimensions, job rimJob) []RimJoist {
	var rims []RimJoist

	uMin, uMax := alongBounds(job.horizontal, dims)

	// End joists at the side edges, split at the mid beam per the job.
	for _, u := range []float64{uMin, uMax} {
		fullP1 := axisPoint(job.horizontal, u, job.wallV)
		fullP2 := axisPoint(job.horizontal, u, job.farV)
		for _, run := range job.runs() {
			p1 := axisPoint(job.horizontal, u, run[0])
			p2 := axisPoint(job.horizontal, u, run[1])
			rims = append(rims, clipRims(cfg, dims, p1, p2, fullP1, fullP2, job.size, lumber.RimEnd)...)
		}
	}

	// Outer rim across the joist ends at the far edge.
	if job.includeOuterRim {
		fullP1 := axisPoint(job.horizontal, uMin, job.farV)
		fullP2 := axisPoint(job.horizontal, uMax, job.farV)
		rims = append(rims, clipRims(cfg, dims, fullP1, fullP2, fullP1, fullP2, job.size, lumber.RimOuter)...)
	}

	// Wall rim for concrete attachment.
	if job.includeWallRim {
		fullP1 := axisPoint(job.horizontal, uMin, job.wallV)
		fullP2 := axisPoint(job.horizontal, uMax, job.wallV)
		rims = append(rims, clipRims(cfg, dims, fullP1, fullP2, fullP1, fullP2, job.size, lumber.RimWall)...)
	}

	return rims
}

// clipRims clips one rim line to the polygon and emits a member per inside
// piece, all sharing the same full-edge endpoints.
func clipRims(cfg Config, dims Dimensions, p1, p2, fullP1, fullP2 geom.Point, size lumber.Size, usage lumber.RimUsage) []RimJoist {
	var rims []RimJoist
	for _, seg := range geom.ClipToPolygon(p1, p2, dims.Polygon) {
		if seg.Length() <= geom.Epsilon {
			continue
		}
		rims = append(rims, RimJoist{
			P1:         seg.P1,
			P2:         seg.P2,
			FullEdgeP1: fullP1,
			FullEdgeP2: fullP2,
			Size:       size,
			Usage:      usage,
			LengthFeet: cfg.pxToFeet(seg.Length()),
		})
	}
	return rims
}
