package frame

import (
	"math"

	"github.com/mhalvorsen/deckplan/pkg/errors"
	"github.com/mhalvorsen/deckplan/pkg/geom"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// Calculate computes the structural framing plan for a single rectangular
// deck. dims describes the outline, wall is the selected attachment wall
// (one of the outline's edges), and spec carries the user's choices.
//
// The returned components are complete and internally consistent, or the
// error is a coded *errors.Error and the components are nil. Calculate
// never panics on bad input.
func Calculate(cfg Config, dims Dimensions, wall Wall, spec Spec) (*Components, error) {
	return calculate(cfg, dims, wall, spec, 0)
}

// calculate is Calculate with the owning section id stamped on emitted
// beams, so the multi-section merge can track origins.
func calculate(cfg Config, dims Dimensions, wall Wall, spec Spec, sectionID int) (*Components, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if !dims.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidOutline,
			"deck outline is missing or degenerate (%d points)", len(dims.Polygon))
	}

	// Step 1: wall orientation and the across-axis frame.
	horizontal := wall.Horizontal()
	wallV := acrossOf(horizontal, wall.P1)
	vLo, vHi := acrossBounds(horizontal, dims)
	farV := vHi
	if math.Abs(wallV-vLo) > math.Abs(vHi-wallV) {
		farV = vLo
	}
	dir := 1.0
	if farV < wallV {
		dir = -1.0
	}
	depthFeet := cfg.pxToFeet(math.Abs(farV - wallV))
	if depthFeet <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidOutline, "deck has zero depth from the selected wall")
	}

	// Step 2: joist sizing, possibly demanding a mid beam.
	joistSize, needsMid, err := resolveJoistSize(cfg, spec, depthFeet)
	if err != nil {
		return nil, err
	}

	// Step 3: single-span materials override. A 2x8 deck needing a mid beam
	// in the high-end depth band frames its joists full-depth in one piece.
	forceSingleSpan := joistSize == lumber.Size2x8 && needsMid &&
		depthFeet > cfg.SingleSpanMinDepthFeet && depthFeet <= cfg.SingleSpanMaxDepthFeet

	joistSpanFeet := depthFeet
	if needsMid {
		joistSpanFeet = depthFeet / 2
	}

	thicknessPx := cfg.inToPx(lumber.ActualThicknessIn)
	setbackPx := cfg.feetToPx(cfg.DropBeamSetbackFeet)
	flush := spec.BeamStyle == BeamFlush

	c := &Components{TotalDepthFeet: depthFeet}

	// Steps 4-5: wall-side support and the outer beam.
	var wallBeam Beam
	wallBeamAxis := wallV
	switch spec.Attachment {
	case AttachHouseRim:
		seg, ok := geom.LongestInside(wall.P1, wall.P2, dims.Polygon)
		if !ok || seg.Length() <= geom.Epsilon {
			return nil, errors.New(errors.ErrCodeInvalidWall, "selected wall does not lie on the deck outline")
		}
		c.Ledger = &Ledger{
			P1:         seg.P1,
			P2:         seg.P2,
			Size:       joistSize,
			LengthFeet: cfg.pxToFeet(seg.Length()),
		}
	case AttachFloating:
		if !flush {
			wallBeamAxis = wallV + dir*setbackPx
		}
		ply, size, maxGap, err := selectBeamSize(cfg, joistSpanFeet/2)
		if err != nil {
			return nil, err
		}
		var posts []Post
		var footings []Footing
		wallBeam, posts, footings = solveBeam(cfg, dims, spec, beamSpec{
			acrossPx:   wallBeamAxis,
			horizontal: horizontal,
			size:       size,
			ply:        ply,
			flush:      flush,
			usage:      lumber.BeamWall,
			maxGapFeet: maxGap,
		})
		if !wallBeam.Empty() {
			wallBeam.SectionIDs = []int{sectionID}
			c.Beams = append(c.Beams, wallBeam)
			c.Posts = append(c.Posts, posts...)
			c.Footings = append(c.Footings, footings...)
		}
	}

	outerAxis := farV
	if !flush {
		outerAxis = farV - dir*setbackPx
	}
	outerPly, outerSize, outerGap, err := selectBeamSize(cfg, joistSpanFeet/2)
	if err != nil {
		return nil, err
	}
	outerBeam, outerPosts, outerFootings := solveBeam(cfg, dims, spec, beamSpec{
		acrossPx:   outerAxis,
		horizontal: horizontal,
		size:       outerSize,
		ply:        outerPly,
		flush:      flush,
		usage:      lumber.BeamOuter,
		maxGapFeet: outerGap,
	})
	hasWallSupport := c.Ledger != nil || !wallBeam.Empty()
	if outerBeam.Empty() && !hasWallSupport {
		return nil, errors.New(errors.ErrCodeOuterBeamUnsupported,
			"outer beam has no span inside the outline and no other support exists")
	}

	// Step 6: mid beam when the joist span demands one.
	var midBeam Beam
	midAxis := 0.0
	if needsMid {
		wallRef := wallV
		if spec.Attachment == AttachFloating {
			wallRef = wallBeamAxis
		}
		midAxis = (wallRef + outerAxis) / 2
		midPly, midSize, midGap, err := selectBeamSize(cfg, joistSpanFeet)
		if err != nil {
			return nil, err
		}
		var midPosts []Post
		var midFootings []Footing
		midBeam, midPosts, midFootings = solveBeam(cfg, dims, spec, beamSpec{
			acrossPx:   midAxis,
			horizontal: horizontal,
			size:       midSize,
			ply:        midPly,
			flush:      flush,
			usage:      lumber.BeamMid,
			maxGapFeet: midGap,
		})
		if midBeam.Empty() {
			if !forceSingleSpan {
				return nil, errors.New(errors.ErrCodeMidBeamUnsupported,
					"a mid beam is structurally required but has no span inside the outline")
			}
			// Tolerated: joists run the full depth in one piece.
		} else {
			midBeam.SectionIDs = []int{sectionID}
			c.Beams = append(c.Beams, midBeam)
			c.Posts = append(c.Posts, midPosts...)
			c.Footings = append(c.Footings, midFootings...)
		}
	}
	if !outerBeam.Empty() {
		outerBeam.SectionIDs = []int{sectionID}
		c.Beams = append(c.Beams, outerBeam)
		c.Posts = append(c.Posts, outerPosts...)
		c.Footings = append(c.Footings, outerFootings...)
	}

	// Step 7: joist start/end from the actual member positions. Flush
	// framing consumes depth; dropped beams let joists cantilever over them
	// to the deck edge.
	startV := wallV + dir*thicknessPx // joists butt the ledger or wall rim
	if spec.Attachment == AttachFloating {
		if flush {
			startV = wallBeamAxis + dir*float64(beamPly(wallBeam))*thicknessPx/2
		} else {
			startV = wallV
		}
	}
	endV := farV - dir*thicknessPx // joists butt the outer rim
	outerRim := true
	if flush && !outerBeam.Empty() {
		endV = outerAxis - dir*float64(outerBeam.Ply)*thicknessPx/2
		outerRim = false
	}

	// Step 8: layout engines.
	job := layoutJob{
		horizontal: horizontal,
		startV:     startV,
		endV:       endV,
		midV:       midAxis,
		splitAtMid: needsMid && !forceSingleSpan && !midBeam.Empty(),
		spacingPx:  cfg.inToPx(float64(spec.JoistSpacingIn)),
		pfInsetPx:  pictureFrameInsetPx(cfg, spec.PictureFrame),
		size:       joistSize,
	}
	c.Joists = emitJoists(cfg, dims, job)
	c.RimJoists = emitRims(cfg, dims, rimJob{
		layoutJob:       job,
		wallV:           wallV,
		farV:            farV,
		includeWallRim:  spec.Attachment == AttachConcrete,
		includeOuterRim: outerRim,
	})
	c.MidSpanBlocking = emitMidSpanBlocking(cfg, dims, job)
	c.PictureFrameBlocking = emitLadderBlocking(cfg, dims, job)

	// Step 9: canonical beam order for display: wall-side, mid, outer.
	sortBeams(c.Beams)

	return c, nil
}

// beamPly returns the beam's ply count, defaulting to 1 for an empty beam
// so thickness math stays finite.
func beamPly(b Beam) int {
	if b.Ply < 1 {
		return 1
	}
	return b.Ply
}

// pictureFrameInsetPx converts the picture-frame selection to a pixel
// inset.
func pictureFrameInsetPx(cfg Config, pf PictureFrame) float64 {
	switch pf {
	case PictureFrameSingle:
		return cfg.inToPx(cfg.PictureFrameSingleInsetIn)
	case PictureFrameDouble:
		return cfg.inToPx(cfg.PictureFrameDoubleInsetIn)
	default:
		return 0
	}
}

// sortBeams orders beams wall-side, mid, outer without disturbing the
// relative order of beams sharing a usage.
func sortBeams(beams []Beam) {
	rank := func(u lumber.BeamUsage) int {
		switch u {
		case lumber.BeamWall:
			return 0
		case lumber.BeamMid:
			return 1
		default:
			return 2
		}
	}
	// Insertion sort keeps this stable and the slice is tiny.
	for i := 1; i < len(beams); i++ {
		for j := i; j > 0 && rank(beams[j].Usage) < rank(beams[j-1].Usage); j-- {
			beams[j], beams[j-1] = beams[j-1], beams[j]
		}
	}
}
