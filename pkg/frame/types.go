package frame

import (
	"math"

	"github.com/mhalvorsen/deckplan/pkg/errors"
	"github.com/mhalvorsen/deckplan/pkg/geom"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// Attachment is how the deck connects to the existing structure.
type Attachment int

const (
	// AttachHouseRim bolts a ledger to the house rim; joists hang from it.
	AttachHouseRim Attachment = iota
	// AttachConcrete anchors to a concrete wall; no ledger, a wall rim
	// joist caps the wall edge instead.
	AttachConcrete
	// AttachFloating is freestanding: beams on both the wall side and the
	// outer side.
	AttachFloating
)

func (a Attachment) String() string {
	switch a {
	case AttachHouseRim:
		return "house_rim"
	case AttachConcrete:
		return "concrete"
	default:
		return "floating"
	}
}

// ParseAttachment maps a configuration string to an Attachment.
func ParseAttachment(s string) (Attachment, error) {
	switch s {
	case "house_rim", "":
		return AttachHouseRim, nil
	case "concrete":
		return AttachConcrete, nil
	case "floating":
		return AttachFloating, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidSpec,
			"unknown attachment type: %q (must be one of: house_rim, concrete, floating)", s)
	}
}

// BeamStyle is how beams relate to the joist plane.
type BeamStyle int

const (
	// BeamDrop places beams below the joists; joists cantilever over them
	// to the deck edge.
	BeamDrop BeamStyle = iota
	// BeamFlush places beams in the joist plane; joists butt into the beam
	// faces, consuming depth.
	BeamFlush
)

func (b BeamStyle) String() string {
	if b == BeamFlush {
		return "flush"
	}
	return "drop"
}

// ParseBeamStyle maps a configuration string to a BeamStyle.
func ParseBeamStyle(s string) (BeamStyle, error) {
	switch s {
	case "drop", "":
		return BeamDrop, nil
	case "flush":
		return BeamFlush, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidSpec,
			"unknown beam style: %q (must be one of: drop, flush)", s)
	}
}

// PictureFrame selects the decking border style.
type PictureFrame int

const (
	PictureFrameNone PictureFrame = iota
	PictureFrameSingle
	PictureFrameDouble
)

func (p PictureFrame) String() string {
	switch p {
	case PictureFrameSingle:
		return "single"
	case PictureFrameDouble:
		return "double"
	default:
		return "none"
	}
}

// ParsePictureFrame maps a configuration string to a PictureFrame.
func ParsePictureFrame(s string) (PictureFrame, error) {
	switch s {
	case "none", "":
		return PictureFrameNone, nil
	case "single":
		return PictureFrameSingle, nil
	case "double":
		return PictureFrameDouble, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidSpec,
			"unknown picture frame: %q (must be one of: none, single, double)", s)
	}
}

// Spec is the user's input specification for the deck.
type Spec struct {
	DeckHeightIn   float64 // walking surface height above grade
	JoistSpacingIn int     // on-center spacing: 12 or 16
	Attachment     Attachment
	BeamStyle      BeamStyle
	Footing        lumber.FootingType
	PictureFrame   PictureFrame
}

// Validate checks the spec against the tabulated options.
func (s Spec) Validate() error {
	if s.JoistSpacingIn != 12 && s.JoistSpacingIn != 16 {
		return errors.New(errors.ErrCodeInvalidSpec,
			"joist spacing must be 12 or 16 inches, got %d", s.JoistSpacingIn)
	}
	if s.DeckHeightIn < 0 {
		return errors.New(errors.ErrCodeInvalidSpec,
			"deck height must be non-negative, got %.1f", s.DeckHeightIn)
	}
	return nil
}

// Wall is a straight wall segment of the outline, a candidate ledger
// location.
type Wall struct {
	P1 geom.Point `json:"p1"`
	P2 geom.Point `json:"p2"`
}

// Horizontal reports whether the wall runs horizontally (Δx > Δy).
func (w Wall) Horizontal() bool {
	return math.Abs(w.P2.X-w.P1.X) > math.Abs(w.P2.Y-w.P1.Y)
}

// LengthPx returns the wall's length in pixels.
func (w Wall) LengthPx() float64 { return geom.Distance(w.P1, w.P2) }

// Dimensions is the deck outline with its axis-aligned bounding box.
type Dimensions struct {
	MinX, MaxX, MinY, MaxY float64
	Polygon                []geom.Point // ordered closed ring, rectilinear
}

// DimensionsFromPolygon derives the bounding box of an outline ring.
func DimensionsFromPolygon(poly []geom.Point) Dimensions {
	d := Dimensions{Polygon: poly}
	if len(poly) == 0 {
		return d
	}
	d.MinX, d.MaxX = poly[0].X, poly[0].X
	d.MinY, d.MaxY = poly[0].Y, poly[0].Y
	for _, p := range poly[1:] {
		d.MinX = math.Min(d.MinX, p.X)
		d.MaxX = math.Max(d.MaxX, p.X)
		d.MinY = math.Min(d.MinY, p.Y)
		d.MaxY = math.Max(d.MaxY, p.Y)
	}
	return d
}

// Valid reports whether the dimensions describe a usable outline.
func (d Dimensions) Valid() bool {
	return len(d.Polygon) >= 3 && d.MaxX > d.MinX && d.MaxY > d.MinY
}

// Section is one rectangular piece of a decomposed outline, produced by the
// external decomposition service.
type Section struct {
	Corners     [4]geom.Point
	IsLedger    bool   // part of the ledger-attached structure
	LedgerWalls []Wall // wall segments touching this section, if any
}

// Ledger is the member bolted to the existing structure. A merged ledger
// across non-collinear wall pieces keeps the first segment's geometry but
// sums the lengths, since fastener counts follow total length.
type Ledger struct {
	P1         geom.Point  `json:"p1"`
	P2         geom.Point  `json:"p2"`
	Size       lumber.Size `json:"size"`
	LengthFeet float64     `json:"length_feet"`
}

// Beam is a load-carrying member spanning between posts.
type Beam struct {
	P1           geom.Point       `json:"p1"` // material endpoints, cantilever included
	P2           geom.Point       `json:"p2"`
	CenterlineP1 geom.Point       `json:"centerline_p1"` // clipped axis without cantilever
	CenterlineP2 geom.Point       `json:"centerline_p2"`
	Size         lumber.Size      `json:"size"`
	Ply          int              `json:"ply"`
	Flush        bool             `json:"flush"`
	Usage        lumber.BeamUsage `json:"usage"`
	LengthFeet   float64          `json:"length_feet"`
	// PostGapFeet is the widest post gap the beam was sized for. Sizing
	// tightens it below the configured maximum when no tabulated row
	// reaches that spacing; zero means the configured maximum applies.
	PostGapFeet float64 `json:"post_gap_feet,omitempty"`
	Merged      bool    `json:"merged,omitempty"`
	SectionIDs  []int   `json:"section_ids,omitempty"`
}

// Empty reports whether the beam has no effective length: the solver's
// signal that the beam does not apply at its axis.
func (b Beam) Empty() bool { return b.LengthFeet <= 0 }

// Horizontal reports whether the beam runs horizontally.
func (b Beam) Horizontal() bool {
	return math.Abs(b.CenterlineP2.X-b.CenterlineP1.X) >= math.Abs(b.CenterlineP2.Y-b.CenterlineP1.Y)
}

// Joist is a single joist piece. A joist run split at a mid beam yields two
// Joist values per station.
type Joist struct {
	P1         geom.Point        `json:"p1"`
	P2         geom.Point        `json:"p2"`
	Size       lumber.Size       `json:"size"`
	Usage      lumber.JoistUsage `json:"usage"`
	LengthFeet float64           `json:"length_feet"`
}

// RimJoist is a perimeter framing member. FullEdge carries the un-clipped
// deck-edge endpoints, used by the stair-placement tool to hit-test outer
// edges.
type RimJoist struct {
	P1         geom.Point      `json:"p1"`
	P2         geom.Point      `json:"p2"`
	FullEdgeP1 geom.Point      `json:"full_edge_p1"`
	FullEdgeP2 geom.Point      `json:"full_edge_p2"`
	Size       lumber.Size     `json:"size"`
	Usage      lumber.RimUsage `json:"usage"`
	LengthFeet float64         `json:"length_feet"`
}

// Blocking is a short bracing member between joists.
type Blocking struct {
	P1         geom.Point           `json:"p1"`
	P2         geom.Point           `json:"p2"`
	Size       lumber.Size          `json:"size"`
	Usage      lumber.BlockingUsage `json:"usage"`
	LengthFeet float64              `json:"length_feet"`
}

// Post is a vertical support under a beam.
type Post struct {
	X          float64         `json:"x"`
	Y          float64         `json:"y"`
	Size       lumber.PostSize `json:"size"`
	HeightFeet float64         `json:"height_feet"`
}

// Footing is the below-grade support under a post. Footings exist only
// where the post lands inside (or on the edge of) the deck polygon.
type Footing struct {
	X    float64            `json:"x"`
	Y    float64            `json:"y"`
	Type lumber.FootingType `json:"type"`
}

// Components is the aggregate framing plan: everything the BOM generator,
// the renderers, and the stair tool consume. Both the single-section and
// multi-section entry points return this same shape.
type Components struct {
	Ledger               *Ledger    `json:"ledger,omitempty"`
	Beams                []Beam     `json:"beams"`
	Joists               []Joist    `json:"joists"`
	Posts                []Post     `json:"posts"`
	Footings             []Footing  `json:"footings"`
	RimJoists            []RimJoist `json:"rim_joists"`
	MidSpanBlocking      []Blocking `json:"mid_span_blocking"`
	PictureFrameBlocking []Blocking `json:"picture_frame_blocking"`
	TotalDepthFeet       float64    `json:"total_depth_feet"`
}
