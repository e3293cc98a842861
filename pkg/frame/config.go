package frame

import (
	"github.com/mhalvorsen/deckplan/pkg/lumber"
	"github.com/mhalvorsen/deckplan/pkg/spantable"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and embedding callers
// =============================================================================

const (
	// DefaultScalePxPerFoot is the drawing-plane resolution: 24 pixels per foot.
	DefaultScalePxPerFoot = 24.0

	// DefaultPostInsetFeet is how far end posts sit in from a beam's
	// polygon-clipped endpoints.
	DefaultPostInsetFeet = 1.0

	// DefaultMaxPostSpacingFeet is the widest allowed gap between adjacent
	// posts under one beam. Wider spans get evenly spaced intermediate posts.
	DefaultMaxPostSpacingFeet = 8.0

	// DefaultCantileverFeet is how far beam material overhangs the outermost
	// posts on each end.
	DefaultCantileverFeet = 1.0

	// DefaultDropBeamSetbackFeet is how far a dropped beam's centerline sits
	// in from the deck edge; joists cantilever over it to the edge.
	DefaultDropBeamSetbackFeet = 1.5

	// DefaultCollinearTolerancePx bounds the perpendicular offset within
	// which two beam or ledger reference lines count as the same line.
	DefaultCollinearTolerancePx = 1.0

	// DefaultAdjacencyToleranceFeet bounds the end-to-end gap within which
	// two collinear beams count as adjacent and merge.
	DefaultAdjacencyToleranceFeet = 1.0

	// DefaultEdgeMatchTolerancePx bounds the offset within which a section
	// edge matches a ledger wall segment.
	DefaultEdgeMatchTolerancePx = 1.0

	// DefaultMaxUnbracedFeet is the longest joist run allowed without a
	// mid-span blocking row.
	DefaultMaxUnbracedFeet = 8.0

	// DefaultLadderRungSpacingFeet is the spacing of ladder blocking rungs
	// behind picture-frame borders.
	DefaultLadderRungSpacingFeet = 2.0

	// DefaultPictureFrameSingleInsetIn is the picture-frame joist inset for
	// a single border: one deck-board width.
	DefaultPictureFrameSingleInsetIn = 5.5

	// DefaultPictureFrameDoubleInsetIn is the inset for a double border.
	DefaultPictureFrameDoubleInsetIn = 11.0

	// DefaultMinHeightExcludingSmallestIn is the deck height at or above
	// which 2x6 joists are no longer allowed.
	DefaultMinHeightExcludingSmallestIn = 30.0

	// DefaultSingleSpanMinDepthFeet and DefaultSingleSpanMaxDepthFeet bound
	// the depth band in which the single-span materials override applies:
	// joists run the full depth in one piece, targeting 20 ft stock.
	DefaultSingleSpanMinDepthFeet = 16.0
	DefaultSingleSpanMaxDepthFeet = 20.0
)

// Config carries every tunable constant of the framing calculator. The
// geometric tolerances are deliberately configuration, not inlined magic
// numbers, so merge behavior can be tuned and tested independently of the
// geometry kernel.
//
// The zero value is not usable - use DefaultConfig.
type Config struct {
	// ScalePxPerFoot converts between drawing-plane pixels and feet.
	ScalePxPerFoot float64

	// Beam-and-post solver rules.
	PostInsetFeet      float64
	MaxPostSpacingFeet float64
	CantileverFeet     float64

	// DropBeamSetbackFeet offsets a dropped beam's centerline in from the
	// deck edge.
	DropBeamSetbackFeet float64

	// Merge tolerances.
	CollinearTolerancePx   float64
	AdjacencyToleranceFeet float64
	EdgeMatchTolerancePx   float64

	// Blocking rules.
	MaxUnbracedFeet       float64
	LadderRungSpacingFeet float64

	// Picture-frame joist insets, nominal inches.
	PictureFrameSingleInsetIn float64
	PictureFrameDoubleInsetIn float64

	// MinHeightExcludingSmallestIn excludes 2x6 joists at or above this
	// deck height in inches.
	MinHeightExcludingSmallestIn float64

	// Single-span override band, feet of total depth.
	SingleSpanMinDepthFeet float64
	SingleSpanMaxDepthFeet float64

	// PostSize is the nominal size used for every support post.
	PostSize lumber.PostSize

	// Tables is the allowable-span service. Nil falls back to
	// spantable.Default.
	Tables *spantable.Tables
}

// DefaultConfig returns the standard configuration with the embedded span
// tables.
func DefaultConfig() Config {
	return Config{
		ScalePxPerFoot:               DefaultScalePxPerFoot,
		PostInsetFeet:                DefaultPostInsetFeet,
		MaxPostSpacingFeet:           DefaultMaxPostSpacingFeet,
		CantileverFeet:               DefaultCantileverFeet,
		DropBeamSetbackFeet:          DefaultDropBeamSetbackFeet,
		CollinearTolerancePx:         DefaultCollinearTolerancePx,
		AdjacencyToleranceFeet:       DefaultAdjacencyToleranceFeet,
		EdgeMatchTolerancePx:         DefaultEdgeMatchTolerancePx,
		MaxUnbracedFeet:              DefaultMaxUnbracedFeet,
		LadderRungSpacingFeet:        DefaultLadderRungSpacingFeet,
		PictureFrameSingleInsetIn:    DefaultPictureFrameSingleInsetIn,
		PictureFrameDoubleInsetIn:    DefaultPictureFrameDoubleInsetIn,
		MinHeightExcludingSmallestIn: DefaultMinHeightExcludingSmallestIn,
		SingleSpanMinDepthFeet:       DefaultSingleSpanMinDepthFeet,
		SingleSpanMaxDepthFeet:       DefaultSingleSpanMaxDepthFeet,
		PostSize:                     lumber.Post6x6,
		Tables:                       spantable.Default(),
	}
}

// tables returns the configured span tables, falling back to the embedded
// defaults.
func (c Config) tables() *spantable.Tables {
	if c.Tables != nil {
		return c.Tables
	}
	return spantable.Default()
}

// feetToPx converts feet to pixels at the configured scale.
func (c Config) feetToPx(feet float64) float64 { return feet * c.ScalePxPerFoot }

// pxToFeet converts pixels to feet at the configured scale.
func (c Config) pxToFeet(px float64) float64 { return px / c.ScalePxPerFoot }

// inToPx converts inches to pixels at the configured scale.
func (c Config) inToPx(in float64) float64 { return in / 12 * c.ScalePxPerFoot }
