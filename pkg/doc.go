// Package pkg provides the core libraries for Deckplan framing calculation.
//
// # Overview
//
// Deckplan turns a deck outline into a structural framing plan: joists sized
// against span tables, beams placed with posts and footings, rim joists and
// blocking laid out around them. The pkg directory is organized into five
// areas:
//
//  1. [geom] - Geometry kernel (points, segments, polygon clipping)
//  2. [lumber] - Nominal sizes and structural roles of framing members
//  3. [spantable] - Allowable-span lookup tables for joists and beams
//  4. [errors] - Coded structured errors shared across the calculator
//  5. [frame] - The calculator itself (beam solver, layout engines,
//     single-rectangle and multi-section entry points)
//
// # Architecture
//
// The typical data flow through Deckplan:
//
//	Deck definition (outline, wall, spec)
//	         ↓
//	    [frame] sizing (joists and beams against [spantable])
//	         ↓
//	    [frame] beam-and-post solver ([geom] clipping)
//	         ↓
//	    [frame] layout engines (joists, rims, blocking)
//	         ↓
//	    Components (JSON output or member schedule)
//
// # Quick Start
//
// Compute a plan for a single rectangle:
//
//	import (
//	    "github.com/mhalvorsen/deckplan/pkg/frame"
//	    "github.com/mhalvorsen/deckplan/pkg/geom"
//	)
//
//	cfg := frame.DefaultConfig()
//	dims := frame.DimensionsFromPolygon([]geom.Point{
//	    {X: 0, Y: 0}, {X: 288, Y: 0}, {X: 288, Y: 240}, {X: 0, Y: 240},
//	})
//	wall := frame.Wall{P1: dims.Polygon[0], P2: dims.Polygon[1]}
//	comp, err := frame.Calculate(cfg, dims, wall, frame.Spec{
//	    DeckHeightIn:   24,
//	    JoistSpacingIn: 16,
//	})
//
// Multi-rectangle outlines go through [frame.CalculateSections], which
// solves each rectangle independently and merges shared beams and ledgers.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/frame/...     # Specific package
//
// [geom]: https://pkg.go.dev/github.com/mhalvorsen/deckplan/pkg/geom
// [lumber]: https://pkg.go.dev/github.com/mhalvorsen/deckplan/pkg/lumber
// [spantable]: https://pkg.go.dev/github.com/mhalvorsen/deckplan/pkg/spantable
// [errors]: https://pkg.go.dev/github.com/mhalvorsen/deckplan/pkg/errors
// [frame]: https://pkg.go.dev/github.com/mhalvorsen/deckplan/pkg/frame
package pkg
