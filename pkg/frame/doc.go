// Package frame computes fully dimensioned structural framing plans for
// rectilinear decks: ledger, beams, posts, footings, joists, rim joists,
// and blocking.
//
// The package is the engineering core of deckplan. It encodes the
// allowable-span rules from the spantable package, the beam-and-post placement
// rules, cantilever and inset geometry, and for non-rectangular outlines a
// multi-section solver that computes each rectangular piece independently
// and then reconciles shared members across piece boundaries.
//
// # Entry points
//
// [Calculate] computes the plan for a single rectangular deck given its
// dimensions, the selected wall, and the user's input spec.
// [CalculateSections] runs Calculate per rectangular section of a
// decomposed outline and merges the results: collinear ledgers combine,
// collinear adjacent beams merge (with posts and footings recomputed for
// the merged span), and coincident posts deduplicate.
//
// # Units
//
// All coordinates are pixels in the shared drawing plane, at
// Config.ScalePxPerFoot pixels per foot (24 by default). Fields named
// *Feet or *In carry converted values.
//
// # Purity
//
// Every call computes from its arguments and the read-only span tables;
// nothing is cached or mutated across calls, so concurrent invocations on
// independent inputs are safe.
package frame
