// Package spantable provides the allowable-span lookup tables the framing
// calculator sizes members against: maximum joist span by (size, spacing)
// and maximum beam span by (ply, size, tributary width).
//
// The embedded defaults follow the IRC deck provisions for #2
// spruce-pine-fir at a 40 psf live / 10 psf dead load. Beam spans are
// tabulated at discrete tributary widths; lookups linearly interpolate
// between entries and clamp at the table extremes.
package spantable

import "github.com/mhalvorsen/deckplan/pkg/lumber"

// beamKey identifies one beam row: a ply count and a nominal size.
type beamKey struct {
	ply  int
	size lumber.Size
}

// beamEntry pairs a tributary width with the allowed beam span, both feet.
type beamEntry struct {
	tributaryFeet float64
	spanFeet      float64
}

// Tables holds span data for joists and beams. The zero value is empty;
// use Default for the embedded code tables.
type Tables struct {
	joist map[lumber.Size]map[int]float64 // size -> spacing inches -> feet
	beam  map[beamKey][]beamEntry         // entries sorted by tributary width
}

// Default returns the embedded IRC-style span tables.
func Default() *Tables {
	return &Tables{
		joist: map[lumber.Size]map[int]float64{
			lumber.Size2x6:  {12: 9.92, 16: 9.0},
			lumber.Size2x8:  {12: 13.08, 16: 11.83},
			lumber.Size2x10: {12: 16.17, 16: 14.08},
			lumber.Size2x12: {12: 18.75, 16: 16.33},
		},
		beam: map[beamKey][]beamEntry{
			{2, lumber.Size2x8}: {
				{6, 6.92}, {8, 6.0}, {10, 5.33}, {12, 4.92},
			},
			{2, lumber.Size2x10}: {
				{6, 8.25}, {8, 7.17}, {10, 6.42}, {12, 5.83},
			},
			{2, lumber.Size2x12}: {
				{6, 9.58}, {8, 8.25}, {10, 7.42}, {12, 6.75},
			},
			{3, lumber.Size2x10}: {
				{6, 10.33}, {8, 8.92}, {10, 8.0}, {12, 7.25},
			},
			{3, lumber.Size2x12}: {
				{6, 11.92}, {8, 10.33}, {10, 9.25}, {12, 8.42},
			},
		},
	}
}

// MaxJoistSpan returns the maximum allowable joist span in feet for the
// given nominal size and on-center spacing in inches. The boolean is false
// when the table has no entry for that combination.
func (t *Tables) MaxJoistSpan(size lumber.Size, spacingIn int) (float64, bool) {
	row, ok := t.joist[size]
	if !ok {
		return 0, false
	}
	feet, ok := row[spacingIn]
	return feet, ok
}

// Spacings returns the on-center spacings, in inches, the joist table is
// tabulated at.
func (t *Tables) Spacings() []int { return []int{12, 16} }

// MaxBeamSpan returns the maximum allowable beam span in feet for a beam of
// the given ply count and size carrying the given tributary width. Spans
// are linearly interpolated between tabulated tributary widths and clamped
// at the table extremes. The boolean is false when no row exists for the
// (ply, size) pair.
func (t *Tables) MaxBeamSpan(ply int, size lumber.Size, tributaryFeet float64) (float64, bool) {
	entries, ok := t.beam[beamKey{ply, size}]
	if !ok || len(entries) == 0 {
		return 0, false
	}
	if tributaryFeet <= entries[0].tributaryFeet {
		return entries[0].spanFeet, true
	}
	last := entries[len(entries)-1]
	if tributaryFeet >= last.tributaryFeet {
		return last.spanFeet, true
	}
	for i := 1; i < len(entries); i++ {
		lo, hi := entries[i-1], entries[i]
		if tributaryFeet <= hi.tributaryFeet {
			f := (tributaryFeet - lo.tributaryFeet) / (hi.tributaryFeet - lo.tributaryFeet)
			return lo.spanFeet + f*(hi.spanFeet-lo.spanFeet), true
		}
	}
	return last.spanFeet, true
}

// BeamRows returns the (ply, size) pairs the beam table covers, ordered by
// ply then size. The order matches the first-fit scan used for beam sizing.
func (t *Tables) BeamRows() [][2]int {
	rows := [][2]int{
		{2, int(lumber.Size2x8)},
		{2, int(lumber.Size2x10)},
		{2, int(lumber.Size2x12)},
		{3, int(lumber.Size2x10)},
		{3, int(lumber.Size2x12)},
	}
	out := rows[:0]
	for _, r := range rows {
		if _, ok := t.beam[beamKey{r[0], lumber.Size(r[1])}]; ok {
			out = append(out, r)
		}
	}
	return out
}
