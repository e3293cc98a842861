package frame

import (
	"github.com/mhalvorsen/deckplan/pkg/errors"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// allowedJoistSizes returns the joist sizes permitted at the given deck
// height, smallest first. The smallest nominal size is excluded once the
// height reaches the configured minimum that prohibits it structurally.
// The boolean reports whether the exclusion applied.
func allowedJoistSizes(cfg Config, heightIn float64) ([]lumber.Size, bool) {
	if heightIn >= cfg.MinHeightExcludingSmallestIn {
		return lumber.JoistSizes[1:], true
	}
	return lumber.JoistSizes, false
}

// pickJoistSize scans the allowed sizes smallest to largest and returns the
// first whose tabulated span at the spacing covers spanFeet.
func pickJoistSize(cfg Config, allowed []lumber.Size, spanFeet float64, spacingIn int) (lumber.Size, bool) {
	for _, size := range allowed {
		if max, ok := cfg.tables().MaxJoistSpan(size, spacingIn); ok && max >= spanFeet {
			return size, true
		}
	}
	return 0, false
}

// bestJoistSpan returns the largest tabulated span over the allowed sizes
// at the spacing, for error reporting.
func bestJoistSpan(cfg Config, allowed []lumber.Size, spacingIn int) float64 {
	var best float64
	for _, size := range allowed {
		if max, ok := cfg.tables().MaxJoistSpan(size, spacingIn); ok && max > best {
			best = max
		}
	}
	return best
}

// resolveJoistSize sizes the joists for the deck depth. When no single size
// carries the full depth, a mid beam halves the span and sizing repeats
// against the half depth; needsMidBeam reports that outcome. When even the
// half depth exceeds every allowed size, the returned error names the unmet
// span and the best available span, plus a note when the smallest size was
// excluded by deck height.
func resolveJoistSize(cfg Config, spec Spec, depthFeet float64) (size lumber.Size, needsMidBeam bool, err error) {
	allowed, excluded := allowedJoistSizes(cfg, spec.DeckHeightIn)

	if size, ok := pickJoistSize(cfg, allowed, depthFeet, spec.JoistSpacingIn); ok {
		return size, false, nil
	}

	half := depthFeet / 2
	if size, ok := pickJoistSize(cfg, allowed, half, spec.JoistSpacingIn); ok {
		return size, true, nil
	}

	best := bestJoistSpan(cfg, allowed, spec.JoistSpacingIn)
	note := ""
	if excluded {
		note = " (2x6 excluded at this deck height)"
	}
	return 0, false, errors.New(errors.ErrCodeNoJoistSize,
		"No joist size spans %.1f ft at %d\" spacing; best available is %.1f ft even with a mid beam%s",
		depthFeet, spec.JoistSpacingIn, best, note)
}

// selectBeamSize picks the lightest (ply, size) whose tabulated span at the
// tributary width reaches the configured maximum post spacing, scanning
// 2-ply before 3-ply. When no row reaches it, the strongest available row
// wins and the allowed post gap tightens to its tabulated span.
func selectBeamSize(cfg Config, tributaryFeet float64) (ply int, size lumber.Size, maxGapFeet float64, err error) {
	var bestPly int
	var bestSize lumber.Size
	var bestSpan float64

	for _, row := range cfg.tables().BeamRows() {
		p, s := row[0], lumber.Size(row[1])
		span, ok := cfg.tables().MaxBeamSpan(p, s, tributaryFeet)
		if !ok {
			continue
		}
		if span >= cfg.MaxPostSpacingFeet {
			return p, s, cfg.MaxPostSpacingFeet, nil
		}
		if span > bestSpan {
			bestPly, bestSize, bestSpan = p, s, span
		}
	}

	if bestSpan <= 0 {
		return 0, 0, 0, errors.New(errors.ErrCodeNoBeamSize,
			"no beam size available for a %.1f ft tributary width", tributaryFeet)
	}
	return bestPly, bestSize, bestSpan, nil
}
