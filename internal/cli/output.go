package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mhalvorsen/deckplan/pkg/errors"
	"github.com/mhalvorsen/deckplan/pkg/frame"
)

// Output format names shared by the plan command flags.
const (
	formatTable = "table"
	formatJSON  = "json"
)

// writePlan encodes the framing plan as indented JSON and writes it to w.
// The encoding is the component geometry as computed, pixel coordinates
// included, for downstream consumers (bill of materials, drawing tools).
func writePlan(comp *frame.Components, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(comp); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode plan")
	}
	return nil
}

// exportPlan writes the framing plan to a JSON file at path.
// This is a convenience wrapper around [writePlan] for file-based output.
func exportPlan(comp *frame.Components, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return writePlan(comp, f)
}
