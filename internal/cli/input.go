package cli

import (
	"github.com/BurntSushi/toml"

	"github.com/mhalvorsen/deckplan/pkg/errors"
	"github.com/mhalvorsen/deckplan/pkg/frame"
	"github.com/mhalvorsen/deckplan/pkg/geom"
	"github.com/mhalvorsen/deckplan/pkg/lumber"
)

// deckFile is the on-disk deck definition. Coordinates are in feet; the
// loader converts everything to drawing-plane pixels.
type deckFile struct {
	HeightIn       float64       `toml:"height_in"`
	JoistSpacingIn int           `toml:"joist_spacing_in"`
	Attachment     string        `toml:"attachment"`
	BeamStyle      string        `toml:"beam_style"`
	Footing        string        `toml:"footing"`
	PictureFrame   string        `toml:"picture_frame"`
	Wall           int           `toml:"wall"`
	Outline        [][]float64   `toml:"outline"`
	Sections       []deckSection `toml:"section"`
}

type deckSection struct {
	Corners [][]float64 `toml:"corners"`
	Ledger  bool        `toml:"ledger"` // keep the attachment even off the wall line
}

// deckInput is a loaded and validated deck definition, in pixels.
type deckInput struct {
	Dims      frame.Dimensions
	WallIndex int
	Sections  []frame.Section
	Spec      frame.Spec
}

// loadDeckFile reads a TOML deck definition and converts it to calculator
// input at the configured scale.
func loadDeckFile(path string, cfg frame.Config) (*deckInput, error) {
	var df deckFile
	if _, err := toml.DecodeFile(path, &df); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDeckFile, err, "read deck file %s", path)
	}
	return df.toInput(cfg)
}

func (df deckFile) toInput(cfg frame.Config) (*deckInput, error) {
	if len(df.Outline) < 3 {
		return nil, errors.New(errors.ErrCodeInvalidDeckFile,
			"outline has %d points, need at least 3", len(df.Outline))
	}
	poly := make([]geom.Point, len(df.Outline))
	for i, pt := range df.Outline {
		p, err := pointFeet(cfg, pt)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidDeckFile, err, "outline point %d", i)
		}
		poly[i] = p
	}
	dims := frame.DimensionsFromPolygon(poly)

	if df.Wall < 0 || df.Wall >= len(poly) {
		return nil, errors.New(errors.ErrCodeInvalidDeckFile,
			"wall index %d out of range for %d-edge outline", df.Wall, len(poly))
	}

	sections := make([]frame.Section, 0, len(df.Sections))
	for i, s := range df.Sections {
		if len(s.Corners) != 4 {
			return nil, errors.New(errors.ErrCodeInvalidSections,
				"section %d has %d corners, need 4", i, len(s.Corners))
		}
		sec := frame.Section{IsLedger: s.Ledger}
		for j, pt := range s.Corners {
			p, err := pointFeet(cfg, pt)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidSections, err, "section %d corner %d", i, j)
			}
			sec.Corners[j] = p
		}
		sections = append(sections, sec)
	}

	spec, err := df.toSpec()
	if err != nil {
		return nil, err
	}

	return &deckInput{
		Dims:      dims,
		WallIndex: df.Wall,
		Sections:  sections,
		Spec:      spec,
	}, nil
}

func (df deckFile) toSpec() (frame.Spec, error) {
	spec := frame.Spec{
		DeckHeightIn:   df.HeightIn,
		JoistSpacingIn: df.JoistSpacingIn,
	}
	if spec.JoistSpacingIn == 0 {
		spec.JoistSpacingIn = 16
	}

	var err error
	if spec.Attachment, err = frame.ParseAttachment(df.Attachment); err != nil {
		return frame.Spec{}, err
	}
	if spec.BeamStyle, err = frame.ParseBeamStyle(df.BeamStyle); err != nil {
		return frame.Spec{}, err
	}
	if spec.PictureFrame, err = frame.ParsePictureFrame(df.PictureFrame); err != nil {
		return frame.Spec{}, err
	}
	if spec.Footing, err = lumber.ParseFootingType(df.Footing); err != nil {
		return frame.Spec{}, errors.Wrap(errors.ErrCodeInvalidSpec, err, "footing")
	}
	return spec, nil
}

// pointFeet converts one [x, y] pair in feet to a pixel point.
func pointFeet(cfg frame.Config, pt []float64) (geom.Point, error) {
	if len(pt) != 2 {
		return geom.Point{}, errors.New(errors.ErrCodeInvalidDeckFile,
			"point has %d coordinates, need [x, y]", len(pt))
	}
	return geom.Point{
		X: pt[0] * cfg.ScalePxPerFoot,
		Y: pt[1] * cfg.ScalePxPerFoot,
	}, nil
}
