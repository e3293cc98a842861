// Package lumber defines the nominal dimensional-lumber sizes and the
// structural roles (usages) that framing members can take. Usages are closed
// enums rather than free-form labels so that merge-compatibility checks and
// bill-of-materials grouping are exhaustive switches instead of string
// comparisons.
package lumber

import "fmt"

// Size is a nominal dimensional-lumber size.
type Size int

const (
	Size2x6 Size = iota
	Size2x8
	Size2x10
	Size2x12
)

// JoistSizes lists the sizes allowed for joists and ledgers, ordered from
// smallest to largest. Size selection scans this list first-fit.
var JoistSizes = []Size{Size2x6, Size2x8, Size2x10, Size2x12}

// sizeNames indexes display names by Size.
var sizeNames = [...]string{"2x6", "2x8", "2x10", "2x12"}

// String returns the nominal name, e.g. "2x10".
func (s Size) String() string {
	if int(s) < 0 || int(s) >= len(sizeNames) {
		return fmt.Sprintf("Size(%d)", int(s))
	}
	return sizeNames[s]
}

// ActualWidthIn returns the dressed (actual) width of the size in inches:
// the dimension a joist presents vertically, or a plan view shows for a
// beam laid flat.
func (s Size) ActualWidthIn() float64 {
	switch s {
	case Size2x6:
		return 5.5
	case Size2x8:
		return 7.25
	case Size2x10:
		return 9.25
	default:
		return 11.25
	}
}

// ActualThicknessIn is the dressed thickness of two-by stock in inches.
// All sizes used here are nominal 2-by, so the thickness is constant.
const ActualThicknessIn = 1.5

// PostSize is the nominal size of a support post.
type PostSize int

const (
	Post4x4 PostSize = iota
	Post6x6
)

// String returns the nominal post name, e.g. "6x6".
func (p PostSize) String() string {
	if p == Post4x4 {
		return "4x4"
	}
	return "6x6"
}

// BeamUsage identifies a beam's structural role.
type BeamUsage int

const (
	BeamWall  BeamUsage = iota // wall-side beam of a floating deck
	BeamMid                    // mid-span beam splitting the joist run
	BeamOuter                  // beam at the deck's outer edge
)

func (u BeamUsage) String() string {
	switch u {
	case BeamWall:
		return "Wall Beam"
	case BeamMid:
		return "Mid Beam"
	default:
		return "Outer Beam"
	}
}

// Perimeter reports whether the usage is a perimeter beam (wall-side or
// outer). Perimeter beams from different sections may merge with each other
// across a shared boundary; mid beams only merge with mid beams.
func (u BeamUsage) Perimeter() bool { return u == BeamWall || u == BeamOuter }

// JoistUsage identifies a joist's role.
type JoistUsage int

const (
	JoistField        JoistUsage = iota // regular field joist
	JoistPictureFrame                   // border joist backing picture-frame decking
)

func (u JoistUsage) String() string {
	if u == JoistPictureFrame {
		return "Picture Frame Joist"
	}
	return "Joist"
}

// RimUsage identifies a rim joist's role around the perimeter.
type RimUsage int

const (
	RimEnd   RimUsage = iota // end joist along a side parallel to the joists
	RimOuter                 // outer rim across the joist ends at the far edge
	RimWall                  // rim at the wall edge of a concrete-attached deck
)

func (u RimUsage) String() string {
	switch u {
	case RimEnd:
		return "End Joist"
	case RimWall:
		return "Wall Rim Joist"
	default:
		return "Outer Rim Joist"
	}
}

// BlockingUsage identifies a blocking member's role.
type BlockingUsage int

const (
	BlockingMidSpan BlockingUsage = iota // row blocking bracing long joist runs
	BlockingLadder                       // ladder blocking behind picture-frame borders
)

func (u BlockingUsage) String() string {
	if u == BlockingLadder {
		return "Ladder Blocking"
	}
	return "Mid-Span Blocking"
}

// FootingType is the below-grade support style under a post.
type FootingType int

const (
	FootingBuried FootingType = iota
	FootingSurface
	FootingHelical
)

func (f FootingType) String() string {
	switch f {
	case FootingBuried:
		return "buried"
	case FootingSurface:
		return "surface"
	default:
		return "helical"
	}
}

// ParseFootingType maps a configuration string to a FootingType.
func ParseFootingType(s string) (FootingType, error) {
	switch s {
	case "buried", "":
		return FootingBuried, nil
	case "surface":
		return FootingSurface, nil
	case "helical":
		return FootingHelical, nil
	default:
		return 0, fmt.Errorf("unknown footing type: %q (must be one of: buried, surface, helical)", s)
	}
}
