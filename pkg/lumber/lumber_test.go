package lumber

import "testing"

func TestSizeString(t *testing.T) {
	cases := []struct {
		size Size
		want string
	}{
		{Size2x6, "2x6"},
		{Size2x8, "2x8"},
		{Size2x10, "2x10"},
		{Size2x12, "2x12"},
	}
	for _, tc := range cases {
		if got := tc.size.String(); got != tc.want {
			t.Errorf("String(%d) = %q, want %q", int(tc.size), got, tc.want)
		}
	}
}

func TestActualWidths(t *testing.T) {
	// Dressed widths shrink from nominal; the table drives depth math.
	cases := []struct {
		size Size
		want float64
	}{
		{Size2x6, 5.5},
		{Size2x8, 7.25},
		{Size2x10, 9.25},
		{Size2x12, 11.25},
	}
	for _, tc := range cases {
		if got := tc.size.ActualWidthIn(); got != tc.want {
			t.Errorf("%s actual width = %v, want %v", tc.size, got, tc.want)
		}
	}
}

func TestJoistSizesOrdered(t *testing.T) {
	for i := 1; i < len(JoistSizes); i++ {
		if JoistSizes[i] <= JoistSizes[i-1] {
			t.Fatalf("JoistSizes not ascending at %d: %v", i, JoistSizes)
		}
	}
}

func TestBeamUsagePerimeter(t *testing.T) {
	if !BeamWall.Perimeter() || !BeamOuter.Perimeter() {
		t.Error("wall and outer beams must be perimeter usages")
	}
	if BeamMid.Perimeter() {
		t.Error("mid beam must not be a perimeter usage")
	}
}

func TestParseFootingType(t *testing.T) {
	for s, want := range map[string]FootingType{
		"":        FootingBuried,
		"buried":  FootingBuried,
		"surface": FootingSurface,
		"helical": FootingHelical,
	} {
		got, err := ParseFootingType(s)
		if err != nil {
			t.Fatalf("ParseFootingType(%q) error: %v", s, err)
		}
		if got != want {
			t.Errorf("ParseFootingType(%q) = %v, want %v", s, got, want)
		}
	}
	if _, err := ParseFootingType("concrete"); err == nil {
		t.Error("ParseFootingType accepted an unknown type")
	}
}
