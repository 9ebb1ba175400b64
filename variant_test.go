package fontcompare_test

import (
	"sort"
	"testing"

	"seehuhn.de/go/sfnt/os2"

	fontcompare "github.com/typeglass/fontcompare"
)

// ---------------------------------------------------------------------------
// TestVariant_Compare - Total ordering
// ---------------------------------------------------------------------------

func TestVariant_Compare(t *testing.T) {
	t.Parallel()

	vs := []fontcompare.Variant{
		{Family: "Zeta", Weight: os2.WeightNormal, Stretch: os2.WidthNormal},
		{Family: "Alpha", Weight: os2.WeightBold, Stretch: os2.WidthNormal},
		{Family: "Alpha", Weight: os2.WeightNormal, Stretch: os2.WidthNormal, Style: fontcompare.StyleOblique},
		{Family: "Alpha", Weight: os2.WeightNormal, Stretch: os2.WidthNormal, Style: fontcompare.StyleItalic},
		{Family: "Alpha", Weight: os2.WeightNormal, Stretch: os2.WidthCondensed},
		{Family: "Alpha", Weight: os2.WeightNormal, Stretch: os2.WidthNormal},
	}

	sort.Slice(vs, func(i, j int) bool { return vs[i].Compare(vs[j]) < 0 })

	want := []fontcompare.Variant{
		{Family: "Alpha", Weight: os2.WeightNormal, Stretch: os2.WidthCondensed},
		{Family: "Alpha", Weight: os2.WeightNormal, Stretch: os2.WidthNormal},
		{Family: "Alpha", Weight: os2.WeightNormal, Stretch: os2.WidthNormal, Style: fontcompare.StyleItalic},
		{Family: "Alpha", Weight: os2.WeightNormal, Stretch: os2.WidthNormal, Style: fontcompare.StyleOblique},
		{Family: "Alpha", Weight: os2.WeightBold, Stretch: os2.WidthNormal},
		{Family: "Zeta", Weight: os2.WeightNormal, Stretch: os2.WidthNormal},
	}
	for i := range want {
		if vs[i] != want[i] {
			t.Errorf("position %d: got %+v, want %+v", i, vs[i], want[i])
		}
	}
}

func TestVariant_CompareEqual(t *testing.T) {
	t.Parallel()

	v := fontcompare.Variant{Family: "Alpha", Weight: os2.WeightNormal, Stretch: os2.WidthNormal}
	if c := v.Compare(v); c != 0 {
		t.Errorf("Compare(self) = %d, want 0", c)
	}
}

// ---------------------------------------------------------------------------
// TestVariant_Description - Sub-heading rendering
// ---------------------------------------------------------------------------

func TestVariant_Description(t *testing.T) {
	t.Parallel()

	v := fontcompare.Variant{
		Family:  "Alpha",
		Weight:  os2.WeightNormal,
		Stretch: os2.WidthNormal,
		Style:   fontcompare.StyleItalic,
	}
	want := "weight 400, stretch normal, italic"
	if got := v.Description(); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestFontStyle_String
// ---------------------------------------------------------------------------

func TestFontStyle_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		style fontcompare.FontStyle
		want  string
	}{
		{fontcompare.StyleNormal, "normal"},
		{fontcompare.StyleItalic, "italic"},
		{fontcompare.StyleOblique, "oblique"},
	}
	for _, tt := range tests {
		if got := tt.style.String(); got != tt.want {
			t.Errorf("FontStyle(%d).String() = %q, want %q", tt.style, got, tt.want)
		}
	}
}
