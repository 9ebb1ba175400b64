package fontcompare

import (
	"fmt"
	"strings"

	"seehuhn.de/go/sfnt/os2"
)

// FontStyle is the slant class of a face.
type FontStyle uint8

// Font styles in ascending variant order.
const (
	StyleNormal FontStyle = iota
	StyleItalic
	StyleOblique
)

// String implements fmt.Stringer.
func (s FontStyle) String() string {
	switch s {
	case StyleItalic:
		return "italic"
	case StyleOblique:
		return "oblique"
	default:
		return "normal"
	}
}

// Variant is one (family, weight, stretch, style) combination under
// comparison, the unit of scheduled work. The total order is family
// (lexicographic), then weight, stretch, and style ascending.
type Variant struct {
	Family  string
	Weight  os2.Weight
	Stretch os2.Width
	Style   FontStyle
}

// Compare orders variants by family, then weight, stretch, and style.
func (v Variant) Compare(o Variant) int {
	if c := strings.Compare(v.Family, o.Family); c != 0 {
		return c
	}
	if v.Weight != o.Weight {
		return int(v.Weight) - int(o.Weight)
	}
	if v.Stretch != o.Stretch {
		return int(v.Stretch) - int(o.Stretch)
	}
	return int(v.Style) - int(o.Style)
}

// Description renders the variant fields without the family name, for
// per-page sub-headings and error messages.
func (v Variant) Description() string {
	return fmt.Sprintf("weight %d, stretch %s, %s",
		int(v.Weight), strings.ToLower(v.Stretch.String()), v.Style)
}

// Render is the immutable artifact produced by one scheduled task: the
// encoded image of one variant's compiled document plus its pixel size.
type Render struct {
	Variant Variant
	PNG     []byte
	Width   int
	Height  int
}
