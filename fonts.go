package fontcompare

import (
	"bytes"
	"iter"
	"os"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/os2"

	"github.com/typeglass/fontcompare/internal/fontscan"
)

// Font is a decoded font face: the raw bytes, the face index within its
// source file, and the parsed font program. Fonts are decoded at most once
// per slot and shared read-only across all World clones.
type Font struct {
	Data  []byte
	Index int
	Info  *sfnt.Font
}

// Face is the searchable metadata of one discovered font face.
type Face struct {
	Slot    int // index into the owning catalog
	Variant Variant
}

// fontSlot pairs a face's byte source with its lazily decoded font. The
// sync.Once is the compute-once cell: the first caller decodes, concurrent
// callers block until done, and all observe the same result — including a
// memoized decode failure, represented as a nil font.
type fontSlot struct {
	path  string // backing file; empty for in-memory faces
	data  []byte // in-memory source, takes priority over path
	index int

	once sync.Once
	font *Font
}

// FontCatalog indexes discovered font faces into family/variant metadata
// and owns their compute-once decode slots. Build it once at startup and
// share it by reference.
type FontCatalog struct {
	slots    []*fontSlot
	faces    []Face
	families map[string][]int // family -> face indices, discovery order
	famOrder []string         // family names, first-appearance order

	// readFile is swapped in tests to count decode-path reads.
	readFile func(string) ([]byte, error)
}

// NewFontCatalog returns an empty catalog.
func NewFontCatalog() *FontCatalog {
	return &FontCatalog{
		families: make(map[string][]int),
		readFile: os.ReadFile,
	}
}

// ScanFonts builds a catalog from the given font directories plus, when
// includeSystem is set, the host's system font locations. Faces that fail
// metadata extraction are skipped silently.
func ScanFonts(dirs []string, includeSystem bool) *FontCatalog {
	c := NewFontCatalog()
	search := append([]string(nil), dirs...)
	if includeSystem {
		search = append(search, fontscan.SystemDirs()...)
	}
	for _, path := range fontscan.List(search) {
		c.AddFaceFile(path)
	}
	return c
}

// AddFaceFile indexes a single font file. It reports whether a face was
// added; unreadable or unparsable files are skipped.
func (c *FontCatalog) AddFaceFile(path string) bool {
	data, err := os.ReadFile(path) // #nosec G304 -- discovered font path
	if err != nil {
		log.WithField("path", path).Debug("skipping unreadable font file")
		return false
	}
	return c.add(data, path)
}

// AddFaceData indexes an in-memory font face. It reports whether the face
// was added.
func (c *FontCatalog) AddFaceData(data []byte) bool {
	return c.add(data, "")
}

// add extracts face metadata. The parsed font is discarded here: the full
// decode is deferred to Load so catalog construction stays cheap for
// faces that are never compared.
func (c *FontCatalog) add(data []byte, path string) bool {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil || info.FamilyName == "" {
		if path != "" {
			log.WithField("path", path).Debug("skipping face without usable metadata")
		}
		return false
	}

	slot := &fontSlot{path: path, index: 0}
	if path == "" {
		slot.data = data
	}
	c.slots = append(c.slots, slot)

	face := Face{
		Slot:    len(c.slots) - 1,
		Variant: variantOf(info),
	}
	c.faces = append(c.faces, face)

	family := info.FamilyName
	if _, seen := c.families[family]; !seen {
		c.famOrder = append(c.famOrder, family)
	}
	c.families[family] = append(c.families[family], len(c.faces)-1)
	return true
}

// variantOf maps face metadata onto a Variant, normalizing absent OS/2
// classes to their defaults.
func variantOf(info *sfnt.Font) Variant {
	v := Variant{
		Family:  info.FamilyName,
		Weight:  info.Weight,
		Stretch: info.Width,
	}
	if v.Weight == 0 {
		v.Weight = os2.WeightNormal
	}
	if v.Stretch == 0 {
		v.Stretch = os2.WidthNormal
	}
	switch {
	case info.IsOblique:
		v.Style = StyleOblique
	case info.IsItalic:
		v.Style = StyleItalic
	}
	return v
}

// Families yields (family name, faces of that family in discovery order).
// Families are yielded in first-appearance order, not globally sorted.
func (c *FontCatalog) Families() iter.Seq2[string, []Face] {
	return func(yield func(string, []Face) bool) {
		for _, family := range c.famOrder {
			idx := c.families[family]
			faces := make([]Face, len(idx))
			for i, fi := range idx {
				faces[i] = c.faces[fi]
			}
			if !yield(family, faces) {
				return
			}
		}
	}
}

// NumFaces returns the number of indexed faces.
func (c *FontCatalog) NumFaces() int { return len(c.faces) }

// Load returns the decoded font for a slot, decoding from its byte source
// on the first call from any goroutine and caching the result thereafter.
// A decode failure is non-fatal and memoized: Load returns nil for that
// slot forever after.
func (c *FontCatalog) Load(slot int) *Font {
	if slot < 0 || slot >= len(c.slots) {
		return nil
	}
	s := c.slots[slot]
	s.once.Do(func() {
		data := s.data
		if data == nil {
			var err error
			data, err = c.readFile(s.path)
			if err != nil {
				log.WithField("path", s.path).Debug("font byte source vanished")
				return
			}
		}
		info, err := sfnt.Read(bytes.NewReader(data))
		if err != nil {
			return
		}
		s.font = &Font{Data: data, Index: s.index, Info: info}
	})
	return s.font
}

// Select finds the slot best matching family and variant. Family matching
// is case-insensitive; among the family's faces the closest variant wins
// (weight distance, then stretch distance, then style mismatch). When the
// family is unknown and fallback is set, the first indexed face is used.
func (c *FontCatalog) Select(family string, v Variant, fallback bool) (int, bool) {
	idx := c.families[family]
	if idx == nil {
		for name, faces := range c.families {
			if strings.EqualFold(name, family) {
				idx = faces
				break
			}
		}
	}
	if idx == nil {
		if fallback && len(c.faces) > 0 {
			return c.faces[0].Slot, true
		}
		return 0, false
	}

	best, bestScore := -1, 0
	for _, fi := range idx {
		f := c.faces[fi]
		score := absDiff(int(f.Variant.Weight), int(v.Weight))*1000 +
			absDiff(int(f.Variant.Stretch), int(v.Stretch))*10 +
			absDiff(int(f.Variant.Style), int(v.Style))
		if best < 0 || score < bestScore {
			best, bestScore = f.Slot, score
		}
	}
	return best, true
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
