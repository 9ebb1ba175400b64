package engine

import (
	"fmt"
	"sync"

	xsfnt "golang.org/x/image/font/sfnt"
	"seehuhn.de/go/sfnt/os2"

	"github.com/typeglass/fontcompare"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// faceCache memoizes the x/image parse of catalog fonts across
// compilations, keyed by font identity. Each entry records the generation
// it was last hit in; Evict closes a generation and drops stale entries.
// It implements fontcompare.CompileCache.
type faceCache struct {
	mu      sync.Mutex
	gen     int
	entries map[*fontcompare.Font]*cacheEntry
}

type cacheEntry struct {
	font    *xsfnt.Font
	err     error
	lastGen int
}

func newFaceCache() *faceCache {
	return &faceCache{entries: make(map[*fontcompare.Font]*cacheEntry)}
}

// parsed returns the glyph-level parse of f, parsing at most once per font
// per cache lifetime. Parse failures are memoized too.
func (c *faceCache) parsed(f *fontcompare.Font) (*xsfnt.Font, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[f]; ok {
		e.lastGen = c.gen
		return e.font, e.err
	}

	e := &cacheEntry{lastGen: c.gen}
	if f.Index > 0 {
		coll, err := xsfnt.ParseCollection(f.Data)
		if err == nil {
			e.font, e.err = coll.Font(f.Index)
		} else {
			e.err = err
		}
	} else {
		e.font, e.err = xsfnt.Parse(f.Data)
	}
	c.entries[f] = e
	return e.font, e.err
}

// Evict closes the current generation and drops entries whose last hit is
// more than maxAge generations old.
func (c *faceCache) Evict(maxAge int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	for k, e := range c.entries {
		if c.gen-e.lastGen > maxAge {
			delete(c.entries, k)
		}
	}
}

// len reports the number of cached entries, for tests.
func (c *faceCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Built-in faces used when the catalog has nothing suitable and fallback
// is allowed.
var (
	builtinOnce    sync.Once
	builtinRegular *xsfnt.Font
	builtinBold    *xsfnt.Font
)

func builtinFaces() (regular, bold *xsfnt.Font) {
	builtinOnce.Do(func() {
		builtinRegular, _ = xsfnt.Parse(goregular.TTF)
		builtinBold, _ = xsfnt.Parse(gobold.TTF)
	})
	return builtinRegular, builtinBold
}

// docFaces is the pair of faces one compilation typesets with.
type docFaces struct {
	body *xsfnt.Font
	bold *xsfnt.Font
}

// resolveFaces turns the world's style snapshot into concrete faces: the
// body face matches the requested family and variant, the bold face is the
// family's closest match to bold weight. Unresolvable families fall back
// to the built-in faces when fallback is allowed, otherwise the
// compilation fails.
func (c *faceCache) resolveFaces(w *fontcompare.World) (docFaces, error) {
	st := w.Library().Styles

	want := fontcompare.Variant{
		Family:  st.FontFamily,
		Weight:  os2.WeightNormal,
		Stretch: os2.WidthNormal,
	}
	if st.HasVariant {
		want.Weight = st.Weight
		want.Stretch = st.Stretch
		want.Style = st.Style
	}

	var faces docFaces
	if slot, ok := w.Book().Select(st.FontFamily, want, st.Fallback); ok {
		if f := w.Font(slot); f != nil {
			if parsed, err := c.parsed(f); err == nil {
				faces.body = parsed
			}
		}
	}

	boldWant := want
	boldWant.Weight = os2.WeightBold
	if slot, ok := w.Book().Select(st.FontFamily, boldWant, st.Fallback); ok {
		if f := w.Font(slot); f != nil {
			if parsed, err := c.parsed(f); err == nil {
				faces.bold = parsed
			}
		}
	}

	regular, bold := builtinFaces()
	if faces.body == nil {
		if !st.Fallback && st.FontFamily != "" {
			return faces, fmt.Errorf("%w: family %q", fontcompare.ErrNoFaces, st.FontFamily)
		}
		faces.body = regular
	}
	if faces.bold == nil {
		faces.bold = bold
	}
	if faces.body == nil || faces.bold == nil {
		return faces, fontcompare.ErrNoFaces
	}
	return faces, nil
}
