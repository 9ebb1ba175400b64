package engine

import (
	"bytes"
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gtext "github.com/yuin/goldmark/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	xsfnt "golang.org/x/image/font/sfnt"

	"github.com/typeglass/fontcompare"

	_ "image/jpeg"
	_ "image/png"
)

// Layout constants. The scales are relative to the text size.
const (
	lineSpacing = 1.4
	blockGapPt  = 6.0
	h1Scale     = 1.8
	h2Scale     = 1.4
)

// Compiler compiles the comparison markup of a World's main document into
// a laid-out Doc. It implements fontcompare.Compiler; the parsed-face
// cache is shared across compilations and doubles as the toolchain's
// CompileCache.
type Compiler struct {
	cache *faceCache
}

// Compile implements fontcompare.Compiler.
func (c *Compiler) Compile(w *fontcompare.World) (fontcompare.Document, error) {
	src, err := w.MainSource()
	if err != nil {
		return nil, err
	}
	meta, body, err := splitFrontMatter(src)
	if err != nil {
		return nil, err
	}
	faces, err := c.cache.resolveFaces(w)
	if err != nil {
		return nil, err
	}

	l := &layouter{
		meta:  meta,
		faces: faces,
		world: w,
		doc:   &Doc{Title: meta.Title, Author: meta.Author},
		sized: make(map[sizedKey]font.Face),
	}
	l.newPage()

	source := []byte(body)
	root := goldmark.New().Parser().Parse(gtext.NewReader(source))
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if err := l.block(n, source); err != nil {
			return nil, err
		}
	}
	l.finishPage()
	if err := l.flushOutline(); err != nil {
		return nil, err
	}
	l.doc.Outline = l.entries
	return l.doc, nil
}

// sizedKey identifies one (font, size) measuring face.
type sizedKey struct {
	font *xsfnt.Font
	size float64
}

// layouter walks block nodes and accumulates positioned items. All
// positions are in points; y tracks the bottom of the content laid out so
// far on the current page.
type layouter struct {
	meta  metadata
	faces docFaces
	world *fontcompare.World

	doc  *Doc
	page *Page
	y    float64

	entries []OutlineEntry

	// outlinePage marks where collected entries are written after the
	// walk; entries may be declared on later pages.
	outlinePage *Page
	outlineY    float64

	sized map[sizedKey]font.Face
}

func (l *layouter) newPage() {
	l.finishPage()
	l.page = &Page{Width: l.meta.PageWidth + 2*l.meta.Margin}
	l.y = l.meta.Margin
	l.doc.Pages = append(l.doc.Pages, l.page)
}

func (l *layouter) finishPage() {
	if l.page == nil {
		return
	}
	if h := l.y + l.meta.Margin; h > l.page.Height {
		l.page.Height = h
	}
}

// block lays out one top-level node.
func (l *layouter) block(n ast.Node, source []byte) error {
	switch t := n.(type) {
	case *ast.Heading:
		scale := h2Scale
		if t.Level <= 1 {
			scale = h1Scale
		}
		return l.writeText(l.faces.bold, l.meta.TextSize*scale, inlineText(t, source))
	case *ast.Paragraph:
		if img := findImage(t); img != nil {
			return l.image(string(img.Destination), string(img.Title))
		}
		return l.writeText(l.faces.body, l.meta.TextSize, inlineText(t, source))
	case *ast.HTMLBlock:
		kind, arg, ok := parseDirective(blockText(t, source))
		if !ok {
			return nil
		}
		switch kind {
		case "page":
			l.newPage()
		case "outline":
			l.outlinePage = l.page
			l.outlineY = l.y
		case "entry":
			l.entries = append(l.entries, OutlineEntry{Title: arg, Page: len(l.doc.Pages) - 1})
		case "header":
			return l.header(arg)
		}
	}
	return nil
}

// writeText wraps text at the content width and emits one item per line.
func (l *layouter) writeText(f *xsfnt.Font, size float64, text string) error {
	if text == "" {
		return nil
	}
	lines, err := l.wrap(f, size, text, l.meta.PageWidth)
	if err != nil {
		return err
	}
	for _, line := range lines {
		l.y += size * lineSpacing
		l.page.Items = append(l.page.Items, &TextItem{
			X: l.meta.Margin, Y: l.y, Size: size, Text: line, Font: f,
		})
	}
	l.y += blockGapPt
	return nil
}

// header emits one row: title on the left in the bold face, the running
// page number right-aligned in the body face.
func (l *layouter) header(title string) error {
	size := l.meta.TextSize
	l.y += size * lineSpacing

	l.page.Items = append(l.page.Items, &TextItem{
		X: l.meta.Margin, Y: l.y, Size: size, Text: title, Font: l.faces.bold,
	})

	num := strconv.Itoa(len(l.doc.Pages))
	w, err := l.measure(l.faces.body, size, num)
	if err != nil {
		return err
	}
	l.page.Items = append(l.page.Items, &TextItem{
		X: l.page.Width - l.meta.Margin - w, Y: l.y, Size: size, Text: num, Font: l.faces.body,
	})

	l.y += blockGapPt
	return nil
}

// image places an encoded image. Its point size comes from the "WxH"
// Markdown title when present, otherwise from the intrinsic pixel size at
// one pixel per point; either way it is scaled down to fit the content
// width.
func (l *layouter) image(dest, title string) error {
	data, err := l.world.Bytes(fontcompare.NewFileID(nil, dest))
	if err != nil {
		return err
	}

	var wPt, hPt float64
	if _, err := fmt.Sscanf(title, "%gx%g", &wPt, &hPt); err != nil || wPt <= 0 || hPt <= 0 {
		cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
		if err != nil {
			return fmt.Errorf("decoding image %s: %w", dest, err)
		}
		wPt, hPt = float64(cfg.Width), float64(cfg.Height)
	}
	if wPt > l.meta.PageWidth {
		hPt *= l.meta.PageWidth / wPt
		wPt = l.meta.PageWidth
	}

	l.page.Items = append(l.page.Items, &ImageItem{
		X: l.meta.Margin, Y: l.y, W: wPt, H: hPt, Data: data,
	})
	l.y += hPt + blockGapPt
	return nil
}

// flushOutline writes the collected entries at the recorded outline
// position: title left, starting page number right-aligned. The outline
// page's height grows if the entries run past it.
func (l *layouter) flushOutline() error {
	if l.outlinePage == nil || len(l.entries) == 0 {
		return nil
	}
	size := l.meta.TextSize
	y := l.outlineY
	for _, e := range l.entries {
		y += size * lineSpacing
		l.outlinePage.Items = append(l.outlinePage.Items, &TextItem{
			X: l.meta.Margin, Y: y, Size: size, Text: e.Title, Font: l.faces.body,
		})

		num := strconv.Itoa(e.Page + 1)
		w, err := l.measure(l.faces.body, size, num)
		if err != nil {
			return err
		}
		l.outlinePage.Items = append(l.outlinePage.Items, &TextItem{
			X: l.outlinePage.Width - l.meta.Margin - w, Y: y, Size: size, Text: num, Font: l.faces.body,
		})
	}
	if h := y + l.meta.Margin; h > l.outlinePage.Height {
		l.outlinePage.Height = h
	}
	return nil
}

// face returns a measuring face for (f, size), creating it on first use.
// Faces are not safe for concurrent use, so each compilation owns its own.
func (l *layouter) face(f *xsfnt.Font, size float64) (font.Face, error) {
	key := sizedKey{f, size}
	if fc, ok := l.sized[key]; ok {
		return fc, nil
	}
	fc, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	l.sized[key] = fc
	return fc, nil
}

// measure returns the advance width of s in points.
func (l *layouter) measure(f *xsfnt.Font, size float64, s string) (float64, error) {
	fc, err := l.face(f, size)
	if err != nil {
		return 0, err
	}
	return float64(font.MeasureString(fc, s)) / 64, nil
}

// wrap greedily breaks text into lines no wider than maxWidth. A single
// word wider than the line gets a line of its own.
func (l *layouter) wrap(f *xsfnt.Font, size float64, text string, maxWidth float64) ([]string, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		candidate := line + " " + word
		w, err := l.measure(f, size, candidate)
		if err != nil {
			return nil, err
		}
		if w > maxWidth {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	return append(lines, line), nil
}

// parseDirective recognizes the comment directives. Anything else,
// including ordinary HTML comments, is ignored by the caller.
func parseDirective(s string) (kind, arg string, ok bool) {
	s = strings.TrimSpace(s)
	s, open := strings.CutPrefix(s, "<!--")
	if !open {
		return "", "", false
	}
	s, closed := strings.CutSuffix(strings.TrimSpace(s), "-->")
	if !closed {
		return "", "", false
	}
	s = strings.TrimSpace(s)

	switch {
	case s == "page", s == "outline":
		return s, "", true
	case strings.HasPrefix(s, "entry:"):
		return "entry", strings.TrimSpace(strings.TrimPrefix(s, "entry:")), true
	case strings.HasPrefix(s, "header:"):
		return "header", strings.TrimSpace(strings.TrimPrefix(s, "header:")), true
	}
	return "", "", false
}

// blockText reassembles the raw source lines of an HTML block.
func blockText(n *ast.HTMLBlock, source []byte) string {
	var b strings.Builder
	for i := 0; i < n.Lines().Len(); i++ {
		seg := n.Lines().At(i)
		b.Write(seg.Value(source))
	}
	if n.HasClosure() {
		b.Write(n.ClosureLine.Value(source))
	}
	return b.String()
}

// inlineText flattens the inline content of a block node to plain text.
func inlineText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := node.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// findImage returns the paragraph's image child, if it has one.
func findImage(n ast.Node) *ast.Image {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if img, ok := c.(*ast.Image); ok {
			return img
		}
	}
	return nil
}
