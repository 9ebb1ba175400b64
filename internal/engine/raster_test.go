package engine

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"
)

func specimenDoc(t *testing.T) *Doc {
	t.Helper()
	regular, _ := builtinFaces()
	if regular == nil {
		t.Fatal("built-in regular face failed to parse")
	}
	return &Doc{
		Pages: []*Page{
			{
				Width:  100,
				Height: 50,
				Items: []Item{
					&TextItem{X: 10, Y: 20, Size: 12, Text: "Hamburgefonstiv", Font: regular},
				},
			},
			{Width: 80, Height: 40},
		},
		Outline: []OutlineEntry{{Title: "Alpha", Page: 0}},
	}
}

// ---------------------------------------------------------------------------
// TestRenderer_Render - Page stacking geometry
// ---------------------------------------------------------------------------

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	var r Renderer
	img, err := r.Render(specimenDoc(t), 2.0, color.White, color.Black, 3)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	// Pages are 200x100 and 160x80 at scale 2; the 3pt inset is 6px.
	// Width: widest page + 2 insets. Height: pages + 3 insets.
	wantW := 200 + 2*6
	wantH := 6 + 100 + 6 + 80 + 6
	b := img.Bounds()
	if b.Dx() != wantW || b.Dy() != wantH {
		t.Errorf("rendered size = %dx%d, want %dx%d", b.Dx(), b.Dy(), wantW, wantH)
	}

	// The inset border keeps the background color.
	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("corner pixel = %v, want white", got)
	}

	// The text left ink somewhere on the first page.
	var inked bool
	for y := 6; y < 106 && !inked; y++ {
		for x := 6; x < 206; x++ {
			if c := img.RGBAAt(x, y); c.R < 128 {
				inked = true
				break
			}
		}
	}
	if !inked {
		t.Error("no ink found in the rendered text area")
	}
}

func TestRenderer_RenderRejectsForeignDocument(t *testing.T) {
	t.Parallel()

	var r Renderer
	if _, err := r.Render("not a doc", 1, color.White, color.Black, 0); err == nil {
		t.Error("Render() accepted a foreign document type")
	}
	if _, err := r.Render(&Doc{}, 1, color.White, color.Black, 0); err == nil {
		t.Error("Render() accepted an empty document")
	}
}

// ---------------------------------------------------------------------------
// TestRenderer_EncodePNG
// ---------------------------------------------------------------------------

func TestRenderer_EncodePNG(t *testing.T) {
	t.Parallel()

	var r Renderer
	img, err := r.Render(specimenDoc(t), 1.0, color.White, color.Black, 2)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	data, err := r.EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG() error: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding the encoded PNG: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("round-tripped bounds = %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
