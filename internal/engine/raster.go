package engine

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/typeglass/fontcompare"
)

// Renderer rasterizes laid-out documents. It implements
// fontcompare.Renderer. The zero value is ready to use.
type Renderer struct{}

// Render draws every page of doc at scale pixels per point and stacks the
// page images vertically over the background color, separated and
// surrounded by inset points.
func (Renderer) Render(doc fontcompare.Document, scale float64, background, ink color.Color, inset float64) (*image.RGBA, error) {
	d, ok := doc.(*Doc)
	if !ok {
		return nil, fmt.Errorf("unsupported document type %T", doc)
	}
	if len(d.Pages) == 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	faces := make(map[sizedKey]font.Face)
	pages := make([]*image.RGBA, len(d.Pages))
	for i, p := range d.Pages {
		img, err := rasterizePage(p, scale, background, ink, faces)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		pages[i] = img
	}

	insetPx := int(math.Round(inset * scale))
	width, height := 0, insetPx
	for _, img := range pages {
		if w := img.Bounds().Dx(); w > width {
			width = w
		}
		height += img.Bounds().Dy() + insetPx
	}

	canvas := image.NewRGBA(image.Rect(0, 0, width+2*insetPx, height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	y := insetPx
	for _, img := range pages {
		r := image.Rect(insetPx, y, insetPx+img.Bounds().Dx(), y+img.Bounds().Dy())
		draw.Draw(canvas, r, img, image.Point{}, draw.Src)
		y += img.Bounds().Dy() + insetPx
	}
	return canvas, nil
}

// EncodePNG implements fontcompare.Renderer.
func (Renderer) EncodePNG(img *image.RGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func rasterizePage(p *Page, scale float64, background, ink color.Color, faces map[sizedKey]font.Face) (*image.RGBA, error) {
	w := int(math.Ceil(p.Width * scale))
	h := int(math.Ceil(p.Height * scale))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for _, item := range p.Items {
		switch t := item.(type) {
		case *TextItem:
			key := sizedKey{t.Font, t.Size * scale}
			face, ok := faces[key]
			if !ok {
				var err error
				face, err = opentype.NewFace(t.Font, &opentype.FaceOptions{
					Size:    t.Size * scale,
					DPI:     72,
					Hinting: font.HintingFull,
				})
				if err != nil {
					return nil, fmt.Errorf("creating face: %w", err)
				}
				faces[key] = face
			}
			drawer := font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(ink),
				Face: face,
				Dot: fixed.Point26_6{
					X: fixed.Int26_6(math.Round(t.X * scale * 64)),
					Y: fixed.Int26_6(math.Round(t.Y * scale * 64)),
				},
			}
			drawer.DrawString(t.Text)
		case *ImageItem:
			src, _, err := image.Decode(bytes.NewReader(t.Data))
			if err != nil {
				return nil, fmt.Errorf("decoding embedded image: %w", err)
			}
			r := image.Rect(
				int(math.Round(t.X*scale)),
				int(math.Round(t.Y*scale)),
				int(math.Round((t.X+t.W)*scale)),
				int(math.Round((t.Y+t.H)*scale)),
			)
			xdraw.ApproxBiLinear.Scale(img, r, src, src.Bounds(), xdraw.Over, nil)
		}
	}
	return img, nil
}
