package fontcompare

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	log "github.com/sirupsen/logrus"
)

// Collection layout constants, in points.
const (
	// MinPageWidthPt floors the uniform page content width (20cm).
	MinPageWidthPt = 566.929

	// PageMarginPt is added on both sides of every page (1cm).
	PageMarginPt = 28.3465

	// CollectionTextSizePt is the base text size of the collection.
	CollectionTextSizePt = 16.0
)

// renderImagePrefix names the virtual image files referenced by the
// synthesized document: render-0.png, render-1.png, ...
const renderImagePrefix = "render-"

// Version is the tool version stamped into the collection header. It is
// overridden at build time via ldflags.
var Version = "dev"

// collectionTemplate is the synthesized comparison document in the
// reference engine's markup. Interpolated family names are inserted
// verbatim; a family name containing markup or broken quoting can corrupt
// the document (known limitation, matching the original tool).
var collectionTemplate = template.Must(template.New("collection").Parse(`---
author: "{{.Author}}"
pageWidth: {{printf "%.2f" .PageWidth}}
margin: {{printf "%.2f" .Margin}}
textSize: {{printf "%g" .TextSize}}
---

# Fonts

<!-- outline -->

Created with {{.Author}} {{.Version}}.
{{range .Pages}}
<!-- page -->
{{if .FirstOfFamily}}<!-- entry: {{.Family}} -->
{{end}}<!-- header: {{.Family}} -->

## {{.Description}}

![{{.Description}}]({{.Image}} "{{printf "%.2f" .Width}}x{{printf "%.2f" .Height}}")
{{end}}`))

// collectionData is the template payload.
type collectionData struct {
	Author    string
	Version   string
	PageWidth float64
	Margin    float64
	TextSize  float64
	Pages     []collectionPage
}

// collectionPage describes one render's page.
type collectionPage struct {
	Family        string
	Description   string
	FirstOfFamily bool
	Image         string
	Width         float64 // points
	Height        float64 // points
}

// BuildCollection synthesizes one document referencing every render,
// installs it and the images as the world's virtual file set, compiles it,
// and encodes the final PDF.
//
// The uniform page content width is the maximum render width converted to
// points (pixels / ppi * 72), floored at MinPageWidthPt; PageMarginPt is
// added on both sides by the engine. Each render gets one page: a hidden
// outline entry on the first page of a new family, a header row with the
// family name and running page number, a variant sub-heading, and the
// image sized to its point-converted dimensions.
func BuildCollection(world *World, tc Toolchain, renders []Render, opts Options) ([]byte, error) {
	log.Info("compiling collection")

	ppi := opts.ppi()
	toPoints := func(pixels int) float64 { return float64(pixels) / ppi * 72.0 }

	pageWidth := 0.0
	for _, r := range renders {
		if w := toPoints(r.Width); w > pageWidth {
			pageWidth = w
		}
	}
	if pageWidth < MinPageWidthPt {
		pageWidth = MinPageWidthPt
	}

	data := collectionData{
		Author:    "fontcompare",
		Version:   Version,
		PageWidth: pageWidth,
		Margin:    PageMarginPt,
		TextSize:  CollectionTextSizePt,
	}

	files := make(map[string][]byte, len(renders))
	lastFamily := ""
	for n, r := range renders {
		name := fmt.Sprintf("%s%d.png", renderImagePrefix, n)
		files[name] = r.PNG
		data.Pages = append(data.Pages, collectionPage{
			Family:        r.Variant.Family,
			Description:   r.Variant.Description(),
			FirstOfFamily: r.Variant.Family != lastFamily,
			Image:         name,
			Width:         toPoints(r.Width),
			Height:        toPoints(r.Height),
		})
		lastFamily = r.Variant.Family
	}

	var buf strings.Builder
	if err := collectionTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("building collection document: %w", err)
	}

	world.ReplaceFiles(buf.String(), files)

	doc, err := tc.Compiler.Compile(world)
	if err != nil {
		return nil, &CompileError{Err: err}
	}

	pdf, err := tc.PDF.EncodePDF(doc)
	if err != nil {
		return nil, fmt.Errorf("encoding collection PDF: %w", err)
	}
	return pdf, nil
}

// Run renders every selected variant and assembles the comparison PDF.
// It is the library-level entry point used by the CLI.
func Run(ctx context.Context, world *World, tc Toolchain, opts Options) ([]byte, error) {
	renders, err := RenderVariants(ctx, world, tc, opts)
	if err != nil {
		return nil, fmt.Errorf("rendering variants: %w", err)
	}
	pdf, err := BuildCollection(world, tc, renders, opts)
	if err != nil {
		return nil, fmt.Errorf("rendering collection: %w", err)
	}
	return pdf, nil
}
