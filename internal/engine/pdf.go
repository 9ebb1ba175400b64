package engine

import (
	"bytes"
	"fmt"
	"image/color"
	"image/jpeg"
	"strings"

	"golang.org/x/image/font"

	"github.com/typeglass/fontcompare"
)

// pdfRasterScale is the resolution of embedded page images, in pixels per
// point. 2 keeps 16pt text crisp at normal zoom without bloating output.
const pdfRasterScale = 2.0

// PDFEncoder encodes a laid-out document as a PDF with one full-page
// raster image per page, plus document info and outline bookmarks. It
// implements fontcompare.PDFEncoder.
type PDFEncoder struct {
	// Quality is the JPEG quality of the page images; 0 uses the codec
	// default.
	Quality int
}

// EncodePDF implements fontcompare.PDFEncoder.
func (e PDFEncoder) EncodePDF(doc fontcompare.Document) ([]byte, error) {
	d, ok := doc.(*Doc)
	if !ok {
		return nil, fmt.Errorf("unsupported document type %T", doc)
	}
	if len(d.Pages) == 0 {
		return nil, fmt.Errorf("document has no pages")
	}

	quality := e.Quality
	if quality <= 0 {
		quality = jpeg.DefaultQuality
	}

	type pageImage struct {
		jpg  []byte
		w, h int
	}
	faces := make(map[sizedKey]font.Face)
	images := make([]pageImage, len(d.Pages))
	for i, p := range d.Pages {
		img, err := rasterizePage(p, pdfRasterScale, color.White, color.Black, faces)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		var buf bytes.Buffer
		if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("page %d: %w", i+1, err)
		}
		images[i] = pageImage{buf.Bytes(), img.Bounds().Dx(), img.Bounds().Dy()}
	}

	// Fixed numbering: catalog, page tree, then three objects per page
	// (page, content stream, image), then info, then the outline tree.
	n := len(d.Pages)
	pageObj := func(i int) int { return 3 + 3*i }
	contentObj := func(i int) int { return 4 + 3*i }
	imageObj := func(i int) int { return 5 + 3*i }
	infoObj := 3 + 3*n

	outlineRoot, total := 0, infoObj
	if len(d.Outline) > 0 {
		outlineRoot = infoObj + 1
		total = outlineRoot + len(d.Outline)
	}

	objects := make([]string, total+1)

	catalog := "<< /Type /Catalog /Pages 2 0 R"
	if outlineRoot != 0 {
		catalog += fmt.Sprintf(" /Outlines %d 0 R /PageMode /UseOutlines", outlineRoot)
	}
	objects[1] = catalog + " >>"

	var kids strings.Builder
	for i := range d.Pages {
		fmt.Fprintf(&kids, "%d 0 R ", pageObj(i))
	}
	objects[2] = fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>",
		strings.TrimSpace(kids.String()), n)

	for i, p := range d.Pages {
		objects[pageObj(i)] = fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %.2f %.2f] /Contents %d 0 R /Resources << /XObject << /Im0 %d 0 R >> >> >>",
			p.Width, p.Height, contentObj(i), imageObj(i))

		content := fmt.Sprintf("q\n%.2f 0 0 %.2f 0 0 cm\n/Im0 Do\nQ\n", p.Width, p.Height)
		objects[contentObj(i)] = fmt.Sprintf("<< /Length %d >>\nstream\n%sendstream",
			len(content), content)

		img := images[i]
		objects[imageObj(i)] = fmt.Sprintf(
			"<< /Type /XObject /Subtype /Image /Width %d /Height %d /ColorSpace /DeviceRGB /BitsPerComponent 8 /Filter /DCTDecode /Length %d >>\nstream\n%sendstream",
			img.w, img.h, len(img.jpg), img.jpg)
	}

	info := fmt.Sprintf("<< /Producer (fontcompare %s)", escapePDFString(fontcompare.Version))
	if d.Title != "" {
		info += fmt.Sprintf(" /Title (%s)", escapePDFString(d.Title))
	}
	if d.Author != "" {
		info += fmt.Sprintf(" /Author (%s)", escapePDFString(d.Author))
	}
	objects[infoObj] = info + " >>"

	if outlineRoot != 0 {
		objects[outlineRoot] = fmt.Sprintf(
			"<< /Type /Outlines /First %d 0 R /Last %d 0 R /Count %d >>",
			outlineRoot+1, outlineRoot+len(d.Outline), len(d.Outline))
		for i, entry := range d.Outline {
			item := fmt.Sprintf("<< /Title (%s) /Parent %d 0 R /Dest [%d 0 R /XYZ null null null]",
				escapePDFString(entry.Title), outlineRoot, pageObj(entry.Page))
			if i > 0 {
				item += fmt.Sprintf(" /Prev %d 0 R", outlineRoot+i)
			}
			if i < len(d.Outline)-1 {
				item += fmt.Sprintf(" /Next %d 0 R", outlineRoot+i+2)
			}
			objects[outlineRoot+1+i] = item + " >>"
		}
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.5\n%\xe2\xe3\xcf\xd3\n")
	offsets := make([]int, total+1)
	for num := 1; num <= total; num++ {
		offsets[num] = out.Len()
		fmt.Fprintf(&out, "%d 0 obj\n%s\nendobj\n", num, objects[num])
	}

	xref := out.Len()
	fmt.Fprintf(&out, "xref\n0 %d\n", total+1)
	out.WriteString("0000000000 65535 f \n")
	for num := 1; num <= total; num++ {
		fmt.Fprintf(&out, "%010d 00000 n \n", offsets[num])
	}
	fmt.Fprintf(&out, "trailer\n<< /Size %d /Root 1 0 R /Info %d 0 R >>\nstartxref\n%d\n%%%%EOF\n",
		total+1, infoObj, xref)
	return out.Bytes(), nil
}

func escapePDFString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
