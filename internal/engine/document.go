package engine

import xsfnt "golang.org/x/image/font/sfnt"

// Doc is the engine's compiled document: laid-out pages plus the outline.
// All coordinates and sizes are in points, measured from the top-left
// corner of each page.
type Doc struct {
	Title   string
	Author  string
	Pages   []*Page
	Outline []OutlineEntry
}

// OutlineEntry names one section of the document and the zero-based page
// it starts on.
type OutlineEntry struct {
	Title string
	Page  int
}

// Page is one laid-out page. Height grows with content.
type Page struct {
	Width  float64
	Height float64
	Items  []Item
}

// Item is one positioned page element.
type Item interface {
	isItem()
}

// TextItem is a single line of text. X, Y locate the baseline start.
type TextItem struct {
	X, Y float64
	Size float64
	Text string
	Font *xsfnt.Font
}

func (*TextItem) isItem() {}

// ImageItem is an embedded raster image with its decoded pixels.
type ImageItem struct {
	X, Y float64
	W, H float64
	Data []byte // original encoded bytes, kept for re-encoding
}

func (*ImageItem) isItem() {}
