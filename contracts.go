package fontcompare

import (
	"image"
	"image/color"
)

// Document is the opaque result of a compilation. This package never looks
// inside it; the Compiler that produced it and the Renderer/PDFEncoder
// that consume it agree on the concrete type.
type Document any

// Compiler is the external document-compilation engine. Compile consumes
// the World's font book, library/styles, and file-resolution capability.
// Diagnostics are returned as an error; file-access failures reported by
// the World are recoverable at the compiler's discretion.
type Compiler interface {
	Compile(w *World) (Document, error)
}

// Renderer rasterizes a compiled document and encodes the result.
type Renderer interface {
	// Render draws all pages of doc into one pixel buffer at the given
	// scale (pixels per point), over the background color, separated and
	// surrounded by inset points, with text in the ink color.
	Render(doc Document, scale float64, background, ink color.Color, inset float64) (*image.RGBA, error)

	// EncodePNG encodes a rendered buffer to PNG bytes.
	EncodePNG(img *image.RGBA) ([]byte, error)
}

// PDFEncoder encodes a compiled document into the final PDF bytes.
type PDFEncoder interface {
	EncodePDF(doc Document) ([]byte, error)
}

// CompileCache is the compiler's process-wide memoization cache, owned by
// the top-level run rather than living as ambient global state. Evict
// prunes entries older than maxAge generations to cap memory growth from
// repeated compilations.
type CompileCache interface {
	Evict(maxAge int)
}

// Toolchain bundles the collaborators one comparison run invokes. Cache
// may be nil when the compiler does not memoize.
type Toolchain struct {
	Compiler Compiler
	Renderer Renderer
	PDF      PDFEncoder
	Cache    CompileCache
}
