package engine

import "github.com/typeglass/fontcompare"

// Engine bundles the reference compiler, renderer, and PDF encoder around
// one shared parsed-face cache.
type Engine struct {
	cache    *faceCache
	compiler *Compiler
	renderer Renderer
	pdf      PDFEncoder
}

// New returns a ready engine.
func New() *Engine {
	cache := newFaceCache()
	return &Engine{
		cache:    cache,
		compiler: &Compiler{cache: cache},
	}
}

// Toolchain exposes the engine under the comparison-run contracts. The
// face cache serves as the run's compile cache.
func (e *Engine) Toolchain() fontcompare.Toolchain {
	return fontcompare.Toolchain{
		Compiler: e.compiler,
		Renderer: e.renderer,
		PDF:      e.pdf,
		Cache:    e.cache,
	}
}
