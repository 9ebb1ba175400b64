package fontcompare

import (
	"context"
	"fmt"
	"image/color"
	"regexp"
	"runtime"
	"sort"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Worker pool sizing constants.
const (
	// MinWorkers ensures at least one task runs.
	MinWorkers = 1

	// MaxWorkers caps concurrent compilations; each one holds a full
	// layout in memory.
	MaxWorkers = 8

	// cpuDivisor leaves headroom for decode and encode work on shared
	// catalog locks.
	cpuDivisor = 2
)

// Render geometry constants.
const (
	// DefaultPPI is the default render resolution in pixels per inch.
	DefaultPPI = 300.0

	// inkInsetPt is the border drawn around and between rendered pages,
	// in points.
	inkInsetPt = 4.0
)

// Options configures one comparison run.
type Options struct {
	// Variants compares every face of each family instead of only the
	// first, and pins weight/stretch/style per task.
	Variants bool

	// Fallback enables font fallback during compilation.
	Fallback bool

	// Include keeps only families matching the pattern; nil keeps all.
	Include *regexp.Regexp

	// Exclude drops families matching the pattern; it takes priority
	// over Include.
	Exclude *regexp.Regexp

	// PPI is the render resolution; 0 means DefaultPPI.
	PPI float64

	// Workers bounds the pool; 0 resolves from GOMAXPROCS.
	Workers int
}

// ppi returns the effective resolution.
func (o Options) ppi() float64 {
	if o.PPI > 0 {
		return o.PPI
	}
	return DefaultPPI
}

// ResolveWorkers determines the worker pool size. An explicit value takes
// priority; otherwise the size derives from GOMAXPROCS (adjusted by
// automaxprocs in the CLI) clamped to [MinWorkers, MaxWorkers].
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}
	n := runtime.GOMAXPROCS(0) / cpuDivisor
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// SelectVariants enumerates the faces to compare: families surviving the
// include/exclude filters contribute their first face, plus every further
// face when variant mode is on. The result is sorted by family and then by
// the variant ordering key, which fixes the output order of the whole run.
func SelectVariants(book *FontCatalog, opts Options) []Face {
	var selected []Face
	for family, faces := range book.Families() {
		if opts.Include != nil && !opts.Include.MatchString(family) {
			continue
		}
		if opts.Exclude != nil && opts.Exclude.MatchString(family) {
			continue
		}
		if len(faces) == 0 {
			continue
		}
		selected = append(selected, faces[0])
		if opts.Variants {
			selected = append(selected, faces[1:]...)
		}
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return selected[i].Variant.Compare(selected[j].Variant) < 0
	})
	return selected
}

// RenderVariants compiles and renders the main document once per selected
// variant, in parallel on a bounded pool. Each task clones the world,
// applies its private style override, compiles, renders at scale ppi/72
// over a white background with a 4pt ink inset and black ink, and encodes
// to PNG.
//
// The batch is fail-fast: the first error cancels pending tasks and is
// returned with the offending variant attached; no partial result is
// returned. Successful results are ordered by the deterministic selection
// order, never by completion order. After the batch the toolchain's
// compile cache is pruned to the most recent generation.
func RenderVariants(ctx context.Context, world *World, tc Toolchain, opts Options) ([]Render, error) {
	faces := SelectVariants(world.Book(), opts)
	if len(faces) == 0 {
		return nil, ErrNoFaces
	}

	base := world.Library()
	scale := opts.ppi() / 72.0
	renders := make([]Render, len(faces))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(ResolveWorkers(opts.Workers))

	for i, face := range faces {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v := face.Variant
			log.WithFields(log.Fields{
				"family":  v.Family,
				"variant": v.Description(),
			}).Info("compiling")

			task := world.Clone()
			task.ApplyVariant(base, v, opts.Variants, opts.Fallback)

			doc, err := tc.Compiler.Compile(task)
			if err != nil {
				return &CompileError{Variant: &v, Err: err}
			}

			img, err := tc.Renderer.Render(doc, scale, color.White, color.Black, inkInsetPt)
			if err != nil {
				return &CompileError{Variant: &v, Err: err}
			}

			png, err := tc.Renderer.EncodePNG(img)
			if err != nil {
				return &CompileError{Variant: &v, Err: fmt.Errorf("%w: %v", ErrImageEncode, err)}
			}

			b := img.Bounds()
			renders[i] = Render{
				Variant: v,
				PNG:     png,
				Width:   b.Dx(),
				Height:  b.Dy(),
			}
			return nil
		})
	}

	err := g.Wait()

	// Bound the compiler's memoization across repeated batches even when
	// the batch failed.
	if tc.Cache != nil {
		tc.Cache.Evict(1)
	}

	if err != nil {
		return nil, err
	}
	return renders, nil
}
