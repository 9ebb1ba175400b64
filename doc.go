// Package fontcompare compiles one document once per installed font family
// (or once per font variant) and assembles the renders into a single
// comparison PDF.
//
// # Quick Start
//
// Build the catalogs once, wrap them in a World, and run the comparison:
//
//	book := fontcompare.ScanFonts([]string{"/extra/fonts"}, true)
//	files := fontcompare.NewFileCatalog(projectRoot)
//	world := fontcompare.NewWorld(book, files, mainID)
//
//	pdf, err := fontcompare.Run(ctx, world, toolchain, fontcompare.Options{
//	    PPI: 300,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("out.variants.pdf", pdf, 0644)
//
// # Architecture
//
// The package is a data provider plus a scheduler; the document engine is a
// collaborator behind narrow contracts:
//
//  1. FontCatalog indexes discovered faces and decodes each one lazily,
//     at most once, shared across all clones.
//  2. FileCatalog resolves FileIDs against a project root, a package root,
//     or an in-memory virtual root, caching every successful read.
//  3. World bundles both catalogs with a private style snapshot. Cloning a
//     World is cheap: catalogs are shared by reference, only the snapshot
//     is copied, so parallel tasks can each apply their own font override.
//  4. RenderVariants compiles and renders every selected variant on a
//     bounded worker pool, fail-fast, reassembling results in deterministic
//     family/variant order regardless of completion order.
//  5. BuildCollection synthesizes a document referencing every render,
//     installs it as the World's virtual file set, and compiles it once
//     more into the final PDF.
//
// The Compiler, Renderer, and PDFEncoder contracts are defined in this
// package; a reference toolchain lives in internal/engine, and any test
// harness may substitute fakes implementing the same contracts.
package fontcompare
