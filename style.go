package fontcompare

import "seehuhn.de/go/sfnt/os2"

// Styles is the mutable text-style state a compilation runs under. It is
// deliberately small: cloning a World copies this by value, so each
// parallel task mutates a private snapshot without synchronization.
type Styles struct {
	// FontFamily is the preferred family; empty means engine default.
	FontFamily string

	// Fallback allows the engine to substitute another face when the
	// requested family (or a glyph) is unavailable.
	Fallback bool

	// Variant fields, honored only when HasVariant is set.
	Weight     os2.Weight
	Stretch    os2.Width
	Style      FontStyle
	HasVariant bool
}

// Library is the compiler-visible style/library snapshot of a World.
type Library struct {
	Styles Styles
}

// NewLibrary returns the default library: no family preference, fallback
// enabled, no variant pinning.
func NewLibrary() Library {
	return Library{Styles: Styles{Fallback: true}}
}
