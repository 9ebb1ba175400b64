package fontcompare

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// World is the data-provider handle the external compiler consumes: font
// catalog, file resolution, the current style snapshot, the main document,
// and today's date. A World is built once at startup and cloned per task.
type World struct {
	book    *FontCatalog
	files   *FileCatalog
	library Library
	main    FileID
}

// NewWorld wraps the given catalogs. The library starts at NewLibrary().
func NewWorld(book *FontCatalog, files *FileCatalog, main FileID) *World {
	return &World{
		book:    book,
		files:   files,
		library: NewLibrary(),
		main:    main,
	}
}

// Book returns the shared font catalog.
func (w *World) Book() *FontCatalog { return w.book }

// Library returns the current style/library snapshot.
func (w *World) Library() Library { return w.library }

// MainID returns the id of the designated main document.
func (w *World) MainID() FileID { return w.main }

// MainSource returns the decoded text of the main document.
func (w *World) MainSource() (string, error) {
	return w.Source(w.main)
}

// Source returns the decoded text of id. Content that is not valid UTF-8
// yields ErrInvalidEncoding.
func (w *World) Source(id FileID) (string, error) {
	data, err := w.files.Resolve(id)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%s: %w", id, ErrInvalidEncoding)
	}
	return string(data), nil
}

// Bytes returns the raw content of id.
func (w *World) Bytes(id FileID) ([]byte, error) {
	return w.files.Resolve(id)
}

// Font returns the decoded font for a catalog slot, or nil when the slot's
// decode failed.
func (w *World) Font(slot int) *Font {
	return w.book.Load(slot)
}

// Today returns today's date (UTC, truncated to midnight), optionally
// shifted by a whole-hour offset. Offsets outside [-23, 23] are invalid
// and yield ok == false.
func (w *World) Today(offsetHours *int) (time.Time, bool) {
	now := time.Now().UTC()
	if offsetHours != nil {
		h := *offsetHours
		if h < -23 || h > 23 {
			return time.Time{}, false
		}
		now = now.Add(time.Duration(h) * time.Hour)
	}
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
}

// Clone returns a handle for one task: the font and file catalogs are
// shared by reference (no cached bytes or decoded fonts are copied), the
// style snapshot is duplicated so the task may mutate it freely.
func (w *World) Clone() *World {
	cp := *w
	return &cp
}

// ApplyVariant resets the style snapshot to base, then applies the task's
// font override: fallback and family are always set, the weight, stretch,
// and style fields only when matchVariant is requested. The mutation is
// confined to this handle.
func (w *World) ApplyVariant(base Library, v Variant, matchVariant, fallback bool) {
	w.library = base
	w.library.Styles.Fallback = fallback
	w.library.Styles.FontFamily = v.Family
	if matchVariant {
		w.library.Styles.Weight = v.Weight
		w.library.Styles.Stretch = v.Stretch
		w.library.Styles.Style = v.Style
		w.library.Styles.HasVariant = true
	}
}

// ReplaceFiles atomically replaces the World's file set with an in-memory
// document: the file catalog switches to its virtual root and the main id
// is repointed at mainContent. Because the file catalog is shared, the
// virtual files become visible to every clone; the main id changes only on
// this handle.
func (w *World) ReplaceFiles(mainContent string, extraFiles map[string][]byte) {
	w.main = w.files.ReplaceAll(mainContent, extraFiles)
}
