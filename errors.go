package fontcompare

import (
	"errors"
	"fmt"
)

// Sentinel errors for data-provider and pipeline operations.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrFileAccessDenied = errors.New("access denied")
	ErrInvalidEncoding  = errors.New("file content is not valid UTF-8")
	ErrImageEncode      = errors.New("image encoding failed")
	ErrNoFaces          = errors.New("no font faces match the selection")
)

// FileErrorKind classifies an OS-level read failure.
type FileErrorKind int

// File error kinds, in severity-neutral order.
const (
	FileNotFound FileErrorKind = iota
	FileAccessDenied
	FileOther
)

// FileError reports a failure to resolve one FileID. It is returned per
// requested file; the compiler decides whether to abort or proceed, this
// package never swallows it.
type FileError struct {
	ID     FileID
	Kind   FileErrorKind
	Detail string // OS error text for FileOther, search path for FileNotFound
}

// Error implements the error interface.
func (e *FileError) Error() string {
	switch e.Kind {
	case FileNotFound:
		if e.Detail != "" {
			return fmt.Sprintf("%s: %v (%s)", e.ID, ErrFileNotFound, e.Detail)
		}
		return fmt.Sprintf("%s: %v", e.ID, ErrFileNotFound)
	case FileAccessDenied:
		return fmt.Sprintf("%s: %v", e.ID, ErrFileAccessDenied)
	default:
		return fmt.Sprintf("%s: %s", e.ID, e.Detail)
	}
}

// Unwrap maps the kind onto the matching sentinel so callers can use
// errors.Is(err, ErrFileNotFound) without inspecting the struct.
func (e *FileError) Unwrap() error {
	switch e.Kind {
	case FileNotFound:
		return ErrFileNotFound
	case FileAccessDenied:
		return ErrFileAccessDenied
	default:
		return nil
	}
}

// CompileError reports a failed compilation. For per-variant compiles the
// offending Variant is attached; for the final collection compile Variant
// is nil.
type CompileError struct {
	Variant *Variant
	Err     error // diagnostics from the compiler
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Variant != nil {
		return fmt.Sprintf("compiling for font %s (%s): %v", e.Variant.Family, e.Variant.Description(), e.Err)
	}
	return fmt.Sprintf("compiling collection: %v", e.Err)
}

// Unwrap exposes the compiler diagnostics for errors.Is/As chains.
func (e *CompileError) Unwrap() error { return e.Err }
