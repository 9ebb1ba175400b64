package main

import (
	"errors"
	"os"

	"github.com/typeglass/fontcompare"
	"github.com/typeglass/fontcompare/internal/config"
)

// Exit codes for the fontcompare CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // comparison written
	ExitGeneral = 1 // general/unexpected error
	ExitUsage   = 2 // invalid flags, config, or filter patterns
	ExitIO      = 3 // missing files, permissions, write failures
	ExitCompile = 4 // document compilation or render failures
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Compilation errors (exit 4). Checked first: a failed compile may
	// wrap a file error for a missing referenced asset.
	var compileErr *fontcompare.CompileError
	if errors.As(err, &compileErr) ||
		errors.Is(err, fontcompare.ErrInvalidEncoding) ||
		errors.Is(err, fontcompare.ErrImageEncode) {
		return ExitCompile
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fontcompare.ErrFileNotFound) ||
		errors.Is(err, fontcompare.ErrFileAccessDenied) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWritePDF) {
		return ExitIO
	}

	// Usage/config/selection errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, fontcompare.ErrNoFaces) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrBadPattern) {
		return ExitUsage
	}

	return ExitGeneral
}
