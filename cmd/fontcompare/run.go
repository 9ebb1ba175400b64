package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"regexp"
	"strings"
	"syscall"

	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/typeglass/fontcompare"
	"github.com/typeglass/fontcompare/internal/config"
	"github.com/typeglass/fontcompare/internal/engine"
	"github.com/typeglass/fontcompare/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput    = errors.New("no input file specified")
	ErrBadPattern = errors.New("invalid filter pattern")
	ErrReadInput  = errors.New("cannot read input file")
	ErrWritePDF   = errors.New("failed to write PDF")
)

// Environment variable names.
const (
	envRoot      = "FONTCOMPARE_ROOT"
	envFontPaths = "FONTCOMPARE_FONT_PATHS"
)

// run executes one comparison: discover fonts, build the world, render
// every selected variant, and write the assembled PDF.
func run(f *cliFlags, fs *flag.FlagSet) error {
	cfg := config.DefaultConfig()
	if f.common.config != "" {
		loaded, err := config.LoadConfig(f.common.config)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	args := fs.Args()
	if len(args) == 0 {
		return ErrNoInput
	}
	if len(args) > 1 {
		return fmt.Errorf("expected one input file, got %d", len(args))
	}
	input := args[0]
	if !fileutil.FileExists(input) {
		return fmt.Errorf("%w: %s", ErrReadInput, input)
	}

	opts, err := buildOptions(f, fs, cfg)
	if err != nil {
		return err
	}

	root := firstNonEmpty(f.root, os.Getenv(envRoot), cfg.Root)
	if root == "" {
		root = filepath.Dir(input)
	}

	fontPaths := f.fontPaths
	if len(fontPaths) == 0 {
		if env := os.Getenv(envFontPaths); env != "" {
			fontPaths = filepath.SplitList(env)
		} else {
			fontPaths = cfg.FontPaths
		}
	}

	book := fontcompare.ScanFonts(fontPaths, true)
	log.WithField("faces", book.NumFaces()).Debug("fonts discovered")

	vpath, err := filepath.Rel(root, input)
	if err != nil || strings.HasPrefix(vpath, "..") {
		return fmt.Errorf("input %s is outside the project root %s", input, root)
	}

	files := fontcompare.NewFileCatalog(root)
	world := fontcompare.NewWorld(book, files, fontcompare.NewFileID(nil, vpath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pdf, err := fontcompare.Run(ctx, world, engine.New().Toolchain(), opts)
	if err != nil {
		return err
	}

	output := f.output
	if output == "" {
		output = fileutil.ReplaceExt(input, ".variants.pdf")
	}
	if err := os.WriteFile(output, pdf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	log.WithField("path", output).Info("comparison written")
	return nil
}

// buildOptions merges flags over config values. Explicitly set flags win
// even when they repeat a default.
func buildOptions(f *cliFlags, fs *flag.FlagSet, cfg *config.Config) (fontcompare.Options, error) {
	opts := fontcompare.Options{
		Variants: cfg.Variants,
		Fallback: cfg.Fallback,
		PPI:      cfg.PPI,
		Workers:  cfg.Workers,
	}
	if fs.Changed("variants") {
		opts.Variants = f.variants
	}
	if fs.Changed("fallback") {
		opts.Fallback = f.fallback
	}
	if fs.Changed("ppi") {
		opts.PPI = f.ppi
	}
	if fs.Changed("workers") {
		opts.Workers = f.workers
	}

	include := firstNonEmpty(f.include, cfg.Include)
	exclude := firstNonEmpty(f.exclude, cfg.Exclude)

	var err error
	if include != "" {
		if opts.Include, err = regexp.Compile(include); err != nil {
			return opts, fmt.Errorf("%w: %v", ErrBadPattern, err)
		}
	}
	if exclude != "" {
		if opts.Exclude, err = regexp.Compile(exclude); err != nil {
			return opts, fmt.Errorf("%w: %v", ErrBadPattern, err)
		}
	}
	return opts, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
