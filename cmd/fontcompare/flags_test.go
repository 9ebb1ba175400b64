package main

import (
	"errors"
	"testing"

	"github.com/typeglass/fontcompare/internal/config"
)

// ---------------------------------------------------------------------------
// TestParseFlags - Command line parsing
// ---------------------------------------------------------------------------

func TestParseFlags(t *testing.T) {
	t.Parallel()

	f, fs, err := parseFlags([]string{
		"fontcompare",
		"-V",
		"--include", "^Noto",
		"-e", "Mono$",
		"--ppi", "150",
		"-w", "2",
		"-o", "out.pdf",
		"specimen.md",
	})
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}

	if !f.variants || f.include != "^Noto" || f.exclude != "Mono$" {
		t.Errorf("selection flags = %+v", f)
	}
	if f.ppi != 150 || f.workers != 2 || f.output != "out.pdf" {
		t.Errorf("render flags = %+v", f)
	}
	if args := fs.Args(); len(args) != 1 || args[0] != "specimen.md" {
		t.Errorf("positional args = %v, want [specimen.md]", args)
	}
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	t.Parallel()

	if _, _, err := parseFlags([]string{"fontcompare", "--bogus"}); err == nil {
		t.Error("parseFlags() accepted an unknown flag")
	}
}

// ---------------------------------------------------------------------------
// TestBuildOptions - Flag/config merging
// ---------------------------------------------------------------------------

func TestBuildOptions_FlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	f, fs, err := parseFlags([]string{"fontcompare", "--ppi", "96", "--variants=false", "x.md"})
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{PPI: 150, Variants: true, Fallback: true, Workers: 3}
	opts, err := buildOptions(f, fs, cfg)
	if err != nil {
		t.Fatalf("buildOptions() error: %v", err)
	}

	if opts.PPI != 96 {
		t.Errorf("PPI = %g, want explicit flag value 96", opts.PPI)
	}
	if opts.Variants {
		t.Error("explicit --variants=false lost to config")
	}
	if !opts.Fallback || opts.Workers != 3 {
		t.Errorf("untouched config values lost: %+v", opts)
	}
}

func TestBuildOptions_Patterns(t *testing.T) {
	t.Parallel()

	f, fs, err := parseFlags([]string{"fontcompare", "-i", "^Go", "x.md"})
	if err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{Exclude: "Mono$"}
	opts, err := buildOptions(f, fs, cfg)
	if err != nil {
		t.Fatalf("buildOptions() error: %v", err)
	}

	if opts.Include == nil || !opts.Include.MatchString("Go Sans") {
		t.Errorf("Include = %v, want compiled ^Go", opts.Include)
	}
	if opts.Exclude == nil || !opts.Exclude.MatchString("Go Mono") {
		t.Errorf("Exclude = %v, want compiled config fallback Mono$", opts.Exclude)
	}
}

func TestBuildOptions_BadPattern(t *testing.T) {
	t.Parallel()

	f, fs, err := parseFlags([]string{"fontcompare", "-i", "([", "x.md"})
	if err != nil {
		t.Fatal(err)
	}

	_, err = buildOptions(f, fs, config.DefaultConfig())
	if !errors.Is(err, ErrBadPattern) {
		t.Errorf("buildOptions() error = %v, want ErrBadPattern", err)
	}
}
