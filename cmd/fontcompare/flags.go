package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across invocations.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// cliFlags holds all comparison flags.
type cliFlags struct {
	common commonFlags

	output    string
	root      string
	fontPaths []string
	include   string
	exclude   string
	ppi       float64
	variants  bool
	fallback  bool
	workers   int
	version   bool
}

// parseFlags parses the command line. The returned FlagSet carries the
// positional arguments and explicit-change information.
func parseFlags(args []string) (*cliFlags, *flag.FlagSet, error) {
	fs := flag.NewFlagSet("fontcompare", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path (default: input with .variants.pdf)")
	fs.StringVar(&f.root, "root", "", "project root directory ($FONTCOMPARE_ROOT)")
	fs.StringSliceVar(&f.fontPaths, "font-path", nil, "additional font directories ($FONTCOMPARE_FONT_PATHS)")
	fs.StringVarP(&f.include, "include", "i", "", "only compare families matching this pattern")
	fs.StringVarP(&f.exclude, "exclude", "e", "", "skip families matching this pattern")
	fs.Float64Var(&f.ppi, "ppi", 0, "render resolution in pixels per inch (default 300)")
	fs.BoolVarP(&f.variants, "variants", "V", false, "compare every variant of each family")
	fs.BoolVarP(&f.fallback, "fallback", "f", false, "enable font fallback during compilation")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.StringVarP(&f.common.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.common.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.common.verbose, "verbose", "v", false, "show debug output")

	fs.Usage = func() { printUsage(os.Stderr, fs) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}
	return f, fs, nil
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: fontcompare [flags] <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile <input> once per installed font family and assemble the")
	fmt.Fprintln(w, "renders into a comparison PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprint(w, fs.FlagUsages())
}
