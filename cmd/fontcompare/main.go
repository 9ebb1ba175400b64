package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/typeglass/fontcompare"
)

func main() {
	flags, fs, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitUsage)
	}

	configureLogging(flags)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	_, _ = maxprocs.Set(maxprocs.Logger(log.Debugf))

	if flags.version {
		fmt.Println("fontcompare", fontcompare.Version)
		return
	}

	if err := run(flags, fs); err != nil {
		log.Error(err)
		os.Exit(exitCodeFor(err))
	}
}

func configureLogging(f *cliFlags) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	switch {
	case f.common.quiet:
		log.SetLevel(log.ErrorLevel)
	case f.common.verbose:
		log.SetLevel(log.DebugLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}
