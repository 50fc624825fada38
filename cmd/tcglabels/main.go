package main

import (
	"context"
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-tcglabels/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// GOMAXPROCS is adjusted before flags are parsed, so -v is looked up by hand.
	// maxprocs.Set only fails on an invalid GOMAXPROCS; the runtime default stays.
	verbosity := logging.LevelQuiet
	if slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose") {
		verbosity = logging.LevelVerbose
	}
	logger := logging.New(os.Stderr, verbosity)
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...))
	}))

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}
