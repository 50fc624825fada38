package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-tcglabels/internal/logging"
)

// ErrUsage marks command-line mistakes: bad flags, stray arguments.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// verbosity maps -q/-v to a logging level name. Quiet wins.
func (c commonFlags) verbosity() string {
	switch {
	case c.quiet:
		return logging.LevelQuiet
	case c.verbose:
		return logging.LevelVerbose
	default:
		return logging.LevelNormal
	}
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common    commonFlags
	orderFile string
	timeout   string
	html      bool
	version   bool
}

// initFlags holds flags for the init command.
type initFlags struct {
	dialect string
}

// configFlags holds flags for the config command.
type configFlags struct {
	config string
}

// doctorFlags holds flags for the doctor command.
type doctorFlags struct {
	config string
	json   bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// newFlagSet returns a silent FlagSet: errors come back to the caller and
// usage is printed by the help functions.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	fs.SortFlags = false
	return fs
}

// newGenerateFlagSet registers the generate flags into f.
// Shared with shell completion.
func newGenerateFlagSet(f *generateFlags) *flag.FlagSet {
	fs := newFlagSet("generate")
	fs.StringVarP(&f.orderFile, "order-file", "o", "", "CSV order export (required)")
	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF rendering timeout (e.g., 30s, 2m)")
	fs.BoolVar(&f.html, "html", false, "also write the label HTML next to the PDF")
	fs.BoolVar(&f.version, "version", false, "show version information")
	return fs
}

func newInitFlagSet(f *initFlags) *flag.FlagSet {
	fs := newFlagSet("init")
	fs.StringVarP(&f.dialect, "dialect", "d", "jinja", "label template dialect: jinja, go")
	return fs
}

func newConfigFlagSet(f *configFlags) *flag.FlagSet {
	fs := newFlagSet("config")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	return fs
}

func newDoctorFlagSet(f *doctorFlags) *flag.FlagSet {
	fs := newFlagSet("doctor")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVar(&f.json, "json", false, "print results as JSON")
	return fs
}

// parseFlags parses args into fs. pflag.ErrHelp is returned unwrapped so
// callers can print usage; other errors are wrapped with ErrUsage.
func parseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return fs.Args(), nil
}

// parseGenerateFlags parses generate command flags. Positional arguments are rejected.
func parseGenerateFlags(args []string) (*generateFlags, error) {
	f := &generateFlags{}
	rest, err := parseFlags(newGenerateFlagSet(f), args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q (use --order-file)", ErrUsage, rest[0])
	}
	return f, nil
}

// parseInitFlags parses init command flags and returns the target directory.
func parseInitFlags(args []string) (*initFlags, string, error) {
	f := &initFlags{}
	rest, err := parseFlags(newInitFlagSet(f), args)
	if err != nil {
		return nil, "", err
	}
	switch len(rest) {
	case 0:
		return f, ".", nil
	case 1:
		return f, rest[0], nil
	default:
		return nil, "", fmt.Errorf("%w: init takes at most one directory", ErrUsage)
	}
}
