package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	flag "github.com/spf13/pflag"

	tcglabels "github.com/alnah/go-tcglabels"
	"github.com/alnah/go-tcglabels/internal/config"
	"github.com/alnah/go-tcglabels/internal/fileutil"
	"github.com/alnah/go-tcglabels/internal/hints"
	"github.com/alnah/go-tcglabels/internal/logging"
)

// runGenerate reads the order export and writes the label PDF.
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseGenerateFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printGenerateUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}
	if flags.version {
		printVersion(env.Stdout)
		return nil
	}
	if flags.orderFile == "" {
		return fmt.Errorf("%w (use --order-file)", tcglabels.ErrMissingOrderFile)
	}

	logger := logging.New(env.Stderr, flags.common.verbosity())
	warnUnknownEnvVars(logger, env.Environ())

	envCfg := loadEnvConfig(env.Getenv)
	cfg, err := loadConfig(flags.common.config, envCfg)
	if err != nil {
		return err
	}

	timeout, err := resolveTimeout(flags.timeout, cfg)
	if err != nil {
		return err
	}

	opts := []tcglabels.Option{
		tcglabels.WithTimeout(timeout),
		tcglabels.WithClock(env.Now),
		tcglabels.WithLogger(logger),
		tcglabels.WithRendererOptions(
			tcglabels.WithDialect(cfg.Template.Dialect),
			tcglabels.WithPage(buildPageSettings(cfg.Page)),
		),
	}
	if env.Renderer != nil {
		opts = append(opts, tcglabels.WithRenderer(env.Renderer))
	}

	w, err := tcglabels.NewLabelWriter(opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); cerr != nil {
			logger.Warn("closing browser", "error", cerr)
		}
	}()

	job := buildJob(flags, cfg)
	logger.Debug("starting run", "orders", job.OrderFile, "template", job.TemplateFile,
		"dialect", cfg.Template.Dialect, "timeout", timeout)

	start := time.Now()
	res, err := w.CreateLabels(ctx, job)
	if err != nil {
		return withHint(err, job)
	}
	logger.Debug("run finished", "elapsed", time.Since(start).Round(time.Millisecond))

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Created %s (%d labels)\n", res.Path, res.Labels)
		if res.HTMLPath != "" {
			fmt.Fprintf(env.Stdout, "Wrote %s\n", res.HTMLPath)
		}
	}
	return nil
}

// loadConfig resolves the config file (flag, then TCGLABELS_CONFIG) and
// applies environment overrides. No config means defaults.
func loadConfig(flagConfig string, envCfg *envConfig) (*config.Config, error) {
	name := flagConfig
	if name == "" {
		name = envCfg.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveTimeout picks the render timeout: flag, then config (which already
// carries TCGLABELS_TIMEOUT).
func resolveTimeout(flagTimeout string, cfg *config.Config) (time.Duration, error) {
	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil {
			return 0, fmt.Errorf("%w: --timeout %q is not a duration", ErrUsage, flagTimeout)
		}
		if d <= 0 {
			return 0, fmt.Errorf("%w: --timeout must be positive, got %s", ErrUsage, d)
		}
		return d, nil
	}
	return cfg.Render.TimeoutDuration()
}

// buildPageSettings maps config geometry onto page settings. Zero width or
// height keeps the label stock default.
func buildPageSettings(p config.PageConfig) *tcglabels.PageSettings {
	page := tcglabels.DefaultPageSettings()
	if p.Width > 0 {
		page.Width = p.Width
	}
	if p.Height > 0 {
		page.Height = p.Height
	}
	page.Margin = p.Margin
	page.PreferCSSPageSize = p.PreferCSSPageSize
	return page
}

func buildJob(flags *generateFlags, cfg *config.Config) tcglabels.Job {
	return tcglabels.Job{
		OrderFile:         flags.orderFile,
		ReturnAddressFile: cfg.Files.ReturnAddress,
		TemplateFile:      cfg.Files.Template,
		StylesheetFile:    cfg.Files.Stylesheet,
		OutputDir:         cfg.Output.Dir,
		FilenamePrefix:    cfg.Output.Prefix,
		DateFormat:        cfg.Output.DateFormat,
		Extension:         cfg.Output.Extension,
		KeepHTML:          flags.html,
	}
}

// withHint appends an actionable hint for the common setup mistakes.
func withHint(err error, job tcglabels.Job) error {
	var hint string
	switch {
	case errors.Is(err, tcglabels.ErrReturnAddress) && errors.Is(err, fs.ErrNotExist):
		hint = hints.ForReturnAddress(job.ReturnAddressFile)
	case (errors.Is(err, tcglabels.ErrReadTemplate) || errors.Is(err, tcglabels.ErrReadStylesheet)) &&
		errors.Is(err, fs.ErrNotExist):
		hint = hints.ForLabelAssets()
	case errors.Is(err, tcglabels.ErrParseOrders):
		hint = hints.ForOrderFile()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
