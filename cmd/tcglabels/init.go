package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-tcglabels/internal/assets"
)

// runInit writes the default label files, skipping any that exist.
func runInit(args []string, env *Environment) error {
	flags, dir, err := parseInitFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		printInitUsage(env.Stdout)
		return nil
	}
	if err != nil {
		return err
	}

	res, err := assets.Scaffold(dir, flags.dialect)
	if res != nil {
		for _, name := range res.Written {
			fmt.Fprintf(env.Stdout, "Created %s\n", name)
		}
		for _, name := range res.Skipped {
			fmt.Fprintf(env.Stdout, "Skipped %s (already exists)\n", name)
		}
	}
	if err != nil {
		return fmt.Errorf("init %s: %w", dir, err)
	}
	return nil
}
