package main

import (
	"context"
	"fmt"
	"io"
)

// commands lists the subcommand names. Anything else runs generate.
var commands = map[string]bool{
	"generate":   true,
	"init":       true,
	"config":     true,
	"doctor":     true,
	"completion": true,
	"version":    true,
	"help":       true,
}

// isCommand reports whether arg names a subcommand.
func isCommand(arg string) bool {
	return commands[arg]
}

// runMain dispatches args (without the program name) and returns the exit code.
// Errors are printed to env.Stderr.
func runMain(ctx context.Context, args []string, env *Environment) int {
	cmd, rest := "generate", args
	if len(args) > 0 && isCommand(args[0]) {
		cmd, rest = args[0], args[1:]
	}

	var err error
	switch cmd {
	case "generate":
		err = runGenerate(ctx, rest, env)
	case "init":
		err = runInit(rest, env)
	case "config":
		err = runConfigCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	case "version":
		printVersion(env.Stdout)
	case "help":
		runHelp(rest, env)
	}

	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
		code := exitCodeFor(err)
		if code == ExitUsage && cmd == "generate" && len(args) == 0 {
			fmt.Fprintln(env.Stderr)
			printGenerateUsage(env.Stderr)
		}
		return code
	}
	return ExitSuccess
}

// printVersion prints the build version.
func printVersion(w io.Writer) {
	fmt.Fprintf(w, "tcglabels %s\n", Version)
}
