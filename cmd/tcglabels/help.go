package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tcglabels [command] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate    Print shipping labels for an order export (default)")
	fmt.Fprintln(w, "  init        Write the default label files into a directory")
	fmt.Fprintln(w, "  config      Show the effective configuration as YAML")
	fmt.Fprintln(w, "  doctor      Check Chrome and the label files")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'tcglabels help <command>' for details on a specific command.")
}

// printGenerateUsage prints usage for the generate command.
func printGenerateUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tcglabels [generate] --order-file <orders.csv> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print one 4x6 shipping label per order row into tcg_labels_MM-DD-YYYY.pdf.")
	fmt.Fprintln(w, "Reads return_address.txt, label_template.html and style.css from the")
	fmt.Fprintln(w, "working directory unless the config says otherwise. An existing PDF is")
	fmt.Fprintln(w, "never overwritten: the next free name \"<name> (n).pdf\" is used.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --order-file <path>   CSV order export (required)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF rendering timeout (default 30s)")
	fmt.Fprintln(w, "      --html                Also write the label HTML next to the PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TCGLABELS_CONFIG          Config file name or path")
	fmt.Fprintln(w, "  TCGLABELS_TIMEOUT         Rendering timeout")
	fmt.Fprintln(w, "  TCGLABELS_OUTPUT_DIR      Output directory")
	fmt.Fprintln(w, "  ROD_BROWSER_BIN           Chrome/Chromium binary to use")
	fmt.Fprintln(w, "  ROD_NO_SANDBOX=1          Run Chrome without its sandbox (Docker/CI)")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tcglabels init [dir] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write return_address.txt, label_template.html and style.css into dir")
	fmt.Fprintln(w, "(default: working directory). Existing files are never overwritten.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -d, --dialect <s>         Template dialect: jinja (default), go")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tcglabels config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration generate would use, after environment overrides.")
	fmt.Fprintln(w, "The output is valid input for --config.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tcglabels doctor [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that Chrome is available and the label files are in place.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --json                Print results as JSON")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: tcglabels version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: tcglabels help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
