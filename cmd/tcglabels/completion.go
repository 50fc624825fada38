package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"
)

// Shell represents a supported shell for completion generation.
type Shell string

// Supported shells for completion.
const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// ErrUnsupportedShell is returned when an unknown shell is requested.
var ErrUnsupportedShell = errors.New("unsupported shell")

// flagType represents the completion type for a flag.
type flagType int

const (
	flagString flagType = iota // default
	flagBool
	flagEnum // has predefined values
	flagFile // file with glob patterns
	flagDir  // directory
)

// flagDef describes a flag for completion purposes.
type flagDef struct {
	Long   string   // --order-file
	Short  string   // -o (empty if none)
	Type   flagType // completion type
	Desc   string   // help text
	Values []string // for enum flags
	Globs  []string // for file flags
}

// commandDef describes a command for completion.
type commandDef struct {
	Name  string
	Desc  string
	Flags []flagDef
	Args  []string // fixed positional values, e.g. shell names
	Dirs  bool     // takes a directory argument
}

// completionMeta holds completion-specific metadata for flags.
// Flag names, types, and descriptions come from the FlagSets.
type completionMeta struct {
	Values []string
	Globs  []string
	IsDir  bool
}

// flagCompletionMeta maps flag names to their completion metadata.
var flagCompletionMeta = map[string]completionMeta{
	"dialect":    {Values: []string{"jinja", "go"}},
	"order-file": {Globs: []string{"*.csv"}},
	"config":     {Globs: []string{"*.yaml", "*.yml"}},
}

// extractFlagsFromFlagSet extracts flag definitions from a pflag.FlagSet,
// enriched with flagCompletionMeta.
func extractFlagsFromFlagSet(fs *flag.FlagSet) []flagDef {
	var flags []flagDef

	fs.VisitAll(func(f *flag.Flag) {
		fd := flagDef{
			Long:  f.Name,
			Short: f.Shorthand,
			Desc:  f.Usage,
		}
		if f.Value.Type() == "bool" {
			fd.Type = flagBool
		}

		if meta, ok := flagCompletionMeta[f.Name]; ok {
			switch {
			case len(meta.Values) > 0:
				fd.Type = flagEnum
				fd.Values = meta.Values
			case len(meta.Globs) > 0:
				fd.Type = flagFile
				fd.Globs = meta.Globs
			case meta.IsDir:
				fd.Type = flagDir
			}
		}

		flags = append(flags, fd)
	})

	return flags
}

// getCommands returns the command registry for completion.
// Flags are extracted from the real FlagSets.
func getCommands() []commandDef {
	return []commandDef{
		{Name: "generate", Desc: "Print shipping labels for an order export", Flags: extractFlagsFromFlagSet(newGenerateFlagSet(&generateFlags{}))},
		{Name: "init", Desc: "Write the default label files", Flags: extractFlagsFromFlagSet(newInitFlagSet(&initFlags{})), Dirs: true},
		{Name: "config", Desc: "Show the effective configuration", Flags: extractFlagsFromFlagSet(newConfigFlagSet(&configFlags{}))},
		{Name: "doctor", Desc: "Check Chrome and the label files", Flags: extractFlagsFromFlagSet(newDoctorFlagSet(&doctorFlags{}))},
		{Name: "completion", Desc: "Generate shell completion script", Args: []string{string(ShellBash), string(ShellZsh), string(ShellFish)}},
		{Name: "version", Desc: "Show version information"},
		{Name: "help", Desc: "Show help for a command"},
	}
}

// GenerateCompletion writes shell completion script to w.
func GenerateCompletion(w io.Writer, shell Shell) error {
	switch shell {
	case ShellBash:
		return generateBash(w)
	case ShellZsh:
		return generateZsh(w)
	case ShellFish:
		return generateFish(w)
	default:
		return fmt.Errorf("%w: %q (supported: bash, zsh, fish)", ErrUnsupportedShell, shell)
	}
}

// runCompletion handles the completion command.
func runCompletion(args []string, env *Environment) error {
	if len(args) == 0 {
		printCompletionUsage(env.Stdout)
		return nil
	}
	return GenerateCompletion(env.Stdout, Shell(args[0]))
}

// printCompletionUsage prints help for the completion command.
func printCompletionUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tcglabels completion <shell>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Generate shell completion script for the specified shell.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Supported shells:")
	fmt.Fprintln(w, "  bash        Bash completion script")
	fmt.Fprintln(w, "  zsh         Zsh completion script")
	fmt.Fprintln(w, "  fish        Fish completion script")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Installation:")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Bash:")
	fmt.Fprintln(w, "    # Add to ~/.bashrc:")
	fmt.Fprintln(w, "    eval \"$(tcglabels completion bash)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Zsh:")
	fmt.Fprintln(w, "    # Add to ~/.zshrc (after compinit):")
	fmt.Fprintln(w, "    eval \"$(tcglabels completion zsh)\"")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Fish:")
	fmt.Fprintln(w, "    tcglabels completion fish > ~/.config/fish/completions/tcglabels.fish")
}

// flagWords lists "--long" and "-s" spellings of flags.
func flagWords(flags []flagDef) string {
	words := make([]string, 0, len(flags)*2)
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

func commandNames(cmds []commandDef) string {
	names := make([]string, len(cmds))
	for i, c := range cmds {
		names[i] = c.Name
	}
	return strings.Join(names, " ")
}

// generateBash writes a bash completion function. The command is the first
// word when it names a subcommand; otherwise generate is assumed.
func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for tcglabels\n")
	b.WriteString("_tcglabels() {\n")
	b.WriteString("    local cur prev cmd\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n")
	b.WriteString("    cmd=generate\n")
	fmt.Fprintf(&b, "    case \"${COMP_WORDS[1]}\" in\n        %s) cmd=\"${COMP_WORDS[1]}\" ;;\n    esac\n\n",
		strings.ReplaceAll(commandNames(cmds), " ", "|"))

	// Flag values.
	b.WriteString("    case \"$prev\" in\n")
	seen := map[string]bool{}
	for _, c := range cmds {
		for _, f := range c.Flags {
			if seen[f.Long] || (f.Type != flagEnum && f.Type != flagFile && f.Type != flagDir) {
				continue
			}
			seen[f.Long] = true
			pattern := "--" + f.Long
			if f.Short != "" {
				pattern += "|-" + f.Short
			}
			fmt.Fprintf(&b, "        %s)\n            COMPREPLY=(", pattern)
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, " $(compgen -W \"%s\" -- \"$cur\")", strings.Join(f.Values, " "))
			case flagFile:
				for _, g := range f.Globs {
					fmt.Fprintf(&b, " $(compgen -f -X '!%s' -- \"$cur\")", g)
				}
				b.WriteString(" $(compgen -d -- \"$cur\")")
			case flagDir:
				b.WriteString(" $(compgen -d -- \"$cur\")")
			}
			b.WriteString(" )\n            return ;;\n")
		}
	}
	b.WriteString("    esac\n\n")

	fmt.Fprintf(&b, "    if [[ $COMP_CWORD -eq 1 && \"$cur\" != -* ]]; then\n        COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") )\n        return\n    fi\n\n",
		commandNames(cmds))

	b.WriteString("    case \"$cmd\" in\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        %s)\n", c.Name)
		switch {
		case len(c.Args) > 0:
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") ) ;;\n", strings.Join(c.Args, " "))
		case c.Dirs:
			fmt.Fprintf(&b, "            if [[ \"$cur\" == -* ]]; then COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") ); else COMPREPLY=( $(compgen -d -- \"$cur\") ); fi ;;\n", flagWords(c.Flags))
		case c.Name == "help":
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") ) ;;\n", commandNames(cmds))
		default:
			fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"$cur\") ) ;;\n", flagWords(c.Flags))
		}
	}
	b.WriteString("    esac\n")
	b.WriteString("}\n")
	b.WriteString("complete -F _tcglabels tcglabels\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// generateZsh writes a zsh script that loads the bash completion through
// bashcompinit.
func generateZsh(w io.Writer) error {
	if _, err := io.WriteString(w, "#compdef tcglabels\n# zsh completion for tcglabels\nautoload -U +X bashcompinit && bashcompinit\n\n"); err != nil {
		return err
	}
	return generateBash(w)
}

// generateFish writes fish completions.
func generateFish(w io.Writer) error {
	cmds := getCommands()
	names := commandNames(cmds)
	var b strings.Builder

	b.WriteString("# fish completion for tcglabels\n")
	b.WriteString("complete -c tcglabels -f\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c tcglabels -n '__fish_use_subcommand' -a %s -d '%s'\n", c.Name, fishQuote(c.Desc))
	}

	for _, c := range cmds {
		cond := fmt.Sprintf("__fish_seen_subcommand_from %s", c.Name)
		if c.Name == "generate" {
			// Flags without a subcommand run generate.
			cond = fmt.Sprintf("not __fish_seen_subcommand_from %s", strings.ReplaceAll(names, "generate ", ""))
		}
		for _, f := range c.Flags {
			fmt.Fprintf(&b, "complete -c tcglabels -n '%s' -l %s", cond, f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			switch f.Type {
			case flagEnum:
				fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagFile:
				b.WriteString(" -r -F")
			case flagDir:
				b.WriteString(" -x -a '(__fish_complete_directories)'")
			case flagString:
				b.WriteString(" -x")
			}
			fmt.Fprintf(&b, " -d '%s'\n", fishQuote(f.Desc))
		}
		if len(c.Args) > 0 {
			fmt.Fprintf(&b, "complete -c tcglabels -n '%s' -a '%s'\n", cond, strings.Join(c.Args, " "))
		}
		if c.Dirs {
			fmt.Fprintf(&b, "complete -c tcglabels -n '%s' -a '(__fish_complete_directories)'\n", cond)
		}
	}
	fmt.Fprintf(&b, "complete -c tcglabels -n '__fish_seen_subcommand_from help' -a '%s'\n", names)

	_, err := io.WriteString(w, b.String())
	return err
}

// fishQuote escapes single quotes for a fish single-quoted string.
func fishQuote(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), "'", `\'`)
}
