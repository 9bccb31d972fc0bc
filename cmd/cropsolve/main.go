// Command cropsolve plans crop allocations from the terminal: solve a
// scenario folder or problem document, validate inputs, list scenarios,
// write starter templates, or run a built-in sample.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cropsolve/cropsolve/solve"
)

// Exit codes: 0 success, 1 failure, 2 bad invocation or invalid problem.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// usageError marks a bad invocation; main turns it into exit code 2.
type usageError string

func (e usageError) Error() string { return string(e) }

// command describes one CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	run   func(args []string) error
}

var commands = []command{
	{
		name:  "solve",
		short: "Solve a scenario folder or problem document",
		usage: "cropsolve solve [flags] <scenario-dir | problem.json>",
		run:   runSolve,
	},
	{
		name:  "validate",
		short: "Check a problem without solving it",
		usage: "cropsolve validate <scenario-dir | problem.json>",
		run:   runValidate,
	},
	{
		name:  "scenarios",
		short: "List complete scenario folders under a root",
		usage: "cropsolve scenarios [--root dir]",
		run:   runScenarios,
	},
	{
		name:  "template",
		short: "Write starter input templates",
		usage: "cropsolve template [dir]",
		run:   runTemplate,
	},
	{
		name:  "demo",
		short: "Solve a built-in sample problem",
		usage: "cropsolve demo [flags] [basic | intermediate | advanced]",
		run:   runDemo,
	},
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, "cropsolve - agricultural land allocation planner\n\n")
	fmt.Fprintf(w, "Usage:\n  cropsolve <command> [arguments]\n\n")
	fmt.Fprintf(w, "Commands:\n")
	for _, cmd := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.name, cmd.short)
	}
	fmt.Fprintf(w, "\nRun 'cropsolve help <command>' for details on a specific command.\n")
}

func printCommandHelp(w io.Writer, name string) {
	for _, cmd := range commands {
		if cmd.name == name {
			fmt.Fprintf(w, "Usage: %s\n\n%s\n", cmd.usage, cmd.short)

			return
		}
	}
	fmt.Fprintf(w, "cropsolve: unknown command %q\n\nRun 'cropsolve help' for usage.\n", name)
}

func dispatch(args []string) error {
	if len(args) == 0 || args[0] == "--help" || args[0] == "-h" {
		printUsage(os.Stdout)

		return nil
	}
	if args[0] == "help" {
		if len(args) >= 2 {
			printCommandHelp(os.Stdout, args[1])
		} else {
			printUsage(os.Stdout)
		}

		return nil
	}

	for _, cmd := range commands {
		if cmd.name == args[0] {
			return cmd.run(args[1:])
		}
	}

	return usageError(fmt.Sprintf("unknown command %q, run 'cropsolve help' for usage", args[0]))
}

// exitCode classifies an error: bad invocations and invalid problems are
// caller mistakes, everything else is a failure.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, new(usageError)):
		return exitUsage
	case errors.Is(err, solve.ErrInvalidProblem):
		return exitUsage
	default:
		return exitFailure
	}
}

func main() {
	err := dispatch(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "cropsolve:", err)
	}
	os.Exit(exitCode(err))
}
