// Command volt runs a Volt source file (spec §6): a single positional
// script-path argument, stdin/stdout wired through for `ask`/`show`, and an
// optional --seed flag (or VOLT_SEED env var) for reproducible `random`.
// Grounded on the teacher's main.go (a thin command dispatcher over the
// Interpreter), generalized from the teacher's hand-rolled os.Args parsing
// to github.com/urfave/cli/v2 (sourced from the wider example pack) and
// colored diagnostics via the teacher's own github.com/fatih/color.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/voltlang/volt/internal/interp"
	"github.com/voltlang/volt/internal/parser"
	"github.com/voltlang/volt/internal/stdlib"
)

func main() {
	app := &cli.App{
		Name:      "volt",
		Usage:     "run a Volt script",
		UsageText: "volt [--seed N] <script.volt>",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed the random module for reproducible output",
				EnvVars: []string{"VOLT_SEED"},
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("expected exactly one script path argument", 64)
	}
	path := c.Args().First()

	src, err := os.ReadFile(path)
	if err != nil {
		return cli.Exit(fmt.Sprintf("cannot read %s: %s", path, err), 66)
	}

	prog, err := parser.Parse(string(src))
	if err != nil {
		printDiagnostic(err)
		os.Exit(65)
	}

	it := interp.New(os.Stdout, os.Stdin, c.Int64("seed"), c.IsSet("seed"))
	it.RegisterModule("math", stdlib.Math())
	it.RegisterModule("random", stdlib.Random(it.Rand))
	it.RegisterModule("time", stdlib.Time())
	it.RegisterModule("file", stdlib.File())

	if err := it.Run(prog); err != nil {
		printDiagnostic(err)
		os.Exit(70)
	}
	return nil
}

func printDiagnostic(err error) {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "error: ")
	fmt.Fprintln(os.Stderr, err)
}

func exitCodeFor(err error) int {
	if ee, ok := err.(cli.ExitCoder); ok {
		return ee.ExitCode()
	}
	return 1
}
