// Package cli is a ready-made command-line front end for a program that
// embeds its own tests. The program's main delegates to Main:
//
//	func main() { os.Exit(cli.Main(os.Args)) }
//
// The resulting binary runs all registered contexts by default, a named
// ordered subset with --context, and lists what is registered with the
// list subcommand.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cc0/utest"
	"github.com/cc0/utest/console"
)

type params struct {
	contexts []string
	filters  utest.RegexFilters
	envFile  string
	noColor  bool
	debug    bool
	debugAll bool
}

// Main runs the front end over the default registry and returns the
// process exit code.
func Main(args []string) int {
	return Run(utest.Default(), args)
}

// Run runs the front end over the given registry and returns the process
// exit code: 0 when every executed context passed, 1 otherwise.
func Run(registry *utest.Registry, args []string) int {
	return run(registry, args, os.Stdout, os.Stderr)
}

func run(registry *utest.Registry, args []string, out, errOut io.Writer) int {
	var p params
	exitCode := 0
	program := "utest"
	if len(args) > 0 {
		program = filepath.Base(args[0])
	}

	rootCmd := &cobra.Command{
		Use:           program,
		Short:         "Run the tests embedded in this program",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			code, err := runTests(cmd, registry, &p, program)
			exitCode = code
			return err
		},
	}
	fl := rootCmd.Flags()
	fl.StringArrayVar(&p.contexts, "context", nil, "run only this context; repeatable, contexts run in the order given")
	fl.Var(&p.filters.MustMatch, "run", "regex pattern(s) selecting contexts to run")
	fl.Var(&p.filters.MustNotMatch, "skip", "regex pattern(s) selecting contexts not to run")
	fl.StringVar(&p.envFile, "env-file", "", "load environment variables from this file before running")
	fl.BoolVar(&p.noColor, "no-color", false, "disable colored output")
	fl.BoolVar(&p.debug, "debug", false, "show captured debug output for failed tests")
	fl.BoolVar(&p.debugAll, "debug-all", false, "show captured debug output for all tests")

	rootCmd.AddCommand(newListCommand(registry))

	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	if len(args) > 1 {
		rootCmd.SetArgs(args[1:])
	} else {
		rootCmd.SetArgs([]string{})
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return exitCode
}

func runTests(cmd *cobra.Command, registry *utest.Registry, p *params, program string) (int, error) {
	if p.envFile != "" {
		if err := godotenv.Load(p.envFile); err != nil {
			return 1, fmt.Errorf("cannot load environment file %s: %w", p.envFile, err)
		}
	}
	if p.noColor {
		color.NoColor = true
	}

	out := cmd.OutOrStdout()
	reporter := console.NewReporter(out)
	reporter.DebugOnFailure = p.debug || p.debugAll
	reporter.DebugOnSuccess = p.debugAll

	runner := utest.NewRunner(registry, reporter)
	if p.filters.IsDefined() {
		runner.SetFilter(p.filters.AsFilter)
	}
	if p.debugAll {
		runner.SetLogger(log.New(out, "harness ", log.Ltime))
	}

	var results utest.Results
	if len(p.contexts) > 0 {
		results = runner.RunNamed(p.contexts)
	} else {
		results = runner.RunAll()
	}

	fmt.Fprintln(out)
	console.PrintSummary(out, results, program)
	return results.ExitCode(), nil
}
