// Package console renders a run as the standard human-readable transcript:
// one line per context, one aligned line per test, diagnostics indented
// under the tests they belong to.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/cc0/utest"
)

// fill pads test names out to the context's display width so the
// pass/fail markers line up in a column.
const fill = "."

// Reporter writes the transcript of a run to Out in execution order.
type Reporter struct {
	Out io.Writer

	// DebugOnFailure and DebugOnSuccess control whether a test's captured
	// debug output is shown after its result line.
	DebugOnFailure bool
	DebugOnSuccess bool
}

// NewReporter returns a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{Out: out}
}

func (r *Reporter) ContextStarted(name string) {
	fmt.Fprintf(r.Out, "%s\n", name)
}

func (r *Reporter) ContextSkipped(name string) {
	fmt.Fprintf(r.Out, "%s...skipped\n", name)
}

func (r *Reporter) TestStarted(name string, width int) {
	rendered := displayName(name)
	if pad := width - len(rendered); pad > 0 {
		rendered += strings.Repeat(fill, pad)
	}
	fmt.Fprintf(r.Out, "  %s", rendered)
}

func (r *Reporter) TestFinished(name string, outcome utest.TestOutcome) {
	if outcome.Passed {
		fmt.Fprintf(r.Out, "%s\n", color.GreenString("ok"))
	} else {
		fmt.Fprintf(r.Out, "%s\n", color.RedString("FAIL"))
		for _, f := range outcome.Failures {
			fmt.Fprintf(r.Out, "    %s\n", f.String())
			if f.Diff != "" {
				for _, line := range strings.Split(strings.TrimRight(f.Diff, "\n"), "\n") {
					fmt.Fprintf(r.Out, "      %s\n", line)
				}
			}
		}
		if outcome.Aborted {
			fmt.Fprintf(r.Out, "    %s\n", color.RedString("must-pass test failed, aborting context"))
		}
	}
	if len(outcome.Debug) > 0 &&
		((!outcome.Passed && r.DebugOnFailure) || (outcome.Passed && r.DebugOnSuccess)) {
		outcome.Debug.Dump(r.Out, "      DEBUG ")
	}
}

func (r *Reporter) ContextFinished(name string, passed bool) {
	if passed {
		fmt.Fprintf(r.Out, "%s\n", color.GreenString("[ok]"))
	} else {
		fmt.Fprintf(r.Out, "%s\n", color.RedString("[fail]"))
	}
}

func (r *Reporter) ContextNotFound(name string) {
	fmt.Fprintf(r.Out, "%s...not found\n", name)
}

// displayName shows word separators as spaces, mirroring how names are
// measured for alignment.
func displayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
