package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/alessio/shellescape"

	"github.com/cc0/utest"
)

// PrintSummary writes the end-of-run counts and, when contexts failed, a
// copy-pasteable command line that re-runs just those contexts. program is
// the invoking binary, normally os.Args[0].
func PrintSummary(out io.Writer, results utest.Results, program string) {
	fmt.Fprintf(out, "Ran %d test(s) in %d context(s), %d failure(s)\n",
		results.TestCount(), len(results.Contexts), results.FailureCount())

	failed := results.FailedContexts()
	if len(failed) == 0 {
		return
	}
	var cmd commandBuilder
	cmd.add(program)
	for _, name := range failed {
		cmd.add("--context", name)
	}
	fmt.Fprintf(out, "Failed contexts: %s\n", strings.Join(failed, ", "))
	fmt.Fprintf(out, "To re-run them: %s\n", cmd)
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
