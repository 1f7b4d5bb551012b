package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cc0/utest"
)

func plainTranscript(t *testing.T, fn func(rep *Reporter) utest.Results) (utest.Results, []string) {
	t.Helper()
	restore := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = restore })

	var buf bytes.Buffer
	results := fn(NewReporter(&buf))
	return results, strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestTranscriptOfFailingMustPassContext(t *testing.T) {
	reg := utest.NewRegistry()
	reg.Add(func(ut *utest.T) { ut.True(true) }, "add_passes", "Math", false)
	reg.Add(func(ut *utest.T) { ut.Assert(false, "forced") }, "sub_fails_hard", "Math", true)
	reg.Add(func(ut *utest.T) { ut.True(true) }, "mul_never_runs", "Math", false)

	results, lines := plainTranscript(t, func(rep *Reporter) utest.Results {
		return utest.NewRunner(reg, rep).RunAll()
	})
	assert.Equal(t, 1, results.ExitCode())

	require.Len(t, lines, 6)
	assert.Equal(t, "Math", lines[0])
	assert.Equal(t, "  add passes.......ok", lines[1])
	assert.Equal(t, "  sub fails hard...FAIL", lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "    #1 @console_test.go:"), "got %q", lines[3])
	assert.True(t, strings.HasSuffix(lines[3], "<<forced>> is false"), "got %q", lines[3])
	assert.Equal(t, "    must-pass test failed, aborting context", lines[4])
	assert.Equal(t, "[fail]", lines[5])
}

func TestTranscriptMarksPassingContext(t *testing.T) {
	reg := utest.NewRegistry()
	reg.Add(func(ut *utest.T) { ut.True(true) }, "works", "Basics", false)

	_, lines := plainTranscript(t, func(rep *Reporter) utest.Results {
		return utest.NewRunner(reg, rep).RunAll()
	})
	assert.Equal(t, []string{
		"Basics",
		"  works...ok",
		"[ok]",
	}, lines)
}

func TestTranscriptReportsUnresolvedContextNames(t *testing.T) {
	reg := utest.NewRegistry()
	reg.Add(func(ut *utest.T) { ut.True(true) }, "works", "Basics", false)

	results, lines := plainTranscript(t, func(rep *Reporter) utest.Results {
		return utest.NewRunner(reg, rep).RunNamed([]string{"missing", "Basics"})
	})
	assert.Equal(t, 1, results.ExitCode())
	assert.Equal(t, "missing...not found", lines[0])
	assert.Equal(t, "Basics", lines[1])
}

func TestDebugOutputShownOnlyWhenRequested(t *testing.T) {
	reg := utest.NewRegistry()
	reg.Add(func(ut *utest.T) {
		ut.Debug("inspecting %s", "state")
		ut.Assert(false, "forced")
	}, "broken", "Debugging", false)

	_, quiet := plainTranscript(t, func(rep *Reporter) utest.Results {
		return utest.NewRunner(reg, rep).RunAll()
	})
	assert.NotContains(t, strings.Join(quiet, "\n"), "DEBUG")

	_, chatty := plainTranscript(t, func(rep *Reporter) utest.Results {
		rep.DebugOnFailure = true
		return utest.NewRunner(reg, rep).RunAll()
	})
	joined := strings.Join(chatty, "\n")
	assert.Contains(t, joined, "DEBUG")
	assert.Contains(t, joined, "inspecting state")
}

func TestDiffLinesAreIndentedUnderTheFailure(t *testing.T) {
	type pair struct{ A, B int }
	reg := utest.NewRegistry()
	reg.Add(func(ut *utest.T) { ut.Equal(pair{1, 2}, pair{1, 3}) }, "compares", "Diffs", false)

	_, lines := plainTranscript(t, func(rep *Reporter) utest.Results {
		return utest.NewRunner(reg, rep).RunAll()
	})
	var diffLines int
	for _, line := range lines {
		if strings.HasPrefix(line, "      ") {
			diffLines++
		}
	}
	assert.Greater(t, diffLines, 0, "diff must appear indented under the failure")
}
