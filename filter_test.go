package utest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSet(t *testing.T, l *RegexList, patterns ...string) {
	t.Helper()
	for _, p := range patterns {
		require.NoError(t, l.Set(p))
	}
}

func TestRegexListRejectsInvalidPatterns(t *testing.T) {
	var l RegexList
	assert.Error(t, l.Set("("))
	assert.False(t, l.IsDefined())
}

func TestRegexListMatchesAnyPattern(t *testing.T) {
	var l RegexList
	mustSet(t, &l, "^Math$", "^Str")
	assert.True(t, l.AnyMatch("Math"))
	assert.True(t, l.AnyMatch("Strings"))
	assert.False(t, l.AnyMatch("Network"))
	assert.Equal(t, `"^Math$" or "^Str"`, l.String())
}

func TestRegexFiltersCombineMustAndMustNot(t *testing.T) {
	var f RegexFilters
	assert.True(t, f.AsFilter("anything"), "no patterns means everything runs")
	assert.False(t, f.IsDefined())

	mustSet(t, &f.MustMatch, "^M")
	mustSet(t, &f.MustNotMatch, "Slow$")
	assert.True(t, f.IsDefined())
	assert.True(t, f.AsFilter("Math"))
	assert.False(t, f.AsFilter("Strings"), "fails the must-match side")
	assert.False(t, f.AsFilter("MathSlow"), "fails the must-not-match side")
}
