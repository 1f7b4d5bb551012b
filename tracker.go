package utest

import (
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"

	"github.com/google/go-cmp/cmp"
)

// Failure describes one failed check inside a test body.
type Failure struct {
	Index    uint64 // 1-based position among the test's assertions
	Location string // file:line of the assertion call, empty for panics
	Text     string // rendering of what went wrong
	Diff     string // optional structural diff, set by Equal
}

func (f Failure) String() string {
	if f.Location == "" {
		return fmt.Sprintf("#%d: %s", f.Index, f.Text)
	}
	return fmt.Sprintf("#%d @%s: %s", f.Index, f.Location, f.Text)
}

// failNow is the sentinel panic value that aborts a test body after a
// failed assertion. The runner absorbs it; it never escapes a test.
type failNow struct{}

// T tracks the assertions of one executing test case. The runner creates a
// fresh T for every execution and discards it afterwards; a T is never
// shared between test cases.
type T struct {
	assertCount uint64
	failed      bool
	failures    []Failure
	debug       *CapturingLogger
}

func newT() *T {
	return &T{debug: &CapturingLogger{}}
}

// AssertCount returns the number of assertions evaluated so far, counting
// failed ones.
func (t *T) AssertCount() uint64 { return t.assertCount }

// Succeeded reports whether no assertion has failed.
func (t *T) Succeeded() bool { return !t.failed }

// Failed reports whether any assertion has failed.
func (t *T) Failed() bool { return !t.Succeeded() }

// Fail marks the test as failed without recording a diagnostic and without
// stopping the body. Idempotent.
func (t *T) Fail() { t.failed = true }

// Debug writes a message to the test's captured debug output. The console
// front end can show captured output for failed tests or for all tests.
func (t *T) Debug(format string, args ...interface{}) {
	t.debug.Printf(format, args...)
}

// Assert evaluates one assertion. expr is a textual rendering of the
// checked expression, used only for the diagnostic. If ok is false the
// assertion is recorded as failed and the test body is exited immediately;
// the remaining tests of the context are unaffected unless the test is
// must-pass.
func (t *T) Assert(ok bool, expr string) {
	t.check(ok, fmt.Sprintf("<<%s>> is false", expr), "")
}

// True asserts that cond holds.
func (t *T) True(cond bool) {
	t.check(cond, "<<condition>> is false", "")
}

// Equal asserts that got and want are structurally equal, attaching a diff
// to the diagnostic when they are not.
func (t *T) Equal(got, want interface{}) {
	eq := cmp.Equal(got, want)
	var diff string
	if !eq {
		diff = cmp.Diff(want, got)
	}
	t.check(eq, fmt.Sprintf("<<%v == %v>> is false", got, want), diff)
}

// NotEqual asserts that got and want are not structurally equal.
func (t *T) NotEqual(got, want interface{}) {
	t.check(!cmp.Equal(got, want), fmt.Sprintf("<<%v != %v>> is false", got, want), "")
}

// Nil asserts that v is nil, treating typed nil pointers, slices, maps,
// channels and funcs as nil.
func (t *T) Nil(v interface{}) {
	t.check(isNil(v), fmt.Sprintf("<<%v == nil>> is false", v), "")
}

// NotNil asserts that v is not nil.
func (t *T) NotNil(v interface{}) {
	t.check(!isNil(v), fmt.Sprintf("<<%v != nil>> is false", v), "")
}

// check is the single primitive behind every assertion: count, and on
// failure record a diagnostic and leave the test body.
func (t *T) check(ok bool, text, diff string) {
	t.assertCount++
	if ok {
		return
	}
	t.failed = true
	t.failures = append(t.failures, Failure{
		Index:    t.assertCount,
		Location: callerLocation(),
		Text:     text,
		Diff:     diff,
	})
	panic(failNow{})
}

// recordPanic converts an unexpected panic in a test body into a failure.
func (t *T) recordPanic(recovered interface{}) {
	t.failed = true
	t.failures = append(t.failures, Failure{
		Index: t.assertCount + 1,
		Text:  fmt.Sprintf("unexpected panic: %+v", recovered),
	})
}

// callerLocation resolves the file:line of the assertion call site, two
// frames above check.
func callerLocation() string {
	_, file, line, ok := runtime.Caller(3)
	if !ok {
		return ""
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
