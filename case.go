package utest

// Func is a test body. The runner invokes it with a fresh T; the body
// reports through the T's assertions and returns normally (or is exited
// early by a failed assertion).
type Func func(*T)

// Hook is an init or cleanup callable attached to a context. Returning
// false fails the hook's stage and therefore the context.
type Hook func() bool

// TestCase is one named, runnable verification unit. Test cases are
// created at registration, never mutated afterwards, and owned by their
// context.
type TestCase struct {
	name     string
	fn       Func
	mustPass bool
}

// Name returns the test's registered name.
func (tc TestCase) Name() string { return tc.name }

// MustPass reports whether a failure of this test aborts the remaining
// tests of its context.
func (tc TestCase) MustPass() bool { return tc.mustPass }

// displayPad is the fixed padding added beyond the longest test name when
// computing a context's display width.
const displayPad = 3

// Context is a named, ordered collection of test cases with optional init
// and cleanup hooks. Contexts are owned by their registry.
type Context struct {
	name          string
	init, cleanup Hook
	tests         []TestCase
	displayWidth  int
}

func newContext(name string) *Context {
	return &Context{name: name}
}

// Name returns the context's registry key.
func (c *Context) Name() string { return c.name }

// Tests returns the context's test cases in registration order.
func (c *Context) Tests() []TestCase {
	return append([]TestCase(nil), c.tests...)
}

// DisplayWidth is the column width that right-pads test names so that the
// pass/fail markers line up; it tracks the longest registered test name.
func (c *Context) DisplayWidth() int { return c.displayWidth }

func (c *Context) add(tc TestCase) {
	c.tests = append(c.tests, tc)
	if w := len(tc.name) + displayPad; w > c.displayWidth {
		c.displayWidth = w
	}
}
