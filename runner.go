package utest

import "runtime/debug"

// Runner executes the contexts of one registry and reports every step. A
// Runner is synchronous and single-threaded; it assumes the registry is
// fully populated before RunAll or RunNamed is called.
type Runner struct {
	registry *Registry
	reporter Reporter
	filter   Filter
	logger   Logger
}

// NewRunner returns a Runner over the given registry reporting to the
// given reporter. A nil registry means the default registry, a nil
// reporter discards the transcript.
func NewRunner(registry *Registry, reporter Reporter) *Runner {
	if registry == nil {
		registry = defaultRegistry
	}
	if reporter == nil {
		reporter = NullReporter()
	}
	return &Runner{
		registry: registry,
		reporter: reporter,
		logger:   NullLogger(),
	}
}

// SetFilter restricts subsequent runs to contexts the filter accepts.
// Filtered-out contexts are reported skipped and do not affect the
// aggregate status.
func (r *Runner) SetFilter(f Filter) { r.filter = f }

// SetLogger sets the harness's own debug logger, NullLogger by default.
func (r *Runner) SetLogger(l Logger) {
	if l == nil {
		l = NullLogger()
	}
	r.logger = l
}

// RunAll executes every context in registry order. The aggregate fails if
// any context fails, but every context is always visited.
func (r *Runner) RunAll() Results {
	var results Results
	for _, c := range r.registry.contexts {
		if r.filter != nil && !r.filter(c.name) {
			r.reporter.ContextSkipped(c.name)
			continue
		}
		results.Contexts = append(results.Contexts, r.runContext(c))
	}
	return results
}

// RunNamed executes the named contexts in the order requested, not in
// registry order. A name that resolves to nothing is reported not found
// and fails the aggregate, but never stops the remaining names.
func (r *Runner) RunNamed(names []string) Results {
	var results Results
	for _, name := range names {
		if r.filter != nil && !r.filter(name) {
			r.reporter.ContextSkipped(name)
			continue
		}
		c := r.registry.find(name)
		if c == nil {
			r.logger.Printf("requested context %q is not registered", name)
			r.reporter.ContextNotFound(name)
			results.Contexts = append(results.Contexts, ContextResult{Name: name, NotFound: true})
			continue
		}
		results.Contexts = append(results.Contexts, r.runContext(c))
	}
	return results
}

// runContext drives one context: init, tests, cleanup. Tests are skipped
// when init fails; cleanup runs on every path.
func (r *Runner) runContext(c *Context) ContextResult {
	r.reporter.ContextStarted(c.name)
	result := ContextResult{Name: c.name, Passed: true}

	if c.init != nil && !c.init() {
		r.logger.Printf("context %q: init hook failed", c.name)
		result.Passed = false
	} else {
		tests, ok := r.runTests(c)
		result.Tests = tests
		if !ok {
			result.Passed = false
		}
	}

	if c.cleanup != nil && !c.cleanup() {
		r.logger.Printf("context %q: cleanup hook failed", c.name)
		result.Passed = false
	}

	r.reporter.ContextFinished(c.name, result.Passed)
	return result
}

// runTests executes a context's tests in order. A failed must-pass test
// aborts the remaining tests of this context only.
func (r *Runner) runTests(c *Context) ([]TestResult, bool) {
	ok := true
	var results []TestResult
	for _, tc := range c.tests {
		r.reporter.TestStarted(tc.name, c.displayWidth)
		t := newT()
		r.invoke(tc, t)

		outcome := TestOutcome{
			Passed:   t.Succeeded(),
			Failures: t.failures,
			Debug:    t.debug.Output(),
		}
		results = append(results, TestResult{
			Name:     tc.name,
			Passed:   outcome.Passed,
			Failures: outcome.Failures,
		})
		if !outcome.Passed {
			ok = false
			outcome.Aborted = tc.mustPass
		}
		r.reporter.TestFinished(tc.name, outcome)
		if outcome.Aborted {
			break
		}
	}
	return results, ok
}

// RunAll executes every context of the default registry, reporting to
// reporter (which may be nil), and returns the process exit status: 0 when
// everything passed, 1 otherwise.
func RunAll(reporter Reporter) int {
	return NewRunner(nil, reporter).RunAll().ExitCode()
}

// RunNamed executes the named contexts of the default registry in the
// order given and returns the process exit status. Unresolved names count
// as failures.
func RunNamed(names []string, reporter Reporter) int {
	return NewRunner(nil, reporter).RunNamed(names).ExitCode()
}

// invoke runs one test body, absorbing the assertion early-exit sentinel
// and converting any other panic into that test's failure.
func (r *Runner) invoke(tc TestCase, t *T) {
	defer func() {
		recovered := recover()
		if recovered == nil {
			return
		}
		if _, ok := recovered.(failNow); ok {
			return
		}
		t.recordPanic(recovered)
		t.debug.Printf("panic stack:\n%s", debug.Stack())
	}()
	tc.fn(t)
}
