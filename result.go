package utest

// Results accumulates the outcome of one run.
type Results struct {
	Contexts []ContextResult
}

// ContextResult is the outcome of one visited context, or of one requested
// name that resolved to nothing.
type ContextResult struct {
	Name     string
	Passed   bool
	NotFound bool
	Tests    []TestResult
}

// TestResult is the outcome of one executed test case.
type TestResult struct {
	Name     string
	Passed   bool
	Failures []Failure
}

// OK reports whether every visited context passed.
func (r Results) OK() bool {
	for _, c := range r.Contexts {
		if !c.Passed {
			return false
		}
	}
	return true
}

// ExitCode reduces the run to its process exit status: 0 when everything
// passed, 1 otherwise.
func (r Results) ExitCode() int {
	if r.OK() {
		return 0
	}
	return 1
}

// FailedContexts returns the names of the contexts that did not pass,
// unresolved requested names included.
func (r Results) FailedContexts() []string {
	var names []string
	for _, c := range r.Contexts {
		if !c.Passed {
			names = append(names, c.Name)
		}
	}
	return names
}

// TestCount returns the number of executed tests across all contexts.
func (r Results) TestCount() int {
	n := 0
	for _, c := range r.Contexts {
		n += len(c.Tests)
	}
	return n
}

// FailureCount returns the number of executed tests that failed.
func (r Results) FailureCount() int {
	n := 0
	for _, c := range r.Contexts {
		for _, t := range c.Tests {
			if !t.Passed {
				n++
			}
		}
	}
	return n
}
