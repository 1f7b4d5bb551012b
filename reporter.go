package utest

// TestOutcome is what a Reporter learns about one finished test.
type TestOutcome struct {
	Passed   bool
	Failures []Failure
	Aborted  bool // a must-pass failure stopped the rest of the context
	Debug    CapturedOutput
}

// Reporter receives the events of a run in execution order. Implementations
// produce the run's transcript; the runner itself writes nothing.
type Reporter interface {
	ContextStarted(name string)
	ContextSkipped(name string)
	TestStarted(name string, width int)
	TestFinished(name string, outcome TestOutcome)
	ContextFinished(name string, passed bool)
	ContextNotFound(name string)
}

type nullReporter struct{}

func (n nullReporter) ContextStarted(string)            {}
func (n nullReporter) ContextSkipped(string)            {}
func (n nullReporter) TestStarted(string, int)          {}
func (n nullReporter) TestFinished(string, TestOutcome) {}
func (n nullReporter) ContextFinished(string, bool)     {}
func (n nullReporter) ContextNotFound(string)           {}

// NullReporter returns a Reporter that ignores everything.
func NullReporter() Reporter { return nullReporter{} }
