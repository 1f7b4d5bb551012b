// Package utest is a minimal harness for embedding unit tests directly in a
// program, without depending on the standard go test machinery.
//
// The general model is:
//
// 1. Test cases are registered under named contexts, normally from
// package-level initializer expressions so that registration is complete
// before main starts:
//
//	var _ = utest.Add(func(t *utest.T) {
//	    t.Equal(2+2, 4)
//	}, "add_small_numbers", "Math", false)
//
// 2. A context groups its tests in registration order and may carry one
// init hook run before its tests and one cleanup hook that runs after them
// on every path.
//
// 3. A Runner walks the registry (or a requested subset of it), drives each
// context, and reports every step to a Reporter. The console subpackage
// provides the standard line-oriented Reporter; the cli subpackage provides
// a ready-made command-line front end around both.
//
// A failed assertion stops the test body it occurs in and nothing else;
// a failed must-pass test stops the remaining tests of its own context and
// nothing else. The aggregate outcome of a run is reduced to a 0/1 exit
// code.
package utest
