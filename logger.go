package utest

import (
	"fmt"
	"io"
	"sync"
	"time"
)

const timestampFormat = "15:04:05.000"

// Logger is the minimal debug-logging interface used by the harness.
type Logger interface {
	Printf(message string, args ...interface{})
}

type nullLogger struct{}

func (n nullLogger) Printf(message string, args ...interface{}) {}

// NullLogger returns a Logger that discards everything.
func NullLogger() Logger { return nullLogger{} }

// CapturedMessage is one buffered debug message.
type CapturedMessage struct {
	Time    time.Time
	Message string
}

// CapturedOutput is the buffered debug output of one test execution.
type CapturedOutput []CapturedMessage

// CapturingLogger buffers messages instead of writing them anywhere, so
// that debug output can be replayed only when wanted (for instance only
// for failed tests).
type CapturingLogger struct {
	output []CapturedMessage
	lock   sync.Mutex
}

func (l *CapturingLogger) Printf(message string, args ...interface{}) {
	l.lock.Lock()
	l.output = append(l.output, CapturedMessage{Time: time.Now(), Message: fmt.Sprintf(message, args...)})
	l.lock.Unlock()
}

// Output returns a copy of everything captured so far.
func (l *CapturingLogger) Output() CapturedOutput {
	l.lock.Lock()
	ret := append(CapturedOutput(nil), l.output...)
	l.lock.Unlock()
	return ret
}

// Dump writes the captured messages to dest, one line each, prefixed.
func (output CapturedOutput) Dump(dest io.Writer, prefix string) {
	for _, m := range output {
		fmt.Fprintf(dest, "%s[%s] %s\n", prefix, m.Time.Format(timestampFormat), m.Message)
	}
}
