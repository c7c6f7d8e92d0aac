package alog

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test returns a logger tuned for unit testing.
// It logs human-readable text starting at LevelDebug into memory and
// exposes assertions on the logged lines. The assertions follow stretchr/testify:
// each one returns whether it passed, so further checks can depend on it.
func Test(t *testing.T) *TestLogger {
	if t == nil {
		panic("t is nil")
	}

	buf := &testBuffer{}

	logger := slog.New(newHandler(
		WithLevel(LevelDebug),
		WithHandler(slog.NewTextHandler(buf, getDebugHandlerOptions())),
	))

	return &TestLogger{
		Logger: logger,
		t:      t,
		buf:    buf,
	}
}

// TestLogger is a logger for unit tests.
// It can be injected wherever a Logger is expected.
type TestLogger struct {
	*slog.Logger

	t   *testing.T
	buf *testBuffer
}

var (
	_ Logger      = (*TestLogger)(nil)
	_ LevelLogger = (*TestLogger)(nil)
)

func (l *TestLogger) SetLevel(level slog.Level) {
	Unwrap(l.Logger).SetLevel(level)
}

func (l *TestLogger) Level() slog.Level {
	return Unwrap(l.Logger).Level()
}

// String returns the complete log output.
func (l *TestLogger) String() string {
	return strings.Join(l.Lines(), "")
}

// Lines returns each logged line, including its line break.
func (l *TestLogger) Lines() []string {
	return l.buf.all()
}

// Empty asserts that nothing got logged.
func (l *TestLogger) Empty(msgAndArgs ...any) bool {
	l.t.Helper()

	total := len(l.Lines())
	if total == 0 {
		return true
	}

	msg := "it has 1 line"
	if total > 1 {
		msg = fmt.Sprintf("it has %d lines", total)
	}

	return assert.Fail(l.t, "logger is not empty, "+msg, msgAndArgs...)
}

// NotEmpty asserts that at least one line got logged.
func (l *TestLogger) NotEmpty(msgAndArgs ...any) bool {
	l.t.Helper()

	if len(l.Lines()) == 0 {
		return assert.Fail(l.t, "logger is empty, should not be", msgAndArgs...)
	}

	return true
}

// Contains asserts that at least one line contains the substring.
func (l *TestLogger) Contains(contains string, msgAndArgs ...any) bool {
	l.t.Helper()

	for _, line := range l.Lines() {
		if strings.Contains(line, contains) {
			return true
		}
	}

	return assert.Fail(l.t, "log output does not have a line which contains: "+contains, msgAndArgs...)
}

// NotContains asserts that no line contains the substring.
func (l *TestLogger) NotContains(notContains string, msgAndArgs ...any) bool {
	l.t.Helper()

	for _, line := range l.Lines() {
		if strings.Contains(line, notContains) {
			return assert.Fail(l.t, "log output contains: "+notContains+", should not be", msgAndArgs...)
		}
	}

	return true
}

// Total asserts that exactly total lines got logged.
func (l *TestLogger) Total(total int, msgAndArgs ...any) bool {
	l.t.Helper()

	if got := len(l.Lines()); got != total {
		return assert.Fail(l.t, fmt.Sprintf("logger does not have %d lines, it has: %d", total, got), msgAndArgs...)
	}

	return true
}

// testBuffer keeps each write as its own line, so the server goroutines
// of integration tests can log concurrently.
type testBuffer struct {
	mu    sync.Mutex
	lines []string
}

func (b *testBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lines = append(b.lines, string(bytes.Clone(p)))

	return len(p), nil
}

func (b *testBuffer) all() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return append([]string(nil), b.lines...)
}
