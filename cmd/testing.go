package cmd

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// mu serialises TestExecute.
// A command is passed by pointer and os.Stdout and os.Stderr are process wide,
// so concurrent tests would race on both.
var mu sync.Mutex

// TestExecute executes a cobra command with args and returns everything it writes,
// to the command's writers as well as to os.Stdout and os.Stderr, together with its error.
func TestExecute(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	mu.Lock()
	defer mu.Unlock()

	buf := &syncBuffer{}
	command.SetOut(buf)
	command.SetErr(buf)

	r, w, err := os.Pipe()
	require.NoError(t, err)

	storeStdout, storeStderr := os.Stdout, os.Stderr
	os.Stdout, os.Stderr = w, w

	// drain the pipe while the command runs, so large outputs can not block it
	copied := make(chan error)

	go func() {
		_, err := io.Copy(buf, r)
		copied <- err
	}()

	command.SetArgs(args)
	_, cmdErr := command.ExecuteC()

	os.Stdout, os.Stderr = storeStdout, storeStderr

	require.NoError(t, w.Close())
	require.NoError(t, <-copied)
	require.NoError(t, r.Close())

	return buf.String(), cmdErr
}

// syncBuffer is an io.Writer safe for concurrent use.
type syncBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.Write(p) //nolint:wrapcheck
}

func (b *syncBuffer) String() string {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.String()
}
