package cmd_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-arrower/restapi/cmd"
)

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	// runtime/debug.ReadBuildInfo() has no vcs settings in tests,
	// so only the fallback version is checked here.

	t.Run("show version", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, cmd.NewRestAPICLI(nil), "version")
		assert.NoError(t, err)
		assert.Contains(t, output, "restapi version: @latest from ")
		assert.Contains(t, output, runtime.Version())
	})

	t.Run("don't allow sub commands", func(t *testing.T) {
		t.Parallel()

		output, err := cmd.TestExecute(t, cmd.NewRestAPICLI(nil), "version", "sub-command")
		assert.Error(t, err)
		assert.Contains(t, output, "unknown command")
		assert.NotContains(t, output, "[flags]")
	})
}
