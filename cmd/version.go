package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		Short:                 "Print the version of " + appName,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		Run: func(cmd *cobra.Command, _ []string) {
			v := readVersion()

			fmt.Fprintf(cmd.OutOrStdout(), "%s version: %s from %s, built with %s\n",
				appName, v.hash, v.timestamp, v.goVersion,
			)
		},
	}
}

type version struct {
	hash      string
	timestamp string
	goVersion string
}

// readVersion returns the last commit the binary is built from.
// Builds with uncommitted changes and binaries without vcs information, e.g. from `go run` or `go test`,
// report @latest and the current time.
func readVersion() version {
	v := version{
		hash:      "@latest",
		timestamp: time.Now().UTC().Format(time.RFC3339),
		goVersion: runtime.Version(),
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return v
	}

	var (
		hash, timestamp string
		modified        bool
	)

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			hash = setting.Value
		case "vcs.time":
			timestamp = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if hash == "" || modified {
		return v
	}

	v.hash = hash
	v.timestamp = timestamp

	return v
}
