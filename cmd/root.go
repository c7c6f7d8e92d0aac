// Package cmd contains the command line interface of the restapi server.
package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const appName = "restapi"

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "restapi serves users, cars, products and orders over a RESTful JSON API.",
		Long: `A basic resource management API.
All records are kept in memory and are lost when the process stops.`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
		Run: func(cmd *cobra.Command, _ []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("config", "", "path to a yaml config file, e.g. ./config.yaml")

	return rootCmd
}

// NewRestAPICLI initialises the complete cli with its commands and returns the root command.
// serve stops on the first value received from osSignal.
func NewRestAPICLI(osSignal <-chan os.Signal) *cobra.Command {
	rootCmd := newRootCmd()
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newServeCmd(osSignal))

	return rootCmd
}

// NewInterruptSignalChannel returns a channel listening for the os.Signals the cli stops on.
func NewInterruptSignalChannel() chan os.Signal {
	osSignal := make(chan os.Signal, 1)
	signal.Notify(osSignal,
		syscall.SIGINT,                   // Strg + c
		syscall.SIGTERM, syscall.SIGQUIT, // terminate but finish/cleanup first, e.g. kill
		os.Interrupt,
	)

	return osSignal
}

// Execute runs the cli.
func Execute() {
	if err := NewRestAPICLI(NewInterruptSignalChannel()).Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
