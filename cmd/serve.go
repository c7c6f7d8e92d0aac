package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color" //nolint:misspell
	"github.com/spf13/cobra"

	"github.com/go-arrower/restapi"
	resourcesinit "github.com/go-arrower/restapi/contexts/resources/init"
)

const shutdownTimeout = 10 * time.Second

var errServeFailed = errors.New("could not serve")

//nolint:funlen // allow length because of init work
func newServeCmd(osSignal <-chan os.Signal) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the api until an interrupt signal is received",
		Long: `Serve the api until an interrupt signal is received.

The configuration is read from the file given with --config and from
environment variables prefixed with ` + restapi.EnvPrefix + `_, e.g. ` + restapi.EnvPrefix + `_HTTP_PORT.
PORT sets the http port as well.

Defaults:
  environment                  local
  http.port                    3000
  http.status_endpoint_enabled true
  http.status_endpoint_port    2223
  http.cors_allow_origins      *
  repository.id_strategy       length (length, sequence, uuid, ulid)
  repository.seed              true`,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			conf, err := loadConfig(cmd.Flag("config").Value.String())
			if err != nil {
				return fmt.Errorf("%w: %w", errServeFailed, err)
			}

			di, err := restapi.InitialiseDefaultDependencies(ctx, conf)
			if err != nil {
				return fmt.Errorf("%w: %w", errServeFailed, err)
			}

			resources, err := resourcesinit.NewResourcesContext(ctx, di)
			if err != nil {
				return fmt.Errorf("%w: %w", errServeFailed, err)
			}

			blue := color.New(color.FgBlue, color.Bold).FprintfFunc()
			yellow := color.New(color.FgYellow).FprintfFunc()

			blue(cmd.OutOrStdout(), "%s version %s\n", conf.ApplicationName, readVersion().hash)

			if err := di.Start(ctx); err != nil {
				return fmt.Errorf("%w: %w", errServeFailed, err)
			}

			yellow(cmd.OutOrStdout(), "listening on :%d\n", conf.HTTP.Port)

			if conf.HTTP.StatusEndpointEnabled {
				yellow(cmd.OutOrStdout(), "status endpoint on :%d\n", conf.HTTP.StatusEndpointPort)
			}

			blue(cmd.OutOrStdout(), "waiting for shutdown\n")

			if osSignal != nil {
				<-osSignal
			} else {
				<-ctx.Done()
			}

			blue(cmd.OutOrStdout(), "shutdown signal received\n")

			sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			err = errors.Join(resources.Shutdown(sctx), di.Shutdown(sctx))
			if err != nil {
				return fmt.Errorf("could not shutdown gracefully: %w", err)
			}

			blue(cmd.OutOrStdout(), "done\n")

			return nil
		},
	}
}

// loadConfig reads the configuration from the defaults, the optional file and the environment.
func loadConfig(file string) (*restapi.Config, error) {
	vip := restapi.DefaultViper()

	if file != "" {
		vip.SetConfigFile(file)

		if err := vip.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	conf := &restapi.Config{}
	if err := vip.Unmarshal(conf); err != nil {
		return nil, err //nolint:wrapcheck // error is descriptive already
	}

	return conf, nil
}
