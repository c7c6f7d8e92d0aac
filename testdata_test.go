package restapi_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-arrower/restapi"
)

var ctx = context.Background()

// newTestContainer returns a Container for the test environment, with nothing exported or served.
func newTestContainer(t *testing.T) *restapi.Container {
	t.Helper()

	conf := restapi.Config{}
	err := restapi.DefaultViper().Unmarshal(&conf)
	require.NoError(t, err)

	conf.Environment = restapi.TestEnv
	conf.HTTP.StatusEndpointEnabled = false

	di, err := restapi.InitialiseDefaultDependencies(ctx, &conf)
	require.NoError(t, err)

	return di
}
