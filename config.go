package restapi

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/go-arrower/restapi/repository"
)

// Config is a structure used for service configuration.
// It is intended to be mapped by viper.
type Config struct {
	OrganisationName string `mapstructure:"organisation_name" json:"organisationName"`
	ApplicationName  string `mapstructure:"application_name"  json:"applicationName"`
	InstanceName     string `mapstructure:"instance_name"     json:"instanceName"`

	Environment Environment `mapstructure:"environment" json:"environment"`

	HTTP       HTTP       `mapstructure:"http"       json:"http"`
	OTEL       OTEL       `mapstructure:"otel"       json:"otel"`
	Repository Repository `mapstructure:"repository" json:"repository"`
}

const (
	LocalEnv       Environment = "local"
	TestEnv        Environment = "test"
	DevelopmentEnv Environment = "dev"
	ProductionEnv  Environment = "prod"
)

// Environments is the list of all supported environments.
func Environments() []Environment {
	return []Environment{LocalEnv, TestEnv, DevelopmentEnv, ProductionEnv}
}

type Environment string

type (
	HTTP struct {
		Port                  int      `mapstructure:"port"                    json:"port"`
		StatusEndpointEnabled bool     `mapstructure:"status_endpoint_enabled" json:"statusEndpointEnabled"`
		StatusEndpointPort    int      `mapstructure:"status_endpoint_port"    json:"statusEndpointPort"`
		CORSAllowOrigins      []string `mapstructure:"cors_allow_origins"      json:"corsAllowOrigins"`
	}

	// OTEL configures the trace exporter. No traces are exported if Host is empty.
	OTEL struct {
		Host     string `mapstructure:"host"     json:"host"`
		Port     int    `mapstructure:"port"     json:"port"`
		Hostname string `mapstructure:"hostname" json:"hostname"`
	}

	Repository struct {
		IDStrategy repository.IDStrategy `mapstructure:"id_strategy" json:"idStrategy"`
		// Seed fills each collection with the example records on start.
		Seed bool `mapstructure:"seed" json:"seed"`
	}
)

// EnvPrefix is the prefix of all environment variables read by DefaultViper,
// e.g. RESTAPI_HTTP_PORT for the key http.port.
const EnvPrefix = "RESTAPI"

// DefaultViper returns a new viper instance with all default values
// from Config set. Every key can be overwritten by an environment variable.
// The port can also be set with PORT.
func DefaultViper() *Viper {
	vip := viper.New()

	vip.SetDefault("organisation_name", "go-arrower")
	vip.SetDefault("application_name", "restapi")
	vip.SetDefault("instance_name", "")

	vip.SetDefault("environment", "local")

	vip.SetDefault("http.port", 3000)
	vip.SetDefault("http.status_endpoint_enabled", true)
	vip.SetDefault("http.status_endpoint_port", 2223)
	vip.SetDefault("http.cors_allow_origins", []string{"*"})

	vip.SetDefault("otel.host", "")
	vip.SetDefault("otel.port", 4317)
	vip.SetDefault("otel.hostname", "")

	vip.SetDefault("repository.id_strategy", string(repository.LengthStrategy))
	vip.SetDefault("repository.seed", true)

	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()
	_ = vip.BindEnv("http.port", EnvPrefix+"_HTTP_PORT", "PORT")

	return &Viper{Viper: vip}
}

var errConfigLoadFailed = errors.New("loading configuration failed")

// Viper is a wrapper around viper.Viper for configuration loading.
// It overwrites Unmarshal, so that the enumerations of Config are checked
// and the developer does not have to think about it when using DefaultViper.
type Viper struct {
	*viper.Viper
}

func (vip *Viper) Unmarshal(rawVal any, opts ...viper.DecoderConfigOption) error {
	opts = append(opts, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
		allowedValuesHookFunc(Environments()),
		allowedValuesHookFunc(repository.IDStrategies()),
	)))

	err := vip.Viper.Unmarshal(rawVal, opts...)
	if err != nil {
		return fmt.Errorf("%w: could not decode configuration into struct: %v", errConfigLoadFailed, err)
	}

	return nil
}

// allowedValuesHookFunc rejects all values of the string type T that are not in allowed.
func allowedValuesHookFunc[T ~string](allowed []T) mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, t reflect.Type, data any) (any, error) {
		if t != reflect.TypeOf(*new(T)) {
			return data, nil
		}

		str, ok := data.(string)
		if ok && slices.Contains(allowed, T(str)) {
			return data, nil
		}

		values := make([]string, 0, len(allowed))
		for _, v := range allowed {
			values = append(values, string(v))
		}

		return data, fmt.Errorf("value %v is not allowed for %s, use one of: %s", //nolint:err113 // accept dynamic error
			data, t.Name(), strings.Join(values, ", "))
	}
}
