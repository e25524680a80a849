package config

import (
	"strconv"
	"time"

	"github.com/MKhiriev/bootcamp-webapi/internal/source"
)

// Options are the bootstrap options: everything the process needs before
// the configuration source chain can run. They come from BOOTSTRAP_*
// environment variables and command-line flags only.
type Options struct {
	// LogLevel is the minimum level of the bootstrap logger.
	// Env: BOOTSTRAP_LOG_LEVEL, flag: --log-level
	LogLevel string `env:"BOOTSTRAP_LOG_LEVEL"`

	// StartupTimeout bounds every stage that runs before serving.
	// Env: BOOTSTRAP_STARTUP_TIMEOUT, flag: --startup-timeout
	StartupTimeout time.Duration `env:"BOOTSTRAP_STARTUP_TIMEOUT"`

	// JSONFilePath, YAMLFilePath and HCLFilePath are optional config files.
	// Env: BOOTSTRAP_CONFIG_FILE, flag: -c / --config
	JSONFilePath string `env:"BOOTSTRAP_CONFIG_FILE"`
	// Env: BOOTSTRAP_CONFIG_YAML, flag: --config-yaml
	YAMLFilePath string `env:"BOOTSTRAP_CONFIG_YAML"`
	// Env: BOOTSTRAP_CONFIG_HCL, flag: --config-hcl
	HCLFilePath string `env:"BOOTSTRAP_CONFIG_HCL"`

	// EnvPrefix selects the environment variables read by the env source.
	// Env: BOOTSTRAP_ENV_PREFIX, flag: --env-prefix
	EnvPrefix string `env:"BOOTSTRAP_ENV_PREFIX"`

	// Address overrides host.bindAddress and host.port.
	// Env: BOOTSTRAP_ADDRESS, flag: -a / --address
	Address NetAddress `env:"BOOTSTRAP_ADDRESS"`

	// Overrides are key=value pairs for the command-line source.
	// Flag: --set (repeatable)
	Overrides []string
}

func defaultOptions() *Options {
	return &Options{
		LogLevel:       "trace",
		StartupTimeout: 60 * time.Second,
		EnvPrefix:      source.DefaultEnvPrefix,
	}
}

// CommandLineOverrides returns the key=value pairs of the command-line
// source. An explicit address is expanded into host.bindAddress and
// host.port and precedes --set pairs, so --set wins on conflict.
func (o *Options) CommandLineOverrides() []string {
	overrides := make([]string, 0, len(o.Overrides)+2)
	if o.Address.Port != 0 {
		overrides = append(overrides,
			"host.bindAddress="+o.Address.Host,
			"host.port="+strconv.Itoa(o.Address.Port),
		)
	}
	return append(overrides, o.Overrides...)
}

// GetOptions loads, merges and validates the bootstrap options in the
// following priority order (later sources override non-zero fields):
//  1. Built-in defaults
//  2. BOOTSTRAP_* environment variables
//  3. Command-line flags from args
func GetOptions(args []string) (*Options, error) {
	return newOptionsBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		build()
}
