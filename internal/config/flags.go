package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
)

// NetAddress holds structured network address data for host and port.
// It implements kingpin.Value and encoding.TextUnmarshaler.
type NetAddress struct {
	Host string
	Port int
}

// newFlagParser declares the command-line flags and returns the parser
// together with the options they populate.
//
// Flags:
//
//	-a/--address        listen address in format [host]:[port]
//	-c/--config         JSON config file path
//	--config-yaml       YAML config file path
//	--config-hcl        HCL config file path
//	--env-prefix        prefix of environment variables read as config
//	--log-level         bootstrap logger minimum level
//	--startup-timeout   bound on everything before serving (e.g., "60s")
//	--set key=value     configuration override, repeatable
func newFlagParser() (*kingpin.Application, *Options) {
	opts := &Options{}

	app := kingpin.New("bootcamp-webapi", "Web API bootstrap: layered configuration, schema migrations, HTTP and gRPC hosting")
	app.HelpFlag.Short('h')

	app.Flag("address", "Net address host:port").Short('a').SetValue(&opts.Address)
	app.Flag("config", "JSON config file path").Short('c').StringVar(&opts.JSONFilePath)
	app.Flag("config-yaml", "YAML config file path").StringVar(&opts.YAMLFilePath)
	app.Flag("config-hcl", "HCL config file path").StringVar(&opts.HCLFilePath)
	app.Flag("env-prefix", "Prefix of environment variables read as configuration").StringVar(&opts.EnvPrefix)
	app.Flag("log-level", "Bootstrap logger minimum level").StringVar(&opts.LogLevel)
	app.Flag("startup-timeout", "Startup timeout (e.g., 30s, 1m)").DurationVar(&opts.StartupTimeout)
	app.Flag("set", "Configuration override key=value (repeatable)").StringsVar(&opts.Overrides)

	return app, opts
}

// parseFlags parses args into a fresh [Options]. Unset flags leave zero
// values so that they do not shadow lower layers when merged.
func parseFlags(args []string) (*Options, error) {
	app, opts := newFlagParser()
	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	return opts, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range and checks IP correctness unless host is
// "localhost" or empty (all interfaces).
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// UnmarshalText lets caarlos0/env populate a NetAddress from
// BOOTSTRAP_ADDRESS.
func (a *NetAddress) UnmarshalText(text []byte) error {
	return a.Set(string(text))
}
