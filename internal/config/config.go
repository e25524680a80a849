// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// StructuredConfig is the typed view of the resolved configuration consumed
// by the host, the store and the migration gate.
//
// Struct tags follow caarlos0/env conventions: a resolved key such as
// host.tls.certFile is exposed to the binder as HOST_TLS_CERTFILE, which is
// matched through the envPrefix chain HOST_ + TLS_ + CERTFILE.
type StructuredConfig struct {
	// App holds the service identity reported by /api/version/.
	App App `envPrefix:"APP_"`

	// Logging holds settings of the production logging pipeline.
	Logging Logging `envPrefix:"LOGGING_"`

	// Host holds listener, timeout and TLS settings of the hosting runtime.
	Host Host `envPrefix:"HOST_"`

	// Migration controls the migration gate.
	Migration Migration `envPrefix:"MIGRATION_"`

	// Storage holds the persistent store connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Features holds the boolean flags found under the features.* subtree.
	Features map[string]bool
}

// App holds application identity values.
type App struct {
	// Name is the service name. Also the default config server application
	// name.
	// Key: app.name
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application.
	// Key: app.version
	Version string `env:"VERSION"`
}

// Logging holds production logger settings.
type Logging struct {
	// MinimumLevel is the lowest severity written by the production logger
	// (trace, debug, information, warning, error, critical, none).
	// Key: logging.minimumLevel
	MinimumLevel string `env:"MINIMUMLEVEL"`
}

// Host holds settings of the inbound transport layer.
type Host struct {
	// BindAddress is the interface both listeners bind to.
	// Key: host.bindAddress
	BindAddress string `env:"BINDADDRESS"`

	// Port is the HTTP listener port.
	// Key: host.port
	Port int `env:"PORT"`

	// GRPCPort is the gRPC listener port; 0 disables the gRPC listener.
	// Key: host.grpcPort
	GRPCPort int `env:"GRPCPORT"`

	// Key: host.readTimeout
	ReadTimeout time.Duration `env:"READTIMEOUT"`

	// Key: host.writeTimeout
	WriteTimeout time.Duration `env:"WRITETIMEOUT"`

	// ShutdownTimeout bounds how long in-flight requests are drained after
	// a termination signal.
	// Key: host.shutdownTimeout
	ShutdownTimeout time.Duration `env:"SHUTDOWNTIMEOUT"`

	TLS TLS `envPrefix:"TLS_"`

	RateLimit RateLimit `envPrefix:"RATELIMIT_"`
}

// TLS holds certificate material references. Both fields empty means plain
// text listeners.
type TLS struct {
	// Key: host.tls.certFile
	CertFile string `env:"CERTFILE"`
	// Key: host.tls.keyFile
	KeyFile string `env:"KEYFILE"`
}

// Enabled reports whether certificate material is configured.
func (t TLS) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

// RateLimit configures the per-client token bucket. Zero RPS or zero burst
// disables limiting.
type RateLimit struct {
	// Key: host.rateLimit.rps
	RPS float64 `env:"RPS"`
	// Key: host.rateLimit.burst
	Burst int `env:"BURST"`
}

// Enabled reports whether requests are rate limited.
func (r RateLimit) Enabled() bool {
	return r.RPS > 0 && r.Burst > 0
}

// Migration holds migration gate settings.
type Migration struct {
	// Required makes the gate check and apply migrations before serving.
	// When false the gate is skipped.
	// Key: migration.required
	Required bool `env:"REQUIRED"`
}

// Storage groups persistent store settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database: postgres:// and
	// postgresql:// use pgx, file: and *.db paths use sqlite3.
	// Key: storage.db.dsn
	DSN string `env:"DSN"`
}

// HTTPAddress returns the HTTP listen address in host:port form.
func (h Host) HTTPAddress() string {
	return net.JoinHostPort(h.BindAddress, strconv.Itoa(h.Port))
}

// GRPCAddress returns the gRPC listen address, or "" if gRPC is disabled.
func (h Host) GRPCAddress() string {
	if h.GRPCPort == 0 {
		return ""
	}
	return net.JoinHostPort(h.BindAddress, strconv.Itoa(h.GRPCPort))
}

// Snapshot is the read-only resolved configuration the binder consumes.
type Snapshot interface {
	Keys() []string
	Get(key string) string
	Subtree(prefix string) map[string]string
}

// Bind maps a resolved configuration snapshot onto [StructuredConfig] and
// validates it.
func Bind(snapshot Snapshot) (*StructuredConfig, error) {
	environment := make(map[string]string, len(snapshot.Keys()))
	for _, key := range snapshot.Keys() {
		// "_" is the segment separator of the projected names, so a key that
		// already contains one would alias another key.
		if strings.Contains(key, "_") {
			continue
		}
		environment[envName(key)] = snapshot.Get(key)
	}

	cfg := &StructuredConfig{}
	if err := parseEnv(cfg, environment); err != nil {
		return nil, fmt.Errorf("error binding configuration: %w", err)
	}

	features, err := parseFeatures(snapshot.Subtree("features"))
	if err != nil {
		return nil, err
	}
	cfg.Features = features

	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

func parseFeatures(raw map[string]string) (map[string]bool, error) {
	features := make(map[string]bool, len(raw))
	for name, value := range raw {
		enabled, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: features.%s=%q", ErrInvalidFeatureFlag, name, value)
		}
		features[name] = enabled
	}
	return features, nil
}
