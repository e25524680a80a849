// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

// validate checks that the bound [StructuredConfig] can be handed to the
// host, store and migration gate.
func (cfg *StructuredConfig) validate() error {
	if _, err := logger.ParseLevel(cfg.Logging.MinimumLevel); err != nil {
		return fmt.Errorf("%w: logging.minimumLevel: %w", ErrInvalidLoggingConfigs, err)
	}

	if cfg.Host.Port < 1 || cfg.Host.Port > 65535 {
		return fmt.Errorf("%w: host.port %d out of range", ErrInvalidHostConfigs, cfg.Host.Port)
	}

	if cfg.Host.GRPCPort < 0 || cfg.Host.GRPCPort > 65535 {
		return fmt.Errorf("%w: host.grpcPort %d out of range", ErrInvalidHostConfigs, cfg.Host.GRPCPort)
	}

	if cfg.Host.GRPCPort != 0 && cfg.Host.GRPCPort == cfg.Host.Port {
		return fmt.Errorf("%w: host.grpcPort must differ from host.port", ErrInvalidHostConfigs)
	}

	if cfg.Host.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: host.shutdownTimeout must be positive", ErrInvalidHostConfigs)
	}

	if cfg.Host.ReadTimeout < 0 || cfg.Host.WriteTimeout < 0 {
		return fmt.Errorf("%w: negative read/write timeout", ErrInvalidHostConfigs)
	}

	if cfg.Host.RateLimit.RPS < 0 || cfg.Host.RateLimit.Burst < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidHostConfigs)
	}

	if (cfg.Host.TLS.CertFile == "") != (cfg.Host.TLS.KeyFile == "") {
		return ErrInvalidTLSConfigs
	}

	if cfg.Migration.Required && cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: storage.db.dsn is empty while migration.required is true", ErrInvalidStorageConfigs)
	}

	return nil
}

func (o *Options) validate() error {
	if _, err := logger.ParseLevel(o.LogLevel); err != nil {
		return fmt.Errorf("%w: log level: %w", ErrInvalidOptions, err)
	}

	if o.StartupTimeout <= 0 {
		return fmt.Errorf("%w: startup timeout must be positive", ErrInvalidOptions)
	}

	return nil
}
