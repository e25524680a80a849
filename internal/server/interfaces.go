package server

//go:generate mockgen -source=interfaces.go -destination=../mock/server_mock.go -package=mock

import (
	"context"
	"net"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

// Host is the hosting runtime driven by the [Launcher].
type Host interface {
	// Configure builds the serving runtime from the typed configuration.
	Configure(cfg *config.StructuredConfig) error
	// InstallLogger replaces the bootstrap logger with the production one.
	InstallLogger(log *logger.Logger)
	// Serve blocks until ctx is canceled, then drains in-flight requests.
	Serve(ctx context.Context) error
}

// MigrationGate blocks startup until the schema is current.
type MigrationGate interface {
	EnsureMigrated(ctx context.Context) error
}

// Server is the lifecycle contract of one transport listener.
type Server interface {
	// Listen binds the listener and returns its address.
	Listen() (net.Addr, error)
	// RunServer serves on the bound listener until Shutdown. It returns nil
	// after a graceful stop.
	RunServer() error
	// Shutdown stops accepting connections and waits for in-flight work
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
