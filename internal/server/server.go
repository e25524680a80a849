package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/handler"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/service"
	"github.com/MKhiriev/bootcamp-webapi/models"
)

type server struct {
	build    models.AppBuildInfo
	cfg      *config.StructuredConfig
	services *service.Services

	logger *logger.Logger

	// onListen is called with every bound address; used by tests.
	onListen func(name string, addr net.Addr)
}

// NewServer returns the chi/gRPC hosting runtime.
func NewServer(build models.AppBuildInfo, logger *logger.Logger) Host {
	return &server{
		build:  build,
		logger: logger,
	}
}

func (s *server) Configure(cfg *config.StructuredConfig) error {
	s.logger.Info().Msg("configuring host...")

	if cfg.Host.TLS.Enabled() {
		for _, f := range []string{cfg.Host.TLS.CertFile, cfg.Host.TLS.KeyFile} {
			if _, err := os.Stat(f); err != nil {
				return fmt.Errorf("%w: %w", errTLSMaterial, err)
			}
		}
	}

	if err := service.ValidateIdentity(cfg.App); err != nil {
		return fmt.Errorf("invalid app identity: %w", err)
	}

	s.cfg = cfg
	return nil
}

func (s *server) InstallLogger(log *logger.Logger) {
	s.logger = log
	s.logger.Debug().Msg("production logger installed")
}

// Serve binds every enabled listener, serves until ctx is canceled or a
// listener fails, then shuts all of them down within host.shutdownTimeout.
func (s *server) Serve(ctx context.Context) error {
	if s.cfg == nil {
		return errNotConfigured
	}

	servers, err := s.buildServers()
	if err != nil {
		return err
	}

	for name, srv := range servers {
		addr, err := srv.Listen()
		if err != nil {
			s.shutdown(servers)
			return fmt.Errorf("error binding %s listener: %w", name, err)
		}
		s.logger.Info().Str("server", name).Str("address", addr.String()).Bool("tls", s.cfg.Host.TLS.Enabled()).Msg("listening")
		if s.onListen != nil {
			s.onListen(name, addr)
		}
	}

	errCh := make(chan error, len(servers))
	for name, srv := range servers {
		s.logger.Info().Msgf("Launching %s server", name)
		go func() { errCh <- srv.RunServer() }()
	}

	var serveErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("termination requested, draining in-flight requests")
	case serveErr = <-errCh:
		s.logger.Err(serveErr).Msg("server stopped unexpectedly")
	}

	shutdownErr := s.shutdown(servers)
	if serveErr != nil {
		return serveErr
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return shutdownErr
}

func (s *server) buildServers() (map[string]Server, error) {
	services, err := service.NewServices(s.cfg, s.build, s.logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}
	s.services = services

	handlers, err := handler.NewHandlers(s.services, s.cfg.Host, s.logger)
	if err != nil {
		return nil, err
	}

	servers := make(map[string]Server)
	if handlers.HTTP != nil {
		servers["http"] = newHTTPServer(handlers.HTTP.Init(), s.cfg.Host, s.logger)
	}
	if handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, s.cfg.Host, s.logger)
		if err != nil {
			return nil, err
		}
		servers["grpc"] = g
	}

	if len(servers) == 0 {
		return nil, errNoServersAreCreated
	}
	return servers, nil
}

func (s *server) shutdown(servers map[string]Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.Host.ShutdownTimeout)
	defer cancel()

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for name, srv := range servers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Shutdown(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return errors.Join(errs...)
}
