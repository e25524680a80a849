package server

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

type httpServer struct {
	server   *http.Server
	tls      config.TLS
	listener net.Listener

	logger *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Host, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:         cfg.HTTPAddress(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		tls:    cfg.TLS,
		logger: logger,
	}
}

func (h *httpServer) Listen() (net.Addr, error) {
	l, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, err
	}
	h.listener = l
	return l.Addr(), nil
}

func (h *httpServer) RunServer() error {
	var err error
	if h.tls.Enabled() {
		err = h.server.ServeTLS(h.listener, h.tls.CertFile, h.tls.KeyFile)
	} else {
		err = h.server.Serve(h.listener)
	}

	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	h.logger.Err(err).Msg("HTTP server Serve")
	return err
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	err := h.server.Shutdown(ctx)
	if err != nil {
		h.logger.Err(err).Msg("HTTP server did not drain in time, closing connections")
		_ = h.server.Close()
	}
	if h.listener != nil {
		// not yet tracked by the server when Serve never ran
		_ = h.listener.Close()
	}
	return err
}
