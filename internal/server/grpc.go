package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	myGRPC "github.com/MKhiriev/bootcamp-webapi/internal/handler/grpc"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	address         string
	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Host, logger *logger.Logger) (*grpcServer, error) {
	opts := handler.ServerOptions()
	if cfg.TLS.Enabled() {
		creds, err := credentials.NewServerTLSFromFile(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", errTLSMaterial, err)
		}
		opts = append(opts, grpc.Creds(creds))
	}

	s := grpc.NewServer(opts...)
	handler.Register(s)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress(),
		server:  s,
		logger:  logger,
	}, nil
}

func (g *grpcServer) Listen() (net.Addr, error) {
	l, err := net.Listen("tcp", g.address)
	if err != nil {
		return nil, err
	}
	g.gRPCNetListener = l
	return l.Addr(), nil
}

func (g *grpcServer) RunServer() error {
	g.handler.SetServing(true)
	if err := g.server.Serve(g.gRPCNetListener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		g.logger.Err(err).Msg("gRPC server Serve")
		return err
	}
	return nil
}

// Shutdown reports NOT_SERVING first so health checks drain traffic, then
// stops gracefully, forcing the stop once ctx expires.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()

	if g.gRPCNetListener != nil {
		defer g.gRPCNetListener.Close()
	}

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}
