package handler

import (
	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/handler/grpc"
	"github.com/MKhiriev/bootcamp-webapi/internal/handler/http"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds the HTTP handler and, when host.grpcPort is set, the
// gRPC handler.
func NewHandlers(services *service.Services, cfg config.Host, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg.RateLimit, logger),
	}

	if cfg.GRPCAddress() != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	return handlers, nil
}
