package grpc

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/service"
	"github.com/MKhiriev/bootcamp-webapi/internal/utils"
)

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler. It serves the standard
// grpc.health.v1 service.
type Handler struct {
	// services provides the application identity reported in health checks.
	services *service.Services

	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Health status is NOT_SERVING until
// [Handler.SetServing] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// ServerOptions returns the interceptors every gRPC server built for this
// handler must use.
func (h *Handler) ServerOptions() []grpc.ServerOption {
	return []grpc.ServerOption{grpc.ChainUnaryInterceptor(h.withLogging)}
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing flips the overall and per-application health status.
func (h *Handler) SetServing(serving bool) {
	st := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		st = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", st)
	if h.services != nil && h.services.AppInfoService != nil {
		h.health.SetServingStatus(h.services.AppInfoService.GetAppInfo(context.Background()).Name, st)
	}
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// withLogging attaches a trace-scoped logger to the call context and writes
// one access log line per unary call.
func (h *Handler) withLogging(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	var traceID string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if traceID == "" {
		traceID = utils.NewTraceID()
	}

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", traceID)
	})
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := handler(ctx, req)

	l.Info().
		Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
