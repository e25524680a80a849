package http

import (
	"golang.org/x/time/rate"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/service"
)

type Handler struct {
	services *service.Services
	limiter  *rate.Limiter

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler. A zero rateLimit disables request
// throttling.
func NewHandler(services *service.Services, rateLimit config.RateLimit, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}

	if rateLimit.Enabled() {
		h.limiter = rate.NewLimiter(rate.Limit(rateLimit.RPS), rateLimit.Burst)
	}

	logger.Debug().Bool("rate_limit", h.limiter != nil).Msg("http handler created")
	return h
}
