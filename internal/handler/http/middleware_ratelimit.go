package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

// withRateLimit rejects requests above the configured token-bucket rate
// with 429. The health check is never throttled.
func (h *Handler) withRateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" || h.limiter.Allow() {
			next.ServeHTTP(w, r)
			return
		}

		logger.FromRequest(r).Warn().Str("uri", r.RequestURI).Msg("rate limit exceeded")

		retryAfter := time.Duration(float64(time.Second) / float64(h.limiter.Limit()))
		w.Header().Set("Retry-After", strconv.Itoa(max(1, int(retryAfter.Seconds()))))
		http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
	})
}
