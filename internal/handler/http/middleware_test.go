package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

// newTestHandler returns a Handler with a nop logger and no services.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

// newBufferedHandler returns a Handler whose logger writes JSON to buf.
func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func okHandler(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// ---- withTraceID ----

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name           string
		requestTraceID string
		wantSame       bool
	}{
		{name: "trace ID from request header is reused", requestTraceID: "my-custom-trace-id", wantSame: true},
		{name: "no trace ID in request, UUID generated"},
		{name: "UUID as incoming trace ID", requestTraceID: "550e8400-e29b-41d4-a716-446655440000", wantSame: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newBufferedHandler(&buf)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				logger.FromRequest(r).Info().Msg("inside")
				w.WriteHeader(http.StatusTeapot)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestTraceID != "" {
				req.Header.Set(traceIDHeader, tt.requestTraceID)
			}
			originalCtx := req.Context()

			rr := httptest.NewRecorder()
			h.withTraceID(next).ServeHTTP(rr, req)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.wantSame {
				assert.Equal(t, tt.requestTraceID, got)
			} else {
				_, err := uuid.Parse(got)
				assert.NoError(t, err, "generated trace ID should be a UUID, got %s", got)
			}

			assert.Equal(t, http.StatusTeapot, rr.Code)
			assert.Contains(t, buf.String(), `"trace_id":"`+got+`"`)
			assert.Equal(t, originalCtx, req.Context(), "original request must not be mutated")
		})
	}
}

func TestWithTraceID_GeneratesUniqueIDs(t *testing.T) {
	h := newTestHandler()
	mw := h.withTraceID(okHandler(http.StatusOK, ""))

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		seen[rr.Header().Get(traceIDHeader)] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

// ---- withLogging ----

func TestWithLogging(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name: "GET 200", method: http.MethodGet, path: "/health", status: http.StatusOK, body: "OK",
			wantContains: []string{`"level":"info"`, `"method":"GET"`, `"uri":"/health"`, `"status":200`, `"size":2`, `"duration":`},
		},
		{
			name: "404 with query", method: http.MethodGet, path: "/nope?x=1", status: http.StatusNotFound, body: "Not Found",
			wantContains: []string{`"uri":"/nope?x=1"`, `"status":404`},
		},
		{
			name: "500 logged as error", method: http.MethodGet, path: "/boom", status: http.StatusInternalServerError,
			wantContains: []string{`"level":"error"`, `"status":500`, `"size":0`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newTestHandler()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

			rr := httptest.NewRecorder()
			h.withLogging(okHandler(tt.status, tt.body)).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			for _, s := range tt.wantContains {
				assert.Contains(t, buf.String(), s)
			}
		})
	}
}

func TestWithLogging_ImplicitOK(t *testing.T) {
	var buf bytes.Buffer
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	newTestHandler().withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"status":200`)
}

// ---- responseWriter ----

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)
	n1, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	n2, err := w.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusAccepted, rr.Code, "second WriteHeader is ignored")
	assert.Equal(t, http.StatusAccepted, w.status)
	assert.Equal(t, 5, n1+n2)
	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rr.Body.String())
	assert.Same(t, rr, w.Unwrap())
}

func TestResponseWriter_WriteImpliesOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	_, _ = w.Write([]byte("x"))
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusOK, w.status)
}

// ---- withRateLimit ----

func TestWithRateLimit(t *testing.T) {
	h := newTestHandler()
	h.limiter = rate.NewLimiter(rate.Limit(0.5), 2)
	mw := h.withRateLimit(okHandler(http.StatusOK, "ok"))

	codes := make([]int, 0, 3)
	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = httptest.NewRecorder()
		mw.ServeHTTP(last, httptest.NewRequest(http.MethodGet, "/api/version/", nil))
		codes = append(codes, last.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	assert.Equal(t, "2", last.Header().Get("Retry-After"))

	health := httptest.NewRecorder()
	mw.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, health.Code, "health check is never throttled")
}

func TestWithRateLimit_Disabled(t *testing.T) {
	h := newTestHandler()
	mw := h.withRateLimit(okHandler(http.StatusOK, ""))

	for i := 0; i < 20; i++ {
		rr := httptest.NewRecorder()
		mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
}

// ---- CheckHTTPMethod ----

func TestCheckHTTPMethod(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {})
	router.Post("/health", func(w http.ResponseWriter, r *http.Request) {})
	router.Get("/api/features/{name}", func(w http.ResponseWriter, r *http.Request) {})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantAllow  []string
	}{
		{"wrong method on static route", http.MethodDelete, "/health", http.StatusMethodNotAllowed, []string{"GET", "POST"}},
		{"wrong method on param route", http.MethodPut, "/api/features/beta", http.StatusMethodNotAllowed, []string{"GET"}},
		{"allowed method passes", http.MethodGet, "/health", http.StatusOK, nil},
		{"unknown path", http.MethodGet, "/missing", http.StatusNotFound, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantAllow != nil {
				assert.Equal(t, strings.Join(tt.wantAllow, ", "), rr.Header().Get("Allow"))
			}
		})
	}
}
