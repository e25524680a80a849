package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// HTTPClientConfig holds the settings applied by [NewHTTPClient].
// Zero values leave resty defaults in place.
type HTTPClientConfig struct {
	// BaseURL is prepended to every relative request path. A trailing slash
	// is trimmed.
	BaseURL string
	// Timeout bounds a single request, including reading the body.
	Timeout time.Duration
	// Username and Password enable HTTP basic auth when Username is set.
	Username string
	Password string
	// UserAgent overrides the default resty user agent.
	UserAgent string
}

// NewHTTPClient creates and returns a new HTTPClient instance configured
// from cfg.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. Retries are left to the caller;
// the client itself never retries.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientConfig{BaseURL: "http://config:8888"})
//	resp, err := client.R().Get("/app/default")
func NewHTTPClient(cfg HTTPClientConfig) *HTTPClient {
	client := resty.New().SetRetryCount(0)

	if cfg.BaseURL != "" {
		client.SetBaseURL(strings.TrimRight(cfg.BaseURL, "/"))
	}
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}
	if cfg.Username != "" {
		client.SetBasicAuth(cfg.Username, cfg.Password)
	}
	if cfg.UserAgent != "" {
		client.SetHeader("User-Agent", cfg.UserAgent)
	}

	return &HTTPClient{Client: client}
}
