package models

// AppInfo is the body of GET /api/version/.
type AppInfo struct {
	// Name is the configured application name (app.name).
	Name string `json:"name"`

	// Version is the configured application version (app.version).
	Version string `json:"version"`

	// Build holds the linker-injected build metadata.
	Build AppBuildInfo `json:"build"`
}

// FeaturesResponse is the body of GET /api/features/.
type FeaturesResponse struct {
	// Features maps every configured feature flag to its state.
	Features map[string]bool `json:"features"`

	// Length is the number of flags in Features.
	Length int `json:"length"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// FeatureResponse is the body of GET /api/features/{name}. Unknown flags
// are reported as disabled.
type FeatureResponse struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}
