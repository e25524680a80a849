package config

import (
	"context"
	"maps"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/placeholder"
	"github.com/MKhiriev/bootcamp-webapi/internal/source"
)

func validValues() map[string]string {
	return map[string]string{
		"app.name":             "bootcamp-webapi",
		"app.version":          "1.4.0",
		"logging.minimumLevel": "information",
		"host.bindAddress":     "127.0.0.1",
		"host.port":            "8080",
		"host.grpcPort":        "9090",
		"host.readTimeout":     "5s",
		"host.writeTimeout":    "10s",
		"host.shutdownTimeout": "15s",
		"host.rateLimit.rps":   "20",
		"host.rateLimit.burst": "40",
		"migration.required":   "true",
		"storage.db.dsn":       "postgres://svc:secret@db:5432/app?sslmode=disable",
		"features.beta":        "true",
		"features.new.ui":      "False",
	}
}

func bind(t *testing.T, values map[string]string) (*StructuredConfig, error) {
	t.Helper()
	resolved, err := placeholder.Resolve(values)
	require.NoError(t, err)
	return Bind(resolved)
}

func TestBind_AllFields(t *testing.T) {
	cfg, err := bind(t, validValues())
	require.NoError(t, err)

	assert.Equal(t, App{Name: "bootcamp-webapi", Version: "1.4.0"}, cfg.App)
	assert.Equal(t, "information", cfg.Logging.MinimumLevel)
	assert.Equal(t, Host{
		BindAddress:     "127.0.0.1",
		Port:            8080,
		GRPCPort:        9090,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		ShutdownTimeout: 15 * time.Second,
		RateLimit:       RateLimit{RPS: 20, Burst: 40},
	}, cfg.Host)
	assert.True(t, cfg.Migration.Required)
	assert.Equal(t, "postgres://svc:secret@db:5432/app?sslmode=disable", cfg.Storage.DB.DSN)
	assert.Equal(t, map[string]bool{"beta": true, "new.ui": false}, cfg.Features)

	assert.Equal(t, "127.0.0.1:8080", cfg.Host.HTTPAddress())
	assert.Equal(t, "127.0.0.1:9090", cfg.Host.GRPCAddress())
	assert.True(t, cfg.Host.RateLimit.Enabled())
	assert.False(t, cfg.Host.TLS.Enabled())
}

func TestBind_ColonAndEnvStyleKeys(t *testing.T) {
	values := validValues()
	delete(values, "host.port")
	delete(values, "host.tls.certFile")
	values["Host:Port"] = "8443"
	values["HOST__TLS__CERTFILE"] = "/tls/cert.pem"
	values["host.tls.keyFile"] = "/tls/key.pem"

	cfg, err := bind(t, values)
	require.NoError(t, err)
	assert.Equal(t, 8443, cfg.Host.Port)
	assert.True(t, cfg.Host.TLS.Enabled())
}

func TestBind_UnderscoreKeysDoNotAlias(t *testing.T) {
	values := validValues()
	values["host_port"] = "9999"
	values["app_name"] = "shadow"

	cfg, err := bind(t, values)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Host.Port)
	assert.Equal(t, "bootcamp-webapi", cfg.App.Name)
}

func TestBind_Defaults(t *testing.T) {
	merged, err := source.BuildMerged(context.Background(), logger.Nop(), source.Defaults())
	require.NoError(t, err)

	cfg, err := bind(t, merged)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Host.HTTPAddress())
	assert.Empty(t, cfg.Host.GRPCAddress())
	assert.False(t, cfg.Host.RateLimit.Enabled())
	assert.True(t, cfg.Migration.Required)
	assert.Empty(t, cfg.Features)
}

func TestBind_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(m map[string]string)
		wantErr error
	}{
		{
			name:    "unknown log level",
			mutate:  func(m map[string]string) { m["logging.minimumLevel"] = "chatty" },
			wantErr: ErrInvalidLoggingConfigs,
		},
		{
			name:    "port zero",
			mutate:  func(m map[string]string) { m["host.port"] = "0" },
			wantErr: ErrInvalidHostConfigs,
		},
		{
			name:    "port too large",
			mutate:  func(m map[string]string) { m["host.port"] = "70000" },
			wantErr: ErrInvalidHostConfigs,
		},
		{
			name:    "grpc port clashes",
			mutate:  func(m map[string]string) { m["host.grpcPort"] = "8080" },
			wantErr: ErrInvalidHostConfigs,
		},
		{
			name:    "no shutdown timeout",
			mutate:  func(m map[string]string) { m["host.shutdownTimeout"] = "0s" },
			wantErr: ErrInvalidHostConfigs,
		},
		{
			name:    "negative rate limit",
			mutate:  func(m map[string]string) { m["host.rateLimit.burst"] = "-1" },
			wantErr: ErrInvalidHostConfigs,
		},
		{
			name:    "cert without key",
			mutate:  func(m map[string]string) { m["host.tls.certFile"] = "/tls/cert.pem" },
			wantErr: ErrInvalidTLSConfigs,
		},
		{
			name:    "dsn required by migrations",
			mutate:  func(m map[string]string) { m["storage.db.dsn"] = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "non boolean feature flag",
			mutate:  func(m map[string]string) { m["features.beta"] = "sometimes" },
			wantErr: ErrInvalidFeatureFlag,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := maps.Clone(validValues())
			tt.mutate(values)

			_, err := bind(t, values)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBind_EmptyDSNAllowedWithoutMigrations(t *testing.T) {
	values := validValues()
	values["storage.db.dsn"] = ""
	values["migration.required"] = "false"

	cfg, err := bind(t, values)
	require.NoError(t, err)
	assert.False(t, cfg.Migration.Required)
}

func TestBind_TypeMismatch(t *testing.T) {
	values := validValues()
	values["host.port"] = "eighty"

	cfg, err := bind(t, values)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error binding configuration")
}
