package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/models"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	cfg := config.App{Name: "bootcamp", Version: "1.0.0"}

	svc, err := NewAppInfoService(cfg, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_MissingIdentity(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.App
		wantErr error
	}{
		{"empty version", config.App{Name: "bootcamp"}, ErrVersionIsNotSpecified},
		{"empty name", config.App{Version: "1.0.0"}, ErrNameIsNotSpecified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, models.AppBuildInfo{}, logger.Nop())

			assert.Nil(t, svc)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// GetAppVersion / GetAppInfo
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Name: "bootcamp", Version: "3.1.4"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Name: "bootcamp", Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}

func TestGetAppInfo(t *testing.T) {
	build := models.NewAppBuildInfo("v1.2.3", "2026-10-01", "4f1c2a")
	svc, err := NewAppInfoService(config.App{Name: "bootcamp", Version: "1.2.3"}, build, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.AppInfo{Name: "bootcamp", Version: "1.2.3", Build: build}, svc.GetAppInfo(context.Background()))
}

// ─────────────────────────────────────────────
// FeatureService
// ─────────────────────────────────────────────

func TestFeatureService(t *testing.T) {
	flags := map[string]bool{"beta": true, "newui": false}
	svc := NewFeatureService(flags, logger.Nop())
	ctx := context.Background()

	assert.True(t, svc.IsEnabled(ctx, "beta"))
	assert.True(t, svc.IsEnabled(ctx, "BETA"))
	assert.False(t, svc.IsEnabled(ctx, "newui"))
	assert.False(t, svc.IsEnabled(ctx, "unknown"))

	flags["unknown"] = true
	assert.False(t, svc.IsEnabled(ctx, "unknown"), "service keeps its own snapshot")

	got := svc.Features(ctx)
	got["beta"] = false
	assert.True(t, svc.IsEnabled(ctx, "beta"))
}

func TestFeatureService_NilMap(t *testing.T) {
	svc := NewFeatureService(nil, logger.Nop())
	assert.Empty(t, svc.Features(context.Background()))
}

// ─────────────────────────────────────────────
// NewServices
// ─────────────────────────────────────────────

func TestNewServices(t *testing.T) {
	cfg := &config.StructuredConfig{
		App:      config.App{Name: "bootcamp", Version: "1.0.0"},
		Features: map[string]bool{"beta": true},
	}

	services, err := NewServices(cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))
	assert.True(t, services.FeatureService.IsEnabled(context.Background(), "beta"))

	_, err = NewServices(&config.StructuredConfig{}, models.AppBuildInfo{}, logger.Nop())
	require.ErrorIs(t, err, ErrNameIsNotSpecified)
}
