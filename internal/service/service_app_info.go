package service

import (
	"context"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/models"
)

type appInfoService struct {
	appName    string
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

// ValidateIdentity reports whether cfg carries the name and version the
// app info service needs.
func ValidateIdentity(cfg config.App) error {
	if cfg.Name == "" {
		return ErrNameIsNotSpecified
	}
	if cfg.Version == "" {
		return ErrVersionIsNotSpecified
	}
	return nil
}

func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if err := ValidateIdentity(cfg); err != nil {
		return nil, err
	}

	return &appInfoService{
		appName:    cfg.Name,
		appVersion: cfg.Version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.AppInfo {
	return models.AppInfo{
		Name:    s.appName,
		Version: s.appVersion,
		Build:   s.build,
	}
}
