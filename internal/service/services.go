// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/models"
)

// Services groups the services consumed by the transport handlers.
type Services struct {
	AppInfoService AppInfoService
	FeatureService FeatureService
}

func NewServices(cfg *config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AppInfoService: appInfoService,
		FeatureService: NewFeatureService(cfg.Features, logger),
	}, nil
}
