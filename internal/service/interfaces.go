package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/bootcamp-webapi/models"
)

// AppInfoService reports the identity of the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// FeatureService answers feature-flag queries from the resolved
// configuration.
type FeatureService interface {
	// IsEnabled reports whether the named flag is set to true. Unknown
	// flags are disabled.
	IsEnabled(ctx context.Context, name string) bool
	// Features returns a copy of every configured flag.
	Features(ctx context.Context) map[string]bool
}
