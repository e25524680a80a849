package service

import (
	"context"
	"maps"
	"strings"

	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
)

type featureService struct {
	features map[string]bool

	logger *logger.Logger
}

// NewFeatureService takes a snapshot of features; later changes to the map
// are not observed.
func NewFeatureService(features map[string]bool, logger *logger.Logger) FeatureService {
	snapshot := make(map[string]bool, len(features))
	for name, enabled := range features {
		snapshot[strings.ToLower(name)] = enabled
	}

	return &featureService{
		features: snapshot,
		logger:   logger,
	}
}

func (s *featureService) IsEnabled(ctx context.Context, name string) bool {
	return s.features[strings.ToLower(name)]
}

func (s *featureService) Features(ctx context.Context) map[string]bool {
	return maps.Clone(s.features)
}
