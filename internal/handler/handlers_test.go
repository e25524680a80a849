package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/bootcamp-webapi/internal/config"
	"github.com/MKhiriev/bootcamp-webapi/internal/logger"
	"github.com/MKhiriev/bootcamp-webapi/internal/service"
)

func newTestServices() *service.Services {
	return &service.Services{}
}

func TestNewHandlers_HTTPAndGRPC(t *testing.T) {
	cfg := config.Host{BindAddress: "127.0.0.1", Port: 8080, GRPCPort: 9090}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.GRPC)
}

func TestNewHandlers_OnlyHTTP(t *testing.T) {
	cfg := config.Host{BindAddress: "127.0.0.1", Port: 8080}

	h, err := NewHandlers(newTestServices(), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.HTTP)
	assert.Nil(t, h.GRPC, "gRPC is disabled when host.grpcPort is 0")
}

func TestNewHandlers_NoServices(t *testing.T) {
	h, err := NewHandlers(nil, config.Host{Port: 8080}, logger.Nop())

	require.ErrorIs(t, err, errNoServicesProvided)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.Host{Port: 8080, GRPCPort: 9090}

	h1, err := NewHandlers(newTestServices(), cfg, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandlers(newTestServices(), cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, h1.HTTP, h2.HTTP)
	assert.NotSame(t, h1.GRPC, h2.GRPC)
}
