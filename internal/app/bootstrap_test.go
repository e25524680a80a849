package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrap(t *testing.T) {
	opts, log, err := Bootstrap([]string{"--log-level", "debug", "--startup-timeout", "30s", "--set", "host.port=9000"})
	require.NoError(t, err)
	require.NotNil(t, log)

	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, 30*time.Second, opts.StartupTimeout)
	assert.Equal(t, []string{"host.port=9000"}, opts.CommandLineOverrides())
}

func TestBootstrap_Failures(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantCode  ExitCode
		wantStage string
	}{
		{"unknown log level", []string{"--log-level", "chatty"}, ExitLogging, StageLogging},
		{"unknown flag", []string{"--no-such-flag"}, ExitConfig, StageOptions},
		{"negative startup timeout", []string{"--startup-timeout=-1s"}, ExitConfig, StageOptions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Bootstrap(tt.args)
			require.Error(t, err)
			assert.Equal(t, tt.wantCode, CodeOf(err))
			assert.Equal(t, tt.wantStage, StageOf(err))
		})
	}
}
