package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newOptionsBuilder ─────────────────────────────────────────────────────────

func TestNewOptionsBuilder_InitialState(t *testing.T) {
	b := newOptionsBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.options)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that zero options are
// rejected: a bootstrap timeout is mandatory.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	opts, err := newOptionsBuilder().build()
	assert.Nil(t, opts)
	require.ErrorIs(t, err, ErrInvalidOptions)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newOptionsBuilder()
	b.err = assert.AnError

	opts, err := b.build()
	assert.Nil(t, opts)
	require.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterLayersOverride verifies that non-zero fields of later
// layers win and zero fields keep the earlier value.
func TestBuild_LaterLayersOverride(t *testing.T) {
	b := newOptionsBuilder().withDefaults()
	b.options = append(b.options,
		&Options{LogLevel: "info", JSONFilePath: "/env.json"},
		&Options{LogLevel: "warning", Overrides: []string{"a=b"}},
	)

	opts, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "warning", opts.LogLevel)
	assert.Equal(t, "/env.json", opts.JSONFilePath)
	assert.Equal(t, 60*time.Second, opts.StartupTimeout)
	assert.Equal(t, "APP_", opts.EnvPrefix)
	assert.Equal(t, []string{"a=b"}, opts.Overrides)
}

func TestBuild_InvalidLogLevel(t *testing.T) {
	b := newOptionsBuilder().withDefaults()
	b.options = append(b.options, &Options{LogLevel: "loud"})

	_, err := b.build()
	require.ErrorIs(t, err, ErrInvalidOptions)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newOptionsBuilder()
	assert.Same(t, b, b.withEnv())
	assert.Len(t, b.options, 1)
}

func TestWithEnv_InvalidAddressSetsError(t *testing.T) {
	t.Setenv("BOOTSTRAP_ADDRESS", "nowhere")

	b := newOptionsBuilder().withEnv()
	require.Error(t, b.err)
	assert.Empty(t, b.options)
}

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newOptionsBuilder().withFlags([]string{"--no-such-flag"})
	require.Error(t, b.err)
	assert.Empty(t, b.options)
}

// ── GetOptions ────────────────────────────────────────────────────────────────

func TestGetOptions_Defaults(t *testing.T) {
	opts, err := GetOptions(nil)
	require.NoError(t, err)

	assert.Equal(t, "trace", opts.LogLevel)
	assert.Equal(t, 60*time.Second, opts.StartupTimeout)
	assert.Equal(t, "APP_", opts.EnvPrefix)
	assert.Empty(t, opts.JSONFilePath)
	assert.Empty(t, opts.CommandLineOverrides())
}

func TestGetOptions_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("BOOTSTRAP_LOG_LEVEL", "info")
	t.Setenv("BOOTSTRAP_STARTUP_TIMEOUT", "10s")
	t.Setenv("BOOTSTRAP_CONFIG_FILE", "/env/appsettings.json")

	opts, err := GetOptions([]string{"--log-level", "debug"})
	require.NoError(t, err)

	assert.Equal(t, "debug", opts.LogLevel)
	assert.Equal(t, 10*time.Second, opts.StartupTimeout)
	assert.Equal(t, "/env/appsettings.json", opts.JSONFilePath)
}

func TestOptions_CommandLineOverrides(t *testing.T) {
	opts := &Options{
		Address:   NetAddress{Host: "127.0.0.1", Port: 9000},
		Overrides: []string{"host.port=9100", "features.beta=true"},
	}

	assert.Equal(t, []string{
		"host.bindAddress=127.0.0.1",
		"host.port=9000",
		"host.port=9100",
		"features.beta=true",
	}, opts.CommandLineOverrides())
}
