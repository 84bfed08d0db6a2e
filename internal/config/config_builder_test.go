package config

import (
	"encoding/json"
	"flag"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// newTestBuilder returns a builder that parses args on a private flag set
// instead of the process command line.
func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.flagSet = flag.NewFlagSet("test", flag.ContinueOnError)
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Same(t, flag.CommandLine, b.flagSet)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a builder without sources fails
// validation because no bind address is set.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_DefaultsOnly verifies that defaults alone form a valid config
// bound to an ephemeral loopback port.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newTestBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:0", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, DefaultVersion, cfg.App.Version)
	assert.False(t, cfg.Server.GRPCDisabled)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newTestBuilder().withDefaults()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "2.0.0"}, Server: Server{HTTPAddress: "127.0.0.1:8000"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7000")

	b := newTestBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "127.0.0.1:7000", b.configs[0].Server.HTTPAddress)
}

// TestWithEnv_InvalidValue verifies that an unparsable env value is recorded
// as a builder error.
func TestWithEnv_InvalidValue(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "forever")

	b := newTestBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReadsArgs verifies that flags are parsed from the builder args.
func TestWithFlags_ReadsArgs(t *testing.T) {
	b := newTestBuilder("-a", "127.0.0.1:0", "-no-grpc")
	b.withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "127.0.0.1:0", b.configs[0].Server.HTTPAddress)
	assert.True(t, b.configs[0].Server.GRPCDisabled)
}

// TestWithFlags_UnknownFlag verifies that parse errors are recorded.
func TestWithFlags_UnknownFlag(t *testing.T) {
	b := newTestBuilder("-unknown")
	b.flagSet.SetOutput(io.Discard)
	b.withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that nothing is appended without a JSON path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newTestBuilder().withDefaults()
	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFile verifies that the JSON file named by an earlier
// source is loaded and wins over it.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":    map[string]any{"version": "json-version"},
		"server": map[string]any{"shutdown_timeout": "3s"},
	})

	b := newTestBuilder("-c", path, "-version", "flag-version").
		withDefaults().
		withFlags().
		withJSON()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "json-version", cfg.App.Version)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "127.0.0.1:0", cfg.Server.HTTPAddress)
}

// TestWithJSON_MissingFile verifies that a missing JSON file is an error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newTestBuilder("-config", "/does/not/exist.json").withFlags().withJSON()

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.Error(t, err)
}

// ── full chain ────────────────────────────────────────────────────────────────

// TestBuilder_Priority verifies defaults < env < flags.
func TestBuilder_Priority(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:7001")
	t.Setenv("APP_VERSION", "env-version")

	cfg, err := newTestBuilder("-a", "127.0.0.1:7002").
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7002", cfg.Server.HTTPAddress)
	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, DefaultLogLevel, cfg.App.LogLevel)
}

// TestLoadStructuredConfig verifies that flags are read from the given args
// and merged over the defaults.
func TestLoadStructuredConfig(t *testing.T) {
	setEnvVars(t, nil)

	cfg, err := LoadStructuredConfig(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-a", "127.0.0.1:9999999", "-no-grpc"})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999999", cfg.Server.HTTPAddress)
	assert.True(t, cfg.Server.GRPCDisabled)
	assert.Equal(t, DefaultRequestTimeout, cfg.Server.RequestTimeout)
}
