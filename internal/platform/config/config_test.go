package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aiqualify/golang_services/internal/platform/environment"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("edge_functions")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.BuildMode)
	assert.Equal(t, 8000, cfg.EdgeFunctionsPort)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 30, cfg.ShutdownTimeoutSeconds)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_BUILD_MODE", "production")
	t.Setenv("APP_EDGE_FUNCTIONS_PORT", "9090")
	t.Setenv("APP_METRICS_ENABLED", "false")

	cfg, err := Load("edge_functions")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.EdgeFunctionsPort)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, "production", cfg.BuildMode)
}

func TestLoad_ProductionBuildModeDrivesSiteURL(t *testing.T) {
	prev := environment.BuildMode()
	t.Cleanup(func() { environment.Init(prev) })
	t.Setenv("APP_BUILD_MODE", "production")

	cfg, err := Load("edge_functions")
	require.NoError(t, err)
	environment.Init(cfg.BuildMode)

	assert.Equal(t, "https://tryaiqualify.com", environment.SiteURL())
}
