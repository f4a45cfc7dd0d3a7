package config

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/spf13/viper"

	"github.com/aiqualify/golang_services/internal/platform/environment"
)

// Config holds all configuration for the edge functions host.
type Config struct {
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	// BuildMode is handed to environment.Init; "production" selects the public site URL.
	BuildMode string `mapstructure:"BUILD_MODE"`

	EdgeFunctionsPort      int  `mapstructure:"EDGE_FUNCTIONS_PORT"`
	MetricsEnabled         bool `mapstructure:"METRICS_ENABLED"`
	ShutdownTimeoutSeconds int  `mapstructure:"SHUTDOWN_TIMEOUT_SECONDS"`
}

// Load reads config.defaults.yaml (if any) and APP_-prefixed environment variables.
// serviceName is only used for log context.
func Load(serviceName string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config.defaults")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.SetEnvPrefix("APP") // APP_LOG_LEVEL, APP_BUILD_MODE etc.

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BUILD_MODE", environment.BuildMode())
	v.SetDefault("EDGE_FUNCTIONS_PORT", 8000)
	v.SetDefault("METRICS_ENABLED", true)
	v.SetDefault("SHUTDOWN_TIMEOUT_SECONDS", 30)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
		slog.Info("Base configuration file ('config.defaults.yaml') not found; using defaults and environment variables.", "service", serviceName)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
