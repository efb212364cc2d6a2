package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Default configuration values applied when neither the environment nor a
// config file provides a setting.
const (
	defaultPort            = 8080
	defaultLogLevel        = "info"
	defaultModelName       = "gemini-2.0-flash"
	defaultTimeoutSeconds  = 20
	defaultMaxOutputTokens = 0
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files. A
// .env file in the working directory is loaded first if present, so local
// development matches deployed environments.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	// Best effort: a missing .env file is not an error.
	_ = godotenv.Load()

	v := viper.New()

	// Defaults
	v.SetDefault("server.port", defaultPort)
	v.SetDefault("server.log_level", defaultLogLevel)
	v.SetDefault("llm.model_name", defaultModelName)
	v.SetDefault("llm.timeout_seconds", defaultTimeoutSeconds)
	v.SetDefault("llm.max_output_tokens", defaultMaxOutputTokens)

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with LINGO_ prefix, e.g. LINGO_SERVER_PORT.
	v.SetEnvPrefix("LINGO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The provider credential is also accepted under its conventional name
	// so deployments that already export GOOGLE_API_KEY keep working.
	if err := v.BindEnv("llm.gemini_api_key", "LINGO_LLM_GEMINI_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind credential environment variable: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
