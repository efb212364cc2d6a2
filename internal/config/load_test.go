package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets up environment variables for testing
func setupEnv(t *testing.T, envVars map[string]string) func() {
	// Save current environment values
	originalValues := make(map[string]string)
	for name := range envVars {
		originalValues[name] = os.Getenv(name)
	}

	// Set new environment variables
	for name, value := range envVars {
		if value == "" {
			require.NoError(t, os.Unsetenv(name))
			continue
		}
		err := os.Setenv(name, value)
		require.NoError(t, err, "Failed to set environment variable %s", name)
	}

	// Return cleanup function
	return func() {
		for name, value := range originalValues {
			if value == "" {
				os.Unsetenv(name)
			} else {
				os.Setenv(name, value)
			}
		}
	}
}

// TestLoadDefaults verifies that the Load function sets the expected default
// values when only the required credential is set.
func TestLoadDefaults(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"LINGO_LLM_GEMINI_API_KEY": "test-api-key",
		"GOOGLE_API_KEY":           "",
		"LINGO_SERVER_PORT":        "",
		"LINGO_SERVER_LOG_LEVEL":   "",
		"LINGO_LLM_MODEL_NAME":     "",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err, "Load() should not return an error with default values")
	require.NotNil(t, cfg, "Load() should return a non-nil config")
	assert.Equal(t, 8080, cfg.Server.Port, "Default server port should be 8080")
	assert.Equal(t, "info", cfg.Server.LogLevel, "Default log level should be 'info'")
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName, "Default model should be gemini-2.0-flash")
	assert.Equal(t, 20, cfg.LLM.TimeoutSeconds, "Default timeout should be 20 seconds")
}

// TestLoadFromEnv verifies that the Load function correctly reads values from
// environment variables.
func TestLoadFromEnv(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"LINGO_SERVER_PORT":         "9090",
		"LINGO_SERVER_LOG_LEVEL":    "debug",
		"LINGO_LLM_GEMINI_API_KEY":  "test-api-key",
		"LINGO_LLM_MODEL_NAME":      "gemini-1.5-pro",
		"LINGO_LLM_TIMEOUT_SECONDS": "45",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-api-key", cfg.LLM.GeminiAPIKey)
	assert.Equal(t, "gemini-1.5-pro", cfg.LLM.ModelName)
	assert.Equal(t, 45, cfg.LLM.TimeoutSeconds)
}

// TestLoadCredentialAlias verifies that the conventional GOOGLE_API_KEY name
// is accepted for the provider credential.
func TestLoadCredentialAlias(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"LINGO_LLM_GEMINI_API_KEY": "",
		"GOOGLE_API_KEY":           "alias-api-key",
	})
	defer cleanup()

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "alias-api-key", cfg.LLM.GeminiAPIKey)
}

// TestLoadMissingCredential verifies that the process fails fast when no
// provider credential is supplied at all.
func TestLoadMissingCredential(t *testing.T) {
	cleanup := setupEnv(t, map[string]string{
		"LINGO_LLM_GEMINI_API_KEY": "",
		"GOOGLE_API_KEY":           "",
	})
	defer cleanup()

	cfg, err := Load()

	require.Error(t, err, "Load() should fail when the credential is absent")
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "validation")
}

// TestLoadInvalidValues verifies that out-of-range settings are rejected.
func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
	}{
		{
			name: "Port out of range",
			envVars: map[string]string{
				"LINGO_LLM_GEMINI_API_KEY": "test-api-key",
				"LINGO_SERVER_PORT":        "70000",
			},
		},
		{
			name: "Unknown log level",
			envVars: map[string]string{
				"LINGO_LLM_GEMINI_API_KEY": "test-api-key",
				"LINGO_SERVER_LOG_LEVEL":   "verbose",
			},
		},
		{
			name: "Non-positive timeout",
			envVars: map[string]string{
				"LINGO_LLM_GEMINI_API_KEY":  "test-api-key",
				"LINGO_LLM_TIMEOUT_SECONDS": "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupEnv(t, tt.envVars)
			defer cleanup()

			cfg, err := Load()

			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
