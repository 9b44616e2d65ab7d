package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/StefanoAus/icoffee-backend/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := config.Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5, cfg.LoginRateLimit)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATA_DIR", "/var/lib/icoffee")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOGIN_RATE_LIMIT", "20")

	cfg := config.Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/var/lib/icoffee", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20, cfg.LoginRateLimit)
}

func TestLoad_InvalidRateLimitFallsBack(t *testing.T) {
	tests := []string{"abc", "0", "-3"}

	for _, value := range tests {
		t.Run(value, func(t *testing.T) {
			t.Setenv("LOGIN_RATE_LIMIT", value)
			assert.Equal(t, 5, config.Load().LoginRateLimit)
		})
	}
}
