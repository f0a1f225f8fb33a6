package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevanet/notify/pkg/config"
)

type testConfig struct {
	Host     string `env:"TEST_CFG_HOST"`
	Port     int    `env:"TEST_CFG_PORT" envDefault:"587"`
	Required string `env:"TEST_CFG_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("loads values and defaults", func(t *testing.T) {
		t.Setenv("TEST_CFG_HOST", "smtp.example.com")
		t.Setenv("TEST_CFG_REQUIRED", "present")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "smtp.example.com", cfg.Host)
		assert.Equal(t, 587, cfg.Port)
		assert.Equal(t, "present", cfg.Required)
	})

	t.Run("missing required value fails", func(t *testing.T) {
		t.Setenv("TEST_CFG_HOST", "smtp.example.com")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil target rejected", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required value", func(t *testing.T) {
		var cfg testConfig
		assert.Panics(t, func() {
			config.MustLoad(&cfg)
		})
	})

	t.Run("does not panic when environment is complete", func(t *testing.T) {
		t.Setenv("TEST_CFG_REQUIRED", "present")

		var cfg testConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
	})
}
