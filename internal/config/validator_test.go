package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetenv(t *testing.T, key string) {
	t.Helper()
	require.NoError(t, os.Unsetenv(key))
}

func validConfig() *Config {
	return &Config{
		Port:              8080,
		LogLevel:          "info",
		LogFormat:         "text",
		Environment:       "dev",
		Version:           "dev",
		LogDir:            "logs",
		CatalogSource:     "public/items.json",
		NewsSource:        "public/news.txt",
		DiffSource:        "https://example.com/diff.txt",
		FetchTimeout:      time.Second,
		FeedCacheSize:     8,
		FeedCacheTTL:      time.Minute,
		SuggestionLimit:   5,
		HighTierDropLevel: 1000,
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(validConfig()))

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero port", func(c *Config) { c.Port = 0 }, "Port"},
		{"unknown level", func(c *Config) { c.LogLevel = "trace" }, "LogLevel"},
		{"unknown environment", func(c *Config) { c.Environment = "qa" }, "Environment"},
		{"empty source", func(c *Config) { c.NewsSource = "" }, "NewsSource"},
		{"unsupported scheme", func(c *Config) { c.DiffSource = "s3://bucket/diff.txt" }, "DiffSource"},
		{"zero timeout", func(c *Config) { c.FetchTimeout = 0 }, "FetchTimeout"},
		{"cache too large", func(c *Config) { c.FeedCacheSize = 5000 }, "FeedCacheSize"},
		{"zero suggestion limit", func(c *Config) { c.SuggestionLimit = 0 }, "SuggestionLimit"},
		{"negative threshold", func(c *Config) { c.HighTierDropLevel = -1 }, "HighTierDropLevel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestWarnings(t *testing.T) {
	t.Run("clean dev config", func(t *testing.T) {
		assert.Empty(t, Warnings(validConfig()))
	})

	t.Run("plain http source", func(t *testing.T) {
		cfg := validConfig()
		cfg.CatalogSource = "http://example.com/items.json"

		warnings := Warnings(cfg)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], EnvCatalogSource)
	})

	t.Run("production without proxies at debug level", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "prod"
		cfg.LogLevel = "debug"

		warnings := Warnings(cfg)
		assert.Contains(t, warnings, WarnNoTrustedProxies)
		assert.Contains(t, warnings, WarnDebugInProduction)
	})
}
