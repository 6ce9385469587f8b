package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=text json"`
	Environment string `validate:"oneof=dev staging prod test"`
	Version     string `validate:"required"`
	LogDir      string `validate:"required"`

	CatalogSource string `validate:"required,location"`
	NewsSource    string `validate:"required,location"`
	DiffSource    string `validate:"required,location"`

	FetchTimeout  time.Duration `validate:"min=1ms"`
	FeedCacheSize int           `validate:"min=1,max=1024"`
	FeedCacheTTL  time.Duration `validate:"min=1s"`

	SuggestionLimit   int `validate:"min=1,max=100"`
	HighTierDropLevel int `validate:"min=0"`

	TrustedProxies []string `validate:"dive,ip|cidr"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnvAsInt(EnvPort, DefaultPort),
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   getEnv(EnvLogFormat, DefaultLogFormat),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		Version:     getEnv(EnvVersion, DefaultVersion),
		LogDir:      getEnv(EnvLogDir, DefaultLogDir),

		CatalogSource: getEnv(EnvCatalogSource, DefaultCatalogSource),
		NewsSource:    getEnv(EnvNewsSource, DefaultNewsSource),
		DiffSource:    getEnv(EnvDiffSource, DefaultDiffSource),

		FetchTimeout:  getEnvAsDuration(EnvFetchTimeout, DefaultFetchTimeout),
		FeedCacheSize: getEnvAsInt(EnvFeedCacheSize, DefaultFeedCacheSize),
		FeedCacheTTL:  getEnvAsDuration(EnvFeedCacheTTL, DefaultFeedCacheTTL),

		SuggestionLimit:   getEnvAsInt(EnvSuggestionLimit, DefaultSuggestionLimit),
		HighTierDropLevel: getEnvAsInt(EnvHighTierDropLevel, DefaultHighTierDropLevel),

		TrustedProxies: getEnvAsList(EnvTrustedProxies),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "prod"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a duration variable, falling back to the default when unset or invalid
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty elements
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
