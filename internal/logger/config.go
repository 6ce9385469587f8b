package logger

import (
	"log/slog"
	"strings"
)

// Config describes the service's slog handler
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

var levels = map[string]slog.Level{
	LogLevelDebug:   slog.LevelDebug,
	LogLevelInfo:    slog.LevelInfo,
	LogLevelWarn:    slog.LevelWarn,
	LogLevelWarning: slog.LevelWarn,
	LogLevelError:   slog.LevelError,
}

// ConfigFor builds the handler config for an environment.
// An empty level or format takes the environment's default: info and json in
// production, debug and text anywhere else. Source positions are only recorded
// for debug output outside production.
func ConfigFor(environment, level, format, version string) Config {
	prod := environment == EnvironmentProduction

	c := Config{
		Level:       strings.ToLower(strings.TrimSpace(level)),
		Format:      strings.ToLower(strings.TrimSpace(format)),
		ServiceName: DefaultServiceName,
		Version:     version,
		Environment: environment,
	}
	if c.Level == "" {
		c.Level = LogLevelDebug
		if prod {
			c.Level = LogLevelInfo
		}
	}
	if c.Format == "" {
		c.Format = LogFormatText
		if prod {
			c.Format = LogFormatJSON
		}
	}
	if c.Version == "" {
		c.Version = DefaultVersion
	}
	c.AddSource = !prod && c.Level == LogLevelDebug
	return c
}

// LogLevel maps the configured level name to a slog.Level, defaulting to info
func (c Config) LogLevel() slog.Level {
	if lvl, ok := levels[strings.ToLower(c.Level)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns the attributes stamped on every record.
// Empty values are left off.
func (c Config) BaseAttributes() []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	for _, kv := range [][2]string{
		{AttrKeyService, c.ServiceName},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}
