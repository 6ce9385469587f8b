package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("location", validateLocation)
	})
	return validate
}

// validateLocation accepts a file path or an http(s) URL
func validateLocation(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	if strings.Contains(v, "://") {
		return strings.HasPrefix(v, "http://") || strings.HasPrefix(v, "https://")
	}
	return strings.TrimSpace(v) != ""
}

// Validate checks cfg against its struct tags and lists every offending field
func Validate(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s=%v)", fe.Field(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
}

// Warnings returns non-fatal configuration issues worth logging at startup
func Warnings(cfg *Config) []string {
	var warnings []string

	for name, src := range map[string]string{
		EnvCatalogSource: cfg.CatalogSource,
		EnvNewsSource:    cfg.NewsSource,
		EnvDiffSource:    cfg.DiffSource,
	} {
		if strings.HasPrefix(src, "http://") {
			warnings = append(warnings, fmt.Sprintf(WarnInsecureSource, name))
		}
	}

	if cfg.IsProduction() {
		if len(cfg.TrustedProxies) == 0 {
			warnings = append(warnings, WarnNoTrustedProxies)
		}
		if cfg.LogLevel == "debug" {
			warnings = append(warnings, WarnDebugInProduction)
		}
	}

	return warnings
}
