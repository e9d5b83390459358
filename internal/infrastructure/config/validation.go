package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var configValidator = newConfigValidator()

func newConfigValidator() *validator.Validate {
	v := validator.New()
	v.RegisterStructValidation(validatePostgresTarget, DatabaseConfig{})
	return v
}

// validatePostgresTarget requires either a URL or a host and database name
// when the compile log lives in postgres
func validatePostgresTarget(sl validator.StructLevel) {
	db := sl.Current().Interface().(DatabaseConfig)
	if db.Type != "postgres" || db.URL != "" {
		return
	}
	if db.Host == "" {
		sl.ReportError(db.Host, "Host", "Host", "required_without_url", "")
	}
	if db.Name == "" {
		sl.ReportError(db.Name, "Name", "Name", "required_without_url", "")
	}
}

// ValidateConfig checks the loaded configuration against its tags
func ValidateConfig(cfg *Config) error {
	err := configValidator.Struct(cfg)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf("%s: %s (value: '%v')", e.Namespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}
