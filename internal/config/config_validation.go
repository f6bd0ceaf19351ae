package config

import (
	tippererrors "github.com/alexisbeaulieu97/tipper/pkg/errors"
)

// ValidateConfig performs structural validation on an entire configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return tippererrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	return nil
}

// Validate checks any struct tagged for the shared validator, reporting the
// first failure as a ValidationError.
func Validate(v any) error {
	return convertValidationError(GetValidator().Struct(v))
}
