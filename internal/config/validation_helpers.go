package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tipper/internal/textsize"
	"github.com/alexisbeaulieu97/tipper/internal/tip"
	tippererrors "github.com/alexisbeaulieu97/tipper/pkg/errors"
)

// convertValidationError normalizes validator errors into tipper validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		return &tippererrors.ValidationError{
			Field:   field,
			Value:   ve.Value(),
			Message: describeTag(field, ve),
			Err:     err,
		}
	}

	return tippererrors.NewValidationError("config", err.Error(), err)
}

func describeTag(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "tip_percentage":
		return fmt.Sprintf("must be one of %s", joinInts(tip.Percentages()))
	case "text_size":
		return fmt.Sprintf("must be one of %s", strings.Join(textsize.Names(), ", "))
	case "locale_name":
		return "must be a locale such as en_US.UTF-8 or de-CH"
	case "iso4217":
		return "must be an uppercase ISO 4217 currency code"
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, " ")
}

// yamlishFieldName turns "Config.Log.Level" into "log.level".
func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, toSnake(part))
	}
	return strings.Join(lowered, ".")
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
