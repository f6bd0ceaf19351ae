package config

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/tipper/internal/locale"
	"github.com/alexisbeaulieu97/tipper/internal/textsize"
	"github.com/alexisbeaulieu97/tipper/internal/tip"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("tip_percentage", func(fl validator.FieldLevel) bool {
			switch fl.Field().Kind() {
			case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
				return tip.IsSupported(int(fl.Field().Int()))
			default:
				return false
			}
		})

		_ = v.RegisterValidation("text_size", func(fl validator.FieldLevel) bool {
			_, err := textsize.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("locale_name", func(fl validator.FieldLevel) bool {
			_, ok := locale.ParseTag(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
