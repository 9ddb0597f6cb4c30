package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/agbru/litperf/internal/chart"
	apperrors "github.com/agbru/litperf/internal/errors"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// getValidator returns the singleton validator instance.
func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their flag name.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if name := fld.Tag.Get("flag"); name != "" {
				return name
			}
			return fld.Name
		})
		_ = validate.RegisterValidation("chartfile", func(fl validator.FieldLevel) bool {
			return chart.IsSupportedFormat(fl.Field().String())
		})
	})
	return validate
}

// Validate checks cfg against its struct tags and returns a ConfigError
// describing every invalid field.
func Validate(cfg AppConfig) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewConfigError("invalid configuration: %v", err)
	}
	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, fieldName(fe)+" "+formatValidationError(fe))
	}
	return apperrors.NewConfigError("invalid configuration: %s", strings.Join(messages, "; "))
}

// fieldName strips the struct prefix from namespaced names such as
// "AppConfig.fail[search]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// formatValidationError creates a human-readable error message.
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return "must be one of: " + fe.Param() + " (got " + fmt.Sprint(fe.Value()) + ")"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "chartfile":
		return "must end in .png, .svg, .pdf or .jpg"
	default:
		return "is invalid"
	}
}
