package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a new validator instance that reports field names by their
// mapstructure key, so errors read like the config file ("worker.count").
func New() *Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}
