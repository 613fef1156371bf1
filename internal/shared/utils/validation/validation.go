package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	// Report fields by their json name so error bodies match the wire format.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(jsonTagName)
	}
}

func jsonTagName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "" || name == "-" {
		return field.Name
	}
	return name
}

// FieldErrors flattens a binding error into per-field messages for 422 bodies.
func FieldErrors(err error) map[string][]string {
	errs := make(map[string][]string)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			field := fieldErr.Field()
			errs[field] = append(errs[field], message(fieldErr))
		}
		return errs
	}

	// Malformed payloads (bad JSON, wrong types) have no field to pin.
	errs["payload"] = []string{"The request payload could not be parsed."}
	return errs
}

func message(fieldErr validator.FieldError) string {
	field := fieldErr.Field()
	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "url":
		return fmt.Sprintf("The %s must be a valid URL.", field)
	case "min":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", field, fieldErr.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", field, fieldErr.Param())
	case "max":
		if fieldErr.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", field, fieldErr.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", field, fieldErr.Param())
	case "uuid":
		return fmt.Sprintf("The %s must be a valid UUID.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
