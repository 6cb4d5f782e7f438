package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// Templates keyed by validation tag. {field} and {param} are substituted
// from the failed rule; tags without a template fall back to the library
// error text.
var messages = map[string]string{
	"required": "{field} is required",
	"email":    "{field} must be a valid email address",
	"oneof":    "{field} must be one of {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"datetime": "{field} must match the {param} date format",
}

func render(template string, fieldErr val.FieldError) string {
	msg := strings.ReplaceAll(template, "{field}", fieldErr.Field())

	return strings.ReplaceAll(msg, "{param}", fieldErr.Param())
}

// message maps the first templated field error to a readable sentence.
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, fieldErr := range valErrors {
		if template, ok := messages[fieldErr.Tag()]; ok {
			return render(template, fieldErr)
		}
	}

	return valErrors.Error()
}
