package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// messages maps validator tags to human-readable templates. Tags without an
// entry fall back to the library's default error text.
var messages = map[string]string{
	"required":  "{field} is required",
	"gte":       "{field} must be greater than or equal to {param}",
	"lte":       "{field} must be less than or equal to {param}",
	"oneof":     "{field} must be one of {param}",
	"max":       "{field} must be less than or equal to {param}",
	"min":       "{field} must be greater than or equal to {param}",
	"email":     "{field} must be a valid email address",
	"url":       "{field} must be a valid URL",
	"mimetypes": "{field} must be one of the allowed content types: {param}",
}

// message renders the first validation failure; requests are rejected on the
// first broken rule rather than accumulating every violation.
func message(err error) string {
	var valErrors val.ValidationErrors

	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template := messages[valErr.Tag()]
		if template == "" {
			continue
		}

		template = strings.ReplaceAll(template, "{field}", valErr.Field())

		return strings.ReplaceAll(template, "{param}", valErr.Param())
	}

	return valErrors.Error()
}
