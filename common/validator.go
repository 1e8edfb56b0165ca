package common

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateAndDecode decodes the JSON request body into payload and runs its
// validate tags. Failures come back as a 400 AppError listing every field.
func ValidateAndDecode(r *http.Request, payload interface{}) *AppError {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		if field, ok := unknownField(err); ok {
			return NewValidationError(map[string]string{field: "Unknown field."})
		}
		return NewAppError(http.StatusBadRequest, "Invalid request body", err)
	}

	if err := validate.Struct(payload); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return NewAppError(http.StatusBadRequest, "Invalid request body", err)
		}
		fields := make(map[string]string, len(validationErrors))
		for _, fe := range validationErrors {
			fields[fe.Field()] = describe(fe)
		}
		return NewValidationError(fields)
	}

	return nil
}

// unknownField extracts the field name from the decoder's error for a key
// the payload does not declare.
func unknownField(err error) (string, bool) {
	const prefix = "json: unknown field "
	msg := err.Error()
	if !strings.HasPrefix(msg, prefix) {
		return "", false
	}
	return strings.Trim(strings.TrimPrefix(msg, prefix), `"`), true
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Missing data for required field."
	case "email":
		return "Not a valid email address."
	case "min":
		return "Shorter than minimum length " + fe.Param() + "."
	case "max":
		return "Longer than maximum length " + fe.Param() + "."
	case "gt":
		return "Must be greater than " + fe.Param() + "."
	case "gte":
		return "Must be greater than or equal to " + fe.Param() + "."
	default:
		return "Failed on the '" + fe.Tag() + "' rule."
	}
}
