package response

import (
	"errors"
	"net/http"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation"
)

const validationMessage = "Request validation failed"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// RenderValidationError renders ozzo validation errors as a list of field
// errors sorted by field name.
func RenderValidationError(rw http.ResponseWriter, err error) {
	fields := []FieldError{}
	var errs validation.Errors
	if errors.As(err, &errs) {
		for field, fieldErr := range errs {
			fields = append(fields, FieldError{Field: field, Message: fieldErr.Error()})
		}
		sort.Slice(fields, func(i, j int) bool { return fields[i].Field < fields[j].Field })
	} else {
		fields = append(fields, FieldError{Field: "body", Message: err.Error()})
	}
	renderFields(rw, fields)
}

// RenderInvalidBody is used when the request body is not a JSON object of
// the expected shape.
func RenderInvalidBody(rw http.ResponseWriter) {
	renderFields(rw, []FieldError{{Field: "body", Message: "must be a valid JSON object"}})
}

func renderFields(rw http.ResponseWriter, fields []FieldError) {
	RenderError(rw, http.StatusUnprocessableEntity, ErrorBody{
		Code:    CodeValidationError,
		Message: validationMessage,
		Details: map[string]interface{}{"fields": fields},
	})
}
