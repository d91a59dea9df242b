package api

import (
	"errors"
	"strings"

	"salon-site/internal/handler/httperr"

	"github.com/go-playground/validator/v10"
)

// bindingFieldErrors turns gin binding failures into the per-field
// error list of the envelope. Non-validator failures (malformed JSON)
// yield no field details.
func bindingFieldErrors(err error) []httperr.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]httperr.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		msg := "invalid value"
		if fe.Tag() == "required" {
			msg = "required"
		}
		details = append(details, httperr.FieldError{Field: field, Message: msg})
	}
	return details
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
