package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldIssue is one field-level validation problem, surfaced in the
// "details" list of a 400 response.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Issues converts a gin binding error into field-level issues. Non-validator
// errors (malformed JSON, wrong types) collapse into a single issue.
func Issues(err error) []FieldIssue {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldIssue{{Message: err.Error()}}
	}

	issues := make([]FieldIssue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, FieldIssue{Field: fe.Field(), Message: messageFor(fe)})
	}
	return issues
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return fmt.Sprintf("%q is not a valid email address", fe.Value())
	case "min":
		return fmt.Sprintf("must have at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must have at most %s", fe.Param())
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
