package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationDetail describes one failed binding rule
type ValidationDetail struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationDetails extracts per-field details from a binding error.
// Returns nil when the error is not a validator error.
func ValidationDetails(err error) []ValidationDetail {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	details := make([]ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, ValidationDetail{
			Field:   strings.ToLower(fe.Field()),
			Rule:    fe.Tag(),
			Message: fieldErrorMessage(fe),
		})
	}
	return details
}

// BindingErrorMessage renders a binding error as a single readable
// message. Validator errors list the failed fields; anything else
// (malformed JSON, type mismatches) gets a generic message.
func BindingErrorMessage(err error) string {
	details := ValidationDetails(err)
	if len(details) == 0 {
		return "Request body is not valid JSON for this endpoint"
	}

	messages := make([]string, len(details))
	for i, d := range details {
		messages[i] = d.Message
	}
	return strings.Join(messages, "; ")
}

func fieldErrorMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid UUID", field)
	default:
		return fmt.Sprintf("%s failed the %s rule", field, fe.Tag())
	}
}
