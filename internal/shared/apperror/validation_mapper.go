package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fieldCaser = cases.Title(language.English)

func humanField(name string) string {
	return fieldCaser.String(strings.ReplaceAll(name, "_", " "))
}

// MapValidationError turns a gin binding failure into a 400 AppError built
// from the first failed rule. Non-validator errors fall back to a generic
// invalid-input response.
func MapValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := humanField(e.Field())

	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "email":
		return New(CodeInvalidInput,
			fmt.Sprintf("%s must be a valid email address", field),
			http.StatusBadRequest)
	case "min":
		return New(CodeInvalidInput,
			fmt.Sprintf("%s must be at least %s characters", field, e.Param()),
			http.StatusBadRequest)
	case "oneof":
		return New(CodeInvalidInput,
			fmt.Sprintf("%s must be one of: %s", field, e.Param()),
			http.StatusBadRequest)
	default:
		return InvalidField(field)
	}
}
