package rest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/GustaveMAG/vienna-vibe/internal/core/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// condition accepts any weather condition name, case-insensitively.
	_ = v.RegisterValidation("condition", func(fl validator.FieldLevel) bool {
		_, ok := domain.LookupCondition(fl.Field().String())
		return ok
	})
	return v
}

// validationMessage flattens validator errors into one readable line.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", strings.ToLower(fe.Field())))
		case "condition":
			parts = append(parts, fmt.Sprintf("unknown condition %q", fe.Value()))
		default:
			parts = append(parts, fmt.Sprintf("%s must satisfy %s=%s", strings.ToLower(fe.Field()), fe.Tag(), fe.Param()))
		}
	}
	return strings.Join(parts, "; ")
}
