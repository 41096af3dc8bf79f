// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var phonePattern = regexp.MustCompile(`^0\d{8,9}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("il_phone", validateLocalPhone)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateLocalPhone accepts Israeli numbers like 05x-xxxxxxx, ignoring
// separators.
func validateLocalPhone(fl validator.FieldLevel) bool {
	phone := strings.NewReplacer("-", "", " ", "").Replace(fl.Field().String())
	return phonePattern.MatchString(phone)
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "il_phone":
		return "Phone number must be a local number like 05x-xxxxxxx"
	case "min":
		return e.Field() + " must be at least " + e.Param() + " characters"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	default:
		return e.Field() + " is invalid"
	}
}
