package httpx

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct runs the validate tags on s and returns the failing
// tag names in field order. Handlers map tags onto the API's legacy
// error messages ("required" vs a range violation and so on).
func ValidateStruct(s any) []string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"invalid"}
	}

	tags := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		tags = append(tags, fieldError.Tag())
	}
	return tags
}
