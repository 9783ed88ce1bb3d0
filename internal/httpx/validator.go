package httpx

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"isbnapi/internal/isbn"
)

var validate = validator.New()

func init() {
	if err := validate.RegisterValidation("isbn13", validateISBN13); err != nil {
		panic(fmt.Sprintf("httpx: register isbn13 validation: %v", err))
	}
	// Report fields by their JSON names.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
}

// validateISBN13 accepts what isbn.Parse accepts. Hyphenated forms are not
// normalized.
func validateISBN13(fl validator.FieldLevel) bool {
	_, err := isbn.Parse(fl.Field().String())
	return err == nil
}

// ValidateStruct runs the struct's validate tags and converts failures into
// response details keyed by the JSON field name.
func ValidateStruct(s any) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "number":
			message = fmt.Sprintf("%s must contain only digits", field)
		case "isbn13":
			message = fmt.Sprintf("%s must be 13 digits", field)
		case "gte":
			message = fmt.Sprintf("%s must be at least %s", field, fe.Param())
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		details = append(details, ErrorDetail{Field: field, Message: message})
	}
	return details
}

// Messages joins detail messages into one line for the error field.
func Messages(details []ErrorDetail) string {
	msgs := make([]string, len(details))
	for i, d := range details {
		msgs[i] = d.Message
	}
	return strings.Join(msgs, "; ")
}
