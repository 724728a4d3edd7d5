package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func GetValidator() *validator.Validate {
	return validate
}

func FormatValidationErrors(err error) []ValidationError {
	var errs []ValidationError

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs
	}

	for _, fieldError := range validationErrors {
		var message string

		switch fieldError.Tag() {
		case "required":
			message = fieldError.Field() + " is required"
		case "email":
			message = "Invalid email format"
		case "min":
			if fieldError.Kind() == reflect.String {
				message = fieldError.Field() + " must be at least " + fieldError.Param() + " characters"
			} else {
				message = fieldError.Field() + " must be at least " + fieldError.Param()
			}
		case "max":
			if fieldError.Kind() == reflect.String {
				message = fieldError.Field() + " must be at most " + fieldError.Param() + " characters"
			} else {
				message = fieldError.Field() + " must be at most " + fieldError.Param()
			}
		case "oneof":
			message = fieldError.Field() + " must be one of: " + fieldError.Param()
		case "required_if":
			message = fieldError.Field() + " is required for this action"
		default:
			message = fieldError.Field() + " is invalid"
		}

		errs = append(errs, ValidationError{
			Field:   fieldError.Field(),
			Message: message,
		})
	}

	return errs
}

type Validator interface {
	Validate() error
}
