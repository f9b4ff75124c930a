package model

import (
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var formValidator = newFormValidator()

func newFormValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Failures are reported under the form field name, so messages line up with the rendered inputs.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	// maxbytes bounds the encoded length, unlike max which counts runes.
	if err := v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateForm checks the validate tags of form. Each failing field gets the catalogue message
// "<scope>.error.<field>.<tag>", formatted with the rejected value.
func ValidateForm(scope string, form any) (*ValidationError, error) {
	validation := NewValidationError()

	err := formValidator.Struct(form)
	if err == nil {
		return validation, nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil, err
	}
	for _, fieldError := range fieldErrors {
		field := fieldError.Field()
		validation.Add(field, scope+".error."+field+"."+fieldError.Tag(), fieldError.Value())
	}
	return validation, nil
}
