// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	domainerrors "userhub/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator validates request structs using `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their json or form names.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query", "param"} {
			name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}

		return field.Name
	})
	// bytemax bounds the encoded length; max counts runes.
	_ = validate.RegisterValidation("bytemax", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= limit
	})

	return &CustomValidator{validate: validate}
}

// Validate implements echo.Validator. Failures are ErrValidationFailed with per-field details.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(messages, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
		}

		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	case "bytemax":
		return fmt.Sprintf("%s must be at most %s bytes", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
