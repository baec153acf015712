// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"reflect"
	"regexp"
	"strings"

	"florist/internal/delivery/api/response"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)

//nolint:gochecknoglobals
var customRules = map[string]validator.Func{
	"pincode": func(fl validator.FieldLevel) bool {
		return pincodePattern.MatchString(fl.Field().String())
	},
}

// RequestValidator validates bound request bodies.
type RequestValidator struct {
	validate *validator.Validate
}

// New builds a validator that reports fields by their JSON names and knows the "pincode" rule.
// It panics if a custom rule cannot be registered.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})
	if err := registerRules(v, customRules); err != nil {
		panic(err)
	}

	return &RequestValidator{validate: v}
}

func registerRules(v *validator.Validate, rules map[string]validator.Func) error {
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return errors.Wrapf(err, "failed to register %q validation", tag)
		}
	}

	return nil
}

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	fieldErrs := make(response.FieldErrors, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrs = append(fieldErrs, response.FieldError{
			Field: strings.TrimPrefix(fe.Namespace(), rootNamespace(fe)),
			Rule:  fe.Tag(),
		})
	}

	return fieldErrs
}

// rootNamespace is the struct type prefix validator puts in front of every field path.
func rootNamespace(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[:idx+1]
	}

	return ""
}
