package handler

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// newValidator reports field names from json tags so validation details
// match the wire format.
func newValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("integer", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return f == math.Trunc(f)
	})
	return validate
}

// validationDetails expands a validator error into one message per violated
// constraint.
func validationDetails(err error) []string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(ve))
	for _, fe := range ve {
		details = append(details, fieldMessage(fe))
	}
	return details
}

func fieldMessage(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "min":
		switch fe.Kind() {
		case reflect.Slice:
			return fmt.Sprintf("%q must contain at least %s items", field, fe.Param())
		case reflect.String:
			return fmt.Sprintf("%q length must be at least %s characters", field, fe.Param())
		default:
			return fmt.Sprintf("%q must be at least %s", field, fe.Param())
		}
	case "max":
		return fmt.Sprintf("%q length must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%q must be greater than %s", field, fe.Param())
	case "integer":
		return fmt.Sprintf("%q must be an integer", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, fe.Param())
	default:
		return fmt.Sprintf("%q is invalid", field)
	}
}

// fieldPath strips the root struct name from the namespace, leaving the
// json path of the failing field (e.g. items[0].price).
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
