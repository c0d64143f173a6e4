// Package validate checks struct tags with go-playground/validator and reports
// failures as a flat list of field errors keyed by JSON path.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one violated constraint.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Message    string `json:"message"`
}

// Errors is returned by Struct when at least one constraint fails.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
	return instance
}

// Struct validates v. It returns nil, an Errors value, or an unexpected error
// from the validator itself (e.g. v is not a struct).
func Struct(v any) error {
	err := get().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:      fieldPath(fe.Namespace()),
			Constraint: fe.Tag(),
			Message:    message(fe),
		})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "notblank":
		return "value must not be blank"
	case "email":
		return "value is not a valid email address"
	case "min", "gte":
		return fmt.Sprintf("ensure this value is greater than or equal to %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("ensure this value is less than or equal to %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("value must be one of [%s]", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q constraint", fe.Tag())
	}
}
