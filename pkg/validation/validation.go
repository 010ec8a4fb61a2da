// Package validation checks model values against the constraints the CodeDeploy service
// documents for them: required members, length bounds and enum membership.
//
// Rules are declared with validate struct tags on the model types. Checking is advisory and
// only happens when a caller asks for it.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Violation is one failed rule.
type Violation struct {
	// Field is the dotted wire path of the member, e.g. "revision.s3Location.bucket"
	Field string `json:"field"`

	// Rule is the failed rule: required, min, max or enum
	Rule string `json:"rule"`

	// Param is the rule argument, if any
	Param string `json:"param,omitempty"`
}

func (v Violation) String() string {
	switch v.Rule {
	case "required":
		return v.Field + " is required"
	case "min":
		return fmt.Sprintf("%s must be at least %s", v.Field, v.Param)
	case "max":
		return fmt.Sprintf("%s must be at most %s", v.Field, v.Param)
	case "enum":
		return v.Field + " is not a known enum value"
	default:
		return fmt.Sprintf("%s failed %s", v.Field, v.Rule)
	}
}

// Error reports every violation found in one value.
type Error struct {
	Violations []Violation
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.String()
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Fields returns the paths of all violated members, in report order.
func (e *Error) Fields() []string {
	out := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		out[i] = v.Field
	}
	return out
}

// known is implemented by every enum type.
type known interface {
	Known() bool
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
		// RegisterValidation only fails on an empty or reserved tag name
		_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			if e, ok := fl.Field().Interface().(known); ok {
				return e.Known()
			}
			return false
		})
		validate = v
	})
	return validate
}

// Struct checks v, a struct or pointer to struct, and returns a *Error listing every
// violation, or nil when v satisfies all of its rules.
func Struct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate %T: %w", v, err)
	}

	out := &Error{Violations: make([]Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, Violation{
			Field: fieldPath(fe.Namespace()),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// fieldPath drops the leading struct type name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}
