package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// FieldError is one field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors lists every failed field. It is returned as an error by
// the validation helpers.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidationErrors extracts field errors from err, if it carries any.
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their wire names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"json", "yaml"} {
				name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return f.Name
		})
		_ = v.RegisterValidation("step10", func(fl validator.FieldLevel) bool {
			return fl.Field().Int()%10 == 0
		})
		validate = v
	})
	return validate
}

// ValidateStruct runs the struct-tag rules on v and returns ValidationErrors
// when any fail.
func ValidateStruct(v any) error {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fieldPath(fe.Namespace()), Message: message(fe)})
	}
	return out
}

// fieldPath drops the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice || fe.Kind() == reflect.String {
			return fmt.Sprintf("must have at least %s item(s)", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "step10":
		return "must be a multiple of 10"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// Checker accumulates rules that struct tags cannot express, such as ranges
// on decimal amounts.
type Checker struct {
	errs ValidationErrors
}

// Add records a failure.
func (c *Checker) Add(field, format string, args ...any) {
	c.errs = append(c.errs, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

// NonNegative requires v >= 0.
func (c *Checker) NonNegative(field string, v decimal.Decimal) {
	if v.IsNegative() {
		c.Add(field, "must not be negative")
	}
}

// Range requires lo <= v <= hi.
func (c *Checker) Range(field string, v, lo, hi decimal.Decimal) {
	if v.LessThan(lo) || v.GreaterThan(hi) {
		c.Add(field, "must be between %s and %s", lo, hi)
	}
}

// Merge appends the field errors carried by err. Other errors are recorded
// against the root.
func (c *Checker) Merge(err error) {
	if err == nil {
		return
	}
	if ve, ok := AsValidationErrors(err); ok {
		c.errs = append(c.errs, ve...)
		return
	}
	c.Add("", "%v", err)
}

// Err returns the accumulated failures, or nil.
func (c *Checker) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}
