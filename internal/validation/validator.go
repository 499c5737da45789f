package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"person-api/internal/apperrors"
)

// Validator checks struct tags and reports every failure as one apperrors.ValidationError.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// New creates a Validator with the project's custom rules registered.
func New() *Validator {
	return newValidator(time.Now)
}

func newValidator(now func() time.Time) *Validator {
	v := &Validator{validate: validator.New(validator.WithRequiredStructEnabled()), now: now}

	// Report json names so messages match what clients sent.
	v.validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})

	// Registration only fails on an empty tag or nil func.
	_ = v.validate.RegisterValidation("notblank", validators.NotBlank)
	_ = v.validate.RegisterValidation("notfuture", v.notFuture)

	return v
}

// Struct validates s. It returns nil, an *apperrors.ValidationError, or an
// unexpected error when s is not something the validator can inspect.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating %T: %w", s, err)
	}

	out := &apperrors.ValidationError{Violations: make([]apperrors.Violation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Violations = append(out.Violations, apperrors.Violation{
			Field:   fe.Field(),
			Message: message(fe),
		})
	}
	return out
}

// notFuture accepts dates up to and including today.
func (v *Validator) notFuture(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return !truncateToDay(t).After(truncateToDay(v.now()))
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func message(fe validator.FieldError) string {
	label := label(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return label + " is mandatory"
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", label, fe.Param())
	case "email":
		return label + " must be a well-formed email address"
	case "datetime":
		return label + " must be a date in YYYY-MM-DD format"
	case "notfuture":
		return label + " must be a date in the past or in the present"
	default:
		return fmt.Sprintf("%s failed the %q rule", label, fe.Tag())
	}
}

func label(field string) string {
	if field == "" {
		return field
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
